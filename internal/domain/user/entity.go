package user

import "time"

type Role string

const (
	RoleAdmin     Role = "ADMIN"      // Full access, approves accounts
	RoleHRManager Role = "HR_MANAGER" // Reviews attendance/leave, salary reports
	RoleEmployee  Role = "EMPLOYEE"   // Marks attendance, requests leave
)

type Status string

const (
	StatusPending  Status = "PENDING" // Registered, awaiting admin approval
	StatusActive   Status = "ACTIVE"
	StatusRejected Status = "REJECTED"
	StatusInactive Status = "INACTIVE"
)

type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash *string
	Role         Role
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanReview checks if user can review attendance and leave requests
func (u *User) CanReview() bool {
	return u.Role == RoleAdmin || u.Role == RoleHRManager
}

// IsActive checks if the account may log in
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// FullName joins first and last name, tolerating a missing last name
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
