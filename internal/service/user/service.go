package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/email"
	"github.com/hrms-labs/hrms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AdminServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	email.Service
}

func NewAdminService(db *database.DB, userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, emailService email.Service) user.AdminService {
	return &AdminServiceImpl{
		db:                 db,
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            emailService,
	}
}

// ListPendingUsers implements user.AdminService.
func (s *AdminServiceImpl) ListPendingUsers(ctx context.Context) ([]user.PendingUserResponse, error) {
	users, err := s.UserRepository.ListByStatus(ctx, user.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}

	responses := make([]user.PendingUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.PendingUserResponse{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      string(u.Role),
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}

	return responses, nil
}

// ApproveUser implements user.AdminService. Activation and profile creation
// happen in one transaction; a failed profile insert leaves the account
// pending.
func (s *AdminServiceImpl) ApproveUser(ctx context.Context, req user.ApproveUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if userData.Status != user.StatusPending {
		return user.ErrUserNotPending
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.UserRepository.UpdateStatus(txCtx, userData.ID, user.StatusActive); err != nil {
			return fmt.Errorf("failed to activate user: %w", err)
		}

		// HR managers and admins review data; only employees get a profile
		// that feeds attendance and payroll.
		if userData.Role != user.RoleEmployee {
			return nil
		}

		salary := decimal.Zero
		if req.Salary != nil {
			salary = *req.Salary
		}

		_, err := s.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:     &userData.ID,
			Email:      userData.Email,
			FirstName:  userData.FirstName,
			LastName:   userData.LastName,
			Department: req.Department,
			Position:   req.Position,
			Phone:      req.Phone,
			Address:    req.Address,
			Salary:     salary,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee profile: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if mailErr := s.Service.SendAccountDecision(userData.Email, userData.FullName(), true); mailErr != nil {
		slog.Error("Failed to send approval email", "user_id", userData.ID, "error", mailErr)
	}

	return nil
}

// RejectUser implements user.AdminService.
func (s *AdminServiceImpl) RejectUser(ctx context.Context, req user.RejectUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if userData.Status != user.StatusPending {
		return user.ErrUserNotPending
	}

	if err := s.UserRepository.UpdateStatus(ctx, userData.ID, user.StatusRejected); err != nil {
		return err
	}

	if mailErr := s.Service.SendAccountDecision(userData.Email, userData.FullName(), false); mailErr != nil {
		slog.Error("Failed to send rejection email", "user_id", userData.ID, "error", mailErr)
	}

	return nil
}
