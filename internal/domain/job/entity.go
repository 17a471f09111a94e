package job

import "time"

type PostingStatus string

const (
	PostingOpen   PostingStatus = "OPEN"
	PostingClosed PostingStatus = "CLOSED"
)

// Posting is an open position published by an admin.
type Posting struct {
	ID          string
	Title       string
	Department  string
	Location    *string
	Description string
	Openings    int
	Status      PostingStatus
	PostedBy    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Application is one candidate application against a posting. A subject may
// apply to a given posting at most once.
type Application struct {
	ID        string
	JobID     string
	Email     string // normalized: trimmed, lowercase
	FullName  string
	Phone     *string
	Message   string
	CreatedAt time.Time
}
