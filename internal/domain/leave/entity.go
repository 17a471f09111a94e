package leave

import "time"

type Decision string

const (
	DecisionPending  Decision = "PENDING"
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// Request is the canonical leave request. A single-day request has
// EndDate equal to StartDate.
type Request struct {
	ID           string
	Email        string // normalized: trimmed, lowercase
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Decision     Decision
	RejectReason *string
	DecidedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
