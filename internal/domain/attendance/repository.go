package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, rec Record) (Record, error)

	// GetBySubjectAndDate retrieves the record for a subject on a calendar
	// day; returns nil when none exists. Used to enforce one record per day.
	GetBySubjectAndDate(ctx context.Context, email string, date time.Time) (*Record, error)

	// List retrieves attendance records with optional filters
	List(ctx context.Context, filter ListFilter) ([]Record, error)

	// ListBySubject retrieves all records for one subject
	ListBySubject(ctx context.Context, email string) ([]Record, error)
}
