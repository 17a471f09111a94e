package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Mark records attendance for one subject and calendar day. The body is
	// accepted as a loose mapping and normalized before anything else looks
	// at it; the subject email always comes from the caller's session, never
	// the payload.
	Mark(ctx context.Context, subjectEmail string, raw map[string]any) (RecordResponse, error)

	// List retrieves attendance records with filters (HR/admin view)
	List(ctx context.Context, filter ListFilter) ([]RecordResponse, error)

	// ListMine retrieves the caller's own attendance records
	ListMine(ctx context.Context, subjectEmail string) ([]RecordResponse, error)
}
