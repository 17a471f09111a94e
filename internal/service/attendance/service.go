package attendance

import (
	"context"
	"fmt"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/service/reconcile"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
	}
}

// Mark implements attendance.AttendanceService. The body is a loose mapping
// in any of the historical shapes; it is normalized before storage. The
// subject identity always comes from the session, so any identity fields in
// the payload are overridden. The caller's map is left untouched.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, subjectEmail string, raw map[string]any) (attendance.RecordResponse, error) {
	payload := make(map[string]any, len(raw)+1)
	for k, v := range raw {
		payload[k] = v
	}
	payload["email"] = subjectEmail
	delete(payload, "user")
	delete(payload, "userEmail")

	rec, err := reconcile.NormalizeAttendance(payload)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	existing, err := s.AttendanceRepository.GetBySubjectAndDate(ctx, rec.Email, rec.Date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyMarked
	}

	created, err := s.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toResponse(created), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return toResponses(records), nil
}

// ListMine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, subjectEmail string) ([]attendance.RecordResponse, error) {
	records, err := s.AttendanceRepository.ListBySubject(ctx, reconcile.NormalizeEmail(subjectEmail))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return toResponses(records), nil
}

func toResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:      rec.ID,
		Email:   rec.Email,
		Date:    rec.Date.Format("2006-01-02"),
		Status:  string(rec.Status),
		Remarks: rec.Remarks,
	}
}

func toResponses(records []attendance.Record) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses
}
