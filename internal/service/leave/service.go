package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/email"
	"github.com/hrms-labs/hrms-backend-go/internal/service/reconcile"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	email.Service
}

func NewLeaveService(leaveRepository leave.LeaveRepository, employeeRepository employee.EmployeeRepository, emailService email.Service) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepository,
		EmployeeRepository: employeeRepository,
		Service:            emailService,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, subjectEmail string, req leave.SubmitRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end := start
	if req.EndDate != "" {
		end, _ = time.Parse("2006-01-02", req.EndDate)
	}
	if end.Before(start) {
		return leave.RequestResponse{}, leave.ErrInvalidDateRange
	}

	created, err := s.LeaveRepository.Create(ctx, leave.Request{
		Email:     reconcile.NormalizeEmail(subjectEmail),
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.RequestResponse, error) {
	requests, err := s.LeaveRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, subjectEmail string) ([]leave.RequestResponse, error) {
	requests, err := s.LeaveRepository.ListBySubject(ctx, reconcile.NormalizeEmail(subjectEmail))
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string, decidedBy string) (leave.RequestResponse, error) {
	return s.decide(ctx, id, leave.DecisionApproved, nil, decidedBy)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest, decidedBy string) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}
	return s.decide(ctx, req.ID, leave.DecisionRejected, &req.Reason, decidedBy)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, id string, decision leave.Decision, rejectReason *string, decidedBy string) (leave.RequestResponse, error) {
	if err := s.LeaveRepository.UpdateDecision(ctx, id, decision, rejectReason, decidedBy); err != nil {
		return leave.RequestResponse{}, err
	}

	decided, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	s.notify(ctx, decided)

	return toResponse(decided), nil
}

// notify emails the subject about the decision. Delivery failure is logged
// and never fails the decision itself.
func (s *LeaveServiceImpl) notify(ctx context.Context, req leave.Request) {
	name := req.Email
	if emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email); err == nil {
		name = emp.FullName()
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		slog.Warn("Failed to look up employee for leave notification", "email", req.Email, "error", err)
	}

	rejectReason := ""
	if req.RejectReason != nil {
		rejectReason = *req.RejectReason
	}

	err := s.Service.SendLeaveDecision(
		req.Email,
		name,
		req.StartDate.Format("2006-01-02"),
		req.EndDate.Format("2006-01-02"),
		req.Decision == leave.DecisionApproved,
		rejectReason,
	)
	if err != nil {
		slog.Error("Failed to send leave decision email", "leave_id", req.ID, "error", err)
	}
}

func toResponse(req leave.Request) leave.RequestResponse {
	return leave.RequestResponse{
		ID:           req.ID,
		Email:        req.Email,
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		Reason:       req.Reason,
		Decision:     string(req.Decision),
		RejectReason: req.RejectReason,
		CreatedAt:    req.CreatedAt.Format(time.RFC3339),
	}
}

func toResponses(requests []leave.Request) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses
}
