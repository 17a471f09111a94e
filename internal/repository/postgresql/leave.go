package postgresql

import (
	"context"
	"errors"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, email, start_date, end_date, reason, decision, reject_reason,
			decided_by, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID,
		&req.Email,
		&req.StartDate,
		&req.EndDate,
		&req.Reason,
		&req.Decision,
		&req.RejectReason,
		&req.DecidedBy,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	return req, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO leave_requests (id, email, start_date, end_date, reason, decision, created_at, updated_at)
		VALUES (gen_random_uuid(), LOWER($1), $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + leaveColumns

	created, err := scanLeave(q.QueryRow(ctx, insertQuery,
		req.Email,
		req.StartDate,
		req.EndDate,
		req.Reason,
		leave.DecisionPending,
	))
	if err != nil {
		return leave.Request{}, err
	}

	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanLeave(q.QueryRow(ctx, `
		SELECT `+leaveColumns+`
		FROM leave_requests
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, err
	}

	return req, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+leaveColumns+`
		FROM leave_requests
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListBySubject implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListBySubject(ctx context.Context, email string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+leaveColumns+`
		FROM leave_requests
		WHERE LOWER(email) = LOWER($1)
		ORDER BY created_at DESC
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateDecision implements leave.LeaveRepository.
// Only pending requests can be decided; deciding twice is an error.
func (r *leaveRepositoryImpl) UpdateDecision(ctx context.Context, id string, decision leave.Decision, rejectReason *string, decidedBy string) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE leave_requests
		SET decision = $1, reject_reason = $2, decided_by = $3, updated_at = NOW()
		WHERE id = $4 AND decision = $5
	`

	tag, err := q.Exec(ctx, updateQuery, decision, rejectReason, decidedBy, id, leave.DecisionPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already decided; look it up to tell which.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}
