package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, email, date, status, remarks, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID,
		&rec.Email,
		&rec.Date,
		&rec.Status,
		&rec.Remarks,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository.
// The (email, date) unique constraint backs the one-record-per-day rule.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO attendance_records (id, email, date, status, remarks, created_at, updated_at)
		VALUES (gen_random_uuid(), LOWER($1), $2, $3, $4, NOW(), NOW())
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, insertQuery,
		rec.Email,
		rec.Date,
		rec.Status,
		rec.Remarks,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrAlreadyMarked
		}
		return attendance.Record{}, err
	}

	return created, nil
}

// GetBySubjectAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetBySubjectAndDate(ctx context.Context, email string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanAttendance(q.QueryRow(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE LOWER(email) = LOWER($1) AND date = $2
	`, email, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &rec, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE 1=1
	`
	args := []interface{}{}
	argNum := 1

	if filter.Email != nil && *filter.Email != "" {
		query += fmt.Sprintf(" AND LOWER(email) = LOWER($%d)", argNum)
		args = append(args, *filter.Email)
		argNum++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		query += fmt.Sprintf(" AND date >= $%d", argNum)
		args = append(args, *filter.StartDate)
		argNum++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		query += fmt.Sprintf(" AND date <= $%d", argNum)
		args = append(args, *filter.EndDate)
		argNum++
	}

	query += " ORDER BY date DESC, email ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListBySubject implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListBySubject(ctx context.Context, email string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE LOWER(email) = LOWER($1)
		ORDER BY date DESC
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
