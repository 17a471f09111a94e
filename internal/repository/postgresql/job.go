package postgresql

import (
	"context"
	"errors"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/job"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

const postingColumns = `id, title, department, location, description, openings,
			status, posted_by, created_at, updated_at`

const applicationColumns = `id, job_id, email, full_name, phone, message, created_at`

func scanPosting(row pgx.Row) (job.Posting, error) {
	var p job.Posting
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Department,
		&p.Location,
		&p.Description,
		&p.Openings,
		&p.Status,
		&p.PostedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func scanApplication(row pgx.Row) (job.Application, error) {
	var a job.Application
	err := row.Scan(
		&a.ID,
		&a.JobID,
		&a.Email,
		&a.FullName,
		&a.Phone,
		&a.Message,
		&a.CreatedAt,
	)
	return a, err
}

// CreatePosting implements job.JobRepository.
func (r *jobRepositoryImpl) CreatePosting(ctx context.Context, posting job.Posting) (job.Posting, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO job_postings (id, title, department, location, description, openings,
			status, posted_by, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + postingColumns

	created, err := scanPosting(q.QueryRow(ctx, insertQuery,
		posting.Title,
		posting.Department,
		posting.Location,
		posting.Description,
		posting.Openings,
		job.PostingOpen,
		posting.PostedBy,
	))
	if err != nil {
		return job.Posting{}, err
	}

	return created, nil
}

// GetPostingByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetPostingByID(ctx context.Context, id string) (job.Posting, error) {
	q := GetQuerier(ctx, r.db)

	posting, err := scanPosting(q.QueryRow(ctx, `
		SELECT `+postingColumns+`
		FROM job_postings
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, job.ErrJobNotFound
		}
		return job.Posting{}, err
	}

	return posting, nil
}

// ListPostings implements job.JobRepository.
func (r *jobRepositoryImpl) ListPostings(ctx context.Context) ([]job.Posting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+postingColumns+`
		FROM job_postings
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []job.Posting
	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, posting)
	}

	return postings, rows.Err()
}

// CreateApplication implements job.JobRepository.
// A unique index on (job_id, email) backs the one-application rule.
func (r *jobRepositoryImpl) CreateApplication(ctx context.Context, app job.Application) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO job_applications (id, job_id, email, full_name, phone, message, created_at)
		VALUES (gen_random_uuid(), $1, LOWER($2), $3, $4, $5, NOW())
		RETURNING ` + applicationColumns

	created, err := scanApplication(q.QueryRow(ctx, insertQuery,
		app.JobID,
		app.Email,
		app.FullName,
		app.Phone,
		app.Message,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return job.Application{}, job.ErrAlreadyApplied
		}
		return job.Application{}, err
	}

	return created, nil
}

// ListApplications implements job.JobRepository.
func (r *jobRepositoryImpl) ListApplications(ctx context.Context) ([]job.Application, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+applicationColumns+`
		FROM job_applications
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []job.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}

	return applications, rows.Err()
}
