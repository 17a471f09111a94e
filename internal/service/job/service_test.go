package job

import (
	"context"
	"testing"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/job"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobRepo struct {
	postings     map[string]job.Posting
	applications []job.Application
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{postings: map[string]job.Posting{}}
}

func (f *fakeJobRepo) CreatePosting(ctx context.Context, posting job.Posting) (job.Posting, error) {
	posting.ID = "posting-1"
	posting.Status = job.PostingOpen
	f.postings[posting.ID] = posting
	return posting, nil
}

func (f *fakeJobRepo) GetPostingByID(ctx context.Context, id string) (job.Posting, error) {
	posting, ok := f.postings[id]
	if !ok {
		return job.Posting{}, job.ErrJobNotFound
	}
	return posting, nil
}

func (f *fakeJobRepo) ListPostings(ctx context.Context) ([]job.Posting, error) {
	postings := make([]job.Posting, 0, len(f.postings))
	for _, posting := range f.postings {
		postings = append(postings, posting)
	}
	return postings, nil
}

func (f *fakeJobRepo) CreateApplication(ctx context.Context, app job.Application) (job.Application, error) {
	for _, existing := range f.applications {
		if existing.JobID == app.JobID && existing.Email == app.Email {
			return job.Application{}, job.ErrAlreadyApplied
		}
	}
	app.ID = "application-1"
	f.applications = append(f.applications, app)
	return app, nil
}

func (f *fakeJobRepo) ListApplications(ctx context.Context) ([]job.Application, error) {
	return f.applications, nil
}

func TestCreatePosting(t *testing.T) {
	t.Parallel()

	repo := newFakeJobRepo()
	svc := NewJobService(repo)

	created, err := svc.Create(context.Background(), job.CreatePostingRequest{
		Title:       "  Backend Engineer ",
		Department:  "Engineering",
		Description: "Go services",
		Openings:    2,
	}, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", created.Title)
	assert.Equal(t, string(job.PostingOpen), created.Status)
	assert.Equal(t, 2, created.Openings)
	assert.Equal(t, "admin-1", repo.postings[created.ID].PostedBy)
}

func TestCreatePostingValidates(t *testing.T) {
	t.Parallel()

	svc := NewJobService(newFakeJobRepo())

	_, err := svc.Create(context.Background(), job.CreatePostingRequest{
		Title:    "",
		Openings: 0,
	}, "admin-1")

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "department")
	assert.Contains(t, fields, "openings")
}

func TestApplyNormalizesApplicantEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeJobRepo()
	repo.postings["posting-1"] = job.Posting{ID: "posting-1", Status: job.PostingOpen}
	svc := NewJobService(repo)

	created, err := svc.Apply(context.Background(), "  Jane.Doe@Example.COM ", job.ApplyRequest{
		JobID:    "posting-1",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane.doe@example.com", created.Email)
	assert.Equal(t, "posting-1", created.JobID)
}

func TestApplyTwiceFails(t *testing.T) {
	t.Parallel()

	repo := newFakeJobRepo()
	repo.postings["posting-1"] = job.Posting{ID: "posting-1", Status: job.PostingOpen}
	svc := NewJobService(repo)

	req := job.ApplyRequest{JobID: "posting-1", FullName: "Jane Doe"}

	_, err := svc.Apply(context.Background(), "jane@example.com", req)
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), "JANE@example.com", req)
	assert.ErrorIs(t, err, job.ErrAlreadyApplied)
}

func TestApplyToClosedPostingFails(t *testing.T) {
	t.Parallel()

	repo := newFakeJobRepo()
	repo.postings["posting-1"] = job.Posting{ID: "posting-1", Status: job.PostingClosed}
	svc := NewJobService(repo)

	_, err := svc.Apply(context.Background(), "jane@example.com", job.ApplyRequest{
		JobID:    "posting-1",
		FullName: "Jane Doe",
	})
	assert.ErrorIs(t, err, job.ErrJobClosed)
}

func TestApplyToMissingPostingFails(t *testing.T) {
	t.Parallel()

	svc := NewJobService(newFakeJobRepo())

	_, err := svc.Apply(context.Background(), "jane@example.com", job.ApplyRequest{
		JobID:    "nope",
		FullName: "Jane Doe",
	})
	assert.ErrorIs(t, err, job.ErrJobNotFound)
}

func TestListApplications(t *testing.T) {
	t.Parallel()

	repo := newFakeJobRepo()
	repo.postings["posting-1"] = job.Posting{ID: "posting-1", Status: job.PostingOpen}
	svc := NewJobService(repo)

	_, err := svc.Apply(context.Background(), "jane@example.com", job.ApplyRequest{
		JobID:    "posting-1",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)

	applications, err := svc.ListApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, "jane@example.com", applications[0].Email)
}
