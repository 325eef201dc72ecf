package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/Razzak118348/University-job-portal-server/internal/cache"
	"github.com/Razzak118348/University-job-portal-server/internal/database"
	"github.com/Razzak118348/University-job-portal-server/internal/dtos"
	"github.com/Razzak118348/University-job-portal-server/internal/models"
)

// Collection names.
const (
	JobsCollection         = "JobPortalDB"
	UsersCollection        = "Users"
	ApplicationsCollection = "JobApplications"
)

// Paging defaults for ListPaged.
const (
	DefaultPage      = 1
	DefaultPageLimit = 9
)

const jobCountKey = "jobs"

type JobServiceOptions struct {
	Jobs   database.Collection
	Counts cache.CountCache
	// EmptyListNotFound turns an empty ListByOwner result into ErrNotFound.
	EmptyListNotFound bool
	Logger            *slog.Logger
}

type JobService struct {
	jobs              database.Collection
	counts            cache.CountCache
	emptyListNotFound bool
	logger            *slog.Logger
}

func NewJobService(opts JobServiceOptions) *JobService {
	s := &JobService{
		jobs:              opts.Jobs,
		counts:            opts.Counts,
		emptyListNotFound: opts.EmptyListNotFound,
		logger:            opts.Logger,
	}
	if s.counts == nil {
		s.counts = cache.Noop{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Create stores the posting as given and returns its new id.
func (s *JobService) Create(ctx context.Context, job models.Document) (string, error) {
	id, err := s.jobs.InsertOne(ctx, job)
	if err != nil {
		return "", fmt.Errorf("insert job: %w", err)
	}
	s.invalidateCount(ctx)
	return id, nil
}

func (s *JobService) ListAll(ctx context.Context) ([]models.Document, error) {
	jobs, err := s.jobs.Find(ctx, nil, database.FindOptions{})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// ListPaged returns page (1-based) of limit jobs. Values below 1 fall back
// to DefaultPage and DefaultPageLimit.
func (s *JobService) ListPaged(ctx context.Context, page, limit int64) (*dtos.JobPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	// A window starting past the int64 range is empty.
	jobs := []models.Document{}
	if page-1 <= math.MaxInt64/limit {
		var err error
		jobs, err = s.jobs.Find(ctx, nil, database.FindOptions{Skip: (page - 1) * limit, Limit: limit})
		if err != nil {
			return nil, fmt.Errorf("list job page: %w", err)
		}
	}
	total, err := s.total(ctx)
	if err != nil {
		return nil, err
	}

	return &dtos.JobPage{
		Jobs:        jobs,
		TotalPages:  pageCount(total, limit),
		CurrentPage: page,
	}, nil
}

// pageCount is ceil(total/limit) without overflowing for large limits.
func pageCount(total, limit int64) int64 {
	n := total / limit
	if total%limit != 0 {
		n++
	}
	return n
}

func (s *JobService) GetByID(ctx context.Context, id string) (models.Document, error) {
	job, err := s.jobs.FindOne(ctx, database.Filter{models.IDField: id})
	if err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, notFound("Job not found")
		}
		return nil, fmt.Errorf("get job %s: %w", id, err)
	}
	return job, nil
}

// ListByOwner returns the jobs posted by email.
func (s *JobService) ListByOwner(ctx context.Context, email string) ([]models.Document, error) {
	if err := requireParam("email", "path", email); err != nil {
		return nil, err
	}
	jobs, err := s.jobs.Find(ctx, database.Filter{"email": email}, database.FindOptions{})
	if err != nil {
		return nil, fmt.Errorf("list jobs for %s: %w", email, err)
	}
	if len(jobs) == 0 && s.emptyListNotFound {
		return nil, notFound("No jobs found for this email")
	}
	return jobs, nil
}

func (s *JobService) DeleteByID(ctx context.Context, id string) error {
	n, err := s.jobs.DeleteOne(ctx, database.Filter{models.IDField: id})
	if err != nil {
		return fmt.Errorf("delete job %s: %w", id, err)
	}
	if n == 0 {
		return notFound("Job not found")
	}
	s.invalidateCount(ctx)
	return nil
}

// total reads the approximate job count, preferring the cache. A count read
// just before a concurrent Create or DeleteByID can be cached after their
// invalidation, so the total may lag by up to the cache TTL.
func (s *JobService) total(ctx context.Context) (int64, error) {
	n, ok, err := s.counts.Get(ctx, jobCountKey)
	if err != nil {
		s.logger.WarnContext(ctx, "job count cache read failed", "error", err)
	}
	if ok {
		return n, nil
	}

	n, err = s.jobs.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	if err := s.counts.Set(ctx, jobCountKey, n); err != nil {
		s.logger.WarnContext(ctx, "job count cache write failed", "error", err)
	}
	return n, nil
}

func (s *JobService) invalidateCount(ctx context.Context) {
	if err := s.counts.Invalidate(ctx, jobCountKey); err != nil {
		s.logger.WarnContext(ctx, "job count cache invalidate failed", "error", err)
	}
}
