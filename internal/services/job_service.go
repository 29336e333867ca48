package services

import (
	"context"
	"sort"
	"time"

	"github.com/careerhive/jobboard/internal/dtos"
	"github.com/careerhive/jobboard/internal/models"
	"github.com/careerhive/jobboard/internal/repository"
)

type JobService struct {
	Repo repository.JobRepository

	// Clock is overridable in tests.
	Clock func() time.Time
}

func NewJobService(repo repository.JobRepository) *JobService {
	return &JobService{
		Repo:  repo,
		Clock: time.Now,
	}
}

// CreateJob validates the payload and stores a new job. requesterID is the
// opaque id from the identity provider; empty means anonymous.
func (s *JobService) CreateJob(ctx context.Context, requesterID string, req *dtos.JobCreationRequest) (*models.Job, error) {
	if err := validateCreation(req); err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Type:         req.Type,
		Location:     req.Location,
		Salary:       req.Salary,
		Description:  req.Description,
		Requirements: req.Requirements,
		ContactEmail: req.ContactEmail,
		PostedAt:     s.Clock(),
		PostedBy:     requesterID,
	}
	return s.Repo.Insert(ctx, job)
}

// ListJobs returns matching jobs, most recent first. No filter combination
// errors; an empty result is valid.
func (s *JobService) ListJobs(ctx context.Context, q dtos.JobListQuery) ([]models.Job, error) {
	f := repository.Filter{
		Search:   normalizeFilter(q.Search),
		Type:     normalizeFilter(q.Type),
		Location: normalizeFilter(q.Location),
	}

	jobs, err := s.Repo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	// postedAt descending; the stable sort keeps insertion order on ties.
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].PostedAt.After(jobs[j].PostedAt)
	})

	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

func (s *JobService) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	job, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// DeleteJob removes a job. Only the poster may delete it; a job posted
// anonymously can be deleted by any requester. Concurrent deletes of the
// same id may both see the job and race on the delete; the loser gets
// ErrJobNotFound, which is fine since the record is gone either way.
func (s *JobService) DeleteJob(ctx context.Context, id uint, requesterID string) error {
	job, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}

	if job.PostedBy != "" && job.PostedBy != requesterID {
		return ErrNotJobOwner
	}

	deleted, err := s.Repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrJobNotFound
	}
	return nil
}

func validateCreation(req *dtos.JobCreationRequest) error {
	switch {
	case req.Title == "":
		return &ValidationError{Field: "title", Reason: "is required"}
	case req.Company == "":
		return &ValidationError{Field: "company", Reason: "is required"}
	case req.Location == "":
		return &ValidationError{Field: "location", Reason: "is required"}
	case req.Description == "":
		return &ValidationError{Field: "description", Reason: "is required"}
	case req.ContactEmail == "":
		return &ValidationError{Field: "contactEmail", Reason: "is required"}
	}
	if !models.ValidJobType(req.Type) {
		return &ValidationError{Field: "type", Reason: "must be one of full-time, part-time, contract, internship"}
	}
	return nil
}

// normalizeFilter maps the UI's "all" option (and absence) to "no filter".
func normalizeFilter(v string) string {
	if v == "all" {
		return ""
	}
	return v
}
