package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/careerhive/jobboard/internal/models"
)

// MemoryJobRepository keeps jobs in a slice. It exists so the services can be
// exercised without a datastore.
type MemoryJobRepository struct {
	mu     sync.Mutex
	jobs   []models.Job
	nextID uint
}

func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{nextID: 1}
}

func (r *MemoryJobRepository) Insert(_ context.Context, job *models.Job) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job.ID = r.nextID
	r.nextID++
	r.jobs = append(r.jobs, *job)
	return job, nil
}

func (r *MemoryJobRepository) FindByID(_ context.Context, id uint) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, j := range r.jobs {
		if j.ID == id {
			out := j
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryJobRepository) FindAll(_ context.Context, f Filter) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Job
	for _, j := range r.jobs {
		if matches(j, f) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *MemoryJobRepository) DeleteByID(_ context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, j := range r.jobs {
		if j.ID == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func matches(j models.Job, f Filter) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Type != "" && j.Type != f.Type {
		return false
	}
	if f.Location != "" && j.Location != f.Location {
		return false
	}
	return true
}
