package repository

import (
	"context"

	"github.com/careerhive/jobboard/internal/models"
)

// Filter narrows FindAll results. Empty fields mean "no filter". Search is a
// case-insensitive substring match against the title only; Type and Location
// are exact matches. Callers normalize the special "all" value before it
// reaches the repository.
type Filter struct {
	Search   string
	Type     string
	Location string
}

// JobRepository is pure storage: no validation, no authorization, no
// ordering guarantees beyond insertion order from FindAll. The service layer
// owns the business rules so it can be tested against the in-memory
// implementation.
type JobRepository interface {
	// Insert assigns an id and stores the job, returning the stored record.
	Insert(ctx context.Context, job *models.Job) (*models.Job, error)

	// FindByID returns (nil, nil) when no job has that id.
	FindByID(ctx context.Context, id uint) (*models.Job, error)

	// FindAll returns matching jobs in insertion order.
	FindAll(ctx context.Context, f Filter) ([]models.Job, error)

	// DeleteByID reports true iff a record existed and was removed.
	DeleteByID(ctx context.Context, id uint) (bool, error)
}
