package repository

import (
	"context"
	"errors"

	"github.com/careerhive/jobboard/internal/models"
	"gorm.io/gorm"
)

// GormJobRepository backs JobRepository with Postgres via GORM.
type GormJobRepository struct {
	DB *gorm.DB
}

func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{DB: db}
}

func (r *GormJobRepository) Insert(ctx context.Context, job *models.Job) (*models.Job, error) {
	if err := r.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *GormJobRepository) FindByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.DB.WithContext(ctx).First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *GormJobRepository) FindAll(ctx context.Context, f Filter) ([]models.Job, error) {
	q := r.DB.WithContext(ctx).Model(&models.Job{})
	if f.Search != "" {
		q = q.Where("title ILIKE ?", "%"+f.Search+"%")
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}

	var jobs []models.Job
	// id ASC keeps insertion order; the service layer sorts by postedAt.
	if err := q.Order("id ASC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *GormJobRepository) DeleteByID(ctx context.Context, id uint) (bool, error) {
	tx := r.DB.WithContext(ctx).Delete(&models.Job{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
