package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/careerhive/jobboard/internal/models"
)

func seedJob(t *testing.T, repo *MemoryJobRepository, title, jobType, location string) *models.Job {
	t.Helper()
	job, err := repo.Insert(context.Background(), &models.Job{
		Title:        title,
		Company:      "Brew Haven",
		Type:         jobType,
		Location:     location,
		Description:  "pull shots",
		ContactEmail: "hire@brew.test",
		PostedAt:     time.Now(),
	})
	require.NoError(t, err)
	return job
}

func TestMemoryInsertAssignsIDs(t *testing.T) {
	repo := NewMemoryJobRepository()

	first := seedJob(t, repo, "Head Barista", models.JobTypeFullTime, "Portland, OR")
	second := seedJob(t, repo, "Line Cook", models.JobTypeFullTime, "Portland, OR")

	require.Equal(t, uint(1), first.ID)
	require.Equal(t, uint(2), second.ID)

	got, err := repo.FindByID(context.Background(), first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Head Barista", got.Title)
}

func TestMemoryFindByIDAbsent(t *testing.T) {
	repo := NewMemoryJobRepository()

	got, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryDeleteByID(t *testing.T) {
	repo := NewMemoryJobRepository()
	job := seedJob(t, repo, "Head Barista", models.JobTypeFullTime, "Portland, OR")

	deleted, err := repo.DeleteByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// Second delete finds nothing.
	deleted, err = repo.DeleteByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestMemoryFindAllFilters(t *testing.T) {
	repo := NewMemoryJobRepository()
	seedJob(t, repo, "Head Barista", models.JobTypeFullTime, "Portland, OR")
	seedJob(t, repo, "Junior Barista", models.JobTypePartTime, "Seattle, WA")
	seedJob(t, repo, "Line Cook", models.JobTypeFullTime, "Portland, OR")

	cases := []struct {
		name   string
		filter Filter
		titles []string
	}{
		{"no filter", Filter{}, []string{"Head Barista", "Junior Barista", "Line Cook"}},
		{"search is case-insensitive", Filter{Search: "BARISTA"}, []string{"Head Barista", "Junior Barista"}},
		{"search matches title only", Filter{Search: "brew"}, nil},
		{"type exact", Filter{Type: models.JobTypePartTime}, []string{"Junior Barista"}},
		{"location exact", Filter{Location: "Portland, OR"}, []string{"Head Barista", "Line Cook"}},
		{"combined", Filter{Search: "barista", Type: models.JobTypeFullTime, Location: "Portland, OR"}, []string{"Head Barista"}},
		{"no match", Filter{Search: "astronaut"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jobs, err := repo.FindAll(context.Background(), tc.filter)
			require.NoError(t, err)

			var titles []string
			for _, j := range jobs {
				titles = append(titles, j.Title)
			}
			require.Equal(t, tc.titles, titles)
		})
	}
}
