package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/careerhive/jobboard/internal/dtos"
	"github.com/careerhive/jobboard/internal/mailer"
	"github.com/careerhive/jobboard/internal/models"
	"github.com/careerhive/jobboard/internal/repository"
	"github.com/careerhive/jobboard/internal/services"
)

type fakeSender struct {
	sent []mailer.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func seedBaristaJob(t *testing.T, repo repository.JobRepository, contactEmail string) *models.Job {
	t.Helper()
	job, err := repo.Insert(context.Background(), &models.Job{
		Title:        "Head Barista",
		Company:      "Brew Haven",
		Type:         models.JobTypeFullTime,
		Location:     "Portland, OR",
		Description:  "Run the bar.",
		ContactEmail: contactEmail,
		PostedAt:     time.Now(),
	})
	require.NoError(t, err)
	return job
}

func TestApplyComposesNotification(t *testing.T) {
	repo := repository.NewMemoryJobRepository()
	job := seedBaristaJob(t, repo, "hire@brew.test")
	sender := &fakeSender{}
	svc := services.NewApplicationService(repo, sender, "board@careerhive.test")

	err := svc.Apply(context.Background(), &dtos.ApplicationRequest{
		JobID:   job.ID,
		Name:    "Ann",
		Email:   "ann@test",
		Message: "I love coffee.",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	require.Equal(t, "board@careerhive.test", msg.From)
	require.Equal(t, "hire@brew.test", msg.To)
	require.Equal(t, "Application for Head Barista at Brew Haven", msg.Subject)
	require.Equal(t, "job_application", msg.Category)
	require.Contains(t, msg.HTMLBody, "New Application for Head Barista")
	require.Contains(t, msg.HTMLBody, "Ann")
	require.Contains(t, msg.HTMLBody, "ann@test")
	require.Contains(t, msg.HTMLBody, "I love coffee.")
}

func TestApplyEmptyMessagePlaceholder(t *testing.T) {
	repo := repository.NewMemoryJobRepository()
	job := seedBaristaJob(t, repo, "hire@brew.test")
	sender := &fakeSender{}
	svc := services.NewApplicationService(repo, sender, "board@careerhive.test")

	err := svc.Apply(context.Background(), &dtos.ApplicationRequest{
		JobID: job.ID,
		Name:  "Ann",
		Email: "ann@test",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	require.Contains(t, sender.sent[0].HTMLBody, "(No message)")
}

func TestApplyJobNotFound(t *testing.T) {
	repo := repository.NewMemoryJobRepository()
	sender := &fakeSender{}
	svc := services.NewApplicationService(repo, sender, "board@careerhive.test")

	err := svc.Apply(context.Background(), &dtos.ApplicationRequest{
		JobID: 123,
		Name:  "Ann",
		Email: "ann@test",
	})
	require.ErrorIs(t, err, services.ErrJobNotFound)
	require.Empty(t, sender.sent)
}

func TestApplyJobWithoutContactEmail(t *testing.T) {
	// The repository stores whatever it is given; an email-less job can only
	// come from outside the service layer, and applying to it reads as not
	// found.
	repo := repository.NewMemoryJobRepository()
	job := seedBaristaJob(t, repo, "")
	sender := &fakeSender{}
	svc := services.NewApplicationService(repo, sender, "board@careerhive.test")

	err := svc.Apply(context.Background(), &dtos.ApplicationRequest{
		JobID: job.ID,
		Name:  "Ann",
		Email: "ann@test",
	})
	require.ErrorIs(t, err, services.ErrJobNotFound)
	require.Empty(t, sender.sent)
}

func TestApplyDispatchFailure(t *testing.T) {
	repo := repository.NewMemoryJobRepository()
	job := seedBaristaJob(t, repo, "hire@brew.test")
	sender := &fakeSender{err: errors.New("smtp boom")}
	svc := services.NewApplicationService(repo, sender, "board@careerhive.test")

	err := svc.Apply(context.Background(), &dtos.ApplicationRequest{
		JobID:   job.ID,
		Name:    "Ann",
		Email:   "ann@test",
		Message: "hi",
	})
	require.ErrorIs(t, err, services.ErrDispatchFailed)

	// Exactly one attempt, no retry.
	require.Len(t, sender.sent, 1)

	// The job itself is untouched.
	got, findErr := repo.FindByID(context.Background(), job.ID)
	require.NoError(t, findErr)
	require.NotNil(t, got)
}

func TestApplyWithoutSenderConfigured(t *testing.T) {
	repo := repository.NewMemoryJobRepository()
	job := seedBaristaJob(t, repo, "hire@brew.test")
	svc := services.NewApplicationService(repo, nil, "board@careerhive.test")

	err := svc.Apply(context.Background(), &dtos.ApplicationRequest{
		JobID: job.ID,
		Name:  "Ann",
		Email: "ann@test",
	})
	require.ErrorIs(t, err, services.ErrDispatchFailed)
}
