package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/careerhive/jobboard/internal/dtos"
	"github.com/careerhive/jobboard/internal/mailer"
	"github.com/careerhive/jobboard/internal/repository"
)

// ApplicationService relays a candidate's application to the job's contact
// email. Applications are never stored: one delivery attempt, and a failure
// is final.
type ApplicationService struct {
	Repo   repository.JobRepository
	Mailer mailer.Sender
	From   string
}

func NewApplicationService(repo repository.JobRepository, sender mailer.Sender, from string) *ApplicationService {
	return &ApplicationService{
		Repo:   repo,
		Mailer: sender,
		From:   from,
	}
}

// Apply loads the referenced job, composes the notification and makes exactly
// one delivery attempt. A job without a contact email is treated the same as
// a missing job.
func (s *ApplicationService) Apply(ctx context.Context, req *dtos.ApplicationRequest) error {
	job, err := s.Repo.FindByID(ctx, req.JobID)
	if err != nil {
		return err
	}
	if job == nil || job.ContactEmail == "" {
		return ErrJobNotFound
	}

	message := req.Message
	if strings.TrimSpace(message) == "" {
		message = "(No message)"
	}

	html := fmt.Sprintf(`<h2>New Application for %s</h2>
<p><strong>Applicant Name:</strong> %s</p>
<p><strong>Applicant Email:</strong> %s</p>
<p><strong>Message:</strong><br/>%s</p>`,
		job.Title, req.Name, req.Email, message)

	msg := mailer.Message{
		From:     s.From,
		To:       job.ContactEmail,
		Subject:  fmt.Sprintf("Application for %s at %s", job.Title, job.Company),
		HTMLBody: html,
		Category: "job_application",
	}

	if s.Mailer == nil {
		return fmt.Errorf("%w: no mail sender configured", ErrDispatchFailed)
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	return nil
}
