package services

import (
	"errors"
	"fmt"
)

var (
	// ErrJobNotFound covers a missing job and, for applications, a job
	// without a contact email (an address-less job cannot be applied to, so
	// both look the same from outside).
	ErrJobNotFound = errors.New("job not found")

	// ErrNotJobOwner means the requester is not the poster of the job.
	ErrNotJobOwner = errors.New("not authorized to delete this job")

	// ErrDispatchFailed means the mail collaborator reported a failure. The
	// application is not persisted anywhere, so the attempt is lost.
	ErrDispatchFailed = errors.New("failed to send application")
)

// ValidationError rejects a malformed create payload. Client-fixable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
