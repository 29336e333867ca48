package mailer

import "context"

// Message is the delivery contract the core depends on. The transport behind
// it (Gmail API, SMTP, ...) is an implementation detail of the Sender.
type Message struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
	Category string
}

// Sender makes exactly one delivery attempt per call. No retries, no queuing.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
