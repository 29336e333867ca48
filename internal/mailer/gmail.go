package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/gmail/v1"
)

// GmailSender delivers messages through the Gmail API on behalf of the
// authorized account.
type GmailSender struct {
	Service *gmail.Service
}

func NewGmailSender(svc *gmail.Service) *GmailSender {
	return &GmailSender{Service: svc}
}

func (s *GmailSender) Send(ctx context.Context, msg Message) error {
	raw := base64.URLEncoding.EncodeToString([]byte(buildMIME(msg)))

	_, err := s.Service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gmail send: %w", err)
	}
	return nil
}

// buildMIME assembles a single-part HTML message. The category travels as a
// custom header so downstream filters can key on it.
func buildMIME(msg Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	if msg.Category != "" {
		fmt.Fprintf(&b, "X-Category: %s\r\n", msg.Category)
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)
	return b.String()
}
