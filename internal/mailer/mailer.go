// Package mailer delivers transactional email through SMTP or SES.
package mailer

import (
	"context"
	"fmt"
	"strings"
)

// Message is one outbound email. The body is HTML, matching the templates
// the frontend team signed off on.
type Message struct {
	From     string
	FromName string
	To       string
	CC       []string
	Subject  string
	HTMLBody string
}

// Mailer sends a single message. Implementations must treat the context as
// a hard deadline for the network exchange.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// recipients returns every envelope recipient of the message.
func recipients(msg *Message) []string {
	out := []string{msg.To}
	for _, cc := range msg.CC {
		addr := strings.TrimSpace(cc)
		if addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// fromHeader renders the sender identity as "Name <address>".
func fromHeader(msg *Message) string {
	if msg.FromName == "" {
		return msg.From
	}
	return fmt.Sprintf("%s <%s>", msg.FromName, msg.From)
}

// buildRFC822 assembles the raw message for SMTP transports.
func buildRFC822(msg *Message) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s\r\n", fromHeader(msg)))
	b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	if len(msg.CC) > 0 {
		b.WriteString(fmt.Sprintf("Cc: %s\r\n", strings.Join(msg.CC, ", ")))
	}
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)

	return b.String()
}
