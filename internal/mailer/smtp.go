package mailer

import (
	"context"
	"fmt"
	"html"
	"net/smtp"
	"strings"
)

// SMTPMailer sends HTML email over plain-auth SMTP. A send either fully
// succeeds or returns an error; there is no per-recipient outcome.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (m *SMTPMailer) Send(_ context.Context, recipients []string, subject, htmlBody string) error {
	msg := buildMessage(m.from, recipients, subject, htmlBody)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, recipients, []byte(msg)); err != nil {
		return fmt.Errorf("mailer: failed to send: %w", err)
	}
	return nil
}

func buildMessage(from string, recipients []string, subject, htmlBody string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		from,
		strings.Join(recipients, ","),
		subject,
		htmlBody,
	)
}

// BuildSummaryHTML renders the email body for a shared summary.
func BuildSummaryHTML(summaryText string) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html><html><head><style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 700px; margin: 0 auto; padding: 20px; color: #333; }
h1 { color: #1a1a2e; border-bottom: 2px solid #e94560; padding-bottom: 10px; }
.summary { background: #f0f0f0; padding: 15px; border-radius: 8px; white-space: pre-wrap; }
</style></head><body>`)

	sb.WriteString("<h1>Your AI-Generated Summary</h1>")
	sb.WriteString(fmt.Sprintf(`<div class="summary">%s</div>`, html.EscapeString(summaryText)))
	sb.WriteString("</body></html>")

	return sb.String()
}
