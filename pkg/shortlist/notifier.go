package shortlist

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"
)

// Notifier tells a candidate they have been shortlisted.
type Notifier interface {
	CandidateShortlisted(ctx context.Context, c Candidate) error
}

// SMTPNotifier sends the notification over plain SMTP with STARTTLS.
type SMTPNotifier struct {
	Host     string
	Port     int
	From     string
	Password string
}

func NewSMTPNotifier(host string, port int, from, password string) *SMTPNotifier {
	return &SMTPNotifier{Host: host, Port: port, From: from, Password: password}
}

func (n *SMTPNotifier) CandidateShortlisted(_ context.Context, c Candidate) error {
	addr := fmt.Sprintf("%s:%d", n.Host, n.Port)
	auth := smtp.PlainAuth("", n.From, n.Password, n.Host)
	msg := buildShortlistMessage(n.From, c)
	if err := smtp.SendMail(addr, auth, n.From, []string{c.Email}, msg); err != nil {
		return fmt.Errorf("send shortlist mail: %w", err)
	}
	return nil
}

func buildShortlistMessage(from string, c Candidate) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", c.Email)
	b.WriteString("Subject: Update on your Application: Shortlisted\r\n")
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Dear %s,\r\n\r\n", c.CandidateName)
	b.WriteString("We are pleased to inform you that your application has been shortlisted by our recruitment team.\r\n")
	b.WriteString("Your skills and experience align well with our requirements.\r\n\r\n")
	b.WriteString("Our team will contact you shortly regarding the next steps in the hiring process.\r\n\r\n")
	b.WriteString("Best regards,\r\nTalent Acquisition Team\r\n")
	return []byte(b.String())
}

// LogNotifier replaces email delivery when SMTP is not configured: it logs
// the would-be notification instead of sending it.
type LogNotifier struct {
	Log zerolog.Logger
}

func (n LogNotifier) CandidateShortlisted(_ context.Context, c Candidate) error {
	n.Log.Info().
		Str("email", c.Email).
		Str("candidate", c.CandidateName).
		Msg("shortlist notification (smtp not configured, logged only)")
	return nil
}
