package email

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"alumnet/internal/domain/ticket"
	"alumnet/internal/shared/config"
)

// SMTPTicketMailer sends the explicit "email me a copy" ticket transcript.
// It is the only email path in the ticket core; lifecycle changes never
// notify automatically.
type SMTPTicketMailer struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPTicketMailer(cfg config.EmailConfig) *SMTPTicketMailer {
	return &SMTPTicketMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *SMTPTicketMailer) SendTicketCopy(ctx context.Context, recipientEmail string, t *ticket.Ticket, messages []*ticket.Message) error {
	subject := fmt.Sprintf("[%s] %s", t.Number(), t.Subject())

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", recipientEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", renderPlainTranscript(t, messages))
	m.AddAlternative("text/html", renderHTMLTranscript(t, messages))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send ticket copy: %w", err)
	}

	return nil
}

func renderPlainTranscript(t *ticket.Ticket, messages []*ticket.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ticket %s: %s\n", t.Number(), t.Subject())
	fmt.Fprintf(&b, "Status: %s | Priority: %s | Opened: %s\n\n",
		t.Status().String(), t.Priority().String(), t.CreatedAt().Format(time.RFC1123))
	fmt.Fprintf(&b, "%s\n\n---\n\n", t.Description())

	for _, msg := range messages {
		sender := "Member"
		if msg.IsSystem() {
			sender = "System"
		} else if msg.IsFromAdmin() {
			sender = "Support"
		}
		fmt.Fprintf(&b, "[%s] %s\n%s\n\n", msg.CreatedAt().Format(time.RFC1123), sender, msg.Body())
	}

	if t.ResolutionNote() != "" {
		fmt.Fprintf(&b, "---\nResolution: %s\n", t.ResolutionNote())
	}

	return b.String()
}

func renderHTMLTranscript(t *ticket.Ticket, messages []*ticket.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<html><body><h2>%s: %s</h2>", html.EscapeString(t.Number()), html.EscapeString(t.Subject()))
	fmt.Fprintf(&b, "<p>Status: %s | Priority: %s | Opened: %s</p>",
		t.Status().String(), t.Priority().String(), t.CreatedAt().Format(time.RFC1123))
	fmt.Fprintf(&b, "<p>%s</p><hr>", html.EscapeString(t.Description()))

	for _, msg := range messages {
		sender := "Member"
		if msg.IsSystem() {
			sender = "System"
		} else if msg.IsFromAdmin() {
			sender = "Support"
		}
		fmt.Fprintf(&b, "<p><strong>%s</strong> <em>%s</em><br>%s</p>",
			sender, msg.CreatedAt().Format(time.RFC1123), html.EscapeString(msg.Body()))
	}

	if t.ResolutionNote() != "" {
		fmt.Fprintf(&b, "<hr><p>Resolution: %s</p>", html.EscapeString(t.ResolutionNote()))
	}

	b.WriteString("</body></html>")
	return b.String()
}
