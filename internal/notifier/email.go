package notifier

import (
	"bytes"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"courtside/internal/models"
)

const emailSubject = "NBA Executive Pregame Briefing"

// Config wires SMTP transport settings into the notifier.
type Config struct {
	Host      string
	Port      int
	User      string
	Password  string
	From      string
	Recipient string
}

// Notifier delivers the assembled briefing over SMTP as a
// multipart/alternative message with plain-text and HTML parts. One send
// attempt per run; a failure here is the only terminal pipeline error.
type Notifier struct {
	cfg Config

	// sendMail is a seam for tests; defaults to smtp.SendMail, which
	// negotiates STARTTLS with the server.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New builds a notifier from transport settings.
func New(cfg Config) *Notifier {
	return &Notifier{cfg: cfg, sendMail: smtp.SendMail}
}

// Deliver renders and sends the briefing email.
func (n *Notifier) Deliver(result models.PipelineResult) error {
	slog.Info("[Notifier] preparing email", slog.String("recipient", n.cfg.Recipient))

	msg, err := n.buildMessage(result)
	if err != nil {
		return fmt.Errorf("build email: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)

	if err := n.sendMail(addr, auth, n.cfg.From, []string{n.cfg.Recipient}, msg); err != nil {
		return fmt.Errorf("send email to %s: %w", n.cfg.Recipient, err)
	}

	slog.Info("[Notifier] email sent", slog.String("recipient", n.cfg.Recipient))
	return nil
}

func (n *Notifier) buildMessage(result models.PipelineResult) ([]byte, error) {
	htmlBody, err := renderHTML(result)
	if err != nil {
		return nil, err
	}
	textBody := renderText(result)

	var body bytes.Buffer
	alt := multipart.NewWriter(&body)

	textPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return nil, fmt.Errorf("create text part: %w", err)
	}
	if _, err := textPart.Write([]byte(textBody)); err != nil {
		return nil, fmt.Errorf("write text part: %w", err)
	}

	htmlPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, fmt.Errorf("create html part: %w", err)
	}
	if _, err := htmlPart.Write([]byte(htmlBody)); err != nil {
		return nil, fmt.Errorf("write html part: %w", err)
	}

	if err := alt.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", n.cfg.Recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", emailSubject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n", alt.Boundary())
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	return msg.Bytes(), nil
}
