package notifier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/smtp"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/sirupsen/logrus"

	"scholarship-tracker-go/internal/config"
)

// SMTPNotifier submits the digest over authenticated SMTP.
type SMTPNotifier struct {
	cfg *config.MailConfig
}

func NewSMTP(cfg *config.MailConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// Deliver builds the MIME message and submits it. The context deadline is
// honored by failing fast before the dial; net/smtp itself has no context
// support.
func (n *SMTPNotifier) Deliver(ctx context.Context, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := n.buildMessage(subject, htmlBody)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", n.cfg.SMTPHost, n.cfg.SMTPPort)
	user := n.cfg.SMTPUser
	if user == "" {
		user = n.cfg.Sender
	}
	auth := smtp.PlainAuth("", user, n.cfg.SMTPPassword, n.cfg.SMTPHost)

	if err := smtp.SendMail(addr, auth, n.cfg.Sender, []string{n.cfg.Recipient}, msg); err != nil {
		return fmt.Errorf("smtp submission failed: %w", err)
	}

	logrus.Infof("Digest delivered to %s via SMTP", n.cfg.Recipient)
	return nil
}

func (n *SMTPNotifier) buildMessage(subject, htmlBody string) ([]byte, error) {
	var buf bytes.Buffer

	var h mail.Header
	h.SetDate(time.Now())
	h.SetAddressList("From", []*mail.Address{{Address: n.cfg.Sender}})
	h.SetAddressList("To", []*mail.Address{{Address: n.cfg.Recipient}})
	h.SetSubject(subject)
	h.SetContentType("text/html", map[string]string{"charset": "utf-8"})

	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, htmlBody); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Close is a no-op: each delivery opens its own connection.
func (n *SMTPNotifier) Close() error {
	return nil
}
