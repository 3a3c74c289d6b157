package notifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"scholarship-tracker-go/internal/config"
)

// GmailNotifier delivers the digest through the Gmail API using an OAuth2
// refresh token.
type GmailNotifier struct {
	service   *gmail.Service
	userEmail string
	recipient string
}

func NewGmail(cfg *config.MailConfig) (*GmailNotifier, error) {
	ctx := context.Background()

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       []string{gmail.GmailSendScope},
		Endpoint:     google.Endpoint,
	}

	token := &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
	}

	tokenSource := oauth2Config.TokenSource(ctx, token)

	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &GmailNotifier{
		service:   service,
		userEmail: cfg.UserEmail,
		recipient: cfg.Recipient,
	}, nil
}

// Deliver sends the digest, retrying a small number of times when the API
// reports quota or rate limiting. Other errors fail immediately.
func (n *GmailNotifier) Deliver(ctx context.Context, subject, htmlBody string) error {
	raw := n.buildRawMessage(subject, htmlBody)

	message := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := n.service.Users.Messages.Send(n.userEmail, message).Context(ctx).Do()
		if err == nil {
			logrus.Infof("Digest delivered to %s via Gmail API", n.recipient)
			return nil
		}

		lastErr = err
		logrus.Warnf("Failed to deliver digest (attempt %d/%d): %v", attempt, 3, err)

		if strings.Contains(err.Error(), "quota") || strings.Contains(err.Error(), "rate") {
			waitTime := time.Duration(attempt*attempt) * time.Second
			logrus.Infof("Rate limited, waiting %v before retry", waitTime)
			time.Sleep(waitTime)
		} else {
			break
		}
	}

	return fmt.Errorf("failed to deliver digest: %w", lastErr)
}

func (n *GmailNotifier) buildRawMessage(subject, htmlBody string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s\r\n", n.userEmail))
	b.WriteString(fmt.Sprintf("To: %s\r\n", n.recipient))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	return b.String()
}

// Close closes the notifier (no-op for the Gmail API).
func (n *GmailNotifier) Close() error {
	return nil
}
