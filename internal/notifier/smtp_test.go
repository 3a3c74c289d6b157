package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarship-tracker-go/internal/config"
)

func TestBuildMessageHeaders(t *testing.T) {
	n := NewSMTP(&config.MailConfig{
		Mode:      "smtp",
		Sender:    "tracker@example.com",
		Recipient: "student@example.com",
	})

	msg, err := n.buildMessage("Scholarship Updates - 01 March 2025", "<p>digest</p>")
	require.NoError(t, err)

	text := string(msg)
	assert.Contains(t, text, "From: <tracker@example.com>")
	assert.Contains(t, text, "To: <student@example.com>")
	assert.Contains(t, text, "Subject: Scholarship Updates - 01 March 2025")
	assert.Contains(t, text, "text/html")
	assert.Contains(t, text, "digest")
}

func TestNewSelectsTransport(t *testing.T) {
	nt, err := New(&config.MailConfig{Mode: "smtp", Sender: "a@b.c", Recipient: "d@e.f"})
	require.NoError(t, err)
	assert.IsType(t, &SMTPNotifier{}, nt)

	_, err = New(&config.MailConfig{Mode: "carrier-pigeon"})
	assert.Error(t, err)
}
