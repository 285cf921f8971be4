package mail

import (
	"strings"
	"testing"

	"storefront-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestResetBody(t *testing.T) {
	body := ResetBody("http://localhost:7777/reset?resetToken=abc123")

	assert.Contains(t, body, `href="http://localhost:7777/reset?resetToken=abc123"`)
	assert.Contains(t, body, "reset your password")
}

func TestResetBodyEscapesURL(t *testing.T) {
	body := ResetBody(`http://evil/"><script>`)

	assert.False(t, strings.Contains(body, "<script>"))
}

func TestNewSMTPSender(t *testing.T) {
	cfg := &config.Config{
		MailHost:     "smtp.mailtrap.io",
		MailPort:     "587",
		MailUser:     "user",
		MailPassword: "pass",
		MailFrom:     "no-reply@example.com",
	}

	s := NewSMTPSender(cfg)
	assert.NotNil(t, s)
}
