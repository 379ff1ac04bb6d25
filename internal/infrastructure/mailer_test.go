package infrastructure

import (
	"context"
	"testing"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminhze/cribhunter/internal/config"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
)

func TestSendGridMailer_DisabledWithoutKey(t *testing.T) {
	m := NewSendGridMailer(config.EmailConfig{SenderAddress: "noreply@example.com"}, logging.Discard())

	assert.False(t, m.Enabled())
	user := entities.NewUser("Jane", "jane@example.com", entities.UserTypeHunter, "", "")
	assert.NoError(t, m.SendWelcome(context.Background(), user))
}

func TestBuildWelcomeMessage(t *testing.T) {
	from := mail.NewEmail("CribHunter", "noreply@example.com")

	agent := entities.NewUser("Alan", "alan@example.com", entities.UserTypeAgent, "81234567", "AG1")
	msg := buildWelcomeMessage(from, agent)

	assert.Equal(t, "Welcome to CribHunter", msg.Subject)
	require.Len(t, msg.Personalizations, 1)
	require.Len(t, msg.Personalizations[0].To, 1)
	assert.Equal(t, "alan@example.com", msg.Personalizations[0].To[0].Address)
	require.NotEmpty(t, msg.Content)
	assert.Contains(t, msg.Content[0].Value, "agent dashboard")
}

func TestBuildWelcomeMessage_EscapesName(t *testing.T) {
	from := mail.NewEmail("CribHunter", "noreply@example.com")
	name := `<a href="https://evil.example">verify account</a>`
	user := entities.NewUser(name, "mallory@example.com", entities.UserTypeHunter, "", "")

	msg := buildWelcomeMessage(from, user)

	require.Len(t, msg.Content, 2)
	htmlBody := msg.Content[1]
	assert.Equal(t, "text/html", htmlBody.Type)
	assert.NotContains(t, htmlBody.Value, "<a ")
	assert.Contains(t, htmlBody.Value, "&lt;a href=&#34;https://evil.example&#34;&gt;")
}
