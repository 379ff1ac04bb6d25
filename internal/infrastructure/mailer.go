package infrastructure

import (
	"context"
	"fmt"
	"html"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/benjaminhze/cribhunter/internal/config"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
)

// SendGridMailer sends transactional mail. Without an API key or sender
// address it is disabled and sends nothing.
type SendGridMailer struct {
	client     *sendgrid.Client
	senderName string
	sender     string
	logger     *logging.Logger
}

func NewSendGridMailer(cfg config.EmailConfig, logger *logging.Logger) *SendGridMailer {
	logger = logger.With("component", "mailer")
	if cfg.SendGridAPIKey == "" || cfg.SenderAddress == "" {
		logger.Info("sendgrid not configured, welcome emails disabled")
		return &SendGridMailer{logger: logger}
	}
	return &SendGridMailer{
		client:     sendgrid.NewSendClient(cfg.SendGridAPIKey),
		senderName: cfg.SenderName,
		sender:     cfg.SenderAddress,
		logger:     logger,
	}
}

func (m *SendGridMailer) Enabled() bool {
	return m.client != nil
}

// SendWelcome greets a newly registered user.
func (m *SendGridMailer) SendWelcome(ctx context.Context, user *entities.User) error {
	if m.client == nil {
		return nil
	}

	message := buildWelcomeMessage(mail.NewEmail(m.senderName, m.sender), user)
	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sending welcome email: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sending welcome email: sendgrid returned status %d", response.StatusCode)
	}

	m.logger.Debug("welcome email sent", "user_id", user.Id.String(), "status", response.StatusCode)
	return nil
}

func buildWelcomeMessage(from *mail.Email, user *entities.User) *mail.SGMailV3 {
	subject := "Welcome to CribHunter"
	to := mail.NewEmail(user.Name, user.Email)

	intro := "Start browsing listings and save your favourites."
	if user.IsAgent() {
		intro = "You can now publish listings from your agent dashboard."
	}

	plain := fmt.Sprintf("Hi %s,\n\nYour account is ready. %s\n", user.Name, intro)
	// Names are user supplied and must not inject markup.
	htmlBody := fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. %s</p>", html.EscapeString(user.Name), intro)
	return mail.NewSingleEmail(from, subject, to, plain, htmlBody)
}
