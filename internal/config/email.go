package config

import (
	"context"
	"errors"
	"os"

	"github.com/resend/resend-go/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ResendConfig struct {
	APIKey string
	From   string
}

func NewResendConfig() (*ResendConfig, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	fromEmail := os.Getenv("FROM_EMAIL")
	if apiKey == "" || fromEmail == "" {
		return nil, errors.New("RESEND_API_KEY and FROM_EMAIL must be set")
	}
	return &ResendConfig{APIKey: apiKey, From: fromEmail}, nil
}

// EmailService sends transactional mail through the Resend API.
type EmailService struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

func NewEmailService(lc fx.Lifecycle, config *ResendConfig, logger *zap.Logger) *EmailService {
	service := &EmailService{
		client: resend.NewClient(config.APIKey),
		from:   config.From,
		logger: logger,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("email service initialized")
			return nil
		},
	})
	return service
}

func (e *EmailService) Send(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    e.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	if _, err := e.client.Emails.SendWithContext(ctx, params); err != nil {
		e.logger.Error("failed to send email", zap.String("to", to), zap.Error(err))
		return err
	}
	e.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
