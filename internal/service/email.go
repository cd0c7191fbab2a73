package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

func (s *EmailService) SendWelcomeEmail(ctx context.Context, email, username string) error {
	browseURL := fmt.Sprintf("%s/browse", s.appURL)
	subject, body := welcomeEmailTemplate(username, browseURL, s.appName)
	return s.send(ctx, "welcome", email, subject, body)
}

func (s *EmailService) SendPremiumGrantedEmail(ctx context.Context, email, username, subscriptionType string) error {
	premiumURL := fmt.Sprintf("%s/browse?contentType=premium", s.appURL)
	subject, body := premiumGrantedEmailTemplate(username, subscriptionType, premiumURL, s.appName)
	return s.send(ctx, "premium_granted", email, subject, body)
}

func (s *EmailService) SendPremiumRevokedEmail(ctx context.Context, email, username string) error {
	plansURL := fmt.Sprintf("%s/subscribe", s.appURL)
	subject, body := premiumRevokedEmailTemplate(username, plansURL, s.appName)
	return s.send(ctx, "premium_revoked", email, subject, body)
}

// send delivers a plain-text email. In development it only logs.
func (s *EmailService) send(ctx context.Context, kind, to, subject, body string) error {
	if s.isDev {
		slog.Info("email sent (dev mode)", "type", kind, "to", to, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send %s email: %w", kind, err)
	}

	slog.Info("email sent", "type", kind, "to", to)
	return nil
}
