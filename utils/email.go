// utils/email.go
package utils

import (
	"fmt"

	"github.com/keighl/postmark"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService(apiToken, sender string) *EmailService {
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendRiderStatusEmail notifies an applicant that their rider application
// changed status ("approved", "rejected", "deactivated").
func (es *EmailService) SendRiderStatusEmail(toEmail, name, status string) error {
	subject := "Your Rider Application Update"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your rider application status is now: <strong>%s</strong>.<br><br>Thank you for riding with us!",
		name,
		status,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
