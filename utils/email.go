// utils/email.go
package utils

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService handles sending emails using SendGrid
type EmailService struct {
	apiKey string
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService(apiKey, sender string) *EmailService {
	return &EmailService{
		apiKey: apiKey,
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, content string) error {
	if es.apiKey == "" {
		return fmt.Errorf("sendgrid api key is not configured")
	}

	from := mail.NewEmail("E-Mart", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)

	client := sendgrid.NewSendClient(es.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}
	return nil
}

// SendWelcomeEmail sends a greeting to a newly registered user
func (es *EmailService) SendWelcomeEmail(toEmail string) error {
	subject := "Welcome to E-Mart"
	content := "Your account has been created. Happy shopping!"
	return es.SendEmail(toEmail, subject, content)
}

// SendOrderReceivedEmail notifies a user that their order was recorded
func (es *EmailService) SendOrderReceivedEmail(toEmail string) error {
	subject := "Order Received - E-Mart"
	content := "We have received your order and will start processing it shortly.\n\nThank you for shopping with us!"
	return es.SendEmail(toEmail, subject, content)
}
