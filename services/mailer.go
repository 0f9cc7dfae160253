package services

import (
	"fmt"
	"log"
	"os"

	"eventhub-backend/models"

	"github.com/resend/resend-go/v2"
)

// Mailer delivers account emails. Like notifications, sends are best
// effort: a failure is logged by the caller and the primary operation
// stands.
type Mailer interface {
	SendConfirmation(user *models.User, token string) error
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client  *resend.Client
	from    string
	baseURL string
}

func NewResendMailer() *ResendMailer {
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "EventHub <noreply@eventhub.example>"
	}
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3001"
	}
	return &ResendMailer{
		client:  resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:    from,
		baseURL: baseURL,
	}
}

func (m *ResendMailer) SendConfirmation(user *models.User, token string) error {
	link := fmt.Sprintf("%s/api/confirm-email?token=%s", m.baseURL, token)
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{user.Email},
		Subject: "Confirm your EventHub account",
		Html: fmt.Sprintf(
			"<p>Hi %s,</p><p>Please confirm your email to activate your account:</p><p><a href=%q>Confirm email</a></p>",
			user.Name, link),
	}
	_, err := m.client.Emails.Send(params)
	return err
}

// LogMailer is the development stand-in when Resend is unconfigured.
type LogMailer struct{}

func (LogMailer) SendConfirmation(user *models.User, token string) error {
	log.Printf("[mail] confirmation token for %s: %s", user.Email, token)
	return nil
}
