package services

import (
	"fmt"
	"log"
	"os"

	"eventhub-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers best-effort booking notifications. A failed send
// never fails or rolls back the booking that triggered it.
type Notifier interface {
	BookingConfirmed(user *models.User, service *models.Service, booking *models.Booking) error
	BookingReminder(user *models.User, service *models.Service, booking *models.Booking) error
}

// TwilioNotifier sends SMS through the Twilio REST API.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier() *TwilioNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

func (n *TwilioNotifier) BookingConfirmed(user *models.User, service *models.Service, booking *models.Booking) error {
	body := fmt.Sprintf("Hi %s, your booking for %s on %s is confirmed.",
		user.Name, service.Name, booking.Date.Format("2006-01-02"))
	return n.send(user, body)
}

func (n *TwilioNotifier) BookingReminder(user *models.User, service *models.Service, booking *models.Booking) error {
	body := fmt.Sprintf("Hi %s, reminder: %s is booked for you tomorrow (%s).",
		user.Name, service.Name, booking.Date.Format("2006-01-02"))
	return n.send(user, body)
}

func (n *TwilioNotifier) send(user *models.User, body string) error {
	if user.Phone == "" {
		log.Printf("user %d has no phone number, skipping SMS", user.ID)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(user.Phone)
	params.SetFrom(n.from)
	params.SetBody(body)

	_, err := n.client.Api.CreateMessage(params)
	return err
}

// LogNotifier is the development stand-in when Twilio is unconfigured.
type LogNotifier struct{}

func (LogNotifier) BookingConfirmed(user *models.User, service *models.Service, booking *models.Booking) error {
	log.Printf("[notify] booking %d confirmed for %s (%s on %s)",
		booking.ID, user.Email, service.Name, booking.Date.Format("2006-01-02"))
	return nil
}

func (LogNotifier) BookingReminder(user *models.User, service *models.Service, booking *models.Booking) error {
	log.Printf("[notify] reminder for booking %d (%s on %s)",
		booking.ID, service.Name, booking.Date.Format("2006-01-02"))
	return nil
}
