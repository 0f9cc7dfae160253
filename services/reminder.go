// services/reminder.go
package services

import (
	"log"
	"time"

	"eventhub-backend/models"
	"eventhub-backend/storage"
	"eventhub-backend/utils"

	"github.com/robfig/cron/v3"
)

// ReminderService sends a day-before reminder for confirmed bookings.
// Failures are logged, never retried.
type ReminderService struct {
	bookings storage.BookingStore
	notifier Notifier
}

func NewReminderService(bookings storage.BookingStore, notifier Notifier) *ReminderService {
	return &ReminderService{bookings: bookings, notifier: notifier}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendUpcomingReminders)

	c.Start()
	log.Println("Booking reminder scheduler started")
}

// SendUpcomingReminders notifies every confirmed booking that falls on
// tomorrow's calendar day.
func (s *ReminderService) SendUpcomingReminders() {
	dayStart, dayEnd := utils.DayRange(time.Now().AddDate(0, 0, 1))

	bookings, err := s.bookings.ListForDay(dayStart, dayEnd, models.BookingConfirmed)
	if err != nil {
		log.Printf("reminder run failed to list bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := s.notifier.BookingReminder(&booking.User, &booking.Service, &booking); err != nil {
			log.Printf("booking %d: reminder failed: %v", booking.ID, err)
		}
	}

	log.Printf("reminder run completed, %d bookings processed", len(bookings))
}
