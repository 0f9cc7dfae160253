// Package services holds the business components: availability,
// booking workflow, credentials, catalog, reviews and reporting. Every
// component takes its collaborators through the constructor so tests
// can substitute in-memory fakes.
package services

import (
	"time"

	"eventhub-backend/apperr"
	"eventhub-backend/models"
	"eventhub-backend/storage"
	"eventhub-backend/utils"
)

// AvailabilityEngine decides whether a service can be booked for a
// calendar day. The day is identified by its UTC midnight; the store's
// partial unique index keeps the check-then-insert race closed even
// across server instances.
type AvailabilityEngine struct {
	bookings storage.BookingStore
}

func NewAvailabilityEngine(bookings storage.BookingStore) *AvailabilityEngine {
	return &AvailabilityEngine{bookings: bookings}
}

// IsAvailable reports whether no non-cancelled booking exists for the
// service on the calendar day of date. Pure read, no side effects.
func (e *AvailabilityEngine) IsAvailable(serviceID uint, date time.Time) (bool, error) {
	if serviceID == 0 {
		return false, apperr.New(apperr.Validation, "serviceId is required")
	}
	dayStart, dayEnd := utils.DayRange(date)
	taken, err := e.bookings.ExistsForDay(serviceID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// Reserve normalizes the booking date, re-checks availability and
// inserts. A cancelled booking never occupies its day, so the check is
// skipped for it. If another booking slips in between check and
// insert, the unique index rejects the write and the error comes back
// as Conflict with nothing written.
func (e *AvailabilityEngine) Reserve(booking *models.Booking) error {
	if booking.ServiceID == 0 {
		return apperr.New(apperr.Validation, "serviceId is required")
	}
	booking.Date = utils.NormalizeDate(booking.Date)

	if booking.Status != models.BookingCancelled {
		available, err := e.IsAvailable(booking.ServiceID, booking.Date)
		if err != nil {
			return err
		}
		if !available {
			return apperr.Newf(apperr.Conflict,
				"service is already booked on %s", booking.Date.Format("2006-01-02"))
		}
	}

	return e.bookings.Create(booking)
}
