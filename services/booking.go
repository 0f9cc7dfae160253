package services

import (
	"log"

	"eventhub-backend/apperr"
	"eventhub-backend/models"
	"eventhub-backend/storage"
	"eventhub-backend/utils"
)

// CreateBookingInput is what the workflow needs from a create request.
type CreateBookingInput struct {
	ServiceID uint
	Date      string
	Price     *int
	Status    string
}

// BookingWorkflow orchestrates booking creation and status changes,
// layering validation and best-effort notification around the
// availability engine.
type BookingWorkflow struct {
	bookings     storage.BookingStore
	services     storage.ServiceStore
	users        storage.UserStore
	availability *AvailabilityEngine
	notifier     Notifier
}

func NewBookingWorkflow(
	bookings storage.BookingStore,
	services storage.ServiceStore,
	users storage.UserStore,
	availability *AvailabilityEngine,
	notifier Notifier,
) *BookingWorkflow {
	return &BookingWorkflow{
		bookings:     bookings,
		services:     services,
		users:        users,
		availability: availability,
		notifier:     notifier,
	}
}

// Create books a service for the authenticated user. When the caller
// omits the price the service's canonical price is snapshotted instead
// of zero. Status defaults to confirmed.
func (w *BookingWorkflow) Create(userID uint, input CreateBookingInput) (*models.Booking, error) {
	if input.ServiceID == 0 || input.Date == "" {
		return nil, apperr.New(apperr.Validation, "serviceId and date are required")
	}

	status := input.Status
	if status == "" {
		status = models.BookingConfirmed
	}
	if !models.ValidBookingStatus(status) {
		return nil, apperr.Newf(apperr.Validation, "invalid status %q", status)
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	service, err := w.services.FindByID(input.ServiceID)
	if err != nil {
		return nil, err
	}

	price := service.Price
	if input.Price != nil {
		price = *input.Price
	}

	booking := &models.Booking{
		UserID:    userID,
		ServiceID: service.ID,
		Date:      date,
		Price:     price,
		Status:    status,
	}

	if err := w.availability.Reserve(booking); err != nil {
		return nil, err
	}

	if booking.Status == models.BookingConfirmed {
		w.notifyConfirmed(booking, service)
	}
	return booking, nil
}

// SetStatus transitions a booking between confirmed and cancelled.
// Re-confirming a cancelled booking re-checks the day, since someone
// else may have taken it in the meantime.
func (w *BookingWorkflow) SetStatus(bookingID uint, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, apperr.Newf(apperr.Validation, "invalid status %q", status)
	}

	booking, err := w.bookings.FindByID(bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == status {
		return booking, nil
	}

	if status == models.BookingConfirmed {
		available, err := w.availability.IsAvailable(booking.ServiceID, booking.Date)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, apperr.Newf(apperr.Conflict,
				"service is already booked on %s", booking.Date.Format("2006-01-02"))
		}
	}

	booking.Status = status
	if err := w.bookings.Save(booking); err != nil {
		return nil, err
	}

	if status == models.BookingConfirmed {
		service, err := w.services.FindByID(booking.ServiceID)
		if err == nil {
			w.notifyConfirmed(booking, service)
		}
	}
	return booking, nil
}

// ListFor returns the user's own bookings, or every booking for admins.
func (w *BookingWorkflow) ListFor(userID uint, role string) ([]models.Booking, error) {
	if role == models.RoleAdmin {
		return w.bookings.ListAll()
	}
	return w.bookings.ListForUser(userID)
}

// notifyConfirmed sends the confirmation notification. Failures are
// logged and swallowed; the booking has already been written.
func (w *BookingWorkflow) notifyConfirmed(booking *models.Booking, service *models.Service) {
	if w.notifier == nil {
		return
	}
	user, err := w.users.FindByID(booking.UserID)
	if err != nil {
		log.Printf("booking %d: could not load user for notification: %v", booking.ID, err)
		return
	}
	if err := w.notifier.BookingConfirmed(user, service, booking); err != nil {
		log.Printf("booking %d: confirmation notification failed: %v", booking.ID, err)
	}
}
