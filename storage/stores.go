// Package storage is the persistence gateway: narrow store interfaces
// over the relational database plus the Redis and image collaborators.
// Stores own no business policy; they only translate store-level
// failures into the shared error taxonomy.
package storage

import (
	"time"

	"eventhub-backend/models"
)

type UserStore interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByConfirmToken(token string) (*models.User, error)
	Save(user *models.User) error
	List() ([]models.User, error)
}

type ServiceStore interface {
	Create(service *models.Service) error
	FindByID(id uint) (*models.Service, error)
	List() ([]models.Service, error)
	Save(service *models.Service) error
	Delete(id uint) error
	Count() (int64, error)
}

// ServiceBookingCount is one row of the top-services aggregation.
type ServiceBookingCount struct {
	ServiceID uint   `json:"serviceId"`
	Name      string `json:"name"`
	Bookings  int64  `json:"bookings"`
}

type BookingStore interface {
	// Create inserts the booking and returns Conflict when another
	// non-cancelled booking already holds the same (service, day).
	Create(booking *models.Booking) error
	FindByID(id uint) (*models.Booking, error)
	// Save persists a status transition; re-confirming a day someone
	// else took meanwhile returns Conflict.
	Save(booking *models.Booking) error
	// ExistsForDay reports whether a non-cancelled booking for the
	// service falls within [dayStart, dayEnd).
	ExistsForDay(serviceID uint, dayStart, dayEnd time.Time) (bool, error)
	CountForService(serviceID uint) (int64, error)
	ListForUser(userID uint) ([]models.Booking, error)
	ListAll() ([]models.Booking, error)
	ListForDay(dayStart, dayEnd time.Time, status string) ([]models.Booking, error)

	TotalCount() (int64, error)
	CountByStatus() (map[string]int64, error)
	SumPriceByStatus(status string) (int64, error)
	TopServices(limit int) ([]ServiceBookingCount, error)
}

type ReviewStore interface {
	Create(review *models.Review) error
	List() ([]models.Review, error)
	// AggregateForService returns the average rating and review count.
	AggregateForService(serviceID uint) (float64, int64, error)
}
