package models

import "time"

const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is one of the two booking states.
func ValidBookingStatus(s string) bool {
	return s == BookingConfirmed || s == BookingCancelled
}

// Booking reserves a service for one calendar day. Date is always
// stored at UTC midnight, and the partial unique index keeps at most
// one non-cancelled booking per (service, day) even across server
// instances.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	ServiceID uint      `gorm:"not null;uniqueIndex:uq_bookings_service_day,where:status <> 'cancelled'" json:"serviceId"`
	Date      time.Time `gorm:"not null;uniqueIndex:uq_bookings_service_day,where:status <> 'cancelled'" json:"date"`
	Price     int       `gorm:"not null;default:0" json:"price"` // snapshot at booking time, never mutated
	Status    string    `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`

	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
