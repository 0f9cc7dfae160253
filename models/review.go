package models

import "time"

// Review is append-only feedback; there is no update or delete path.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	ServiceID uint      `gorm:"not null;index" json:"serviceId"`
	Rating    int       `gorm:"not null" json:"rating"` // 1-5
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
	Avatar    string    `json:"avatar"`

	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
