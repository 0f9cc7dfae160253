package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never the plaintext

	Phone string `json:"phone"`

	Role string `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	EmailConfirmed bool    `gorm:"default:false" json:"emailConfirmed"`
	ConfirmToken   *string `gorm:"index" json:"-"`

	Avatar string `json:"avatar"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
