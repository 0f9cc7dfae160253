package models

import (
	"strings"
	"time"
)

// MaxGalleryImages caps the ordered image gallery of a service.
const MaxGalleryImages = 4

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Category    string  `gorm:"not null;index" json:"category"`
	Description string  `gorm:"not null" json:"description"`
	Price       int     `gorm:"not null;default:0" json:"price"` // integer currency units
	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"reviewCount"`
	Location    string  `json:"location"`
	Duration    string  `json:"duration"`
	Capacity    string  `json:"capacity"`
	Featured    bool    `gorm:"default:false" json:"featured"`
	Image       string  `json:"image"`
	Images      string  `json:"images"` // comma-joined ordered gallery

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ImageList returns the gallery as an ordered slice, dropping empties.
func (s *Service) ImageList() []string {
	if s.Images == "" {
		return nil
	}
	parts := strings.Split(s.Images, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

// SetImageList replaces the gallery with the given ordered slice.
func (s *Service) SetImageList(urls []string) {
	s.Images = strings.Join(urls, ",")
}
