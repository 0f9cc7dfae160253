package services

import (
	"eventhub-backend/models"
	"eventhub-backend/storage"
)

// AdminStats is the read-only aggregate served to admins. Revenue
// counts confirmed bookings only; cancelled money is reported
// separately so nothing is hidden.
type AdminStats struct {
	TotalBookings    int64                         `json:"totalBookings"`
	TotalRevenue     int64                         `json:"totalRevenue"`
	CancelledRevenue int64                         `json:"cancelledRevenue"`
	BookingsByStatus map[string]int64              `json:"bookingsByStatus"`
	TopServices      []storage.ServiceBookingCount `json:"topServices"`
	TotalServices    int64                         `json:"totalServices"`
}

// ReportService aggregates over bookings and services. No mutation,
// no caching.
type ReportService struct {
	bookings storage.BookingStore
	services storage.ServiceStore
}

func NewReportService(bookings storage.BookingStore, services storage.ServiceStore) *ReportService {
	return &ReportService{bookings: bookings, services: services}
}

func (s *ReportService) Stats() (*AdminStats, error) {
	total, err := s.bookings.TotalCount()
	if err != nil {
		return nil, err
	}
	revenue, err := s.bookings.SumPriceByStatus(models.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.bookings.SumPriceByStatus(models.BookingCancelled)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.bookings.CountByStatus()
	if err != nil {
		return nil, err
	}
	top, err := s.bookings.TopServices(3)
	if err != nil {
		return nil, err
	}
	serviceCount, err := s.services.Count()
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		TotalBookings:    total,
		TotalRevenue:     revenue,
		CancelledRevenue: cancelled,
		BookingsByStatus: byStatus,
		TopServices:      top,
		TotalServices:    serviceCount,
	}, nil
}
