package storage

import (
	"errors"
	"time"

	"eventhub-backend/apperr"
	"eventhub-backend/models"

	"gorm.io/gorm"
)

// GormStores bundles the GORM-backed implementations of every store.
type GormStores struct {
	Users    UserStore
	Services ServiceStore
	Bookings BookingStore
	Reviews  ReviewStore
}

func NewGormStores(db *gorm.DB) *GormStores {
	return &GormStores{
		Users:    &gormUserStore{db: db},
		Services: &gormServiceStore{db: db},
		Bookings: &gormBookingStore{db: db},
		Reviews:  &gormReviewStore{db: db},
	}
}

// translate maps GORM errors onto the taxonomy.
func translate(err error, notFoundMsg, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.Wrap(apperr.NotFound, notFoundMsg, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Wrap(apperr.Conflict, conflictMsg, err)
	default:
		return apperr.Wrap(apperr.Internal, "database error", err)
	}
}

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) Create(user *models.User) error {
	return translate(s.db.Create(user).Error, "user not found", "email already registered")
}

func (s *gormUserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err, "user not found", "")
	}
	return &user, nil
}

func (s *gormUserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err, "user not found", "")
	}
	return &user, nil
}

func (s *gormUserStore) FindByConfirmToken(token string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("confirm_token = ?", token).First(&user).Error; err != nil {
		return nil, translate(err, "user not found", "")
	}
	return &user, nil
}

func (s *gormUserStore) Save(user *models.User) error {
	return translate(s.db.Save(user).Error, "user not found", "email already registered")
}

func (s *gormUserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, translate(err, "", "")
	}
	return users, nil
}

type gormServiceStore struct {
	db *gorm.DB
}

func (s *gormServiceStore) Create(service *models.Service) error {
	return translate(s.db.Create(service).Error, "service not found", "service already exists")
}

func (s *gormServiceStore) FindByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := s.db.First(&service, id).Error; err != nil {
		return nil, translate(err, "service not found", "")
	}
	return &service, nil
}

func (s *gormServiceStore) List() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Order("id").Find(&services).Error; err != nil {
		return nil, translate(err, "", "")
	}
	return services, nil
}

func (s *gormServiceStore) Save(service *models.Service) error {
	return translate(s.db.Save(service).Error, "service not found", "service already exists")
}

func (s *gormServiceStore) Delete(id uint) error {
	result := s.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return translate(result.Error, "service not found", "")
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "service not found")
	}
	return nil
}

func (s *gormServiceStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return 0, translate(err, "", "")
	}
	return count, nil
}

type gormBookingStore struct {
	db *gorm.DB
}

func (s *gormBookingStore) Create(booking *models.Booking) error {
	return translate(s.db.Create(booking).Error,
		"booking not found", "service is already booked for this date")
}

func (s *gormBookingStore) FindByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("User").Preload("Service").First(&booking, id).Error; err != nil {
		return nil, translate(err, "booking not found", "")
	}
	return &booking, nil
}

func (s *gormBookingStore) Save(booking *models.Booking) error {
	return translate(s.db.Save(booking).Error,
		"booking not found", "service is already booked for this date")
}

func (s *gormBookingStore) ExistsForDay(serviceID uint, dayStart, dayEnd time.Time) (bool, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).
		Where("service_id = ? AND date >= ? AND date < ? AND status <> ?",
			serviceID, dayStart, dayEnd, models.BookingCancelled).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "", "")
	}
	return count > 0, nil
}

func (s *gormBookingStore) CountForService(serviceID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).Where("service_id = ?", serviceID).Count(&count).Error
	if err != nil {
		return 0, translate(err, "", "")
	}
	return count, nil
}

func (s *gormBookingStore) ListForUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("User").Preload("Service").
		Where("user_id = ?", userID).Order("date").Find(&bookings).Error
	if err != nil {
		return nil, translate(err, "", "")
	}
	return bookings, nil
}

func (s *gormBookingStore) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("User").Preload("Service").Order("date").Find(&bookings).Error
	if err != nil {
		return nil, translate(err, "", "")
	}
	return bookings, nil
}

func (s *gormBookingStore) ListForDay(dayStart, dayEnd time.Time, status string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("User").Preload("Service").
		Where("date >= ? AND date < ? AND status = ?", dayStart, dayEnd, status).
		Find(&bookings).Error
	if err != nil {
		return nil, translate(err, "", "")
	}
	return bookings, nil
}

func (s *gormBookingStore) TotalCount() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Booking{}).Count(&count).Error; err != nil {
		return 0, translate(err, "", "")
	}
	return count, nil
}

func (s *gormBookingStore) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := s.db.Model(&models.Booking{}).
		Select("status, COUNT(*) as count").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "", "")
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (s *gormBookingStore) SumPriceByStatus(status string) (int64, error) {
	var sum int64
	err := s.db.Model(&models.Booking{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(price), 0)").Scan(&sum).Error
	if err != nil {
		return 0, translate(err, "", "")
	}
	return sum, nil
}

func (s *gormBookingStore) TopServices(limit int) ([]ServiceBookingCount, error) {
	var rows []ServiceBookingCount
	err := s.db.Model(&models.Booking{}).
		Select("bookings.service_id, services.name, COUNT(*) as bookings").
		Joins("JOIN services ON services.id = bookings.service_id").
		Group("bookings.service_id, services.name").
		Order("bookings DESC, bookings.service_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "", "")
	}
	return rows, nil
}

type gormReviewStore struct {
	db *gorm.DB
}

func (s *gormReviewStore) Create(review *models.Review) error {
	return translate(s.db.Create(review).Error, "review not found", "review already exists")
}

func (s *gormReviewStore) List() ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("User").Preload("Service").Order("date DESC").Find(&reviews).Error
	if err != nil {
		return nil, translate(err, "", "")
	}
	return reviews, nil
}

func (s *gormReviewStore) AggregateForService(serviceID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := s.db.Model(&models.Review{}).
		Where("service_id = ?", serviceID).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Scan(&result).Error
	if err != nil {
		return 0, 0, translate(err, "", "")
	}
	return result.Avg, result.Count, nil
}
