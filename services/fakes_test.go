package services

import (
	"sort"
	"sync"
	"time"

	"eventhub-backend/apperr"
	"eventhub-backend/models"
	"eventhub-backend/storage"
)

// In-memory stores standing in for the GORM gateway. The booking fake
// enforces the same per-(service, day) uniqueness the partial unique
// index provides, atomically under its mutex.

type fakeUserStore struct {
	mu    sync.Mutex
	seq   uint
	users map[uint]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*models.User)}
}

func (s *fakeUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperr.New(apperr.Conflict, "email already registered")
		}
	}
	s.seq++
	user.ID = s.seq
	copy := *user
	s.users[user.ID] = &copy
	return nil
}

func (s *fakeUserStore) FindByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, apperr.New(apperr.NotFound, "user not found")
}

func (s *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "user not found")
}

func (s *fakeUserStore) FindByConfirmToken(token string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ConfirmToken != nil && *u.ConfirmToken == token {
			copy := *u
			return &copy, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "user not found")
}

func (s *fakeUserStore) Save(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return apperr.New(apperr.NotFound, "user not found")
	}
	copy := *user
	s.users[user.ID] = &copy
	return nil
}

func (s *fakeUserStore) List() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []models.User
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

type fakeServiceStore struct {
	mu       sync.Mutex
	seq      uint
	services map[uint]*models.Service
}

func newFakeServiceStore() *fakeServiceStore {
	return &fakeServiceStore{services: make(map[uint]*models.Service)}
}

func (s *fakeServiceStore) Create(service *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	service.ID = s.seq
	copy := *service
	s.services[service.ID] = &copy
	return nil
}

func (s *fakeServiceStore) FindByID(id uint) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if svc, ok := s.services[id]; ok {
		copy := *svc
		return &copy, nil
	}
	return nil, apperr.New(apperr.NotFound, "service not found")
}

func (s *fakeServiceStore) List() ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var services []models.Service
	for _, svc := range s.services {
		services = append(services, *svc)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

func (s *fakeServiceStore) Save(service *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[service.ID]; !ok {
		return apperr.New(apperr.NotFound, "service not found")
	}
	copy := *service
	s.services[service.ID] = &copy
	return nil
}

func (s *fakeServiceStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[id]; !ok {
		return apperr.New(apperr.NotFound, "service not found")
	}
	delete(s.services, id)
	return nil
}

func (s *fakeServiceStore) Count() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.services)), nil
}

type fakeBookingStore struct {
	mu       sync.Mutex
	seq      uint
	bookings map[uint]*models.Booking
	services *fakeServiceStore
}

func newFakeBookingStore(services *fakeServiceStore) *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[uint]*models.Booking), services: services}
}

func (s *fakeBookingStore) dayTakenLocked(serviceID uint, day time.Time, excludeID uint) bool {
	for _, b := range s.bookings {
		if b.ID != excludeID && b.ServiceID == serviceID &&
			b.Status != models.BookingCancelled && b.Date.Equal(day) {
			return true
		}
	}
	return false
}

func (s *fakeBookingStore) Create(booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if booking.Status != models.BookingCancelled &&
		s.dayTakenLocked(booking.ServiceID, booking.Date, 0) {
		return apperr.New(apperr.Conflict, "service is already booked for this date")
	}
	s.seq++
	booking.ID = s.seq
	copy := *booking
	s.bookings[booking.ID] = &copy
	return nil
}

func (s *fakeBookingStore) FindByID(id uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bookings[id]; ok {
		copy := *b
		return &copy, nil
	}
	return nil, apperr.New(apperr.NotFound, "booking not found")
}

func (s *fakeBookingStore) Save(booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[booking.ID]; !ok {
		return apperr.New(apperr.NotFound, "booking not found")
	}
	if booking.Status != models.BookingCancelled &&
		s.dayTakenLocked(booking.ServiceID, booking.Date, booking.ID) {
		return apperr.New(apperr.Conflict, "service is already booked for this date")
	}
	copy := *booking
	s.bookings[booking.ID] = &copy
	return nil
}

func (s *fakeBookingStore) ExistsForDay(serviceID uint, dayStart, dayEnd time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ServiceID == serviceID && b.Status != models.BookingCancelled &&
			!b.Date.Before(dayStart) && b.Date.Before(dayEnd) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeBookingStore) CountForService(serviceID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, b := range s.bookings {
		if b.ServiceID == serviceID {
			count++
		}
	}
	return count, nil
}

func (s *fakeBookingStore) ListForUser(userID uint) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var bookings []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			bookings = append(bookings, *b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (s *fakeBookingStore) ListAll() ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var bookings []models.Booking
	for _, b := range s.bookings {
		bookings = append(bookings, *b)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (s *fakeBookingStore) ListForDay(dayStart, dayEnd time.Time, status string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var bookings []models.Booking
	for _, b := range s.bookings {
		if b.Status == status && !b.Date.Before(dayStart) && b.Date.Before(dayEnd) {
			bookings = append(bookings, *b)
		}
	}
	return bookings, nil
}

func (s *fakeBookingStore) TotalCount() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.bookings)), nil
}

func (s *fakeBookingStore) CountByStatus() (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int64)
	for _, b := range s.bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func (s *fakeBookingStore) SumPriceByStatus(status string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, b := range s.bookings {
		if b.Status == status {
			sum += int64(b.Price)
		}
	}
	return sum, nil
}

func (s *fakeBookingStore) TopServices(limit int) ([]storage.ServiceBookingCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[uint]int64)
	for _, b := range s.bookings {
		counts[b.ServiceID]++
	}
	var rows []storage.ServiceBookingCount
	for id, n := range counts {
		name := ""
		if svc, ok := s.services.services[id]; ok {
			name = svc.Name
		}
		rows = append(rows, storage.ServiceBookingCount{ServiceID: id, Name: name, Bookings: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Bookings != rows[j].Bookings {
			return rows[i].Bookings > rows[j].Bookings
		}
		return rows[i].ServiceID < rows[j].ServiceID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

type fakeReviewStore struct {
	mu      sync.Mutex
	seq     uint
	reviews map[uint]*models.Review
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: make(map[uint]*models.Review)}
}

func (s *fakeReviewStore) Create(review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	review.ID = s.seq
	copy := *review
	s.reviews[review.ID] = &copy
	return nil
}

func (s *fakeReviewStore) List() ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var reviews []models.Review
	for _, r := range s.reviews {
		reviews = append(reviews, *r)
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews, nil
}

func (s *fakeReviewStore) AggregateForService(serviceID uint) (float64, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum, count int64
	for _, r := range s.reviews {
		if r.ServiceID == serviceID {
			sum += int64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

// recordingNotifier captures notifications and can be told to fail.
type recordingNotifier struct {
	mu        sync.Mutex
	confirmed []uint
	reminded  []uint
	fail      error
}

func (n *recordingNotifier) BookingConfirmed(user *models.User, service *models.Service, booking *models.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail != nil {
		return n.fail
	}
	n.confirmed = append(n.confirmed, booking.ID)
	return nil
}

func (n *recordingNotifier) BookingReminder(user *models.User, service *models.Service, booking *models.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail != nil {
		return n.fail
	}
	n.reminded = append(n.reminded, booking.ID)
	return nil
}

// recordingMailer captures confirmation tokens per recipient.
type recordingMailer struct {
	mu     sync.Mutex
	tokens map[string]string
	fail   error
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{tokens: make(map[string]string)}
}

func (m *recordingMailer) SendConfirmation(user *models.User, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.tokens[user.Email] = token
	return nil
}
