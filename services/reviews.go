package services

import (
	"time"

	"eventhub-backend/apperr"
	"eventhub-backend/models"
	"eventhub-backend/storage"
)

// ReviewService appends reviews and keeps the denormalized
// rating/reviewCount on the service in step.
type ReviewService struct {
	reviews  storage.ReviewStore
	services storage.ServiceStore
	users    storage.UserStore
}

func NewReviewService(reviews storage.ReviewStore, services storage.ServiceStore, users storage.UserStore) *ReviewService {
	return &ReviewService{reviews: reviews, services: services, users: users}
}

func (s *ReviewService) Create(userID, serviceID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.New(apperr.Validation, "rating must be between 1 and 5")
	}

	service, err := s.services.FindByID(serviceID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:    user.ID,
		ServiceID: service.ID,
		Rating:    rating,
		Comment:   comment,
		Date:      time.Now().UTC(),
		Avatar:    user.Avatar,
	}
	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}

	// refresh the service aggregates; the review itself already stands
	avg, count, err := s.reviews.AggregateForService(service.ID)
	if err == nil {
		service.Rating = avg
		service.ReviewCount = int(count)
		s.services.Save(service)
	}

	return review, nil
}

func (s *ReviewService) List() ([]models.Review, error) {
	return s.reviews.List()
}
