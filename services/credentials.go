package services

import (
	"log"

	"eventhub-backend/apperr"
	"eventhub-backend/models"
	"eventhub-backend/storage"
	"eventhub-backend/utils"

	"github.com/google/uuid"
)

// CredentialService registers users, confirms their email and logs
// them in. Token verification itself lives in utils.AuthMiddleware.
type CredentialService struct {
	users  storage.UserStore
	mailer Mailer
}

func NewCredentialService(users storage.UserStore, mailer Mailer) *CredentialService {
	return &CredentialService{users: users, mailer: mailer}
}

// Register creates an unconfirmed account with a single-use opaque
// confirmation token. The confirmation email is best effort.
func (s *CredentialService) Register(name, email, password, role, phone string) (*models.User, error) {
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, apperr.Newf(apperr.Validation, "invalid role %q", role)
	}

	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, apperr.New(apperr.Conflict, "email already registered")
	} else if !apperr.IsKind(err, apperr.NotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}

	token := uuid.NewString()
	user := &models.User{
		Name:         name,
		Email:        email,
		Password:     hashed,
		Role:         role,
		Phone:        phone,
		ConfirmToken: &token,
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendConfirmation(user, token); err != nil {
			log.Printf("user %d: confirmation email failed: %v", user.ID, err)
		}
	}
	return user, nil
}

// ConfirmEmail flips emailConfirmed exactly once and clears the token.
func (s *CredentialService) ConfirmEmail(token string) (*models.User, error) {
	if token == "" {
		return nil, apperr.New(apperr.Validation, "token is required")
	}
	user, err := s.users.FindByConfirmToken(token)
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			return nil, apperr.New(apperr.Validation, "invalid confirmation token")
		}
		return nil, err
	}

	user.EmailConfirmed = true
	user.ConfirmToken = nil
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a 7-day bearer token.
// Unknown email and bad password are both Unauthorized; a correct but
// unconfirmed account is Forbidden, a distinct condition.
func (s *CredentialService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			return nil, "", apperr.New(apperr.Unauthorized, "invalid credentials")
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", apperr.New(apperr.Unauthorized, "invalid credentials")
	}

	if !user.EmailConfirmed {
		return nil, "", apperr.New(apperr.Forbidden, "email not confirmed")
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "failed to generate token", err)
	}
	return user, token, nil
}

// ListUsers is the admin user listing.
func (s *CredentialService) ListUsers() ([]models.User, error) {
	return s.users.List()
}
