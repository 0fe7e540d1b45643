package services

import (
	"errors"
	"fmt"
	"time"

	"voltflow-backend/internal/models"
	"voltflow-backend/internal/repository"
	"voltflow-backend/internal/session"
	"voltflow-backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// UserStore is the slice of the user repository the auth flow needs.
type UserStore interface {
	Create(user *models.User) (*models.User, error)
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
}

type AuthService struct {
	users     UserStore
	jwtUtil   *jwt.JWTUtil
	sessions  *session.Store
	validator *validator.Validate
}

func NewAuthService(users UserStore, jwtUtil *jwt.JWTUtil, sessions *session.Store) *AuthService {
	return &AuthService{
		users:     users,
		jwtUtil:   jwtUtil,
		sessions:  sessions,
		validator: validator.New(),
	}
}

type SignUpRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  *models.AuthUser `json:"user"`
	Token string           `json:"token"`
}

// SignUp creates the account and its user document, publishes the user as
// the current session and returns a token.
func (s *AuthService) SignUp(req *SignUpRequest) (*AuthResponse, error) {
	if err := s.validator.Var(req.Email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrAuthUnknown, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthUnknown, err)
	}

	now := time.Now()
	user := &models.User{
		ID:               uuid.NewString(),
		Email:            req.Email,
		Password:         string(hashed),
		Cars:             []string{},
		FavoriteStations: []string{},
		Preferences:      models.DefaultPreferences(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.users.Create(user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthUnknown, err)
	}

	return s.establishSession(created)
}

// SignIn verifies the credentials, fetches the user document, publishes it
// as the current session and returns a token.
func (s *AuthService) SignIn(req *SignInRequest) (*AuthResponse, error) {
	if err := s.validator.Var(req.Email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrAuthUnknown, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrWrongPassword
	}

	return s.establishSession(user)
}

// SignOut clears the published user.
func (s *AuthService) SignOut() {
	s.sessions.Clear()
}

// CurrentUser returns the published user, nil when signed out.
func (s *AuthService) CurrentUser() *models.AuthUser {
	user := s.sessions.Snapshot()
	if user == nil {
		return nil
	}
	return user.Sanitize()
}

// Profile fetches the latest user document for the given id.
func (s *AuthService) Profile(userID string) (*models.AuthUser, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrAuthUnknown, err)
	}
	return user.Sanitize(), nil
}

func (s *AuthService) establishSession(user *models.User) (*AuthResponse, error) {
	token, err := s.jwtUtil.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthUnknown, err)
	}

	s.sessions.Publish(user)

	return &AuthResponse{
		User:  user.Sanitize(),
		Token: token,
	}, nil
}
