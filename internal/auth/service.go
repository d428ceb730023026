package auth

import (
	"errors"
	"fmt"

	"github.com/emank/bookcatalog/internal/config"
	"github.com/emank/bookcatalog/internal/database/users"
	"github.com/emank/bookcatalog/internal/entities"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Registration carries the validated input for a new account.
type Registration struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Service handles registration and credential verification.
type Service struct {
	users  *users.Repository
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(repo *users.Repository, cfg config.Auth) *Service {
	return &Service{users: repo, config: cfg}
}

// Register creates a new user. Username and email uniqueness are checked
// explicitly before the insert so the caller gets a distinct error per
// conflict rather than a storage constraint violation.
func (s *Service) Register(reg Registration) (*entities.User, error) {
	taken, err := s.users.UsernameExists(reg.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.users.EmailExists(reg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(reg.Password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Username:       reg.Username,
		FirstName:      reg.FirstName,
		LastName:       reg.LastName,
		Email:          reg.Email,
		HashedPassword: hash,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate validates credentials and returns the user.
func (s *Service) Authenticate(username, password string) (*entities.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.HashedPassword); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *Service) GetUserByID(id uint) (*entities.User, error) {
	return s.users.GetByID(id)
}
