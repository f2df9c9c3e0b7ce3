package service

import (
	"context"
	"errors"

	dom "github.com/RithigaS/BACKEND/internal/domain"
	"github.com/RithigaS/BACKEND/internal/repo"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
)

// UserService handles registration, login and profile logic.
type UserService struct {
	users repo.UserRepo
	blogs repo.BlogRepo
}

// NewUserService returns a new UserService. The blog repo is needed for the
// cross-collection blogsCount aggregate on the profile.
func NewUserService(users repo.UserRepo, blogs repo.BlogRepo) *UserService {
	return &UserService{users: users, blogs: blogs}
}

// Register creates a new user with a bcrypt-hashed password. No session or
// token is issued.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.users.Create(ctx, dom.User{Username: username, Password: string(hash)})
	if mongo.IsDuplicateKeyError(err) {
		// Lost the race against a concurrent register; same outcome.
		return ErrUsernameTaken
	}
	return err
}

// Authenticate checks username and password and returns the user if valid.
// It is stateless: callers remember the username themselves.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (dom.User, error) {
	if username == "" || password == "" {
		return dom.User{}, ErrMissingCredentials
	}
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidPassword
	}
	return u, nil
}

// Profile returns the user plus a fresh count of blogs authored under the
// same name.
func (s *UserService) Profile(ctx context.Context, username string) (dom.User, int64, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.User{}, 0, ErrUserNotFound
		}
		return dom.User{}, 0, err
	}
	count, err := s.blogs.CountByAuthor(ctx, username)
	if err != nil {
		return dom.User{}, 0, err
	}
	return u, count, nil
}

// UpdatePortfolio overwrites the portfolio link and returns the updated user.
func (s *UserService) UpdatePortfolio(ctx context.Context, username, portfolio string) (dom.User, error) {
	u, err := s.users.UpdatePortfolio(ctx, username, portfolio)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}
