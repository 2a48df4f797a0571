package service

import (
	"context"
	"errors"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/repository"
	"go-pos-billing/internal/store"
	"go-pos-billing/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

// AuthService authenticates login accounts and guards the admin panel's
// separate password.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	CheckAdminPassword(password string) (bool, error)
	SetAdminPassword(password string) error
	EnsureAdminPassword(defaultPassword string) error
}

type authService struct {
	userRepo repository.UserRepository
	local    store.LocalStore
}

func NewAuthService(userRepo repository.UserRepository, local store.LocalStore) AuthService {
	return &authService{userRepo: userRepo, local: local}
}

// Login resolves the user by username (remote-preferred) and verifies the
// password. Inactive accounts are treated as unknown.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.Name, user.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// CheckAdminPassword verifies the admin-panel password stored in the local
// store.
func (s *authService) CheckAdminPassword(password string) (bool, error) {
	var hash string
	found, err := s.local.Get(store.KeyAdminPassword, &hash)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

func (s *authService) SetAdminPassword(password string) error {
	if password == "" {
		return errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.local.Put(store.KeyAdminPassword, string(hash))
}

// EnsureAdminPassword seeds the admin-panel password on first run only.
func (s *authService) EnsureAdminPassword(defaultPassword string) error {
	var hash string
	found, err := s.local.Get(store.KeyAdminPassword, &hash)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	return s.SetAdminPassword(defaultPassword)
}
