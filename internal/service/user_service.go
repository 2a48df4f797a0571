package service

import (
	"context"
	"fmt"
	"time"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/repository"
	"go-pos-billing/pkg/validator"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive *bool   `json:"isActive"`
}

// UserService manages login accounts. Deletion is always soft: accounts
// are deactivated, never removed.
type UserService interface {
	CreateUser(ctx context.Context, req *CreateUserRequest, actor model.Actor) (*model.User, error)
	UpdateUser(ctx context.Context, id string, req *UpdateUserRequest, actor model.Actor) (*model.User, error)
	DeactivateUser(ctx context.Context, id string, actor model.Actor) error
	Users(ctx context.Context) ([]model.UserResponse, error)
	GetUser(ctx context.Context, id string) (*model.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, req *CreateUserRequest, actor model.Actor) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	user := model.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Name:      req.Name,
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
		CreatedBy: creatorID(actor),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.Add(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req *UpdateUserRequest, actor model.Actor) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "user", Identifier: id}
	}

	updated := *user
	updated.Name = req.Name
	if req.Role != "" {
		updated.Role = req.Role
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}
	if req.Password != nil {
		if err := updated.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}
	updated.UpdatedAt = time.Now().UTC()
	updated.UpdatedBy = creatorID(actor)

	if _, err := s.userRepo.Save(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeactivateUser is the soft delete: it flips IsActive off and keeps the
// record.
func (s *userService) DeactivateUser(ctx context.Context, id string, actor model.Actor) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return &NotFoundError{Resource: "user", Identifier: id}
	}

	updated := *user
	updated.IsActive = false
	updated.UpdatedAt = time.Now().UTC()
	updated.UpdatedBy = creatorID(actor)

	_, err = s.userRepo.Save(ctx, updated)
	return err
}

func (s *userService) Users(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.userRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
	}
	return responses, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "user", Identifier: id}
	}
	resp := user.ToResponse()
	return &resp, nil
}

func creatorID(actor model.Actor) string {
	if actor.ID == "" {
		return "system"
	}
	return actor.ID
}
