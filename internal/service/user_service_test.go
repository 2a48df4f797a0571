package service_test

import (
	"errors"
	"io"
	"testing"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/repository"
	"go-pos-billing/internal/service"
	"go-pos-billing/internal/store/storetest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserEnv(t *testing.T) (service.UserService, repository.UserRepository) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	local := storetest.NewLocal()
	remote := storetest.NewRemote(false)
	userRepo := repository.NewUserRepo(local, remote, log)
	return service.NewUserService(userRepo), userRepo
}

func TestCreateUserDefaultsRole(t *testing.T) {
	users, _ := newUserEnv(t)

	user, err := users.CreateUser(background, &service.CreateUserRequest{
		Username: "cashier1",
		Password: "secret123",
		Name:     "Cashier One",
	}, testActor)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.Equal(t, "u1", user.CreatedBy)
	assert.True(t, user.CheckPassword("secret123"))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	users, _ := newUserEnv(t)

	_, err := users.CreateUser(background, &service.CreateUserRequest{
		Username: "cashier1", Password: "secret123", Name: "One",
	}, testActor)
	require.NoError(t, err)

	_, err = users.CreateUser(background, &service.CreateUserRequest{
		Username: "cashier1", Password: "other456", Name: "Two",
	}, testActor)
	assert.ErrorIs(t, err, service.ErrUsernameExists)
}

func TestCreateUserValidation(t *testing.T) {
	users, _ := newUserEnv(t)

	_, err := users.CreateUser(background, &service.CreateUserRequest{
		Username: "x", Password: "short", Name: "X",
	}, testActor)
	assert.Error(t, err)

	_, err = users.CreateUser(background, &service.CreateUserRequest{
		Username: "x", Password: "secret123", Name: "X", Role: "superuser",
	}, testActor)
	assert.Error(t, err)
}

func TestUpdateUserPartialFields(t *testing.T) {
	users, _ := newUserEnv(t)

	created, err := users.CreateUser(background, &service.CreateUserRequest{
		Username: "cashier1", Password: "secret123", Name: "One",
	}, testActor)
	require.NoError(t, err)

	updated, err := users.UpdateUser(background, created.ID, &service.UpdateUserRequest{
		Name: "Renamed",
		Role: model.RoleAdmin,
	}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, model.RoleAdmin, updated.Role)

	// The password was not touched.
	assert.True(t, updated.CheckPassword("secret123"))
}

func TestDeactivateUserKeepsRecord(t *testing.T) {
	users, userRepo := newUserEnv(t)

	created, err := users.CreateUser(background, &service.CreateUserRequest{
		Username: "cashier1", Password: "secret123", Name: "One",
	}, testActor)
	require.NoError(t, err)

	require.NoError(t, users.DeactivateUser(background, created.ID, testActor))

	stored, err := userRepo.FindByID(background, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)
}

func TestGetUserNotFound(t *testing.T) {
	users, _ := newUserEnv(t)

	_, err := users.GetUser(background, "missing")
	var notFound *service.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}
