package repository

import (
	"context"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/store"

	"github.com/sirupsen/logrus"
)

type UserRepository interface {
	All(ctx context.Context) ([]model.User, error)
	AllLocal() ([]model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Add(ctx context.Context, user model.User) (store.SyncResult, error)
	Save(ctx context.Context, user model.User) (store.SyncResult, error)
}

type userRepo struct {
	users *store.Collection[model.User]
}

func NewUserRepo(local store.LocalStore, remote store.RemoteStore, log *logrus.Logger) UserRepository {
	return &userRepo{
		users: store.NewCollection(store.KeyUsers, local, remote,
			func(u model.User) string { return u.ID }, log),
	}
}

func (r *userRepo) All(ctx context.Context) ([]model.User, error) {
	return r.users.Load(ctx)
}

func (r *userRepo) AllLocal() ([]model.User, error) {
	return r.users.LoadLocal()
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	users, err := r.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepo) Add(ctx context.Context, user model.User) (store.SyncResult, error) {
	return r.users.Append(ctx, user)
}

func (r *userRepo) Save(ctx context.Context, user model.User) (store.SyncResult, error) {
	return r.users.Upsert(ctx, user)
}
