package repository

import (
	"fmt"

	"pharma-dashboard/internal/model"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uuid.UUID) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindAll() ([]model.User, error)
}

type userRepo struct {
	users *collection[model.User, *model.User]
}

func NewUserRepo() UserRepository {
	return &userRepo{
		users: newCollection[model.User](func(candidate, existing *model.User) error {
			if candidate.Username == existing.Username {
				return fmt.Errorf("%w: username %q already exists", ErrDuplicate, candidate.Username)
			}
			return nil
		}),
	}
}

func (r *userRepo) Create(user *model.User) error {
	return r.users.insert(user)
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	user, _ := r.users.get(id)
	return user, nil
}

func (r *userRepo) FindByUsername(username string) (*model.User, error) {
	user, _ := r.users.find(func(u *model.User) bool { return u.Username == username })
	return user, nil
}

func (r *userRepo) FindAll() ([]model.User, error) {
	return r.users.list(), nil
}
