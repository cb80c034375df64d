package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/vidtube/vidtube-backend/internal/auth"
	"github.com/vidtube/vidtube-backend/internal/models"
)

type authRepo struct {
	db *sqlx.DB
}

func NewAuthRepo(db *sqlx.DB) auth.Repository {
	return &authRepo{
		db: db,
	}
}

func (r *authRepo) Register(ctx context.Context, user *models.User) (*models.User, error) {
	createdUser := &models.User{}
	if err := r.db.QueryRowxContext(
		ctx,
		createUserQuery,
		user.Fullname,
		user.Email,
		user.Password,
		user.Username,
		user.Role,
	).StructScan(createdUser); err != nil {
		return nil, errors.Wrap(err, "authRepo.Register")
	}
	return createdUser, nil
}

func (r *authRepo) FindByEmail(ctx context.Context, user *models.User) (*models.User, error) {
	foundUser := &models.User{}
	if err := r.db.QueryRowxContext(
		ctx,
		getUserByEmailQuery,
		user.Email,
	).StructScan(foundUser); err != nil {
		return nil, errors.Wrap(err, "authRepo.FindByEmail")
	}
	return foundUser, nil
}

func (r *authRepo) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user := &models.User{}
	if err := r.db.QueryRowxContext(
		ctx,
		getUserQuery,
		userID,
	).StructScan(user); err != nil {
		return nil, errors.Wrap(err, "authRepo.GetByID")
	}
	return user, nil
}
