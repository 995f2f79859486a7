// Package users holds the credential store: user records keyed by id with a
// unique, case-sensitive email.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/testdash/internal/server/models"
)

// Repository is the credential store contract.
//
// Lookups return common.ErrorNotFound when nothing matches. Create and Update
// return common.ErrorAlreadyExists when the email belongs to another user.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error
	TouchLogin(ctx context.Context, id string, at time.Time) error
	Count(ctx context.Context) (int, error)
	CountActiveSince(ctx context.Context, since time.Time) (int, error)
}
