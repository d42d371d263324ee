package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
)

// UserStore is the subset of UserRepository the seed needs
type UserStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) (int64, error)
}

// DefaultUsers are provisioned on a fresh development database.
// Inserted in order, so an empty table yields Alice = 1 and Bob = 2.
var DefaultUsers = []models.User{
	{Name: "Alice", Email: "alice@example.com", Role: models.RoleStudent},
	{Name: "Bob", Email: "bob@example.com", Role: models.RoleTeacher},
}

// CreateDefaultData inserts the default users that don't exist yet.
// Failures are collected so one bad row doesn't block the rest.
func CreateDefaultData(ctx context.Context, users UserStore, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default users...")
	var finalErr error

	for _, u := range DefaultUsers {
		exists, err := users.EmailExists(ctx, u.Email)
		if err != nil {
			lgr.Error().Err(err).Str("email", u.Email).Msg("Error checking default user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			lgr.Debug().Str("email", u.Email).Msg("Default user already present")
			continue
		}

		user := u
		id, err := users.Create(ctx, &user)
		if err != nil {
			lgr.Error().Err(err).Str("email", u.Email).Msg("Error creating default user")
			finalErr = errors.Join(finalErr, fmt.Errorf("seed %s: %w", u.Email, err))
			continue
		}
		lgr.Info().Int64("id", id).Str("name", u.Name).Str("role", string(u.Role)).Msg("Default user created")
	}

	return finalErr
}
