package mongo

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// SeedAdmin guarantees the admin account exists. The password is always
// stored as a bcrypt hash; the admin logs in through the same hash
// comparison as every other account.
func SeedAdmin(ctx context.Context, repo *AuthRepository, email, password string) error {
	if email == "" || password == "" {
		return errors.New("seed admin: email and password required")
	}

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.User{
		Name:         "Admin User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		// Lost a race against another instance seeding the same account.
		return nil
	}
	return err
}
