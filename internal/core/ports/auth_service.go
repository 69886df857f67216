package ports

import (
	"context"

	"github.com/selvanails/selva-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// TokenClaims is the identity embedded in a bearer token. The role reflects
// the user record at issuance time; role changes take effect on re-login.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	VerifyToken(token string) (*TokenClaims, error)
}
