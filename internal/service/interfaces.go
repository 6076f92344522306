package service

import (
	"context"

	"github.com/taskbuster/backend/internal/models"
	"github.com/taskbuster/backend/internal/types"
	"github.com/taskbuster/backend/internal/validation"
)

// IAuthService defines the interface for account registration and
// authentication.
type IAuthService interface {
	Register(ctx context.Context, in validation.RegistrationInput) (*models.Account, error)
	Login(ctx context.Context, username, password string) (*models.Account, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(account *models.Account) (string, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

// IProfileService defines the interface for profile lookups.
type IProfileService interface {
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
}
