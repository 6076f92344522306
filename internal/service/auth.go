package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/taskbuster/backend/internal/models"
	"github.com/taskbuster/backend/internal/types"
	"github.com/taskbuster/backend/internal/validation"
)

// ErrInvalidCredentials is returned by Login for a bad username or
// password. It never distinguishes which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

// AuthService handles registration, credential checks and session tokens.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

var _ IAuthService = (*AuthService)(nil)

// NewAuthService creates a new AuthService instance.
func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

// Register validates the registration input, then creates the Account and
// its Profile in one transaction. A duplicate username that slipped past the
// validation pre-check (two registrations racing) comes back as the same
// username_exists validation error, taken from the store's unique index.
func (s *AuthService) Register(ctx context.Context, in validation.RegistrationInput) (*models.Account, error) {
	reg, verrs := validation.ValidateRegistration(ctx, in, s)
	if verrs != nil {
		return nil, verrs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := models.Account{
		Username:     reg.Username,
		PasswordHash: string(hash),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		return ProvisionProfile(tx, &account, reg)
	})
	if err != nil {
		if isUniqueViolation(err) {
			errs := validation.Errors{}
			errs.Add("username", "User already exists.", validation.CodeUsernameExists)
			return nil, errs
		}
		return nil, err
	}

	return &account, nil
}

// ProvisionProfile creates the Profile row for a freshly inserted Account.
// It runs inside the same transaction as the Account insert and must be
// idempotent: FirstOrCreate keyed by the account ID means a second
// invocation finds the existing row instead of duplicating it. Fields not
// supplied at registration time keep their defaults (birth date: today).
func ProvisionProfile(tx *gorm.DB, account *models.Account, reg *validation.Registration) error {
	profile := models.Profile{
		AccountID: account.ID,
		BirthDate: time.Now().Truncate(24 * time.Hour),
	}
	if reg != nil {
		profile.FirstName = reg.FirstName
		profile.LastName = reg.LastName
		profile.Email = reg.Email
		if !reg.BirthDate.IsZero() {
			profile.BirthDate = reg.BirthDate
		}
	}
	return tx.Where(models.Profile{AccountID: account.ID}).FirstOrCreate(&profile).Error
}

// Login checks the credentials and returns the account with a signed
// session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Account, string, error) {
	var account models.Account
	err := s.db.WithContext(ctx).
		Where("username = ?", strings.ToLower(username)).
		First(&account).Error
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&account)
	if err != nil {
		return nil, "", err
	}
	return &account, token, nil
}

// UsernameTaken reports whether an account with the given lower-cased
// username already exists. It backs the validation layer's uniqueness
// pre-check.
func (s *AuthService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Account{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GenerateToken signs a session token for the account.
func (s *AuthService) GenerateToken(account *models.Account) (string, error) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		AccountID: account.ID,
		Username:  account.Username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// isUniqueViolation reports whether err is the store rejecting a duplicate
// key, across the postgres and sqlite drivers used here.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
