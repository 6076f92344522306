package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/taskbuster/backend/internal/models"
)

// ErrProfileNotFound is returned when no profile exists for a username.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService handles profile lookups.
type ProfileService struct {
	db *gorm.DB
}

var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance.
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetByUsername retrieves the profile owned by the account with the given
// username. The comparison is case-insensitive since usernames are stored
// lower-cased.
func (s *ProfileService) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = profiles.account_id").
		Where("accounts.username = ?", strings.ToLower(username)).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
