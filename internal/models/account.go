package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is the authenticable identity record. Usernames are stored
// lower-cased; the unique index is the authoritative guard against
// duplicates racing past the validation pre-check.
type Account struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Username     string         `gorm:"size:100;not null;uniqueIndex" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

// BeforeCreate assigns the primary key for new accounts.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
