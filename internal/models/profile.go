package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the 1:1 extension record for an Account. The account ID is the
// primary key, so an account can never own more than one profile.
type Profile struct {
	AccountID uuid.UUID `gorm:"type:varchar(36);primarykey" json:"account_id"`
	FirstName string    `gorm:"size:30" json:"first_name"`
	LastName  string    `gorm:"size:30" json:"last_name"`
	Email     string    `gorm:"size:200" json:"email"`
	BirthDate time.Time `gorm:"type:date" json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
