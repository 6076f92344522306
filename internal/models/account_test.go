package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskbuster/backend/internal/models"
	"github.com/taskbuster/backend/internal/testhelpers"
)

func TestAccountIDAssignedOnCreate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)

	account := models.Account{Username: "taskbuster", PasswordHash: "x"}
	require.NoError(t, db.Create(&account).Error)
	assert.NotEqual(t, uuid.Nil, account.ID)
}

func TestUsernameUniqueIndex(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)

	require.NoError(t, db.Create(&models.Account{Username: "taskbuster", PasswordHash: "x"}).Error)

	// The store, not the validation pre-check, is the authoritative guard.
	err := db.Create(&models.Account{Username: "taskbuster", PasswordHash: "y"}).Error
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Account{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProfilePrimaryKeyIsAccountID(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)

	account := models.Account{Username: "taskbuster", PasswordHash: "x"}
	require.NoError(t, db.Create(&account).Error)

	require.NoError(t, db.Create(&models.Profile{AccountID: account.ID}).Error)

	// A second profile for the same account violates the primary key.
	err := db.Create(&models.Profile{AccountID: account.ID}).Error
	assert.Error(t, err)
}
