package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskbuster/backend/internal/models"
	"github.com/taskbuster/backend/internal/service"
	"github.com/taskbuster/backend/internal/testhelpers"
	"github.com/taskbuster/backend/internal/validation"
)

// Runs the registration workflow against a real PostgreSQL instance so the
// store-level uniqueness guarantee is exercised, not just the SQLite
// approximation used by the unit tests.
func TestRegistrationAgainstPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")
	profileSvc := service.NewProfileService(db)
	ctx := context.Background()

	birthDate := "2000-10-10"
	in := validation.RegistrationInput{
		Username:        "TaskBuster22",
		FirstName:       "test",
		LastName:        "test",
		Email:           "teste@test.pl",
		BirthDate:       &birthDate,
		Password:        "foofgfgoo11",
		PasswordConfirm: "foofgfgoo11",
	}

	account, err := authSvc.Register(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "taskbuster22", account.Username)

	// Exactly one profile, fetched through the store.
	profile, err := profileSvc.GetByUsername(ctx, "taskbuster22")
	require.NoError(t, err)
	assert.Equal(t, account.ID, profile.AccountID)

	// Second registration with identical data fails with the single
	// username error and leaves one account behind.
	_, err = authSvc.Register(ctx, in)
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, validation.CodeUsernameExists, verrs["username"][0].Code)

	var count int64
	require.NoError(t, db.Model(&models.Account{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The unique index itself rejects a duplicate that slipped past the
	// pre-check.
	err = db.Create(&models.Account{Username: "taskbuster22", PasswordHash: "x"}).Error
	require.Error(t, err)

	_, token, err := authSvc.Login(ctx, "taskbuster22", "foofgfgoo11")
	require.NoError(t, err)
	claims, err := authSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "taskbuster22", claims.Username)
}
