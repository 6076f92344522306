package service_test

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

func registrationInput(username string) validation.RegistrationInput {
	birthDate := "2000-10-10"
	return validation.RegistrationInput{
		Username:        username,
		FirstName:       "test",
		LastName:        "test",
		Email:           "teste@test.pl",
		BirthDate:       &birthDate,
		Password:        "django-tutorial1",
		PasswordConfirm: "django-tutorial1",
	}
}

func TestRegisterCreatesAccountAndProfile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	account, err := authSvc.Register(context.Background(), registrationInput("TaskBuster"))
	require.NoError(t, err)
	assert.Equal(t, "taskbuster", account.Username, "username is stored lower-cased")
	assert.NotEmpty(t, account.PasswordHash)
	assert.NotEqual(t, "django-tutorial1", account.PasswordHash)

	// Exactly one profile exists for the new account.
	var profiles []models.Profile
	require.NoError(t, db.Where("account_id = ?", account.ID).Find(&profiles).Error)
	require.Len(t, profiles, 1)
	assert.Equal(t, "test", profiles[0].FirstName)
	assert.Equal(t, "teste@test.pl", profiles[0].Email)
	assert.Equal(t, 2000, profiles[0].BirthDate.Year())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, err := authSvc.Register(context.Background(), registrationInput("taskbuster22"))
	require.NoError(t, err)

	_, err = authSvc.Register(context.Background(), registrationInput("taskbuster22"))
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	require.Len(t, verrs["username"], 1)
	assert.Equal(t, validation.CodeUsernameExists, verrs["username"][0].Code)

	var count int64
	require.NoError(t, db.Model(&models.Account{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "no second account may be created")
}

func TestRegisterDuplicateUsernameCaseInsensitive(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, err := authSvc.Register(context.Background(), registrationInput("taskbuster22"))
	require.NoError(t, err)

	_, err = authSvc.Register(context.Background(), registrationInput("TASKBUSTER22"))
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, validation.CodeUsernameExists, verrs["username"][0].Code)
}

func TestRegisterMismatchedPasswordsCreatesNothing(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	in := registrationInput("taskbuster")
	in.PasswordConfirm = "something-else1"

	_, err := authSvc.Register(context.Background(), in)
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, validation.CodePasswordMismatch, verrs[validation.NonFieldKey][0].Code)

	var count int64
	require.NoError(t, db.Model(&models.Account{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProvisionProfileIsIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	account, err := authSvc.Register(context.Background(), registrationInput("taskbuster"))
	require.NoError(t, err)

	// A second invocation must not duplicate or corrupt the profile.
	require.NoError(t, service.ProvisionProfile(db, account, nil))

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Where("account_id = ?", account.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	registered, err := authSvc.Register(context.Background(), registrationInput("taskbuster"))
	require.NoError(t, err)

	account, token, err := authSvc.Login(context.Background(), "TaskBuster", "django-tutorial1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, account.ID)
	require.NotEmpty(t, token)

	claims, err := authSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.AccountID)
	assert.Equal(t, "taskbuster", claims.Username)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, err := authSvc.Register(context.Background(), registrationInput("taskbuster"))
	require.NoError(t, err)

	_, _, err = authSvc.Login(context.Background(), "taskbuster", "wrongpassword")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = authSvc.Login(context.Background(), "nosuchuser", "django-tutorial1")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	account, err := authSvc.Register(context.Background(), registrationInput("taskbuster"))
	require.NoError(t, err)

	token, err := authSvc.GenerateToken(account)
	require.NoError(t, err)

	other := service.NewAuthService(db, "other-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
