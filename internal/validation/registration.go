package validation

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	maxUsernameLength  = 100
	maxEmailLength     = 200
	maxNameLength      = 30
	minPasswordLength  = 8
	birthDateLayout    = "2006-01-02"
	usernameHelpText   = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	requiredMessage    = "This field is required."
	mismatchMessage    = "The two password fields didn't match."
	invalidLoginMsg    = "Please enter a correct username and password."
	invalidEmailMsg    = "Enter a valid email address."
	invalidDateMessage = "Enter a valid date."
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9@.+\-_]+$`)

// validate is the same validator gin uses for binding tags; here it backs
// the email syntax rule.
var validate = validator.New()

// AccountLookup is the existing-accounts capability handed to the
// uniqueness rule. The username given is already lower-cased.
type AccountLookup interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

// RegistrationInput carries the raw field values from the registration
// form. BirthDate is a pointer so an omitted field (defaulted to today) can
// be told apart from a submitted empty one (an error).
type RegistrationInput struct {
	Username        string  `form:"username" json:"username"`
	FirstName       string  `form:"first_name" json:"first_name"`
	LastName        string  `form:"last_name" json:"last_name"`
	Email           string  `form:"email" json:"email"`
	BirthDate       *string `form:"birth_date" json:"birth_date"`
	Password        string  `form:"password" json:"password"`
	PasswordConfirm string  `form:"password_confirmation" json:"password_confirmation"`
}

// Registration is the normalized result of a successful validation run.
type Registration struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	BirthDate time.Time
	Password  string
}

// registrationRule inspects the candidate input and appends zero or more
// failures to the accumulator. Rules never short-circuit each other.
type registrationRule func(ctx context.Context, in RegistrationInput, accounts AccountLookup, errs Errors)

var registrationRules = []registrationRule{
	checkUsernameFormat,
	checkUsernameUnique,
	checkPasswords,
	checkEmail,
	checkNames,
	checkBirthDate,
}

// ValidateRegistration runs every rule against the input and returns either
// a normalized registration record or the full set of field-keyed errors.
func ValidateRegistration(ctx context.Context, in RegistrationInput, accounts AccountLookup) (*Registration, Errors) {
	errs := Errors{}
	for _, rule := range registrationRules {
		rule(ctx, in, accounts, errs)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	reg := &Registration{
		Username:  strings.ToLower(in.Username),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		BirthDate: time.Now().Truncate(24 * time.Hour),
	}
	if in.BirthDate != nil {
		reg.BirthDate, _ = time.Parse(birthDateLayout, *in.BirthDate)
	}
	return reg, nil
}

func checkUsernameFormat(_ context.Context, in RegistrationInput, _ AccountLookup, errs Errors) {
	if in.Username == "" {
		errs.Add("username", requiredMessage, CodeRequired)
		return
	}
	if len(in.Username) > maxUsernameLength {
		errs.Add("username", maxLengthMessage(maxUsernameLength, len(in.Username)), CodeMaxLength)
	}
	if !usernamePattern.MatchString(in.Username) {
		errs.Add("username", usernameHelpText, CodeInvalidUsername)
	}
}

func checkUsernameUnique(ctx context.Context, in RegistrationInput, accounts AccountLookup, errs Errors) {
	if in.Username == "" || accounts == nil {
		return
	}
	// Best-effort pre-check; the store's unique index is authoritative, so a
	// lookup failure here is not fatal.
	taken, err := accounts.UsernameTaken(ctx, strings.ToLower(in.Username))
	if err == nil && taken {
		errs.Add("username", "User already exists.", CodeUsernameExists)
	}
}

func checkPasswords(_ context.Context, in RegistrationInput, _ AccountLookup, errs Errors) {
	if in.Password == "" {
		errs.Add("password", requiredMessage, CodeRequired)
	}
	if in.PasswordConfirm == "" {
		errs.Add("password_confirmation", requiredMessage, CodeRequired)
	}
	if in.Password == "" || in.PasswordConfirm == "" {
		return
	}

	if in.Password != in.PasswordConfirm {
		errs.Add(NonFieldKey, mismatchMessage, CodePasswordMismatch)
		return
	}

	// Strength rules apply only once the two fields agree.
	if len(in.Password) < minPasswordLength {
		errs.Add("password",
			fmt.Sprintf("This password is too short. It must contain at least %d characters.", minPasswordLength),
			CodePasswordTooShort)
	}
	if isCommonPassword(in.Password) {
		errs.Add("password", "This password is too common.", CodePasswordTooCommon)
	}
	if tooSimilar(in.Password, in.Username) {
		errs.Add("password", "The password is too similar to the username.", CodePasswordTooSimilar)
	}
	if tooSimilar(in.Password, in.Email) {
		errs.Add("password", "The password is too similar to the email address.", CodePasswordTooSimilar)
	}
}

func checkEmail(_ context.Context, in RegistrationInput, _ AccountLookup, errs Errors) {
	if in.Email == "" {
		errs.Add("email", requiredMessage, CodeRequired)
		return
	}
	if len(in.Email) > maxEmailLength {
		errs.Add("email", maxLengthMessage(maxEmailLength, len(in.Email)), CodeMaxLength)
	}
	if err := validate.Var(in.Email, "email"); err != nil {
		errs.Add("email", invalidEmailMsg, CodeInvalidEmail)
	}
}

func checkNames(_ context.Context, in RegistrationInput, _ AccountLookup, errs Errors) {
	for _, f := range []struct {
		field, value string
	}{
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
	} {
		if f.value == "" {
			errs.Add(f.field, requiredMessage, CodeRequired)
			continue
		}
		if len(f.value) > maxNameLength {
			errs.Add(f.field, maxLengthMessage(maxNameLength, len(f.value)), CodeMaxLength)
		}
	}
}

func checkBirthDate(_ context.Context, in RegistrationInput, _ AccountLookup, errs Errors) {
	if in.BirthDate == nil {
		// Omitted entirely: defaults to today.
		return
	}
	if *in.BirthDate == "" {
		errs.Add("birth_date", requiredMessage, CodeRequired)
		return
	}
	if _, err := time.Parse(birthDateLayout, *in.BirthDate); err != nil {
		errs.Add("birth_date", invalidDateMessage, CodeInvalidDate)
	}
}

func maxLengthMessage(limit, got int) string {
	return fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", limit, got)
}
