package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsSerializeToFieldKeyedLists(t *testing.T) {
	errs := Errors{}
	errs.Add("username", "User already exists.", CodeUsernameExists)
	errs.Add(NonFieldKey, "The two password fields didn't match.", CodePasswordMismatch)

	raw, err := json.Marshal(errs)
	require.NoError(t, err)

	var decoded map[string][]map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))

	require.Len(t, decoded["username"], 1)
	assert.Equal(t, "User already exists.", decoded["username"][0]["message"])
	assert.Equal(t, "username_exists", decoded["username"][0]["code"])

	require.Len(t, decoded["__all__"], 1)
	assert.Equal(t, "password_mismatch", decoded["__all__"][0]["code"])
}

func TestErrorsPreserveOrderPerField(t *testing.T) {
	errs := Errors{}
	errs.Add("password", "This password is too short. It must contain at least 8 characters.", CodePasswordTooShort)
	errs.Add("password", "This password is too common.", CodePasswordTooCommon)

	require.Len(t, errs["password"], 2)
	assert.Equal(t, CodePasswordTooShort, errs["password"][0].Code)
	assert.Equal(t, CodePasswordTooCommon, errs["password"][1].Code)
}

func TestErrorsImplementError(t *testing.T) {
	errs := Errors{}
	errs.Add("username", "User already exists.", CodeUsernameExists)

	var err error = errs
	assert.Contains(t, err.Error(), "username")
	assert.Contains(t, err.Error(), "User already exists.")
}
