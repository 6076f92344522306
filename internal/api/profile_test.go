package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getProfile(router http.Handler, username, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/users/"+username, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestViewOwnProfile(t *testing.T) {
	router, _, authSvc := setupRouter(t)
	_, token := registerAccount(t, authSvc, "taskbuster")

	w := getProfile(router, "taskbuster", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "taskbuster")
	assert.Contains(t, w.Body.String(), "first_name")
}

func TestViewOtherProfileIsNotFound(t *testing.T) {
	router, _, authSvc := setupRouter(t)
	_, token := registerAccount(t, authSvc, "taskbuster")
	registerAccount(t, authSvc, "otheruser")

	// An existing profile owned by someone else must be indistinguishable
	// from a missing one.
	w := getProfile(router, "otheruser", token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = getProfile(router, "ghostuser", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewProfileAnonymousIsNotFound(t *testing.T) {
	router, _, authSvc := setupRouter(t)
	registerAccount(t, authSvc, "taskbuster")

	w := getProfile(router, "taskbuster", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewOwnProfileCaseInsensitiveUsername(t *testing.T) {
	router, _, authSvc := setupRouter(t)
	_, token := registerAccount(t, authSvc, "taskbuster")

	w := getProfile(router, "TaskBuster", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
