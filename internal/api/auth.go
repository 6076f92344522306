package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskbuster/backend/internal/middleware"
	"github.com/taskbuster/backend/internal/service"
	"github.com/taskbuster/backend/internal/validation"
)

// AuthHandler serves the registration and login flows.
type AuthHandler struct {
	authService service.IAuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// registrationFormFields describes the empty registration form.
var registrationFormFields = []string{
	"username", "first_name", "last_name", "email",
	"birth_date", "password", "password_confirmation",
}

// RegisterForm renders the empty registration form. An already
// authenticated caller is redirected to their own profile instead; the form
// is never shown to a logged-in user.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	if username, ok := middleware.AuthenticatedUsername(c); ok {
		c.Redirect(http.StatusFound, "/users/"+username)
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": registrationFormFields})
}

// Register handles the registration submission. A validation failure is not
// an error response: the form is re-rendered with status 200 and the
// field-keyed error set attached. Success redirects to the landing page.
func (h *AuthHandler) Register(c *gin.Context) {
	if username, ok := middleware.AuthenticatedUsername(c); ok {
		c.Redirect(http.StatusFound, "/users/"+username)
		return
	}

	var in validation.RegistrationInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, err := h.authService.Register(c.Request.Context(), in)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusOK, gin.H{"form": registrationFormFields, "errors": verrs})
			return
		}
		log.Printf("registration failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.Redirect(http.StatusFound, "/home/")
}

// LoginForm renders the empty login form, with the same authenticated
// redirect short-circuit as the registration form.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if username, ok := middleware.AuthenticatedUsername(c); ok {
		c.Redirect(http.StatusFound, "/users/"+username)
		return
	}
	c.JSON(http.StatusOK, gin.H{"form": []string{"username", "password"}})
}

// Login handles the credential submission. A failed check re-renders the
// form (status 200) with a form-level error that does not reveal whether
// the username exists. Success sets the session cookie and redirects home.
func (h *AuthHandler) Login(c *gin.Context) {
	if username, ok := middleware.AuthenticatedUsername(c); ok {
		c.Redirect(http.StatusFound, "/users/"+username)
		return
	}

	var in validation.LoginInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if verrs := validation.ValidateLogin(in); verrs != nil {
		c.JSON(http.StatusOK, gin.H{"errors": verrs})
		return
	}

	_, token, err := h.authService.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusOK, gin.H{"errors": validation.InvalidLoginErrors()})
			return
		}
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 86400, "/", "", false, true)
	c.Redirect(http.StatusFound, "/home/")
}
