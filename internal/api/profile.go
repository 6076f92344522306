package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/taskbuster/backend/internal/middleware"
	"github.com/taskbuster/backend/internal/service"
)

// ProfileHandler serves the profile page.
type ProfileHandler struct {
	profileService service.IProfileService
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Show renders the profile for the username in the path. A viewer may only
// see their own profile: any other request gets the same not-found response
// whether or not that username exists, so profiles are never enumerable.
func (h *ProfileHandler) Show(c *gin.Context) {
	requested := c.Param("username")

	viewer, ok := middleware.AuthenticatedUsername(c)
	if !ok || !strings.EqualFold(viewer, requested) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	profile, err := h.profileService.GetByUsername(c.Request.Context(), requested)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		log.Printf("profile lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": viewer, "profile": profile})
}
