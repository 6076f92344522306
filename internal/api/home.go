package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomePage renders the landing page. It is a pure read with no side
// effects and requires no authentication.
func HomePage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "home",
		"message": "Welcome to TaskBuster",
	})
}
