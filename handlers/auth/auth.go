package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
)

// CurrentUser returns the user placed in the context by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userInterface, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userInterface.(models.User)
	return user, ok
}
