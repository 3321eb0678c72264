package users

import (
	"net/http"

	"artgallery-app/database"
	"artgallery-app/internal/app/http/middleware"
	"artgallery-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type MeResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	CanUpload bool    `json:"can_upload"`
}

// GET /me
func GetCurrentUser(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, identity.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
		// advisory flag for the client UI; the gate re-checks on upload
		CanUpload: user.Role == "artist",
	})
}
