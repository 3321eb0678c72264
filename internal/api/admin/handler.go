package admin

import (
	"net/http"
	"time"

	"artgallery-app/database"
	"artgallery-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Provider  string    `json:"auth_provider"`
	CreatedAt time.Time `json:"created_at"`
}

// GET /admin/users
func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("id").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]AdminUser, 0, len(all))
	for _, u := range all {
		out = append(out, AdminUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			Provider:  u.AuthProvider,
			CreatedAt: u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// PUT /admin/users/:id/role — the only path that changes a role. The
// change is picked up by the identity resolver on the user's next request.
func UpdateUserRole(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !users.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	res := database.DB.Model(&users.User{}).
		Where("id = ?", c.Param("id")).
		Update("role", input.Role)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
