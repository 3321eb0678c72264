package dashboard

import (
	"net/http"

	"artgallery-app/database"
	"artgallery-app/internal/app/http/middleware"
	"artgallery-app/internal/domain/gallery"

	"github.com/gin-gonic/gin"
)

type Stats struct {
	TotalArtworks int   `json:"total_artworks"`
	TotalLikes    int64 `json:"total_likes"`
	TotalComments int64 `json:"total_comments"`
}

// GET /dashboard — the artist's artworks with their engagement, the
// newest notifications and aggregate stats.
func GetDashboard(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var artworks []gallery.Artwork
	err := database.DB.
		Where("artist_id = ?", identity.ID).
		Preload("Likes").
		Preload("Comments").
		Preload("Comments.User").
		Order("created_at DESC").
		Find(&artworks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var notifications []gallery.Notification
	err = database.DB.
		Where("artist_id = ?", identity.ID).
		Preload("FromUser").
		Preload("Artwork").
		Order("created_at DESC").
		Limit(10).
		Find(&notifications).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	stats := Stats{TotalArtworks: len(artworks)}
	for _, a := range artworks {
		stats.TotalLikes += int64(len(a.Likes))
		stats.TotalComments += int64(len(a.Comments))
	}

	c.JSON(http.StatusOK, gin.H{
		"artworks":      artworks,
		"notifications": notifications,
		"stats":         stats,
	})
}
