package artworks

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"artgallery-app/database"
	"artgallery-app/internal/app/gate"
	"artgallery-app/internal/app/http/middleware"
	"artgallery-app/internal/domain/gallery"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Uploader is the blob store the upload flow hands media bytes to.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}

var (
	ownershipStore gate.OwnershipStore
	mediaStore     Uploader
	sanitizer      = bluemonday.StrictPolicy()
)

// Setup wires the collaborators. Called once from route registration.
func Setup(store gate.OwnershipStore, uploader Uploader) {
	ownershipStore = store
	mediaStore = uploader
}

func mustUserID(c *gin.Context) (uint, bool) {
	identity, ok := middleware.Identity(c)
	if !ok || identity.IsAnonymous() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return identity.ID, true
}

// ------------------------------
// GET /gallery
// ------------------------------
func GetGallery(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	var artworksList []gallery.Artwork
	if err := galleryQuery(database.DB, category, search).Find(&artworksList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}

	ids := make([]string, 0, len(artworksList))
	for _, a := range artworksList {
		ids = append(ids, a.ID)
	}

	likes, err := likeCounts(database.DB, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}
	comments, err := commentCounts(database.DB, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}

	out := make([]ArtworkDTO, 0, len(artworksList))
	for _, a := range artworksList {
		out = append(out, toArtworkDTO(a, likes[a.ID], comments[a.ID]))
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// ------------------------------
// GET /artworks/:id
// ------------------------------
func GetArtworkByID(c *gin.Context) {
	id := c.Param("id")

	var artwork gallery.Artwork
	err := database.DB.Preload("Artist").First(&artwork, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	likes, err := likeCounts(database.DB, []string{id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}
	comments, err := commentCounts(database.DB, []string{id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toArtworkDTO(artwork, likes[id], comments[id])})
}

// ------------------------------
// POST /artworks/upload  (gate: upload-artwork)
// ------------------------------
func UploadArtwork(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	title := strings.TrimSpace(sanitizer.Sanitize(c.PostForm("title")))
	description := strings.TrimSpace(sanitizer.Sanitize(c.PostForm("description")))
	category := gallery.Category(c.PostForm("category"))
	mediaType := gallery.MediaType(c.PostForm("media_type"))

	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !gallery.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}
	if !gallery.ValidMediaType(mediaType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media type"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read file"})
		return
	}
	defer file.Close()

	mediaURL, err := mediaStore.Upload(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Media upload failed"})
		return
	}

	artwork := gallery.Artwork{
		Title:       title,
		Description: description,
		ArtistID:    userID,
		Category:    category,
		MediaType:   mediaType,
		MediaURL:    mediaURL,
	}
	if err := database.DB.Create(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save artwork"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": artwork})
}

// ------------------------------
// DELETE /artworks/:id  (gate: delete-artwork)
// ------------------------------
func DeleteArtwork(c *gin.Context) {
	id := c.Param("id")

	// Ownership was already established by the gate; the cascade to
	// comments, likes and notifications happens inside the store.
	err := ownershipStore.DeleteArtwork(c.Request.Context(), id)
	if errors.Is(err, gate.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ------------------------------
// POST /artworks/:id/like  (gate: like-artwork)
// ------------------------------
func LikeArtwork(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	artworkID := c.Param("id")

	like, err := ownershipStore.CreateLike(c.Request.Context(), userID, artworkID)
	if errors.Is(err, gate.ErrConflict) {
		// loser of a like race; the gate's pre-check caught everyone else
		c.JSON(http.StatusConflict, gin.H{"error": "Already liked"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like artwork"})
		return
	}

	notifyArtist(artworkID, userID, gallery.NotificationLike)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": like})
}

// ------------------------------
// DELETE /artworks/:id/like  (gate: unlike-artwork)
// ------------------------------
func UnlikeArtwork(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	artworkID := c.Param("id")

	if err := ownershipStore.DeleteLike(c.Request.Context(), userID, artworkID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ------------------------------
// GET /artworks/:id/comments
// ------------------------------
func GetComments(c *gin.Context) {
	artworkID := c.Param("id")

	var comments []gallery.Comment
	err := database.DB.Preload("User").
		Where("artwork_id = ?", artworkID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}

	out := make([]CommentDTO, 0, len(comments))
	for _, cm := range comments {
		out = append(out, toCommentDTO(cm))
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// ------------------------------
// POST /artworks/:id/comments  (gate: post-comment)
// ------------------------------
func PostComment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	artworkID := c.Param("id")

	var req PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	var exists int64
	if err := database.DB.Model(&gallery.Artwork{}).Where("id = ?", artworkID).Count(&exists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post comment"})
		return
	}
	if exists == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	comment := gallery.Comment{
		ArtworkID: artworkID,
		UserID:    userID,
		Text:      text,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post comment"})
		return
	}

	// reload with the commenter attached for the response
	database.DB.Preload("User").First(&comment, "id = ?", comment.ID)

	notifyArtist(artworkID, userID, gallery.NotificationComment)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": toCommentDTO(comment)})
}
