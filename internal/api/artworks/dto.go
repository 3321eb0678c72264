package artworks

import (
	"time"

	"artgallery-app/internal/domain/gallery"
)

type ArtistDTO struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type ArtworkDTO struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Category     string     `json:"category"`
	MediaType    string     `json:"media_type"`
	MediaURL     string     `json:"media_url"`
	Artist       *ArtistDTO `json:"artist,omitempty"`
	LikeCount    int64      `json:"like_count"`
	CommentCount int64      `json:"comment_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CommentDTO struct {
	ID        string     `json:"id"`
	ArtworkID string     `json:"artwork_id"`
	Text      string     `json:"comment_text"`
	User      *ArtistDTO `json:"user,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type PostCommentRequest struct {
	Text string `json:"comment_text" binding:"required"`
}

func toArtworkDTO(a gallery.Artwork, likeCount, commentCount int64) ArtworkDTO {
	dto := ArtworkDTO{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Category:     string(a.Category),
		MediaType:    string(a.MediaType),
		MediaURL:     a.MediaURL,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		CreatedAt:    a.CreatedAt,
	}
	if a.Artist != nil {
		dto.Artist = &ArtistDTO{
			ID:        a.Artist.ID,
			Name:      a.Artist.Name,
			AvatarURL: a.Artist.AvatarURL,
		}
	}
	return dto
}

func toCommentDTO(c gallery.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        c.ID,
		ArtworkID: c.ArtworkID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
	if c.User != nil {
		dto.User = &ArtistDTO{
			ID:        c.User.ID,
			Name:      c.User.Name,
			AvatarURL: c.User.AvatarURL,
		}
	}
	return dto
}
