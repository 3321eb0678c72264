package gallery

import (
	"time"

	"artgallery-app/internal/domain/users"
)

type Category string

const (
	CategoryFairy    Category = "fairy"
	CategoryKastil   Category = "kastil"
	CategoryFiksi    Category = "fiksi"
	CategoryAlam     Category = "alam"
	CategoryMitologi Category = "mitologi"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryFairy, CategoryKastil, CategoryFiksi, CategoryAlam, CategoryMitologi:
		return true
	}
	return false
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
	MediaText  MediaType = "text"
)

func ValidMediaType(m MediaType) bool {
	switch m {
	case MediaImage, MediaVideo, MediaAudio, MediaText:
		return true
	}
	return false
}

type Artwork struct {
	ID          string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`

	ArtistID uint        `gorm:"not null;index" json:"artist_id"`
	Artist   *users.User `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`

	Category  Category  `gorm:"type:text;not null;index" json:"category"`
	MediaType MediaType `gorm:"type:text;not null" json:"media_type"`

	// CDN locator returned by the blob store on upload.
	MediaURL string `gorm:"not null" json:"media_url"`

	Comments []Comment `gorm:"constraint:OnDelete:CASCADE;" json:"comments,omitempty"`
	Likes    []Like    `gorm:"constraint:OnDelete:CASCADE;" json:"likes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
