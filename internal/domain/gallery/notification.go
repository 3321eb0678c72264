package gallery

import (
	"time"

	"artgallery-app/internal/domain/users"
)

const (
	NotificationLike    = "like"
	NotificationComment = "comment"
)

// Notification tells an artist that someone engaged with their artwork.
type Notification struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	ArtistID uint   `gorm:"not null;index" json:"artist_id"`

	FromUserID uint        `gorm:"not null" json:"from_user_id"`
	FromUser   *users.User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`

	ArtworkID string   `gorm:"type:uuid;not null;index" json:"artwork_id"`
	Artwork   *Artwork `gorm:"foreignKey:ArtworkID" json:"artwork,omitempty"`

	Kind string `gorm:"type:varchar(20);not null" json:"kind"`
	Read bool   `gorm:"not null;default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
