package gallery

import (
	"time"

	"artgallery-app/internal/domain/users"
)

type Comment struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ArtworkID string `gorm:"type:uuid;not null;index" json:"artwork_id"`

	UserID uint        `gorm:"not null" json:"user_id"`
	User   *users.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Text string `gorm:"column:comment_text;not null" json:"comment_text"`

	CreatedAt time.Time `json:"created_at"`
}
