package gallery

import "time"

// Like records that a user liked an artwork. The composite unique index is
// the enforcement point for the one-like-per-user-per-artwork invariant;
// inserts go through the ownership store which relies on it.
type Like struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_likes_user_artwork,priority:1" json:"user_id"`
	ArtworkID string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_artwork,priority:2;index" json:"artwork_id"`

	CreatedAt time.Time `json:"created_at"`
}
