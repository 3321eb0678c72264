package artworks

import (
	"log"

	"artgallery-app/database"
	"artgallery-app/internal/domain/gallery"

	"github.com/google/uuid"
)

// notifyArtist records an engagement notification for the artwork's
// artist. Self-engagement is skipped, and a failed insert never fails the
// request that triggered it.
func notifyArtist(artworkID string, fromUserID uint, kind string) {
	var artwork gallery.Artwork
	err := database.DB.Select("artist_id").First(&artwork, "id = ?", artworkID).Error
	if err != nil {
		log.Printf("notify: artwork %s lookup failed: %v", artworkID, err)
		return
	}
	artistID := artwork.ArtistID
	if artistID == fromUserID {
		return
	}

	n := gallery.Notification{
		ID:         uuid.NewString(),
		ArtistID:   artistID,
		FromUserID: fromUserID,
		ArtworkID:  artworkID,
		Kind:       kind,
	}
	if err := database.DB.Create(&n).Error; err != nil {
		log.Printf("notify: insert failed: %v", err)
	}
}
