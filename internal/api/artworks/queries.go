package artworks

import (
	"artgallery-app/internal/domain/gallery"

	"gorm.io/gorm"
)

func galleryQuery(db *gorm.DB, category, search string) *gorm.DB {
	q := db.Model(&gallery.Artwork{}).Preload("Artist")

	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	return q.Order("created_at DESC")
}

type countRow struct {
	ArtworkID string
	N         int64
}

func likeCounts(db *gorm.DB, artworkIDs []string) (map[string]int64, error) {
	return countsByArtwork(db.Model(&gallery.Like{}), artworkIDs)
}

func commentCounts(db *gorm.DB, artworkIDs []string) (map[string]int64, error) {
	return countsByArtwork(db.Model(&gallery.Comment{}), artworkIDs)
}

func countsByArtwork(q *gorm.DB, artworkIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(artworkIDs))
	if len(artworkIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := q.Select("artwork_id, count(*) as n").
		Where("artwork_id IN ?", artworkIDs).
		Group("artwork_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.ArtworkID] = r.N
	}
	return counts, nil
}
