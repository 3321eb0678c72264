// Package ownership is the database-backed gate.OwnershipStore. All
// authorization-relevant resource state goes through here, decoupled from
// the display queries in the api packages.
package ownership

import (
	"context"
	"errors"

	"artgallery-app/internal/app/gate"
	"artgallery-app/internal/domain/gallery"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) OwnerOf(ctx context.Context, ref gate.ResourceRef) (uint, error) {
	var owner uint
	var err error

	switch ref.Kind {
	case gate.KindArtwork:
		var a gallery.Artwork
		err = s.db.WithContext(ctx).Select("artist_id").First(&a, "id = ?", ref.ID).Error
		owner = a.ArtistID
	case gate.KindComment:
		var cm gallery.Comment
		err = s.db.WithContext(ctx).Select("user_id").First(&cm, "id = ?", ref.ID).Error
		owner = cm.UserID
	case gate.KindLike:
		var l gallery.Like
		err = s.db.WithContext(ctx).Select("user_id").First(&l, "id = ?", ref.ID).Error
		owner = l.UserID
	default:
		return 0, gate.ErrNotFound
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, gate.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return owner, nil
}

func (s *Store) LikeExists(ctx context.Context, userID uint, artworkID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&gallery.Like{}).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateLike inserts the like edge atomically. The composite unique index
// on (user_id, artwork_id) plus ON CONFLICT DO NOTHING makes the
// check-and-insert a single statement: the losing side of a race sees zero
// rows affected and gets ErrConflict instead of a duplicate edge.
func (s *Store) CreateLike(ctx context.Context, userID uint, artworkID string) (*gallery.Like, error) {
	like := gallery.Like{
		ID:        uuid.NewString(),
		UserID:    userID,
		ArtworkID: artworkID,
	}

	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "artwork_id"}},
			DoNothing: true,
		}).
		Create(&like)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gate.ErrConflict
	}
	return &like, nil
}

// DeleteLike removes the edge if present. Removing an absent edge is not
// an error.
func (s *Store) DeleteLike(ctx context.Context, userID uint, artworkID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Delete(&gallery.Like{}).Error
}

// DeleteArtwork removes the artwork and everything hanging off it in one
// transaction. The foreign keys also declare ON DELETE CASCADE, but the
// contract is enforced here rather than left to database configuration.
func (s *Store) DeleteArtwork(ctx context.Context, artworkID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artwork_id = ?", artworkID).Delete(&gallery.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("artwork_id = ?", artworkID).Delete(&gallery.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("artwork_id = ?", artworkID).Delete(&gallery.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", artworkID).Delete(&gallery.Artwork{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gate.ErrNotFound
		}
		return nil
	})
}
