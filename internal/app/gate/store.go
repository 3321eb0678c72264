package gate

import (
	"context"
	"errors"

	"artgallery-app/internal/domain/gallery"
)

var (
	// ErrNotFound is returned by ownership lookups for missing resources.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict is returned by CreateLike when the edge already exists.
	ErrConflict = errors.New("like already exists")
)

type ResourceKind string

const (
	KindArtwork ResourceKind = "artwork"
	KindComment ResourceKind = "comment"
	KindLike    ResourceKind = "like"
)

// ResourceRef names a resource an authorization decision is about.
type ResourceRef struct {
	Kind ResourceKind
	ID   string
}

func ArtworkRef(id string) ResourceRef {
	return ResourceRef{Kind: KindArtwork, ID: id}
}

// OwnershipReader is the read side the gate needs for decisions.
type OwnershipReader interface {
	// OwnerOf returns the owning user id, or ErrNotFound.
	OwnerOf(ctx context.Context, ref ResourceRef) (uint, error)
	LikeExists(ctx context.Context, userID uint, artworkID string) (bool, error)
}

// OwnershipStore is the single access path for authorization-relevant
// resource state. CreateLike must be atomic: of two concurrent calls for
// the same (user, artwork) pair exactly one wins, the other observes
// ErrConflict. DeleteLike is idempotent. DeleteArtwork cascades to the
// artwork's comments, likes and notifications as one logical operation.
type OwnershipStore interface {
	OwnershipReader

	CreateLike(ctx context.Context, userID uint, artworkID string) (*gallery.Like, error)
	DeleteLike(ctx context.Context, userID uint, artworkID string) error
	DeleteArtwork(ctx context.Context, artworkID string) error
}
