package gate_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"artgallery-app/internal/app/gate"
	"artgallery-app/internal/domain/authz"
	"artgallery-app/internal/domain/gallery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	identities map[string]authz.Identity
	err        error
}

func (f *fakeResolver) Resolve(ctx context.Context, token string) (authz.Identity, error) {
	if f.err != nil {
		return authz.Anonymous(), f.err
	}
	if id, ok := f.identities[token]; ok {
		return id, nil
	}
	return authz.Anonymous(), nil
}

type likeKey struct {
	userID    uint
	artworkID string
}

// fakeStore mirrors the database-backed store: check-and-insert for likes
// is atomic under the mutex and artwork deletion cascades.
type fakeStore struct {
	mu       sync.Mutex
	artworks map[string]uint   // artwork id -> owner
	comments map[string]string // comment id -> artwork id
	likes    map[likeKey]gallery.Like
	err      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		artworks: make(map[string]uint),
		comments: make(map[string]string),
		likes:    make(map[likeKey]gallery.Like),
	}
}

func (f *fakeStore) OwnerOf(ctx context.Context, ref gate.ResourceRef) (uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if ref.Kind != gate.KindArtwork {
		return 0, gate.ErrNotFound
	}
	owner, ok := f.artworks[ref.ID]
	if !ok {
		return 0, gate.ErrNotFound
	}
	return owner, nil
}

func (f *fakeStore) LikeExists(ctx context.Context, userID uint, artworkID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.likes[likeKey{userID, artworkID}]
	return ok, nil
}

func (f *fakeStore) CreateLike(ctx context.Context, userID uint, artworkID string) (*gallery.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	key := likeKey{userID, artworkID}
	if _, ok := f.likes[key]; ok {
		return nil, gate.ErrConflict
	}
	like := gallery.Like{ID: uuid.NewString(), UserID: userID, ArtworkID: artworkID}
	f.likes[key] = like
	return &like, nil
}

func (f *fakeStore) DeleteLike(ctx context.Context, userID uint, artworkID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.likes, likeKey{userID, artworkID})
	return nil
}

func (f *fakeStore) DeleteArtwork(ctx context.Context, artworkID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.artworks[artworkID]; !ok {
		return gate.ErrNotFound
	}
	delete(f.artworks, artworkID)
	for id, aid := range f.comments {
		if aid == artworkID {
			delete(f.comments, id)
		}
	}
	for key := range f.likes {
		if key.artworkID == artworkID {
			delete(f.likes, key)
		}
	}
	return nil
}

func (f *fakeStore) likeCount(artworkID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for key := range f.likes {
		if key.artworkID == artworkID {
			n++
		}
	}
	return n
}

func (f *fakeStore) commentCount(artworkID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, aid := range f.comments {
		if aid == artworkID {
			n++
		}
	}
	return n
}

var _ gate.OwnershipStore = (*fakeStore)(nil)

func newGate(store *fakeStore) *gate.Gate {
	resolver := &fakeResolver{identities: map[string]authz.Identity{
		"tok-artist": {ID: 1, Name: "U1", Role: authz.RoleArtist},
		"tok-member": {ID: 2, Name: "U2", Role: authz.RoleMember},
	}}
	return gate.New(resolver, store)
}

func TestAuthorizeAnonymous(t *testing.T) {
	g := newGate(newFakeStore())

	d := g.Authorize(context.Background(), "", authz.ActionUploadArtwork, nil)
	assert.Equal(t, authz.Deny(authz.ReasonNotAuthenticated), d)

	// a token nobody issued is an anonymous session, not an error
	d = g.Authorize(context.Background(), "garbage", authz.ActionViewProtectedPage, nil)
	assert.Equal(t, authz.Deny(authz.ReasonNotAuthenticated), d)
}

func TestAuthorizeUploadRole(t *testing.T) {
	g := newGate(newFakeStore())

	d := g.Authorize(context.Background(), "tok-member", authz.ActionUploadArtwork, nil)
	assert.Equal(t, authz.Deny(authz.ReasonWrongRole), d)

	d = g.Authorize(context.Background(), "tok-artist", authz.ActionUploadArtwork, nil)
	assert.True(t, d.Allowed)
}

func TestAuthorizeDeleteOwnership(t *testing.T) {
	store := newFakeStore()
	store.artworks["a1"] = 1 // owned by the artist
	g := newGate(store)
	ref := gate.ArtworkRef("a1")

	d := g.Authorize(context.Background(), "tok-member", authz.ActionDeleteArtwork, &ref)
	assert.Equal(t, authz.Deny(authz.ReasonNotOwner), d)

	d = g.Authorize(context.Background(), "tok-artist", authz.ActionDeleteArtwork, &ref)
	require.True(t, d.Allowed)

	// the gate only decided; the caller performs the delete
	require.NoError(t, store.DeleteArtwork(context.Background(), "a1"))
	_, err := store.OwnerOf(context.Background(), ref)
	assert.ErrorIs(t, err, gate.ErrNotFound)

	d = g.Authorize(context.Background(), "tok-artist", authz.ActionDeleteArtwork, &ref)
	assert.Equal(t, authz.Deny(authz.ReasonNotFound), d)
}

func TestAuthorizeDeleteWithoutRef(t *testing.T) {
	g := newGate(newFakeStore())
	d := g.Authorize(context.Background(), "tok-artist", authz.ActionDeleteArtwork, nil)
	assert.Equal(t, authz.Deny(authz.ReasonNotFound), d)
}

func TestAuthorizeLike(t *testing.T) {
	store := newFakeStore()
	store.artworks["a1"] = 1
	g := newGate(store)
	ref := gate.ArtworkRef("a1")

	d := g.Authorize(context.Background(), "tok-member", authz.ActionLikeArtwork, &ref)
	require.True(t, d.Allowed)

	_, err := store.CreateLike(context.Background(), 2, "a1")
	require.NoError(t, err)

	d = g.Authorize(context.Background(), "tok-member", authz.ActionLikeArtwork, &ref)
	assert.Equal(t, authz.Deny(authz.ReasonAlreadyExists), d)

	missing := gate.ArtworkRef("nope")
	d = g.Authorize(context.Background(), "tok-member", authz.ActionLikeArtwork, &missing)
	assert.Equal(t, authz.Deny(authz.ReasonNotFound), d)
}

func TestUnlikeIdempotent(t *testing.T) {
	store := newFakeStore()
	store.artworks["a1"] = 1
	g := newGate(store)
	ref := gate.ArtworkRef("a1")

	// no edge exists; both authorization and deletion succeed twice
	for i := 0; i < 2; i++ {
		d := g.Authorize(context.Background(), "tok-member", authz.ActionUnlikeArtwork, &ref)
		assert.True(t, d.Allowed)
		assert.NoError(t, store.DeleteLike(context.Background(), 2, "a1"))
	}
}

func TestConcurrentLikesCreateOneEdge(t *testing.T) {
	store := newFakeStore()
	store.artworks["a1"] = 1

	const callers = 32
	var wg sync.WaitGroup
	var successes, conflicts int64
	var mu sync.Mutex

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateLike(context.Background(), 2, "a1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, gate.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, successes)
	assert.EqualValues(t, callers-1, conflicts)
	assert.Equal(t, 1, store.likeCount("a1"))
}

func TestDeleteArtworkCascades(t *testing.T) {
	store := newFakeStore()
	store.artworks["a1"] = 1
	store.comments["c1"] = "a1"
	store.comments["c2"] = "a1"
	store.comments["c3"] = "other"
	for userID := uint(2); userID <= 4; userID++ {
		_, err := store.CreateLike(context.Background(), userID, "a1")
		require.NoError(t, err)
	}

	require.NoError(t, store.DeleteArtwork(context.Background(), "a1"))

	assert.Equal(t, 0, store.likeCount("a1"))
	assert.Equal(t, 0, store.commentCount("a1"))
	assert.Equal(t, 1, store.commentCount("other"))
}

func TestInfrastructureFailuresFailClosed(t *testing.T) {
	t.Run("resolver down", func(t *testing.T) {
		g := gate.New(&fakeResolver{err: errors.New("identity store unreachable")}, newFakeStore())
		d := g.Authorize(context.Background(), "tok", authz.ActionViewProtectedPage, nil)
		assert.Equal(t, authz.Deny(authz.ReasonInfrastructure), d)
	})

	t.Run("store down", func(t *testing.T) {
		store := newFakeStore()
		store.err = errors.New("connection refused")
		g := newGate(store)
		ref := gate.ArtworkRef("a1")
		d := g.Authorize(context.Background(), "tok-artist", authz.ActionDeleteArtwork, &ref)
		assert.Equal(t, authz.Deny(authz.ReasonInfrastructure), d)
	})
}

type slowStore struct {
	*fakeStore
}

func (s *slowStore) OwnerOf(ctx context.Context, ref gate.ResourceRef) (uint, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

func TestSlowLookupTimesOutClosed(t *testing.T) {
	resolver := &fakeResolver{identities: map[string]authz.Identity{
		"tok": {ID: 1, Role: authz.RoleArtist},
	}}
	g := gate.New(resolver, &slowStore{newFakeStore()}).WithTimeout(10 * time.Millisecond)

	ref := gate.ArtworkRef("a1")
	d := g.Authorize(context.Background(), "tok", authz.ActionDeleteArtwork, &ref)
	assert.Equal(t, authz.Deny(authz.ReasonInfrastructure), d)
}
