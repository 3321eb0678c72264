package authz_test

import (
	"testing"

	"artgallery-app/internal/domain/authz"

	"github.com/stretchr/testify/assert"
)

func member(id uint) authz.Identity {
	return authz.Identity{ID: id, Name: "member", Role: authz.RoleMember}
}

func artist(id uint) authz.Identity {
	return authz.Identity{ID: id, Name: "artist", Role: authz.RoleArtist}
}

func TestAnonymousIsDeniedEverywhere(t *testing.T) {
	actions := []authz.Action{
		authz.ActionViewProtectedPage,
		authz.ActionUploadArtwork,
		authz.ActionDeleteArtwork,
		authz.ActionLikeArtwork,
		authz.ActionUnlikeArtwork,
		authz.ActionPostComment,
	}

	for _, action := range actions {
		t.Run(string(action), func(t *testing.T) {
			d := authz.Evaluate(authz.Anonymous(), action, authz.Facts{})
			assert.False(t, d.Allowed)
			assert.Equal(t, authz.ReasonNotAuthenticated, d.Reason)
		})
	}
}

func TestAuthenticationCheckedBeforeRole(t *testing.T) {
	// an anonymous session must fail on authentication, not role
	d := authz.Evaluate(authz.Anonymous(), authz.ActionUploadArtwork, authz.Facts{})
	assert.Equal(t, authz.ReasonNotAuthenticated, d.Reason)
}

func TestUploadRequiresArtistRole(t *testing.T) {
	tests := []struct {
		name     string
		identity authz.Identity
		want     authz.Decision
	}{
		{"member denied", member(1), authz.Deny(authz.ReasonWrongRole)},
		{"admin denied", authz.Identity{ID: 2, Role: authz.RoleAdmin}, authz.Deny(authz.ReasonWrongRole)},
		{"artist allowed", artist(3), authz.Allow()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := authz.Evaluate(tt.identity, authz.ActionUploadArtwork, authz.Facts{})
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestDeleteArtworkOwnership(t *testing.T) {
	owner := artist(10)
	stranger := member(20)

	owned := authz.Facts{ResourceFound: true, OwnerID: owner.ID}

	d := authz.Evaluate(owner, authz.ActionDeleteArtwork, owned)
	assert.True(t, d.Allowed)

	d = authz.Evaluate(stranger, authz.ActionDeleteArtwork, owned)
	assert.Equal(t, authz.Deny(authz.ReasonNotOwner), d)

	// role is irrelevant for delete; only ownership counts
	admin := authz.Identity{ID: 30, Role: authz.RoleAdmin}
	d = authz.Evaluate(admin, authz.ActionDeleteArtwork, owned)
	assert.Equal(t, authz.Deny(authz.ReasonNotOwner), d)

	d = authz.Evaluate(owner, authz.ActionDeleteArtwork, authz.Facts{})
	assert.Equal(t, authz.Deny(authz.ReasonNotFound), d)
}

func TestLikeArtwork(t *testing.T) {
	u := member(5)

	d := authz.Evaluate(u, authz.ActionLikeArtwork, authz.Facts{ResourceFound: true})
	assert.True(t, d.Allowed)

	d = authz.Evaluate(u, authz.ActionLikeArtwork, authz.Facts{ResourceFound: true, LikeExists: true})
	assert.Equal(t, authz.Deny(authz.ReasonAlreadyExists), d)

	d = authz.Evaluate(u, authz.ActionLikeArtwork, authz.Facts{})
	assert.Equal(t, authz.Deny(authz.ReasonNotFound), d)
}

func TestUnlikeIsIdempotent(t *testing.T) {
	u := member(5)

	// no edge, allowed twice in a row
	for i := 0; i < 2; i++ {
		d := authz.Evaluate(u, authz.ActionUnlikeArtwork, authz.Facts{})
		assert.True(t, d.Allowed)
	}

	// existing edge also allowed
	d := authz.Evaluate(u, authz.ActionUnlikeArtwork, authz.Facts{ResourceFound: true, LikeExists: true})
	assert.True(t, d.Allowed)
}

func TestPostCommentNeedsOnlyAuthentication(t *testing.T) {
	d := authz.Evaluate(member(7), authz.ActionPostComment, authz.Facts{})
	assert.True(t, d.Allowed)
}

func TestUnknownActionFailsClosed(t *testing.T) {
	d := authz.Evaluate(artist(1), authz.Action("transfer-ownership"), authz.Facts{})
	assert.False(t, d.Allowed)
	assert.Equal(t, authz.ReasonNotFound, d.Reason)
}

func TestNeedsResource(t *testing.T) {
	assert.True(t, authz.NeedsResource(authz.ActionDeleteArtwork))
	assert.True(t, authz.NeedsResource(authz.ActionLikeArtwork))
	assert.False(t, authz.NeedsResource(authz.ActionUnlikeArtwork))
	assert.False(t, authz.NeedsResource(authz.ActionPostComment))
	assert.False(t, authz.NeedsResource(authz.ActionViewProtectedPage))
	assert.False(t, authz.NeedsResource(authz.Action("bogus")))
}
