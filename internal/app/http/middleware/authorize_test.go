package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"artgallery-app/internal/app/gate"
	"artgallery-app/internal/app/http/middleware"
	"artgallery-app/internal/domain/authz"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	identities map[string]authz.Identity
	err        error
}

func (s *stubResolver) Resolve(ctx context.Context, token string) (authz.Identity, error) {
	if s.err != nil {
		return authz.Anonymous(), s.err
	}
	if id, ok := s.identities[token]; ok {
		return id, nil
	}
	return authz.Anonymous(), nil
}

type stubReader struct {
	owners map[string]uint
	likes  map[string]bool // "userID/artworkID"
}

func (s *stubReader) OwnerOf(ctx context.Context, ref gate.ResourceRef) (uint, error) {
	owner, ok := s.owners[ref.ID]
	if !ok {
		return 0, gate.ErrNotFound
	}
	return owner, nil
}

func (s *stubReader) LikeExists(ctx context.Context, userID uint, artworkID string) (bool, error) {
	return s.likes[artworkID], nil
}

func newTestGate(resolverErr error) *gate.Gate {
	resolver := &stubResolver{
		identities: map[string]authz.Identity{
			"artist-token": {ID: 1, Name: "U1", Role: authz.RoleArtist},
			"member-token": {ID: 2, Name: "U2", Role: authz.RoleMember},
		},
		err: resolverErr,
	}
	reader := &stubReader{
		owners: map[string]uint{"a1": 1},
		likes:  map[string]bool{"liked": true},
	}
	return gate.New(resolver, reader)
}

func newRouter(g *gate.Gate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ok := func(c *gin.Context) {
		identity, _ := middleware.Identity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": identity.ID})
	}

	r.GET("/me", middleware.Authorize(g, authz.ActionViewProtectedPage, nil), ok)
	r.POST("/artworks/upload", middleware.Authorize(g, authz.ActionUploadArtwork, nil), ok)
	r.DELETE("/artworks/:id", middleware.Authorize(g, authz.ActionDeleteArtwork, middleware.ArtworkParam("id")), ok)
	r.POST("/artworks/:id/like", middleware.Authorize(g, authz.ActionLikeArtwork, middleware.ArtworkParam("id")), ok)
	r.GET("/admin", middleware.Authorize(g, authz.ActionViewProtectedPage, nil), middleware.RequireRole(authz.RoleAdmin), ok)

	return r
}

func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStatusMapping(t *testing.T) {
	r := newRouter(newTestGate(nil))

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"no token", http.MethodGet, "/me", "", http.StatusUnauthorized},
		{"authenticated", http.MethodGet, "/me", "member-token", http.StatusOK},
		{"wrong role", http.MethodPost, "/artworks/upload", "member-token", http.StatusForbidden},
		{"artist uploads", http.MethodPost, "/artworks/upload", "artist-token", http.StatusOK},
		{"not owner", http.MethodDelete, "/artworks/a1", "member-token", http.StatusForbidden},
		{"owner deletes", http.MethodDelete, "/artworks/a1", "artist-token", http.StatusOK},
		{"missing artwork", http.MethodDelete, "/artworks/ghost", "artist-token", http.StatusNotFound},
		{"already liked", http.MethodPost, "/artworks/liked/like", "member-token", http.StatusConflict},
		{"non-admin blocked", http.MethodGet, "/admin", "member-token", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.token)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestResolverOutageIsServiceUnavailable(t *testing.T) {
	r := newRouter(newTestGate(errors.New("identity backend down")))

	w := do(r, http.MethodGet, "/me", "member-token")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAllowedRequestCarriesIdentity(t *testing.T) {
	r := newRouter(newTestGate(nil))

	w := do(r, http.MethodGet, "/me", "member-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 2}`, w.Body.String())
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc", "abc"},
		{"abc", ""}, // missing scheme
		{"Bearer ", ""},
	}

	for _, tt := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = req
		assert.Equal(t, tt.want, middleware.BearerToken(c))
	}
}
