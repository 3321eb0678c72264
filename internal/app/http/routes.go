package routes

import (
	"log"

	"artgallery-app/config"
	"artgallery-app/database"
	adminapi "artgallery-app/internal/api/admin"
	artworksapi "artgallery-app/internal/api/artworks"
	authapi "artgallery-app/internal/api/auth"
	dashboardapi "artgallery-app/internal/api/dashboard"
	usersapi "artgallery-app/internal/api/users"
	"artgallery-app/internal/app/gate"
	"artgallery-app/internal/app/http/middleware"
	"artgallery-app/internal/domain/authz"
	"artgallery-app/internal/infra/cloudinary"
	"artgallery-app/internal/infra/identity"
	"artgallery-app/internal/infra/ownership"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	resolver := identity.NewResolver([]byte(config.JWT_SECRET), identity.NewGormUsers(database.DB))
	store := ownership.NewStore(database.DB)
	g := gate.New(resolver, store)

	uploader, err := cloudinary.NewUploader()
	if err != nil {
		log.Fatal("Failed to init media uploader:", err)
	}
	artworksapi.Setup(store, uploader)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public
	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.GET("/gallery", artworksapi.GetGallery)
	public.GET("/artworks/:id", artworksapi.GetArtworkByID)
	public.GET("/artworks/:id/comments", artworksapi.GetComments)

	// Authenticated — each route states its action and the gate decides.
	// Handlers never re-check roles or ownership themselves.
	auth := r.Group("/")
	auth.Use(middleware.SanitizeInputMiddleware())

	auth.GET("/me",
		middleware.Authorize(g, authz.ActionViewProtectedPage, nil),
		usersapi.GetCurrentUser)

	auth.GET("/dashboard",
		middleware.Authorize(g, authz.ActionViewProtectedPage, nil),
		middleware.RequireRole(authz.RoleArtist),
		dashboardapi.GetDashboard)

	auth.POST("/artworks/upload",
		middleware.Authorize(g, authz.ActionUploadArtwork, nil),
		artworksapi.UploadArtwork)

	auth.DELETE("/artworks/:id",
		middleware.Authorize(g, authz.ActionDeleteArtwork, middleware.ArtworkParam("id")),
		artworksapi.DeleteArtwork)

	auth.POST("/artworks/:id/like",
		middleware.Authorize(g, authz.ActionLikeArtwork, middleware.ArtworkParam("id")),
		artworksapi.LikeArtwork)

	auth.DELETE("/artworks/:id/like",
		middleware.Authorize(g, authz.ActionUnlikeArtwork, middleware.ArtworkParam("id")),
		artworksapi.UnlikeArtwork)

	auth.POST("/artworks/:id/comments",
		middleware.Authorize(g, authz.ActionPostComment, middleware.ArtworkParam("id")),
		artworksapi.PostComment)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(
		middleware.SanitizeInputMiddleware(),
		middleware.Authorize(g, authz.ActionViewProtectedPage, nil),
		middleware.RequireRole(authz.RoleAdmin),
	)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.PUT("/users/:id/role", adminapi.UpdateUserRole)
}
