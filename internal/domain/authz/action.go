package authz

type Action string

const (
	ActionViewProtectedPage Action = "view-protected-page"
	ActionUploadArtwork     Action = "upload-artwork"
	ActionDeleteArtwork     Action = "delete-artwork"
	ActionLikeArtwork       Action = "like-artwork"
	ActionUnlikeArtwork     Action = "unlike-artwork"
	ActionPostComment       Action = "post-comment"
)
