// Package cloudinary uploads artwork media to the CDN. It is the blob
// store collaborator: the authorization core never touches it; handlers
// call it only after the gate allows the upload.
package cloudinary

import (
	"context"
	"io"

	"artgallery-app/config"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type Uploader struct {
	client *cld.Cloudinary
	folder string
}

func NewUploader() (*Uploader, error) {
	client, err := cld.NewFromParams(
		config.CLOUDINARY_CLOUD_NAME,
		config.CLOUDINARY_API_KEY,
		config.CLOUDINARY_API_SECRET,
	)
	if err != nil {
		return nil, err
	}
	return &Uploader{client: client, folder: "artworks"}, nil
}

// Upload pushes the media bytes and returns the delivery URL.
// resource_type auto lets Cloudinary detect image/video/audio uploads.
func (u *Uploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	res, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       u.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}
