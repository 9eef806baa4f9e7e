package utils

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrMediaNotConfigured = errors.New("cloudinary is not configured: set CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET")

// UploadResult is the hosted location of an uploaded file.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func mediaClient() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, ErrMediaNotConfigured
	}

	return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
}

// UploadMedia pushes a file to Cloudinary and returns its hosted URL.
func UploadMedia(file io.Reader, folder string) (*UploadResult, error) {
	cld, err := mediaClient()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, err
	}

	return &UploadResult{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

// DeleteMedia removes a hosted file. Failures are logged, not returned.
func DeleteMedia(publicID string) {
	if publicID == "" {
		return
	}

	cld, err := mediaClient()
	if err != nil {
		log.Printf("Skipping media delete for %s: %v", publicID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		log.Printf("Failed to delete media %s: %v", publicID, err)
	}
}
