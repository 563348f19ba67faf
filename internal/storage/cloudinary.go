package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// ResumeStore holds uploaded CV files and hands back a stable URL plus the
// identifier needed to address the file later.
type ResumeStore interface {
	UploadResume(ctx context.Context, file *multipart.FileHeader) (url, publicID string, err error)
}

type CloudinaryStore struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore() (*CloudinaryStore, error) {
	client, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	return &CloudinaryStore{client: client, folder: "cv_uploads"}, nil
}

// UploadResume stores the file as a raw asset so PDFs are served as-is.
func (s *CloudinaryStore) UploadResume(ctx context.Context, file *multipart.FileHeader) (string, string, error) {
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	base := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	publicID := fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])

	resp, err := s.client.Upload.Upload(ctx, src, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       s.folder,
		ResourceType: "raw",
		UseFilename:  api.Bool(true),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return resp.SecureURL, resp.PublicID, nil
}
