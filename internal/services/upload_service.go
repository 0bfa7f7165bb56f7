package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/arnavk03/staffdir/internal/apperror"
	"github.com/arnavk03/staffdir/internal/storage"
)

const maxImageSize = 5 << 20 // 5 MB

var imageMIMEByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// UploadService validates and stores employee images.
type UploadService struct {
	store *storage.ImageStore
}

func NewUploadService(store *storage.ImageStore) *UploadService {
	return &UploadService{store: store}
}

// ValidateImage checks filename extension, declared content type, their
// consistency, and size. Each violation is reported with its specific reason.
func ValidateImage(filename, contentType string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	wantType, ok := imageMIMEByExt[ext]
	if !ok {
		return apperror.New(apperror.InvalidFile, "Only .jpg, .jpeg and .png files are allowed")
	}
	if contentType != "image/jpeg" && contentType != "image/png" {
		return apperror.New(apperror.InvalidFile, "Only image/jpeg and image/png content types are allowed")
	}
	if contentType != wantType {
		return apperror.New(apperror.InvalidFile,
			fmt.Sprintf("Content type %s does not match file extension %s", contentType, ext))
	}
	if size > maxImageSize {
		return apperror.New(apperror.InvalidFile, "File exceeds the 5 MB size limit")
	}
	return nil
}

// Store validates the uploaded image and writes it to blob storage under a
// collision-resistant name, returning the public URL.
func (s *UploadService) Store(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	contentType := fileHeader.Header.Get("Content-Type")
	if err := ValidateImage(fileHeader.Filename, contentType, fileHeader.Size); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", apperror.Wrap(apperror.Internal, "Failed to open uploaded file", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	objectName := fmt.Sprintf("image-%d%s", time.Now().UnixNano(), ext)

	url, err := s.store.Put(ctx, objectName, file, fileHeader.Size, contentType)
	if err != nil {
		return "", apperror.Wrap(apperror.Internal, "Failed to store uploaded file", err)
	}
	return url, nil
}
