package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/templui/mediavault/internal/storage"
	"github.com/templui/mediavault/internal/validation"
)

var ErrMediaDisabled = errors.New("media storage is not configured")

// UploadedMedia describes an object stored for use as a thumbnail or content URL.
type UploadedMedia struct {
	Key        string `json:"key"`
	Kind       string `json:"kind"`
	URL        string `json:"url"`
	PreviewURL string `json:"previewUrl,omitempty"`
	Size       int64  `json:"size"`
}

type MediaService struct {
	storage storage.Storage
}

// NewMediaService accepts a nil storage; uploads then fail with ErrMediaDisabled.
func NewMediaService(storage storage.Storage) *MediaService {
	return &MediaService{storage: storage}
}

func (s *MediaService) Enabled() bool {
	return s.storage != nil
}

// Upload validates an image or video upload and stores it under a random key.
func (s *MediaService) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*UploadedMedia, error) {
	if s.storage == nil {
		return nil, ErrMediaDisabled
	}

	constraints, err := validation.ValidateFile(header, validation.ImageConstraints, validation.VideoConstraints)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := path.Join("media", constraints.Kind+"s", uuid.New().String()+ext)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	err = s.storage.Save(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save media: %w", err)
	}

	media := &UploadedMedia{
		Key:  key,
		Kind: constraints.Kind,
		URL:  s.storage.URL(key),
		Size: header.Size,
	}

	preview, err := s.storage.PresignedURL(ctx, key)
	if err != nil {
		slog.Warn("failed to presign media preview", "error", err, "key", key)
	} else {
		media.PreviewURL = preview
	}

	return media, nil
}

func (s *MediaService) Delete(ctx context.Context, key string) error {
	if s.storage == nil {
		return ErrMediaDisabled
	}
	if !strings.HasPrefix(key, "media/") {
		return validation.NewError("key", "must reference an uploaded media object")
	}
	return s.storage.Delete(ctx, key)
}
