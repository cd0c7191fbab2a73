package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// FileConstraints defines validation rules for media uploads
type FileConstraints struct {
	Kind              string
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

var (
	ImageConstraints = FileConstraints{
		Kind: "image",
		AllowedMimeTypes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/webp": true,
		},
		AllowedExtensions: map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".webp": true,
		},
		MaxSize: 10 << 20, // 10MB
	}

	VideoConstraints = FileConstraints{
		Kind: "video",
		AllowedMimeTypes: map[string]bool{
			"video/mp4":  true,
			"video/webm": true,
		},
		AllowedExtensions: map[string]bool{
			".mp4":  true,
			".webm": true,
		},
		MaxSize: 500 << 20, // 500MB
	}
)

// ValidateFile checks an upload against the constraint sets and returns the
// first one it satisfies.
func ValidateFile(header *multipart.FileHeader, constraints ...FileConstraints) (FileConstraints, error) {
	if len(constraints) == 0 {
		return FileConstraints{}, fmt.Errorf("no file constraints provided")
	}

	var lastErr error
	for _, c := range constraints {
		err := validateAgainstConstraint(header, c)
		if err == nil {
			return c, nil
		}
		lastErr = err
	}

	return FileConstraints{}, NewError("file", lastErr.Error())
}

func validateAgainstConstraint(header *multipart.FileHeader, constraints FileConstraints) error {
	if header.Size > constraints.MaxSize {
		return fmt.Errorf("file too large: maximum size is %d MB", constraints.MaxSize/(1<<20))
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// DetectContentType looks at no more than 512 bytes
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}

	detected := http.DetectContentType(buffer[:n])
	if !constraints.AllowedMimeTypes[detected] {
		return fmt.Errorf("invalid file type (detected: %s)", detected)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !constraints.AllowedExtensions[ext] {
		return fmt.Errorf("invalid file extension: %s", ext)
	}

	return nil
}
