package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	_ "golang.org/x/image/webp"
)

// MaxFileSize is the largest label image accepted (10MB)
const MaxFileSize = 10 * 1024 * 1024

// AcceptedTypes lists the MIME types a label image may have
var AcceptedTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

var (
	ErrEmpty           = errors.New("image is empty")
	ErrTooLarge        = errors.New("image too large (max 10MB)")
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrInvalidDataURL  = errors.New("invalid data URL format")
)

var dataURLPattern = regexp.MustCompile(`^data:(.+);base64,(.+)$`)

// LabelImage is an uploaded label photo ready to send to an extraction provider
type LabelImage struct {
	Filename string
	MIMEType string
	Data     []byte
}

// FromBytes validates raw image bytes and sniffs their MIME type
func FromBytes(data []byte, filename string) (LabelImage, error) {
	if len(data) == 0 {
		return LabelImage{}, ErrEmpty
	}
	if len(data) > MaxFileSize {
		return LabelImage{}, ErrTooLarge
	}

	mimeType := http.DetectContentType(data)
	if !slices.Contains(AcceptedTypes, mimeType) {
		return LabelImage{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}

	return LabelImage{
		Filename: filename,
		MIMEType: mimeType,
		Data:     data,
	}, nil
}

// ReadFile loads a label image from disk
func ReadFile(path string) (LabelImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return LabelImage{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return LabelImage{}, fmt.Errorf("failed to read image: %w", err)
	}

	img, err := FromBytes(data, filepath.Base(path))
	if err != nil {
		return LabelImage{}, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// ParseDataURL decodes a "data:<mime>;base64,<payload>" string
func ParseDataURL(dataURL string) (LabelImage, error) {
	matches := dataURLPattern.FindStringSubmatch(strings.TrimSpace(dataURL))
	if matches == nil {
		return LabelImage{}, ErrInvalidDataURL
	}

	mimeType := strings.ToLower(matches[1])
	if !slices.Contains(AcceptedTypes, mimeType) {
		return LabelImage{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}

	data, err := base64.StdEncoding.DecodeString(matches[2])
	if err != nil {
		return LabelImage{}, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	if len(data) == 0 {
		return LabelImage{}, ErrEmpty
	}
	if len(data) > MaxFileSize {
		return LabelImage{}, ErrTooLarge
	}

	if mimeType == "image/jpg" {
		mimeType = "image/jpeg"
	}

	return LabelImage{
		MIMEType: mimeType,
		Data:     data,
	}, nil
}

// Dimensions returns the pixel size of the image without decoding it fully
func Dimensions(img LabelImage) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
