package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/lehigh-university-libraries/labelcheck/internal/images"
)

var errNoImage = errors.New("image or imageUrl is required")

// resolveImage decodes a data URL, or downloads imageURL when no data URL was sent
func (h *Handler) resolveImage(ctx context.Context, dataURL, imageURL, name string) (images.LabelImage, error) {
	switch {
	case dataURL != "":
		img, err := images.ParseDataURL(dataURL)
		if err != nil {
			return images.LabelImage{}, err
		}
		img.Filename = name
		return img, nil
	case imageURL != "":
		return h.fetcher.Fetch(ctx, imageURL)
	default:
		return images.LabelImage{}, errNoImage
	}
}

// readUploadedImage reads the "file" part of a multipart request
func (h *Handler) readUploadedImage(r *http.Request) (images.LabelImage, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return images.LabelImage{}, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, images.MaxFileSize+1))
	if err != nil {
		return images.LabelImage{}, fmt.Errorf("failed to read file contents: %w", err)
	}

	return images.FromBytes(data, header.Filename)
}
