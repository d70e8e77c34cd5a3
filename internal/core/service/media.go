package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

var imageContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
}

func (s Service) UploadImage(
	ctx context.Context, img domain.Image,
) (domain.UploadedImage, error) {
	const op = "Service.UploadImage"

	var v domain.ValidationError
	if !slices.Contains(imageContentTypes, img.ContentType) {
		v.Add("content_type", "must be one of jpeg, png, webp, gif")
	}
	if img.Size == 0 || len(img.Data) == 0 {
		v.Add("file", "is empty")
	}
	if img.Size > s.maxImageBytes {
		v.Add("file", fmt.Sprintf("exceeds %d bytes", s.maxImageBytes))
	}
	if err := v.Err(); err != nil {
		return domain.UploadedImage{}, fmt.Errorf("%s: %w", op, err)
	}

	uploaded, err := s.backend.UploadImage(ctx, img)
	if err != nil {
		return domain.UploadedImage{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventCreated, domain.EntityImage, uploaded.URL, nil)
	return uploaded, nil
}

func (s Service) DeleteImage(ctx context.Context, url string) error {
	const op = "Service.DeleteImage"

	if url == "" {
		return fmt.Errorf("%s: %w", op, domain.Invalid("url", "is required"))
	}

	if err := s.backend.DeleteImage(ctx, url); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventDeleted, domain.EntityImage, url, nil)
	return nil
}
