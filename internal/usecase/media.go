package usecase

import (
	"context"
	"strings"

	"github.com/polkiloo/ecomlite/internal/adapter/media"
	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
)

// MediaUseCase guards image uploads before they reach the media host.
type MediaUseCase struct {
	store media.Store
}

// NewMediaUseCase constructs MediaUseCase.
func NewMediaUseCase(store media.Store) *MediaUseCase {
	return &MediaUseCase{store: store}
}

// Upload rejects empty, oversized and non-image payloads without a network call.
func (u *MediaUseCase) Upload(ctx context.Context, img model.ImageUpload) (*model.StoredImage, error) {
	if len(img.Data) == 0 {
		return nil, domainErrors.ErrNoFile
	}
	if !strings.HasPrefix(img.ContentType, "image") {
		return nil, domainErrors.ErrNotAnImage
	}
	if len(img.Data) > model.MaxImageSize {
		return nil, domainErrors.ErrFileTooLarge
	}
	return u.store.Upload(ctx, img)
}

// Delete removes an image by its public id.
func (u *MediaUseCase) Delete(ctx context.Context, publicID string) error {
	publicID = strings.Trim(publicID, "/")
	if publicID == "" {
		return domainErrors.ErrMediaNotFound
	}
	return u.store.Delete(ctx, publicID)
}
