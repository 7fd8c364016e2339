package ports

import (
	"context"

	"github.com/mosadie/charity-api/internal/core/domain"
)

// GalleryRepository defines persistence for gallery images.
type GalleryRepository interface {
	Insert(ctx context.Context, img *domain.GalleryImage) error
	// List returns images newest first; featuredOnly narrows to is_featured.
	List(ctx context.Context, featuredOnly bool) ([]*domain.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

// AddImageInput carries a new gallery image.
type AddImageInput struct {
	Title       string
	Description string
	ImageURL    string
	ProjectID   string
	UploadedBy  string
	IsFeatured  bool
}

// GalleryService manages the public gallery.
type GalleryService interface {
	List(ctx context.Context, featuredOnly bool) ([]*domain.GalleryImage, error)
	Add(ctx context.Context, input AddImageInput) (*domain.GalleryImage, error)
	Remove(ctx context.Context, id string) error
}
