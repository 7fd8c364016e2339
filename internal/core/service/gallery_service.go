package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mosadie/charity-api/internal/core/domain"
	"github.com/mosadie/charity-api/internal/core/ports"
)

// GalleryService manages the public image gallery.
type GalleryService struct {
	repo ports.GalleryRepository
	log  zerolog.Logger
}

func NewGalleryService(repo ports.GalleryRepository, log zerolog.Logger) *GalleryService {
	return &GalleryService{repo: repo, log: log}
}

func (s *GalleryService) List(ctx context.Context, featuredOnly bool) ([]*domain.GalleryImage, error) {
	return s.repo.List(ctx, featuredOnly)
}

func (s *GalleryService) Add(ctx context.Context, in ports.AddImageInput) (*domain.GalleryImage, error) {
	img := &domain.GalleryImage{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		ProjectID:   in.ProjectID,
		UploadedBy:  in.UploadedBy,
		IsFeatured:  in.IsFeatured,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, img); err != nil {
		return nil, err
	}
	s.log.Info().Str("image_id", img.ID).Str("uploaded_by", in.UploadedBy).Msg("gallery image added")
	return img, nil
}

func (s *GalleryService) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
