package domain

import (
	"errors"
	"time"
)

var ErrImageNotFound = errors.New("gallery image not found")

// GalleryImage is a photo shown on the public gallery page.
type GalleryImage struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
	ProjectID   string    `json:"project_id,omitempty"`
	UploadedBy  string    `json:"uploaded_by,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
}
