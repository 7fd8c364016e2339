package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mosadie/charity-api/internal/core/domain"
)

const collectionGalleryImages = "gallery_images"

// GalleryRepository persists gallery images.
type GalleryRepository struct {
	col *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{col: db.Collection(collectionGalleryImages)}
}

type galleryDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description *string   `bson:"description,omitempty"`
	ImageURL    string    `bson:"image_url"`
	ProjectID   *string   `bson:"project_id,omitempty"`
	UploadedBy  *string   `bson:"uploaded_by,omitempty"`
	IsFeatured  bool      `bson:"is_featured"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (d galleryDoc) toDomain() *domain.GalleryImage {
	img := &domain.GalleryImage{
		ID:         d.ID,
		Title:      d.Title,
		ImageURL:   d.ImageURL,
		IsFeatured: d.IsFeatured,
		CreatedAt:  d.CreatedAt,
	}
	if d.Description != nil {
		img.Description = *d.Description
	}
	if d.ProjectID != nil {
		img.ProjectID = *d.ProjectID
	}
	if d.UploadedBy != nil {
		img.UploadedBy = *d.UploadedBy
	}
	return img
}

func (r *GalleryRepository) Insert(ctx context.Context, img *domain.GalleryImage) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := galleryDoc{
		ID:         img.ID,
		Title:      img.Title,
		ImageURL:   img.ImageURL,
		IsFeatured: img.IsFeatured,
		CreatedAt:  img.CreatedAt,
	}
	if img.Description != "" {
		doc.Description = &img.Description
	}
	if img.ProjectID != "" {
		doc.ProjectID = &img.ProjectID
	}
	if img.UploadedBy != "" {
		doc.UploadedBy = &img.UploadedBy
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert gallery image: %w", err)
	}
	return nil
}

func (r *GalleryRepository) List(ctx context.Context, featuredOnly bool) ([]*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if featuredOnly {
		filter["is_featured"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	defer cur.Close(ctx)

	var images []*domain.GalleryImage
	for cur.Next(ctx) {
		var d galleryDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode gallery image: %w", err)
		}
		images = append(images, d.toDomain())
	}
	return images, cur.Err()
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}
