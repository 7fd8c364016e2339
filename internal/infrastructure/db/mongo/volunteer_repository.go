package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mosadie/charity-api/internal/core/domain"
)

const collectionVolunteers = "volunteers"

// VolunteerRepository persists volunteer applications.
type VolunteerRepository struct {
	col *mongo.Collection
}

func NewVolunteerRepository(db *mongo.Database) *VolunteerRepository {
	return &VolunteerRepository{col: db.Collection(collectionVolunteers)}
}

type volunteerDoc struct {
	ID           string    `bson:"_id"`
	FirstName    string    `bson:"first_name"`
	LastName     string    `bson:"last_name"`
	Email        string    `bson:"email"`
	Phone        string    `bson:"phone"`
	Interests    []string  `bson:"interests"`
	Availability string    `bson:"availability"`
	Message      *string   `bson:"message,omitempty"`
	Status       string    `bson:"status"`
	ApprovedBy   *string   `bson:"approved_by,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d volunteerDoc) toDomain() *domain.Volunteer {
	v := &domain.Volunteer{
		ID:           d.ID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		Phone:        d.Phone,
		Interests:    d.Interests,
		Availability: d.Availability,
		Status:       domain.VolunteerStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.Message != nil {
		v.Message = *d.Message
	}
	if d.ApprovedBy != nil {
		v.ApprovedBy = *d.ApprovedBy
	}
	return v
}

func (r *VolunteerRepository) Insert(ctx context.Context, v *domain.Volunteer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := volunteerDoc{
		ID:           v.ID,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		Email:        v.Email,
		Phone:        v.Phone,
		Interests:    v.Interests,
		Availability: v.Availability,
		Status:       string(v.Status),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if v.Message != "" {
		doc.Message = &v.Message
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert volunteer: %w", err)
	}
	return nil
}

func (r *VolunteerRepository) List(ctx context.Context) ([]*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	defer cur.Close(ctx)

	var volunteers []*domain.Volunteer
	for cur.Next(ctx) {
		var d volunteerDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode volunteer: %w", err)
		}
		volunteers = append(volunteers, d.toDomain())
	}
	return volunteers, cur.Err()
}

func (r *VolunteerRepository) UpdateStatus(ctx context.Context, id string, status domain.VolunteerStatus, approvedBy string) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}
	if approvedBy != "" {
		set["approved_by"] = approvedBy
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d volunteerDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("update volunteer: %w", err)
	}
	return d.toDomain(), nil
}
