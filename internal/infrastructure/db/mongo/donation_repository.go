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

const (
	collectionDonations = "donations"
	collectionDonators  = "donators"
)

// DonationRepository persists donations and donator rows.
type DonationRepository struct {
	donations *mongo.Collection
	donators  *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{
		donations: db.Collection(collectionDonations),
		donators:  db.Collection(collectionDonators),
	}
}

type donationDoc struct {
	ID           string    `bson:"_id"`
	Amount       float64   `bson:"amount"`
	DonatorID    *string   `bson:"donator_id,omitempty"`
	ProjectID    *string   `bson:"project_id,omitempty"`
	Message      *string   `bson:"message,omitempty"`
	DonationDate time.Time `bson:"donation_date"`
	CreatedAt    time.Time `bson:"created_at"`
}

type donatorDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	Phone        *string   `bson:"phone,omitempty"`
	TotalDonated float64   `bson:"total_donated"`
	IsAnonymous  bool      `bson:"is_anonymous"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d donationDoc) toDomain() *domain.Donation {
	don := &domain.Donation{
		ID:           d.ID,
		Amount:       d.Amount,
		DonationDate: d.DonationDate,
		CreatedAt:    d.CreatedAt,
	}
	if d.DonatorID != nil {
		don.DonatorID = *d.DonatorID
	}
	if d.ProjectID != nil {
		don.ProjectID = *d.ProjectID
	}
	if d.Message != nil {
		don.Message = *d.Message
	}
	return don
}

func (d donatorDoc) toDomain() *domain.Donator {
	donator := &domain.Donator{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		TotalDonated: d.TotalDonated,
		IsAnonymous:  d.IsAnonymous,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.Phone != nil {
		donator.Phone = *d.Phone
	}
	return donator
}

func (r *DonationRepository) InsertDonation(ctx context.Context, d *domain.Donation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := donationDoc{
		ID:           d.ID,
		Amount:       d.Amount,
		DonationDate: d.DonationDate,
		CreatedAt:    d.CreatedAt,
	}
	if d.DonatorID != "" {
		doc.DonatorID = &d.DonatorID
	}
	if d.ProjectID != "" {
		doc.ProjectID = &d.ProjectID
	}
	if d.Message != "" {
		doc.Message = &d.Message
	}
	if _, err := r.donations.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// UpsertDonator matches on email, inserting the row on first sight, and adds
// amount to the running total in the same atomic operation.
func (r *DonationRepository) UpsertDonator(ctx context.Context, donator *domain.Donator, amount float64) (*domain.Donator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"total_donated": amount},
		"$set": bson.M{
			"name":         donator.Name,
			"is_anonymous": donator.IsAnonymous,
			"updated_at":   time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id":        donator.ID,
			"email":      donator.Email,
			"created_at": donator.CreatedAt,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var d donatorDoc
	err := r.donators.FindOneAndUpdate(ctx, bson.M{"email": donator.Email}, update, opts).Decode(&d)
	if err != nil {
		return nil, fmt.Errorf("upsert donator: %w", err)
	}
	return d.toDomain(), nil
}

func (r *DonationRepository) ListDonations(ctx context.Context) ([]*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "donation_date", Value: -1}})
	cur, err := r.donations.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer cur.Close(ctx)

	var donations []*domain.Donation
	for cur.Next(ctx) {
		var d donationDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode donation: %w", err)
		}
		donations = append(donations, d.toDomain())
	}
	return donations, cur.Err()
}

func (r *DonationRepository) ListDonators(ctx context.Context) ([]*domain.Donator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "total_donated", Value: -1}})
	cur, err := r.donators.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list donators: %w", err)
	}
	defer cur.Close(ctx)

	var donators []*domain.Donator
	for cur.Next(ctx) {
		var d donatorDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode donator: %w", err)
		}
		donators = append(donators, d.toDomain())
	}
	return donators, cur.Err()
}

// EnsureIndexes creates necessary indexes on the donators collection.
func (r *DonationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.donators.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
