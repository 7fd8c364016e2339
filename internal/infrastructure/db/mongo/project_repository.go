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
	"github.com/mosadie/charity-api/internal/core/ports"
)

const collectionProjects = "projects"

// ProjectRepository persists charity projects.
type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

type projectDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"project_name"`
	Description string    `bson:"description"`
	Status      string    `bson:"status"`
	Start       string    `bson:"project_start"`
	End         *string   `bson:"project_end,omitempty"`
	Budget      float64   `bson:"project_budget"`
	ImageURL    *string   `bson:"image_url,omitempty"`
	CreatedBy   *string   `bson:"created_by,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d projectDoc) toDomain() *domain.Project {
	p := &domain.Project{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Status:      domain.ProjectStatus(d.Status),
		Start:       d.Start,
		Budget:      d.Budget,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.End != nil {
		p.End = *d.End
	}
	if d.ImageURL != nil {
		p.ImageURL = *d.ImageURL
	}
	if d.CreatedBy != nil {
		p.CreatedBy = *d.CreatedBy
	}
	return p
}

func fromDomainProject(p *domain.Project) projectDoc {
	d := projectDoc{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		Start:       p.Start,
		Budget:      p.Budget,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.End != "" {
		d.End = &p.End
	}
	if p.ImageURL != "" {
		d.ImageURL = &p.ImageURL
	}
	if p.CreatedBy != "" {
		d.CreatedBy = &p.CreatedBy
	}
	return d
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, fromDomainProject(p)); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d projectDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return d.toDomain(), nil
}

func (r *ProjectRepository) List(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var projects []*domain.Project
	for cur.Next(ctx) {
		var d projectDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, d.toDomain())
	}
	return projects, cur.Err()
}

// Update applies a $set containing only the fields present in input; a
// pointer to the empty string clears the optional project_end / image_url
// columns.
func (r *ProjectRepository) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if input.Name != nil {
		set["project_name"] = *input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Status != nil {
		set["status"] = string(*input.Status)
	}
	if input.Start != nil {
		set["project_start"] = *input.Start
	}
	if input.End != nil {
		if *input.End == "" {
			set["project_end"] = nil
		} else {
			set["project_end"] = *input.End
		}
	}
	if input.Budget != nil {
		set["project_budget"] = *input.Budget
	}
	if input.ImageURL != nil {
		if *input.ImageURL == "" {
			set["image_url"] = nil
		} else {
			set["image_url"] = *input.ImageURL
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d projectDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return d.toDomain(), nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the projects collection.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
