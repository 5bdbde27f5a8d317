package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/label-system/internal/core/domain"
)

const DefaultTemplatesCollection = "label_templates"

// TemplateRepository stores one document per template, keyed by name.
type TemplateRepository struct {
	col *mongo.Collection
}

// NewTemplateRepository uses collection, or DefaultTemplatesCollection when empty.
func NewTemplateRepository(db *mongo.Database, collection string) *TemplateRepository {
	if collection == "" {
		collection = DefaultTemplatesCollection
	}
	return &TemplateRepository{col: db.Collection(collection)}
}

func (r *TemplateRepository) Get(ctx context.Context, name string) (*domain.NamedTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.NamedTemplate
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Set upserts by name.
func (r *TemplateRepository) Set(ctx context.Context, t *domain.NamedTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"name": t.Name}, t, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert template %q: %w", t.Name, err)
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// List returns names in ascending order.
func (r *TemplateRepository) List(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"name": 1, "_id": 0}).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Name string `bson:"name"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names, nil
}

func (r *TemplateRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// EnsureIndexes creates the unique name index.
func (r *TemplateRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
