package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/abdo0vuln/e-commerce/internal/domain"
)

type mongoCategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepository{collection: db.Collection(categoriesCollection)}
}

func (m *mongoCategoryRepository) Create(ctx context.Context, category *domain.Category) (string, error) {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	result, err := m.collection.InsertOne(ctx, category)
	if err != nil {
		return "", fmt.Errorf("failed to insert category: %w", err)
	}

	id := result.InsertedID.(primitive.ObjectID)
	category.ID = id
	return id.Hex(), nil
}

func (m *mongoCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var category domain.Category
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

func (m *mongoCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	cursor, err := m.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := []domain.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (m *mongoCategoryRepository) Update(ctx context.Context, id string, category *domain.Category) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        category.Name,
		"slug":        category.Slug,
		"description": category.Description,
		"image":       category.Image,
		"updated_at":  time.Now(),
	}}

	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *mongoCategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
