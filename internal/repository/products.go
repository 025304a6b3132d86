package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abdo0vuln/e-commerce/internal/domain"
)

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{collection: db.Collection(productsCollection)}
}

func (m *mongoProductRepository) Create(ctx context.Context, product *domain.Product) (string, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := m.collection.InsertOne(ctx, product)
	if err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}

	id := result.InsertedID.(primitive.ObjectID)
	product.ID = id
	return id.Hex(), nil
}

func (m *mongoProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var product domain.Product
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (m *mongoProductRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue // stale wishlist entries are skipped, not fatal
		}
		oids = append(oids, oid)
	}

	cursor, err := m.collection.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func buildProductQuery(filter ProductFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Featured {
		query["is_featured"] = true
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}
	return query
}

func (m *mongoProductRepository) List(ctx context.Context, filter ProductFilter) ([]domain.Product, int64, error) {
	query := buildProductQuery(filter)

	skip := int64((filter.Page - 1) * filter.Limit)
	opts := options.Find().SetSkip(skip).SetLimit(int64(filter.Limit))

	cursor, err := m.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("failed to decode products: %w", err)
	}

	total, err := m.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	return products, total, nil
}

func (m *mongoProductRepository) Update(ctx context.Context, id string, product *domain.Product) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":           product.Name,
		"description":    product.Description,
		"price":          product.Price,
		"original_price": product.OriginalPrice,
		"category":       product.Category,
		"subcategory":    product.Subcategory,
		"images":         product.Images,
		"sizes":          product.Sizes,
		"colors":         product.Colors,
		"stock":          product.Stock,
		"sku":            product.SKU,
		"is_new":         product.IsNew,
		"is_featured":    product.IsFeatured,
		"tags":           product.Tags,
		"updated_at":     time.Now(),
	}}

	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *mongoProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *mongoProductRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{
		"$inc": bson.M{"stock": -quantity},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *mongoProductRepository) CountByCategory(ctx context.Context, categoryName string) (int64, error) {
	count, err := m.collection.CountDocuments(ctx, bson.M{"category": categoryName})
	if err != nil {
		return 0, fmt.Errorf("failed to count products by category: %w", err)
	}
	return count, nil
}
