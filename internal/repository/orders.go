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

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{collection: db.Collection(ordersCollection)}
}

func (m *mongoOrderRepository) Count(ctx context.Context) (int64, error) {
	count, err := m.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (m *mongoOrderRepository) Create(ctx context.Context, order *domain.Order) (string, error) {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := m.collection.InsertOne(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}

	id := result.InsertedID.(primitive.ObjectID)
	order.ID = id
	return id.Hex(), nil
}

func (m *mongoOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var order domain.Order
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

func (m *mongoOrderRepository) List(ctx context.Context, filter OrderFilter) ([]domain.Order, int64, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	skip := int64((filter.Page - 1) * filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cursor, err := m.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, fmt.Errorf("failed to decode orders: %w", err)
	}

	total, err := m.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return orders, total, nil
}

func (m *mongoOrderRepository) UpdateStatus(ctx context.Context, id, status, paymentStatus string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{"updated_at": time.Now()}
	if status != "" {
		set["status"] = status
	}
	if paymentStatus != "" {
		set["payment_status"] = paymentStatus
	}

	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
