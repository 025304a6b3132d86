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

type mongoUserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{collection: db.Collection(usersCollection)}
}

func (m *mongoUserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Wishlist == nil {
		user.Wishlist = []string{}
	}

	result, err := m.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	id := result.InsertedID.(primitive.ObjectID)
	user.ID = id
	return id.Hex(), nil
}

func (m *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := m.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

func (m *mongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user domain.User
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (m *mongoUserRepository) List(ctx context.Context, filter UserFilter) ([]domain.User, int64, error) {
	query := bson.M{"role": domain.RoleCustomer}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	skip := int64((filter.Page - 1) * filter.Limit)
	opts := options.Find().SetSkip(skip).SetLimit(int64(filter.Limit))

	cursor, err := m.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("failed to decode users: %w", err)
	}

	total, err := m.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	return users, total, nil
}

func (m *mongoUserRepository) AddToWishlist(ctx context.Context, userID, productID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{
		"$addToSet": bson.M{"wishlist": productID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *mongoUserRepository) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{
		"$pull": bson.M{"wishlist": productID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to remove from wishlist: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
