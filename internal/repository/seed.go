package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/abdo0vuln/e-commerce/internal/domain"
)

// Seed wipes the four collections and loads demo data. Development
// only; the handler refuses to call it in production.
func Seed(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{productsCollection, usersCollection, categoriesCollection, ordersCollection} {
		if _, err := db.Collection(name).DeleteMany(ctx, map[string]interface{}{}); err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}

	now := time.Now()

	categories := []interface{}{
		domain.Category{Name: "Traditional", Slug: "traditional", Description: "Traditional Algerian clothing", CreatedAt: now, UpdatedAt: now},
		domain.Category{Name: "Modern", Slug: "modern", Description: "Modern fashion with Algerian touch", CreatedAt: now, UpdatedAt: now},
		domain.Category{Name: "Hijab", Slug: "hijab", Description: "Hijab and modest wear collection", CreatedAt: now, UpdatedAt: now},
		domain.Category{Name: "Abaya", Slug: "abaya", Description: "Elegant abaya collection", CreatedAt: now, UpdatedAt: now},
	}
	if _, err := db.Collection(categoriesCollection).InsertMany(ctx, categories); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	products := []interface{}{
		domain.Product{
			Name: "Karakou Algérois", Description: "Hand-embroidered velvet jacket with sarouel",
			Price: 25000, OriginalPrice: 32000, Category: "Traditional",
			Images: []string{"/uploads/karakou.jpg"}, Sizes: []string{"S", "M", "L"},
			Colors: []string{"Black", "Burgundy"}, Stock: 12, SKU: "TRAD-KAR-001",
			IsFeatured: true, CreatedAt: now, UpdatedAt: now,
		},
		domain.Product{
			Name: "Premium Jersey Hijab", Description: "Soft stretch jersey, no-snag finish",
			Price: 1200, Category: "Hijab",
			Images: []string{"/uploads/jersey-hijab.jpg"}, Sizes: []string{"One Size"},
			Colors: []string{"Beige", "Navy", "Olive"}, Stock: 150, SKU: "HIJ-JER-001",
			IsNew: true, CreatedAt: now, UpdatedAt: now,
		},
		domain.Product{
			Name: "Classic Black Abaya", Description: "Flowing crepe abaya with pockets",
			Price: 6500, OriginalPrice: 8000, Category: "Abaya",
			Images: []string{"/uploads/abaya-classic.jpg"}, Sizes: []string{"52", "54", "56", "58"},
			Colors: []string{"Black"}, Stock: 40, SKU: "ABA-CLA-001",
			IsFeatured: true, CreatedAt: now, UpdatedAt: now,
		},
		domain.Product{
			Name: "Modern Linen Blazer", Description: "Tailored linen blazer with Amazigh-motif lining",
			Price: 9800, Category: "Modern",
			Images: []string{"/uploads/linen-blazer.jpg"}, Sizes: []string{"S", "M", "L", "XL"},
			Colors: []string{"Sand", "White"}, Stock: 25, SKU: "MOD-BLA-001",
			IsNew: true, CreatedAt: now, UpdatedAt: now,
		},
	}
	if _, err := db.Collection(productsCollection).InsertMany(ctx, products); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := domain.User{
		Name:     "Admin",
		Email:    "admin@algerianstyle.dz",
		Password: string(hash),
		Role:     domain.RoleAdmin,
		Wishlist: []string{},
		CreatedAt: now, UpdatedAt: now,
	}
	if _, err := db.Collection(usersCollection).InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
