package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"original_price,omitempty" json:"originalPrice,omitempty"`
	Category      string             `bson:"category" json:"category"`
	Subcategory   string             `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Images        []string           `bson:"images" json:"images"`
	Sizes         []string           `bson:"sizes" json:"sizes"`
	Colors        []string           `bson:"colors" json:"colors"`
	Stock         int                `bson:"stock" json:"stock"`
	SKU           string             `bson:"sku" json:"sku"`
	Rating        float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Reviews       int                `bson:"reviews,omitempty" json:"reviews,omitempty"`
	IsNew         bool               `bson:"is_new" json:"isNew"`
	IsFeatured    bool               `bson:"is_featured" json:"isFeatured"`
	Tags          []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	// ProductCount is computed on read, never stored.
	ProductCount int64     `bson:"-" json:"productCount"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// Pagination is the envelope metadata returned by every listing endpoint.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
