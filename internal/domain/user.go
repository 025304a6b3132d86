package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   *Address           `bson:"address,omitempty" json:"address,omitempty"`
	Wishlist  []string           `bson:"wishlist" json:"wishlist"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Address doubles as a user's saved address and an order's shipping
// address. Name and Phone are only required on the latter.
type Address struct {
	Name       string `bson:"name,omitempty" json:"name,omitempty"`
	Street     string `bson:"street" json:"street"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
}
