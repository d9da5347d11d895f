package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account provisioned outside this API. The password is stored
// verbatim for legacy records and must never serialize to clients.
type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
}

// StatusPending is the only order status this service ever writes; there
// is no transition endpoint.
const StatusPending = "pending"

type Order struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CustomerName string             `json:"customerName" bson:"customerName"`
	Phone        string             `json:"phone" bson:"phone"`
	Address      string             `json:"address" bson:"address"`
	ProductName  string             `json:"productName" bson:"productName"`
	ProductPrice float64            `json:"productPrice" bson:"productPrice"`
	Quantity     int                `json:"quantity" bson:"quantity"`
	CourierFee   float64            `json:"courierFee,omitempty" bson:"courierFee,omitempty"`
	TotalCost    float64            `json:"totalCost" bson:"totalCost"`
	OrderDate    time.Time          `json:"orderDate" bson:"orderDate"`
	Status       string             `json:"status" bson:"status"`
}

// Customer is keyed by (Name, Mobile); submitting the same pair again
// updates the stored record instead of inserting a duplicate.
type Customer struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Mobile    string             `json:"mobile" bson:"mobile"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
