package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetpencilbd/api/models"
)

type OrderStore struct {
	coll *mongo.Collection
}

// Create inserts a new order. The order date is server-assigned and the
// status defaults to pending.
func (s *OrderStore) Create(ctx context.Context, o models.Order) (string, error) {
	o.ID = primitive.NilObjectID
	o.OrderDate = time.Now().UTC()
	if o.Status == "" {
		o.Status = models.StatusPending
	}

	res, err := s.coll.InsertOne(ctx, o)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Page returns one window of the optionally status-filtered listing and
// the total count of orders matching the filter.
func (s *OrderStore) Page(ctx context.Context, status string, page Page) ([]models.Order, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSkip(page.Skip()).SetLimit(page.Limit())
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *OrderStore) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, s.coll, id)
}
