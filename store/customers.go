package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetpencilbd/api/models"
)

type CustomerStore struct {
	coll *mongo.Collection
}

// Upsert inserts the customer or, when the (name, mobile) pair already
// exists, merges the mutable fields into the stored record and stamps an
// update time. A single upsert write, backed by the unique (name, mobile)
// index, so concurrent submissions of a new pair cannot duplicate it.
// Returns the record id and whether a new record was created.
func (s *CustomerStore) Upsert(ctx context.Context, c models.Customer) (string, bool, error) {
	// BSON datetimes carry millisecond precision; truncate so the stamped
	// value round-trips exactly and the created check below holds.
	now := time.Now().UTC().Truncate(time.Millisecond)

	set := bson.M{"updatedAt": now}
	if c.Address != "" {
		set["address"] = c.Address
	}
	if c.Email != "" {
		set["email"] = c.Email
	}

	filter := bson.M{"name": c.Name, "mobile": c.Mobile}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"name": c.Name, "mobile": c.Mobile, "createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.Customer
	if err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return "", false, err
	}
	return out.ID.Hex(), out.CreatedAt.Equal(now), nil
}

func (s *CustomerStore) All(ctx context.Context) ([]models.Customer, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	customers := []models.Customer{}
	if err := cur.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomerStore) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, s.coll, id)
}
