package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductStore accesses the products collection. Products carry free-form
// fields on top of the core schema, so they move through this layer as
// raw documents rather than structs.
type ProductStore struct {
	coll *mongo.Collection
}

// Create inserts a new product document. Any client-supplied _id is
// discarded and a creation timestamp is stamped server-side.
func (s *ProductStore) Create(ctx context.Context, doc map[string]any) (string, error) {
	delete(doc, "_id")
	doc["createdAt"] = time.Now().UTC()

	res, err := s.coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *ProductStore) All(ctx context.Context) ([]map[string]any, error) {
	return findDocs(ctx, s.coll, bson.M{}, nil)
}

func (s *ProductStore) ByCategory(ctx context.Context, category string) ([]map[string]any, error) {
	return findDocs(ctx, s.coll, categoryFilter(category), nil)
}

// Page returns one window of the optionally category-filtered listing and
// the total count of documents matching the filter. The count honors the
// filter, not the window.
func (s *ProductStore) Page(ctx context.Context, category string, page Page) ([]map[string]any, int64, error) {
	filter := categoryFilter(category)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSkip(page.Skip()).SetLimit(page.Limit())
	docs, err := findDocs(ctx, s.coll, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (s *ProductStore) Get(ctx context.Context, id string) (map[string]any, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Update applies a field-set merge: supplied fields replace stored values,
// everything else is untouched. The _id field is always stripped so the
// document's identity cannot change. NotFound only when nothing matched;
// a matched document with no effective change is still a success.
func (s *ProductStore) Update(ctx context.Context, id string, fields map[string]any) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	delete(fields, "_id")
	if len(fields) == 0 {
		return ErrEmptyUpdate
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, s.coll, id)
}

func (s *ProductStore) EstimatedCount(ctx context.Context) (int64, error) {
	return s.coll.EstimatedDocumentCount(ctx)
}

func categoryFilter(category string) bson.M {
	if category == "" {
		return bson.M{}
	}
	return bson.M{"category": category}
}
