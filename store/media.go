package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MediaStore is one generic accessor instantiated per single-field media
// collection: banners (bannerImage), galleries (galleryImage) and videos
// (videos). Each document holds exactly one URL under the configured
// field name.
type MediaStore struct {
	coll  *mongo.Collection
	field string
}

func NewMediaStore(db *mongo.Database, collection, field string) *MediaStore {
	return &MediaStore{coll: db.Collection(collection), field: field}
}

func (s *MediaStore) Create(ctx context.Context, url string) (string, error) {
	res, err := s.coll.InsertOne(ctx, bson.M{s.field: url})
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *MediaStore) All(ctx context.Context) ([]map[string]any, error) {
	return findDocs(ctx, s.coll, bson.M{}, nil)
}

func (s *MediaStore) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, s.coll, id)
}
