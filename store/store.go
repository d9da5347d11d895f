package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store owns the Mongo client and exposes one repository per collection.
// It is constructed once at startup and injected into the handlers.
type Store struct {
	client *mongo.Client

	Products  *ProductStore
	Orders    *OrderStore
	Customers *CustomerStore
	Users     *UserStore
	Banners   *MediaStore
	Galleries *MediaStore
	Videos    *MediaStore
}

func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(dbName)
	return &Store{
		client:    client,
		Products:  &ProductStore{coll: db.Collection("products")},
		Orders:    &OrderStore{coll: db.Collection("orders")},
		Customers: &CustomerStore{coll: db.Collection("customers")},
		Users:     &UserStore{coll: db.Collection("users")},
		Banners:   NewMediaStore(db, "banners", "bannerImage"),
		Galleries: NewMediaStore(db, "galleries", "galleryImage"),
		Videos:    NewMediaStore(db, "videos", "videos"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the unique (name, mobile) index backing the
// customer upsert, so two concurrent first inserts for the same pair
// cannot both land.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Customers.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "mobile", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func findDocs(ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]map[string]any, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = coll.Find(ctx, filter, opts)
	} else {
		cur, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []map[string]any{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, cur.Err()
}
