package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to the document-database backend. Records keep their
// application-assigned string ids in an "id" field; the driver's _id is
// ignored.
func OpenMongo(ctx context.Context, uri, database string) (Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &mongoStore{client: client, db: client.Database(database)}, nil
}

func (s *mongoStore) FindOne(ctx context.Context, collection string, filter Filter, out any) error {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	err := s.db.Collection(collection).FindOne(ctx, toBSON(filter), opts).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *mongoStore) FindMany(ctx context.Context, collection string, filter Filter, limit int64, out any) error {
	opts := options.Find().SetProjection(bson.M{"_id": 0})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := s.db.Collection(collection).Find(ctx, toBSON(filter), opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}

func (s *mongoStore) Insert(ctx context.Context, collection string, doc any) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

func (s *mongoStore) Update(ctx context.Context, collection string, filter Filter, patch Patch) (int64, error) {
	update := bson.M{}
	if len(patch.Set) > 0 {
		update["$set"] = bson.M(patch.Set)
	}
	if len(patch.Inc) > 0 {
		inc := bson.M{}
		for k, v := range patch.Inc {
			inc[k] = v
		}
		update["$inc"] = inc
	}
	if len(update) == 0 {
		return s.Count(ctx, collection, filter)
	}
	res, err := s.db.Collection(collection).UpdateMany(ctx, toBSON(filter), update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (s *mongoStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, toBSON(filter))
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func toBSON(f Filter) bson.M {
	m := bson.M{}
	for k, v := range f {
		m[k] = v
	}
	return m
}
