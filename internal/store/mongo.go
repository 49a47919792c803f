package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodipy/foodipy/config"
)

// mongoDriver keeps each collection as a single document keyed by _id
// in a "records" collection.
type mongoDriver struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type mongoRecord struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

func newMongoDriver() (Driver, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI()))
	if err != nil {
		return nil, fmt.Errorf("store/mongo: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store/mongo: ping: %w", err)
	}

	return &mongoDriver{
		client: client,
		coll:   client.Database(config.MongoDB()).Collection("records"),
	}, nil
}

func (d *mongoDriver) Get(key string) ([]byte, error) {
	var rec mongoRecord
	err := d.coll.FindOne(context.Background(), bson.M{"_id": key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("store/mongo: get %s: %w", key, err)
	}
	return rec.Value, nil
}

func (d *mongoDriver) Put(key string, value []byte) error {
	_, err := d.coll.ReplaceOne(
		context.Background(),
		bson.M{"_id": key},
		mongoRecord{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("store/mongo: put %s: %w", key, err)
	}
	return nil
}

func (d *mongoDriver) Delete(key string) error {
	if _, err := d.coll.DeleteOne(context.Background(), bson.M{"_id": key}); err != nil {
		return fmt.Errorf("store/mongo: delete %s: %w", key, err)
	}
	return nil
}

func (d *mongoDriver) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}
