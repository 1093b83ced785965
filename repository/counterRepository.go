package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterRepository hands out sequential integer ids per collection.
type CounterRepository struct {
	mongoClient *mongo.Client
	dbName      string
}

func NewCounterRepository(mongoClient *mongo.Client, dbName string) *CounterRepository {
	return &CounterRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
	}
}

func (r *CounterRepository) NextID(ctx context.Context, name string) (int64, error) {
	return r.NextIDs(ctx, name, 1)
}

// NextIDs reserves n consecutive ids and returns the first one.
func (r *CounterRepository) NextIDs(ctx context.Context, name string, n int) (int64, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(countersCollection)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true)

	result := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(n)}},
		opts,
	)
	if result.Err() != nil {
		return 0, fmt.Errorf("next %d %s ids: %w", n, name, result.Err())
	}

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := result.Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq - int64(n) + 1, nil
}
