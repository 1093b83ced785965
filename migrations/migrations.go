package migrations

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type index struct {
	collection string
	keys       bson.D
}

// uniqueIndexes back the slug, membership and uid lookups with uniqueness the repositories
// report as CONFLICT.
var uniqueIndexes = []index{
	{collection: "attributes", keys: bson.D{{"teamId", 1}, {"slug", 1}}},
	{collection: "bookings", keys: bson.D{{"uid", 1}}},
	{collection: "eventTypes", keys: bson.D{{"userId", 1}, {"teamId", 1}, {"slug", 1}}},
	{collection: "memberships", keys: bson.D{{"teamId", 1}, {"userId", 1}}},
	{collection: "profiles", keys: bson.D{{"organizationId", 1}, {"username", 1}}},
	{collection: "teams", keys: bson.D{{"parentId", 1}, {"slug", 1}}},
}

// lookupIndexes speed up the foreign key lookups of the aggregation pipelines.
var lookupIndexes = []index{
	{collection: "eventTypes", keys: bson.D{{"parentId", 1}}},
	{collection: "eventTypeCustomInputs", keys: bson.D{{"eventTypeId", 1}}},
	{collection: "memberships", keys: bson.D{{"userId", 1}}},
	{collection: "profiles", keys: bson.D{{"userId", 1}}},
}

// EnsureIndexes creates the indexes the application relies on. Existing indexes are left as they are.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)

	for _, idx := range uniqueIndexes {
		name, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    idx.keys,
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("create unique index on %s: %w", idx.collection, err)
		}
		log.Debug().Str("collection", idx.collection).Str("index", name).Msg("Ensured unique index.")
	}

	for _, idx := range lookupIndexes {
		name, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: idx.keys})
		if err != nil {
			return fmt.Errorf("create index on %s: %w", idx.collection, err)
		}
		log.Debug().Str("collection", idx.collection).Str("index", name).Msg("Ensured index.")
	}

	return nil
}
