package repository

import (
	"context"

	"github.com/joeyave/scala-booking/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProfileRepository struct {
	mongoClient *mongo.Client
	dbName      string
}

func NewProfileRepository(mongoClient *mongo.Client, dbName string) *ProfileRepository {
	return &ProfileRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
	}
}

// FindManyByUserID returns the user's organization profiles, oldest first.
func (r *ProfileRepository) FindManyByUserID(ctx context.Context, userID int64) ([]*entity.Profile, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(profilesCollection)

	pipeline := bson.A{
		bson.M{
			"$match": bson.M{"userId": userID},
		},
		bson.M{
			"$sort": bson.M{
				"_id": 1,
			},
		},
		bson.M{
			"$lookup": bson.M{
				"from":         teamsCollection,
				"localField":   "organizationId",
				"foreignField": "_id",
				"as":           "organization",
			},
		},
		bson.M{
			"$unwind": bson.M{
				"path":                       "$organization",
				"preserveNullAndEmptyArrays": true,
			},
		},
	}

	return aggregate[entity.Profile](ctx, collection, pipeline)
}
