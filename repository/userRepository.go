package repository

import (
	"context"

	"github.com/joeyave/scala-booking/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	mongoClient *mongo.Client
	dbName      string
}

func NewUserRepository(mongoClient *mongo.Client, dbName string) *UserRepository {
	return &UserRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
	}
}

func (r *UserRepository) FindOneByID(ctx context.Context, ID int64) (*entity.User, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(usersCollection)

	result := collection.FindOne(ctx, bson.M{"_id": ID})
	if result.Err() != nil {
		return nil, translate(result.Err(), "User %d not found", ID)
	}

	var user *entity.User
	err := result.Decode(&user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// FindOneByUsername finds a user by their profile username inside an organization,
// or by their own username when orgID is nil.
func (r *UserRepository) FindOneByUsername(ctx context.Context, username string, orgID *int64) (*entity.User, error) {
	db := r.mongoClient.Database(r.dbName)

	if orgID == nil {
		result := db.Collection(usersCollection).FindOne(ctx, bson.M{"username": username, "organizationId": nil})
		if result.Err() != nil {
			return nil, translate(result.Err(), "User %s not found", username)
		}

		var user *entity.User
		err := result.Decode(&user)
		if err != nil {
			return nil, err
		}
		return user, nil
	}

	pipeline := bson.A{
		bson.M{
			"$match": bson.M{
				"organizationId": *orgID,
				"username":       username,
			},
		},
		bson.M{
			"$lookup": bson.M{
				"from":         usersCollection,
				"localField":   "userId",
				"foreignField": "_id",
				"as":           "user",
			},
		},
		bson.M{
			"$unwind": "$user",
		},
		bson.M{
			"$replaceRoot": bson.M{"newRoot": "$user"},
		},
		bson.M{
			"$limit": 1,
		},
	}

	users, err := aggregate[entity.User](ctx, db.Collection(profilesCollection), pipeline)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, translate(mongo.ErrNoDocuments, "User %s not found", username)
	}

	return users[0], nil
}
