package repository

import (
	"context"

	"github.com/joeyave/scala-booking/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttributeRepository struct {
	mongoClient *mongo.Client
	dbName      string
}

func NewAttributeRepository(mongoClient *mongo.Client, dbName string) *AttributeRepository {
	return &AttributeRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
	}
}

func (r *AttributeRepository) FindManyByTeamID(ctx context.Context, teamID int64, skip, take int) ([]*entity.Attribute, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(attributesCollection)

	pipeline := bson.A{
		bson.M{
			"$match": bson.M{"teamId": teamID},
		},
		bson.M{
			"$sort": bson.M{
				"name": 1,
			},
		},
		bson.M{
			"$skip": skip,
		},
		bson.M{
			"$limit": take,
		},
	}

	attributes, err := aggregate[entity.Attribute](ctx, collection, pipeline)
	if err != nil {
		return nil, err
	}
	if attributes == nil {
		attributes = []*entity.Attribute{}
	}

	return attributes, nil
}

func (r *AttributeRepository) FindOneByTeamIDAndID(ctx context.Context, teamID int64, ID string) (*entity.Attribute, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(attributesCollection)

	result := collection.FindOne(ctx, bson.M{"_id": ID, "teamId": teamID})
	if result.Err() != nil {
		return nil, translate(result.Err(), "Attribute %s not found", ID)
	}

	var attribute *entity.Attribute
	err := result.Decode(&attribute)
	if err != nil {
		return nil, err
	}

	return attribute, nil
}

func (r *AttributeRepository) InsertOne(ctx context.Context, attribute *entity.Attribute) error {
	collection := r.mongoClient.Database(r.dbName).Collection(attributesCollection)

	_, err := collection.InsertOne(ctx, attribute)
	return translate(err, "Attribute with slug %s", attribute.Slug)
}

func (r *AttributeRepository) UpdateOne(ctx context.Context, teamID int64, ID string, update *entity.AttributeUpdate) (*entity.Attribute, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(attributesCollection)

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Slug != nil {
		set["slug"] = *update.Slug
	}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	if update.Enabled != nil {
		set["enabled"] = *update.Enabled
	}
	if len(set) == 0 {
		return r.FindOneByTeamIDAndID(ctx, teamID, ID)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	result := collection.FindOneAndUpdate(ctx, bson.M{"_id": ID, "teamId": teamID}, bson.M{"$set": set}, opts)
	if result.Err() != nil {
		if mongo.IsDuplicateKeyError(result.Err()) {
			return nil, translate(result.Err(), "Attribute with slug %v", set["slug"])
		}
		return nil, translate(result.Err(), "Attribute %s not found", ID)
	}

	var attribute *entity.Attribute
	err := result.Decode(&attribute)
	if err != nil {
		return nil, err
	}

	return attribute, nil
}

// DeleteOne removes the attribute and returns it as it was.
func (r *AttributeRepository) DeleteOne(ctx context.Context, teamID int64, ID string) (*entity.Attribute, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(attributesCollection)

	result := collection.FindOneAndDelete(ctx, bson.M{"_id": ID, "teamId": teamID})
	if result.Err() != nil {
		return nil, translate(result.Err(), "Attribute %s not found", ID)
	}

	var attribute *entity.Attribute
	err := result.Decode(&attribute)
	if err != nil {
		return nil, err
	}

	return attribute, nil
}
