package repository

import (
	"context"

	"github.com/joeyave/scala-booking/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EventTypeRepository struct {
	mongoClient *mongo.Client
	dbName      string
}

func NewEventTypeRepository(mongoClient *mongo.Client, dbName string) *EventTypeRepository {
	return &EventTypeRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
	}
}

func (r *EventTypeRepository) FindOneByID(ctx context.Context, ID int64) (*entity.EventType, error) {
	eventTypes, err := r.find(ctx, bson.M{"_id": ID})
	if err != nil {
		return nil, err
	}
	if len(eventTypes) == 0 {
		return nil, translate(mongo.ErrNoDocuments, "Event type %d not found", ID)
	}

	return eventTypes[0], nil
}

// FindOneByIDWithAccess loads only what authorization needs: direct users and team members.
func (r *EventTypeRepository) FindOneByIDWithAccess(ctx context.Context, ID int64) (*entity.EventType, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(eventTypesCollection)

	pipeline := bson.A{
		bson.M{
			"$match": bson.M{"_id": ID},
		},
	}
	pipeline = append(pipeline, lookupOrdered(usersCollection, "userIds", "users")...)
	pipeline = append(pipeline, lookupTeam()...)

	eventTypes, err := aggregate[entity.EventType](ctx, collection, pipeline)
	if err != nil {
		return nil, err
	}
	if len(eventTypes) == 0 {
		return nil, translate(mongo.ErrNoDocuments, "Event type %d not found", ID)
	}

	return eventTypes[0], nil
}

func (r *EventTypeRepository) FindManyByUserID(ctx context.Context, userID int64) ([]*entity.EventType, error) {
	return r.find(ctx,
		bson.M{
			"userId": userID,
			"teamId": nil,
		},
		bson.M{
			"$sort": bson.D{
				{Key: "position", Value: -1},
				{Key: "_id", Value: 1},
			},
		},
	)
}

// FindManyByTeamIDs returns the teams' event types without their managed children.
func (r *EventTypeRepository) FindManyByTeamIDs(ctx context.Context, teamIDs []int64) ([]*entity.EventType, error) {
	if len(teamIDs) == 0 {
		return []*entity.EventType{}, nil
	}
	return r.find(ctx,
		bson.M{
			"teamId":   bson.M{"$in": teamIDs},
			"parentId": nil,
		},
		bson.M{
			"$sort": bson.D{
				{Key: "position", Value: -1},
				{Key: "_id", Value: 1},
			},
		},
	)
}

func (r *EventTypeRepository) FindOneByTeamIDAndSlug(ctx context.Context, teamID int64, slug string) (*entity.EventType, error) {
	eventTypes, err := r.find(ctx, bson.M{"teamId": teamID, "slug": slug})
	if err != nil {
		return nil, err
	}
	if len(eventTypes) == 0 {
		return nil, translate(mongo.ErrNoDocuments, "Event type %s not found", slug)
	}

	return eventTypes[0], nil
}

func (r *EventTypeRepository) FindOneByUserIDAndSlug(ctx context.Context, userID int64, slug string) (*entity.EventType, error) {
	eventTypes, err := r.find(ctx, bson.M{"userId": userID, "teamId": nil, "slug": slug})
	if err != nil {
		return nil, err
	}
	if len(eventTypes) == 0 {
		return nil, translate(mongo.ErrNoDocuments, "Event type %s not found", slug)
	}

	return eventTypes[0], nil
}

func (r *EventTypeRepository) FindSlugsByTeamID(ctx context.Context, teamID int64) ([]string, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(eventTypesCollection)

	values, err := collection.Distinct(ctx, "slug", bson.M{"teamId": teamID, "parentId": nil})
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(values))
	for _, v := range values {
		if slug, ok := v.(string); ok {
			slugs = append(slugs, slug)
		}
	}
	return slugs, nil
}

func (r *EventTypeRepository) find(ctx context.Context, m bson.M, opts ...bson.M) ([]*entity.EventType, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(eventTypesCollection)

	pipeline := bson.A{
		bson.M{
			"$match": m,
		},
	}
	for _, o := range opts {
		pipeline = append(pipeline, o)
	}

	pipeline = append(pipeline, lookupOrdered(usersCollection, "userIds", "users")...)
	pipeline = append(pipeline, lookupHostUsers()...)
	pipeline = append(pipeline, lookupTeam()...)
	pipeline = append(pipeline,
		bson.M{
			"$lookup": bson.M{
				"from": eventTypesCollection,
				"let":  bson.M{"parentId": "$_id"},
				"pipeline": append(bson.A{
					bson.M{
						"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$parentId", "$$parentId"}}},
					},
					bson.M{
						"$sort": bson.M{"_id": 1},
					},
				}, lookupOrdered(usersCollection, "userIds", "users")...),
				"as": "children",
			},
		},
		bson.M{
			"$lookup": bson.M{
				"from": customInputsCollection,
				"let":  bson.M{"eventTypeId": "$_id"},
				"pipeline": bson.A{
					bson.M{
						"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$eventTypeId", "$$eventTypeId"}}},
					},
					bson.M{
						"$sort": bson.M{"_id": 1},
					},
				},
				"as": "customInputs",
			},
		},
	)

	return aggregate[entity.EventType](ctx, collection, pipeline)
}

// lookupHostUsers attaches each host's user to the host itself.
func lookupHostUsers() bson.A {
	return bson.A{
		bson.M{
			"$lookup": bson.M{
				"from":         usersCollection,
				"localField":   "hosts.userId",
				"foreignField": "_id",
				"as":           "hostUsers",
			},
		},
		bson.M{
			"$addFields": bson.M{
				"hosts": bson.M{
					"$map": bson.M{
						"input": bson.M{"$ifNull": bson.A{"$hosts", bson.A{}}},
						"as":    "host",
						"in": bson.M{
							"$mergeObjects": bson.A{
								"$$host",
								bson.M{
									"user": bson.M{
										"$first": bson.M{
											"$filter": bson.M{
												"input": "$hostUsers",
												"as":    "user",
												"cond":  bson.M{"$eq": bson.A{"$$user._id", "$$host.userId"}},
											},
										},
									},
								},
							},
						},
					},
				},
				"hostUsers": "$$REMOVE",
			},
		},
	}
}

// lookupTeam attaches the owning team together with its memberships.
func lookupTeam() bson.A {
	return bson.A{
		bson.M{
			"$lookup": bson.M{
				"from": teamsCollection,
				"let":  bson.M{"teamId": "$teamId"},
				"pipeline": bson.A{
					bson.M{
						"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$_id", "$$teamId"}}},
					},
					bson.M{
						"$lookup": bson.M{
							"from":         membershipsCollection,
							"localField":   "_id",
							"foreignField": "teamId",
							"as":           "members",
						},
					},
				},
				"as": "team",
			},
		},
		bson.M{
			"$unwind": bson.M{
				"path":                       "$team",
				"preserveNullAndEmptyArrays": true,
			},
		},
	}
}

func (r *EventTypeRepository) UpdateOne(ctx context.Context, ID int64, update *entity.EventTypeUpdate) error {
	collection := r.mongoClient.Database(r.dbName).Collection(eventTypesCollection)

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Slug != nil {
		set["slug"] = *update.Slug
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Length != nil {
		set["length"] = *update.Length
	}
	if update.Hidden != nil {
		set["hidden"] = *update.Hidden
	}
	if update.UserIDs != nil {
		set["userIds"] = update.UserIDs
	}
	if update.Hosts != nil {
		set["hosts"] = update.Hosts
	}
	if update.PeriodType != nil {
		set["periodType"] = *update.PeriodType
	}
	if update.SchedulingType != nil {
		set["schedulingType"] = *update.SchedulingType
	}
	if update.Metadata != nil {
		set["metadata"] = update.Metadata
	}
	if update.BookingFields != nil {
		set["bookingFields"] = update.BookingFields
	}

	if len(set) == 0 {
		_, err := r.FindOneByIDWithAccess(ctx, ID)
		return err
	}

	result, err := collection.UpdateOne(ctx, bson.M{"_id": ID}, bson.M{"$set": set})
	if err != nil {
		return translate(err, "Event type with slug %v", set["slug"])
	}
	if result.MatchedCount == 0 {
		return translate(mongo.ErrNoDocuments, "Event type %d not found", ID)
	}

	return nil
}

// DeleteOneByID deletes the event type along with its managed children and custom inputs.
func (r *EventTypeRepository) DeleteOneByID(ctx context.Context, ID int64) error {
	db := r.mongoClient.Database(r.dbName)

	result, err := db.Collection(eventTypesCollection).DeleteOne(ctx, bson.M{"_id": ID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return translate(mongo.ErrNoDocuments, "Event type %d not found", ID)
	}

	_, err = db.Collection(eventTypesCollection).DeleteMany(ctx, bson.M{"parentId": ID})
	if err != nil {
		return err
	}

	_, err = db.Collection(customInputsCollection).DeleteMany(ctx, bson.M{"eventTypeId": ID})
	return err
}
