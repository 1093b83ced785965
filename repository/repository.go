package repository

import (
	"context"

	"github.com/joeyave/scala-booking/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	attributesCollection   = "attributes"
	bookingsCollection     = "bookings"
	countersCollection     = "counters"
	customInputsCollection = "eventTypeCustomInputs"
	eventTypesCollection   = "eventTypes"
	membershipsCollection  = "memberships"
	profilesCollection     = "profiles"
	teamsCollection        = "teams"
	usersCollection        = "users"
)

// translate turns driver errors the services care about into *helpers.Error.
func translate(err error, format string, args ...any) error {
	switch {
	case err == nil:
		return nil
	case err == mongo.ErrNoDocuments:
		return helpers.NotFound(format, args...)
	case mongo.IsDuplicateKeyError(err):
		return helpers.Conflict(format+" already exists", args...)
	}
	return err
}

func aggregate[T any](ctx context.Context, collection *mongo.Collection, pipeline bson.A) ([]*T, error) {
	cur, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var results []*T
	err = cur.All(ctx, &results)
	if err != nil {
		return nil, err
	}

	return results, nil
}

// lookupOrdered joins the documents of from whose _id is in the localField array, keeping the array's order.
func lookupOrdered(from, localField, as string) bson.A {
	return bson.A{
		bson.M{
			"$addFields": bson.M{
				localField: bson.M{
					"$cond": bson.M{
						"if": bson.M{
							"$ne": bson.A{bson.M{"$type": "$" + localField}, "array"},
						},
						"then": bson.A{},
						"else": "$" + localField,
					},
				},
			},
		},
		bson.M{
			"$lookup": bson.M{
				"from": from,
				"let":  bson.M{"ids": "$" + localField},
				"pipeline": bson.A{
					bson.M{
						"$match": bson.M{"$expr": bson.M{"$in": bson.A{"$_id", "$$ids"}}},
					},
					bson.M{
						"$addFields": bson.M{
							"sort": bson.M{
								"$indexOfArray": bson.A{"$$ids", "$_id"},
							},
						},
					},
					bson.M{
						"$sort": bson.M{"sort": 1},
					},
					bson.M{
						"$addFields": bson.M{
							"sort": "$$REMOVE",
						},
					},
				},
				"as": as,
			},
		},
	}
}
