package repository

import (
	"context"

	"github.com/joeyave/scala-booking/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CustomInputRepository struct {
	mongoClient *mongo.Client
	dbName      string
	counters    *CounterRepository
}

func NewCustomInputRepository(mongoClient *mongo.Client, dbName string, counters *CounterRepository) *CustomInputRepository {
	return &CustomInputRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
		counters:    counters,
	}
}

// Apply deletes the event type's inputs missing from plan.KeepIDs, then updates and creates the rest.
func (r *CustomInputRepository) Apply(ctx context.Context, plan *entity.CustomInputsPlan) error {
	collection := r.mongoClient.Database(r.dbName).Collection(customInputsCollection)

	_, err := collection.DeleteMany(ctx, bson.M{
		"eventTypeId": plan.EventTypeID,
		"_id":         bson.M{"$nin": plan.KeepIDs},
	})
	if err != nil {
		return err
	}

	for _, input := range plan.Update {
		_, err := collection.UpdateOne(ctx,
			bson.M{"_id": input.ID, "eventTypeId": plan.EventTypeID},
			bson.M{"$set": bson.M{
				"type":        input.Type,
				"label":       input.Label,
				"required":    input.Required,
				"placeholder": input.Placeholder,
				"options":     input.Options,
			}},
		)
		if err != nil {
			return err
		}
	}

	if len(plan.Create) == 0 {
		return nil
	}

	firstID, err := r.counters.NextIDs(ctx, customInputsCollection, len(plan.Create))
	if err != nil {
		return err
	}

	docs := make([]any, len(plan.Create))
	for i, input := range plan.Create {
		input.ID = firstID + int64(i)
		docs[i] = input
	}

	_, err = collection.InsertMany(ctx, docs)
	return err
}
