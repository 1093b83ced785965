package repository

import (
	"context"

	"github.com/joeyave/scala-booking/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository struct {
	mongoClient *mongo.Client
	dbName      string
}

func NewBookingRepository(mongoClient *mongo.Client, dbName string) *BookingRepository {
	return &BookingRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
	}
}

func (r *BookingRepository) FindOneByUID(ctx context.Context, UID string) (*entity.Booking, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(bookingsCollection)

	result := collection.FindOne(ctx, bson.M{"uid": UID})
	if result.Err() != nil {
		return nil, translate(result.Err(), "Booking %s not found", UID)
	}

	var booking *entity.Booking
	err := result.Decode(&booking)
	if err != nil {
		return nil, err
	}

	return booking, nil
}
