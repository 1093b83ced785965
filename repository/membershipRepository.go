package repository

import (
	"context"

	"github.com/joeyave/scala-booking/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MembershipRepository struct {
	mongoClient *mongo.Client
	dbName      string
	counters    *CounterRepository
}

func NewMembershipRepository(mongoClient *mongo.Client, dbName string, counters *CounterRepository) *MembershipRepository {
	return &MembershipRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
		counters:    counters,
	}
}

func (r *MembershipRepository) FindOneByTeamIDAndUserID(ctx context.Context, teamID, userID int64) (*entity.Membership, error) {
	memberships, err := r.find(ctx, bson.M{"teamId": teamID, "userId": userID})
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return nil, translate(mongo.ErrNoDocuments, "User %d is not a member of team %d", userID, teamID)
	}

	return memberships[0], nil
}

// FindManyByUserID returns the user's memberships with their teams.
func (r *MembershipRepository) FindManyByUserID(ctx context.Context, userID int64) ([]*entity.Membership, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *MembershipRepository) find(ctx context.Context, m bson.M) ([]*entity.Membership, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(membershipsCollection)

	pipeline := bson.A{
		bson.M{
			"$match": m,
		},
		bson.M{
			"$sort": bson.M{
				"_id": 1,
			},
		},
		bson.M{
			"$lookup": bson.M{
				"from":         teamsCollection,
				"localField":   "teamId",
				"foreignField": "_id",
				"as":           "team",
			},
		},
		bson.M{
			"$unwind": bson.M{
				"path":                       "$team",
				"preserveNullAndEmptyArrays": true,
			},
		},
	}

	return aggregate[entity.Membership](ctx, collection, pipeline)
}

func (r *MembershipRepository) InsertOne(ctx context.Context, membership *entity.Membership) (*entity.Membership, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(membershipsCollection)

	if membership.ID == 0 {
		ID, err := r.counters.NextID(ctx, membershipsCollection)
		if err != nil {
			return nil, err
		}
		membership.ID = ID
	}

	doc := *membership
	doc.Team = nil
	doc.User = nil

	_, err := collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, translate(err, "Membership of user %d in team %d", membership.UserID, membership.TeamID)
	}

	return membership, nil
}
