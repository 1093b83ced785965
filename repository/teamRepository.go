package repository

import (
	"context"

	"github.com/joeyave/scala-booking/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TeamRepository struct {
	mongoClient *mongo.Client
	dbName      string
	counters    *CounterRepository
}

func NewTeamRepository(mongoClient *mongo.Client, dbName string, counters *CounterRepository) *TeamRepository {
	return &TeamRepository{
		mongoClient: mongoClient,
		dbName:      dbName,
		counters:    counters,
	}
}

func (r *TeamRepository) FindOneByID(ctx context.Context, ID int64) (*entity.Team, error) {
	return r.findOne(ctx, bson.M{"_id": ID}, "Team %d not found", ID)
}

func (r *TeamRepository) FindOrganizationBySlug(ctx context.Context, slug string) (*entity.Team, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "isOrganization": true}, "Organization %s not found", slug)
}

func (r *TeamRepository) FindOneBySlug(ctx context.Context, slug string, parentID *int64) (*entity.Team, error) {
	m := bson.M{
		"slug":           slug,
		"isOrganization": bson.M{"$ne": true},
		"parentId":       nil,
	}
	if parentID != nil {
		m["parentId"] = *parentID
	}
	return r.findOne(ctx, m, "Team %s not found", slug)
}

func (r *TeamRepository) FindManyByParentID(ctx context.Context, parentID int64) ([]*entity.Team, error) {
	return r.find(ctx, bson.M{"parentId": parentID})
}

func (r *TeamRepository) findOne(ctx context.Context, m bson.M, format string, args ...any) (*entity.Team, error) {
	teams, err := r.find(ctx, m)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, translate(mongo.ErrNoDocuments, format, args...)
	}

	return teams[0], nil
}

func (r *TeamRepository) find(ctx context.Context, m bson.M) ([]*entity.Team, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(teamsCollection)

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
				"localField":   "parentId",
				"foreignField": "_id",
				"as":           "parent",
			},
		},
		bson.M{
			"$unwind": bson.M{
				"path":                       "$parent",
				"preserveNullAndEmptyArrays": true,
			},
		},
	}

	return aggregate[entity.Team](ctx, collection, pipeline)
}

func (r *TeamRepository) InsertOne(ctx context.Context, team *entity.Team) (*entity.Team, error) {
	collection := r.mongoClient.Database(r.dbName).Collection(teamsCollection)

	if team.ID == 0 {
		ID, err := r.counters.NextID(ctx, teamsCollection)
		if err != nil {
			return nil, err
		}
		team.ID = ID
	}

	doc := *team
	doc.Parent = nil
	doc.Members = nil

	_, err := collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, translate(err, "Team with slug %s", team.Slug)
	}

	return team, nil
}
