package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Transactor runs functions inside a MongoDB multi-document transaction.
// It needs a replica set or sharded cluster.
type Transactor struct {
	mongoClient *mongo.Client
}

func NewTransactor(mongoClient *mongo.Client) *Transactor {
	return &Transactor{
		mongoClient: mongoClient,
	}
}

// WithTransaction commits the writes fn makes through ctx, or aborts them all when fn fails.
// fn may be retried on transient transaction errors.
func (t *Transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.mongoClient.UseSession(ctx, func(sc mongo.SessionContext) error {
		_, err := sc.WithTransaction(sc, func(tx mongo.SessionContext) (interface{}, error) {
			return nil, fn(tx)
		})
		return err
	})
}
