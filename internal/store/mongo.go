package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careercompass/backend/internal/models"
)

// MongoStore persists chat records in MongoDB.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("chats")}
}

// EnsureIndexes creates the (user_id, created_at desc) index used by history reads.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("mongo index: %w", err)
	}
	return nil
}

// Insert stores rec and sets its ID. CreatedAt is assigned here, truncated
// to the millisecond precision BSON dates keep, so the returned record
// matches what later reads return.
func (s *MongoStore) Insert(ctx context.Context, rec *models.ChatRecord) error {
	rec.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	res, err := s.col.InsertOne(ctx, rec)
	if err != nil {
		return fmt.Errorf("mongo insert: %w", err)
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListByUser returns every record owned by userID, newest first.
func (s *MongoStore) ListByUser(ctx context.Context, userID string) ([]models.ChatRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cur.Close(ctx)

	var recs []models.ChatRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}
	return recs, nil
}
