package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatRecord is one persisted chat turn, stored in MongoDB.
type ChatRecord struct {
	ID        primitive.ObjectID `json:"id"         bson:"_id,omitempty"`
	UserID    string             `json:"user"       bson:"user_id"`
	Message   string             `json:"message"    bson:"message"`
	Response  string             `json:"response"   bson:"response"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// ChatRequest is the JSON body for POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}
