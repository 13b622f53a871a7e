package repository

import (
	"context"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChatLogRepository implements the ChatLogRepository interface
type MongoChatLogRepository struct {
	collection *mongo.Collection
}

// NewMongoChatLogRepository creates a new MongoDB chat transcript repository
func NewMongoChatLogRepository(db *mongo.Database) repository.ChatLogRepository {
	collection := db.Collection("chat_logs")

	ctx := context.Background()

	// Per-user history, most recent first
	userIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "usuarioId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}

	topicIndex := mongo.IndexModel{
		Keys: bson.M{"topico": 1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		userIndex,
		topicIndex,
	})

	return &MongoChatLogRepository{
		collection: collection,
	}
}

// Save stores one transcript
func (r *MongoChatLogRepository) Save(ctx context.Context, log *entity.ChatLog) error {
	if log.ID == "" {
		log.ID = primitive.NewObjectID().Hex()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, log)
	return err
}

// ListByUser returns the user's most recent transcripts
func (r *MongoChatLogRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*entity.ChatLog, error) {
	limit64 := int64(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"usuarioId": userID}, &options.FindOptions{
		Limit: &limit64,
		Sort:  bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []*entity.ChatLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
