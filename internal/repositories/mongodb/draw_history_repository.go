package mongodb

import (
	"context"

	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure DrawHistoryRepository implements the interface
var _ repositories.DrawHistoryRepository = (*DrawHistoryRepository)(nil)

// DrawHistoryRepository handles MongoDB operations for DrawResult
type DrawHistoryRepository struct {
	collection *mongo.Collection
}

// NewDrawHistoryRepository creates a new DrawHistoryRepository
func NewDrawHistoryRepository(db *mongo.Database) *DrawHistoryRepository {
	return &DrawHistoryRepository{
		collection: db.Collection("lottery_draws"),
	}
}

// Create inserts a new draw record
func (r *DrawHistoryRepository) Create(ctx context.Context, draw *models.DrawResult) error {
	_, err := r.collection.InsertOne(ctx, draw)
	return err
}

// FindByPlayerID finds the latest draws of a player, newest first
func (r *DrawHistoryRepository) FindByPlayerID(ctx context.Context, playerID string, limit int) ([]*models.DrawResult, error) {
	var draws []*models.DrawResult
	filter := bson.M{"playerId": playerID}
	findOptions := options.Find().SetSort(bson.D{{Key: "drawnAt", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &draws); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil if no documents found
	if draws == nil {
		draws = []*models.DrawResult{}
	}
	return draws, nil
}
