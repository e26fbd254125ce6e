package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gingerprotocol/rewards-backend/internal/models"
	"github.com/gingerprotocol/rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure PlayerStateRepository implements the interface
var _ repositories.PlayerStateRepository = (*PlayerStateRepository)(nil)

// playerStateDocument stores the persisted layout as one document per player,
// so a save is a single atomic replace
type playerStateDocument struct {
	PlayerID       string    `bson:"_id"`
	CurrentDay     string    `bson:"current-day"`
	TotalPoints    string    `bson:"total-points"`
	LotteryTickets string    `bson:"lottery-tickets"`
	Challenges     string    `bson:"challenges"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

// PlayerStateRepository handles MongoDB operations for player state
type PlayerStateRepository struct {
	collection *mongo.Collection
}

// NewPlayerStateRepository creates a new PlayerStateRepository
func NewPlayerStateRepository(db *mongo.Database, collection string) *PlayerStateRepository {
	return &PlayerStateRepository{
		collection: db.Collection(collection),
	}
}

// Load finds the player document and decodes it
func (r *PlayerStateRepository) Load(ctx context.Context, playerID string) (*models.PlayerState, error) {
	var doc playerStateDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": playerID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find player state: %w", err)
	}

	return repositories.DecodeState(playerID, map[string]string{
		repositories.KeyCurrentDay:     doc.CurrentDay,
		repositories.KeyTotalPoints:    doc.TotalPoints,
		repositories.KeyLotteryTickets: doc.LotteryTickets,
		repositories.KeyChallenges:     doc.Challenges,
	})
}

// Save replaces the player document, inserting it on first save
func (r *PlayerStateRepository) Save(ctx context.Context, state *models.PlayerState) error {
	kv, err := repositories.EncodeState(state)
	if err != nil {
		return err
	}
	doc := playerStateDocument{
		PlayerID:       state.PlayerID,
		CurrentDay:     kv[repositories.KeyCurrentDay],
		TotalPoints:    kv[repositories.KeyTotalPoints],
		LotteryTickets: kv[repositories.KeyLotteryTickets],
		Challenges:     kv[repositories.KeyChallenges],
		UpdatedAt:      time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": state.PlayerID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save player state: %w", err)
	}
	return nil
}
