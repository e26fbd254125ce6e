package models

import "time"

// DrawResult records a single lottery draw
type DrawResult struct {
	ID          string    `bson:"_id" json:"id"`
	PlayerID    string    `bson:"playerId" json:"playerId"`
	Prize       Prize     `bson:"prize" json:"prize"`
	Roll        float64   `bson:"roll" json:"roll"`
	Fallback    bool      `bson:"fallback" json:"fallback"`
	TicketsLeft int       `bson:"ticketsLeft" json:"ticketsLeft"`
	DrawnAt     time.Time `bson:"drawnAt" json:"drawnAt"`

	Notification *Notification `bson:"-" json:"notification,omitempty"`
}
