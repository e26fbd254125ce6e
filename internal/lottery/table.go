// Package lottery holds the prize table and the weighted draw over it.
package lottery

import (
	"errors"

	"github.com/gingerprotocol/rewards-backend/internal/models"
)

// ErrEmptyTable is returned when a table has no entries
var ErrEmptyTable = errors.New("prize table is empty")

// ErrNegativeWeight is returned when an entry has a negative probability
var ErrNegativeWeight = errors.New("prize probability must not be negative")

// Table is an ordered prize table. Probabilities are independent weights and
// are not normalized: a roll beyond the total mass selects the last entry,
// which therefore absorbs all of the missing mass on top of its own weight.
// Reordering or reweighting the table changes that fallback share.
type Table struct {
	prizes []models.Prize
}

// NewTable validates and wraps prizes, keeping their declared order
func NewTable(prizes []models.Prize) (*Table, error) {
	if len(prizes) == 0 {
		return nil, ErrEmptyTable
	}
	for _, p := range prizes {
		if p.Probability < 0 {
			return nil, ErrNegativeWeight
		}
	}
	cp := make([]models.Prize, len(prizes))
	copy(cp, prizes)
	return &Table{prizes: cp}, nil
}

// DefaultTable returns the program's prize table
func DefaultTable() *Table {
	return &Table{prizes: []models.Prize{
		{Kind: models.PrizeVoyage, Name: "Voyage à Paris", Icon: models.IconPlane, Color: "text-sky-500", Probability: 0.01},
		{Kind: models.PrizeVoiture, Name: "Voiture 0km", Icon: models.IconCar, Color: "text-red-500", Probability: 0.005},
		{Kind: models.PrizeTV, Name: "TV 4K 65\"", Icon: models.IconTv, Color: "text-green-500", Probability: 0.02},
		{Kind: models.PrizeIPhone, Name: "iPhone 15 Pro", Icon: models.IconSmartphone, Color: "text-gray-500", Probability: 0.03},
		{Kind: models.PrizeAppleWatch, Name: "Apple Watch Series 9", Icon: models.IconWatch, Color: "text-blue-500", Probability: 0.05},
		{Kind: models.PrizeMaison, Name: "Maison", Icon: models.IconCrown, Color: "text-amber-500", Probability: 0.001},
		{Kind: models.PrizeHeadphones, Name: "Casque Premium", Icon: models.IconHeadphones, Color: "text-purple-500", Probability: 0.1},
		{Kind: models.PrizeCamera, Name: "Appareil Photo DSLR", Icon: models.IconCamera, Color: "text-indigo-500", Probability: 0.08},
		{Kind: models.PrizeConsole, Name: "Console de Jeu", Icon: models.IconGamepad, Color: "text-pink-500", Probability: 0.12},
		{Kind: models.PrizeGiftCard500, Name: "Carte Cadeau 500€", Icon: models.IconShoppingBag, Color: "text-emerald-500", Probability: 0.15},
		{Kind: models.PrizeGiftCard200, Name: "Carte Cadeau 200€", Icon: models.IconCreditCard, Color: "text-teal-500", Probability: 0.2},
		{Kind: models.PrizeBonusPoints, Name: "100 Points Supplémentaires", Icon: models.IconCoins, Color: "text-yellow-500", Probability: 0.3},
	}}
}

// Prizes returns a copy of the entries in declared order
func (t *Table) Prizes() []models.Prize {
	cp := make([]models.Prize, len(t.prizes))
	copy(cp, t.prizes)
	return cp
}

// TotalMass is the sum of all weights
func (t *Table) TotalMass() float64 {
	var total float64
	for _, p := range t.prizes {
		total += p.Probability
	}
	return total
}

// Select returns the first entry whose running cumulative weight is >= r.
// When r exceeds the total mass the last entry is returned and fallback is
// true.
func (t *Table) Select(r float64) (prize models.Prize, fallback bool) {
	var cumulative float64
	for _, p := range t.prizes {
		cumulative += p.Probability
		if r <= cumulative {
			return p, false
		}
	}
	return t.prizes[len(t.prizes)-1], true
}
