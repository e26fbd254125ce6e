package models

import "fmt"

// PrizeKind identifies a thematic prize
type PrizeKind string

const (
	PrizeVoyage      PrizeKind = "voyage"
	PrizeVoiture     PrizeKind = "voiture"
	PrizeTV          PrizeKind = "tv"
	PrizeIPhone      PrizeKind = "iphone"
	PrizeAppleWatch  PrizeKind = "apple-watch"
	PrizeMaison      PrizeKind = "maison"
	PrizeHeadphones  PrizeKind = "headphones"
	PrizeCamera      PrizeKind = "camera"
	PrizeConsole     PrizeKind = "console"
	PrizeGiftCard500 PrizeKind = "gift-card-500"
	PrizeGiftCard200 PrizeKind = "gift-card-200"
	PrizeBonusPoints PrizeKind = "bonus-points"
)

var prizeKinds = map[PrizeKind]struct{}{
	PrizeVoyage:      {},
	PrizeVoiture:     {},
	PrizeTV:          {},
	PrizeIPhone:      {},
	PrizeAppleWatch:  {},
	PrizeMaison:      {},
	PrizeHeadphones:  {},
	PrizeCamera:      {},
	PrizeConsole:     {},
	PrizeGiftCard500: {},
	PrizeGiftCard200: {},
	PrizeBonusPoints: {},
}

// ParsePrizeKind validates a raw prize identifier
func ParsePrizeKind(s string) (PrizeKind, error) {
	k := PrizeKind(s)
	if _, ok := prizeKinds[k]; !ok {
		return "", fmt.Errorf("unknown prize kind %q", s)
	}
	return k, nil
}

// Icon is the display icon identifier of a challenge, reward or prize
type Icon string

const (
	IconTrophy      Icon = "Trophy"
	IconStar        Icon = "Star"
	IconZap         Icon = "Zap"
	IconTarget      Icon = "Target"
	IconCalendar    Icon = "Calendar"
	IconTrendingUp  Icon = "TrendingUp"
	IconGift        Icon = "Gift"
	IconPlane       Icon = "Plane"
	IconCar         Icon = "Car"
	IconTv          Icon = "Tv"
	IconSmartphone  Icon = "Smartphone"
	IconWatch       Icon = "Watch"
	IconHeadphones  Icon = "Headphones"
	IconCamera      Icon = "Camera"
	IconGamepad     Icon = "Gamepad2"
	IconShoppingBag Icon = "ShoppingBag"
	IconCreditCard  Icon = "CreditCard"
	IconCoins       Icon = "Coins"
	IconDiamond     Icon = "Diamond"
	IconCrown       Icon = "Crown"
)

// Prize is one entry of the lottery prize table.
// Probability is an independent weight; the table does not have to sum to 1.
type Prize struct {
	Kind        PrizeKind `bson:"kind" json:"kind"`
	Name        string    `bson:"name" json:"name"`
	Icon        Icon      `bson:"iconName" json:"iconName"`
	Color       string    `bson:"color" json:"color"`
	Probability float64   `bson:"probability" json:"probability"`
}
