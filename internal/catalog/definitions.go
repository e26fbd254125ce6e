package catalog

import (
	"strconv"

	"github.com/gingerprotocol/rewards-backend/internal/models"
)

// Challenge ids are persisted by clients; keep them stable.

func pointsReward(n int) *models.Reward {
	return &models.Reward{
		Type:        models.RewardPoints,
		Value:       models.AmountValue(n),
		Description: "+" + strconv.Itoa(n) + " points",
		Icon:        models.IconCoins,
	}
}

func ticketsReward(n int, icon models.Icon) *models.Reward {
	desc := strconv.Itoa(n) + " Billets de Tirage"
	if n == 1 {
		desc = "1 Billet de Tirage"
	}
	return &models.Reward{
		Type:        models.RewardLottery,
		Value:       models.AmountValue(n),
		Description: desc,
		Icon:        icon,
	}
}

func prizeReward(kind models.PrizeKind, label string, icon models.Icon) *models.Reward {
	return &models.Reward{
		Type:        models.RewardLottery,
		Value:       models.PrizeValue(kind),
		Description: "Tirage: " + label,
		Icon:        icon,
	}
}

func baseChallenges() []models.Challenge {
	return []models.Challenge{
		{
			ID: "daily-1", Title: "Buvez 2L d'eau", Description: "Restez hydraté pendant la journée",
			Category: models.CategoryDaily, Difficulty: models.DifficultyEasy,
			Points: 10, DaysRequired: 1, MaxProgress: 1, Icon: models.IconTarget,
			Reward: pointsReward(10),
		},
		{
			ID: "daily-2", Title: "Faites 30 min d'exercice", Description: "Activité physique modérée",
			Category: models.CategoryDaily, Difficulty: models.DifficultyMedium,
			Points: 20, DaysRequired: 1, MaxProgress: 1, Icon: models.IconZap,
			Reward: pointsReward(20),
		},
		{
			ID: "daily-3", Title: "Méditez pendant 10 minutes", Description: "Pratiquez la pleine conscience",
			Category: models.CategoryDaily, Difficulty: models.DifficultyEasy,
			Points: 15, DaysRequired: 1, MaxProgress: 1, Icon: models.IconStar,
			Reward: pointsReward(15),
		},
		{
			ID: "weekly-1", Title: "Complétez 5 jours consécutifs", Description: "Maintenez la cohérence pendant une semaine",
			Category: models.CategoryWeekly, Difficulty: models.DifficultyMedium,
			Points: 100, DaysRequired: 7, MaxProgress: 5, Icon: models.IconCalendar,
			Reward: ticketsReward(1, models.IconGift),
		},
		{
			ID: "weekly-2", Title: "Perte de 2kg", Description: "Atteignez votre objectif de poids",
			Category: models.CategoryWeekly, Difficulty: models.DifficultyHard,
			Points: 200, DaysRequired: 7, MaxProgress: 2, Icon: models.IconTrendingUp,
			Reward: ticketsReward(2, models.IconGift),
		},
		{
			ID: "milestone-1", Title: "15 jours de cohérence", Description: "Maintenez la concentration pendant 15 jours",
			Category: models.CategoryMilestone, Difficulty: models.DifficultyHard,
			Points: 500, DaysRequired: 15, MaxProgress: 15, Icon: models.IconCrown,
			Reward: ticketsReward(5, models.IconDiamond),
		},
		{
			ID: "milestone-2", Title: "Perte de 5kg", Description: "Objectif de poids significatif",
			Category: models.CategoryMilestone, Difficulty: models.DifficultyEpic,
			Points: 1000, DaysRequired: 15, MaxProgress: 5, Icon: models.IconTarget,
			Reward: ticketsReward(10, models.IconDiamond),
		},
		{
			ID: "premium-1", Title: "30 jours de transformation", Description: "Un mois complet de dévouement",
			Category: models.CategoryPremium, Difficulty: models.DifficultyEpic,
			Points: 2000, DaysRequired: 30, MaxProgress: 30, Icon: models.IconDiamond,
			Reward: ticketsReward(20, models.IconCrown),
		},
		{
			ID: "premium-2", Title: "Perte de 10kg", Description: "Transformation complète",
			Category: models.CategoryPremium, Difficulty: models.DifficultyEpic,
			Points: 5000, DaysRequired: 30, MaxProgress: 10, Icon: models.IconCrown,
			Reward: ticketsReward(50, models.IconCrown),
		},
	}
}

func specialDrawChallenges() []models.Challenge {
	return []models.Challenge{
		drawChallenge("lottery-special-1", "Tirage Spécial - Voyage", "Chance de gagner un voyage incroyable !",
			1000, SpecialDrawDay, models.IconPlane, prizeReward(models.PrizeVoyage, "Voyage", models.IconPlane)),
		drawChallenge("lottery-special-2", "Tirage Spécial - Voiture", "Chance de gagner une voiture neuve !",
			2000, SpecialDrawDay, models.IconCar, prizeReward(models.PrizeVoiture, "Voiture", models.IconCar)),
		drawChallenge("lottery-special-3", "Tirage Spécial - TV 4K", "Chance de gagner une TV 4K 65\" !",
			1500, SpecialDrawDay, models.IconTv, prizeReward(models.PrizeTV, "TV 4K", models.IconTv)),
	}
}

func megaDrawChallenges() []models.Challenge {
	return []models.Challenge{
		drawChallenge("lottery-special-4", "Tirage Mega - iPhone 15 Pro", "Chance de gagner un iPhone 15 Pro !",
			3000, MegaDrawDay, models.IconSmartphone, prizeReward(models.PrizeIPhone, "iPhone 15 Pro", models.IconSmartphone)),
		drawChallenge("lottery-special-5", "Tirage Mega - Apple Watch", "Chance de gagner une Apple Watch Series 9 !",
			2500, MegaDrawDay, models.IconWatch, prizeReward(models.PrizeAppleWatch, "Apple Watch", models.IconWatch)),
	}
}

func ultimateDrawChallenges() []models.Challenge {
	return []models.Challenge{
		drawChallenge("lottery-ultimate", "Tirage Ultimate - Maison", "Chance de gagner une maison !",
			10000, UltimateDrawDay, models.IconCrown, prizeReward(models.PrizeMaison, "Maison", models.IconCrown)),
	}
}

func drawChallenge(id, title, description string, points, day int, icon models.Icon, reward *models.Reward) models.Challenge {
	return models.Challenge{
		ID:           id,
		Title:        title,
		Description:  description,
		Category:     models.CategoryLottery,
		Difficulty:   models.DifficultyEpic,
		Points:       points,
		DaysRequired: day,
		MaxProgress:  1,
		Icon:         icon,
		Reward:       reward,
	}
}
