package services

import "errors"

// ErrInvalidDay is returned when a day below 1 is supplied
var ErrInvalidDay = errors.New("current day must be at least 1")

// ErrInvalidCategory is returned for an unknown challenge filter
var ErrInvalidCategory = errors.New("invalid challenge category")

// ErrInsufficientTickets is returned when a draw is requested without tickets
var ErrInsufficientTickets = errors.New("insufficient lottery tickets")

// User facing notification messages
const (
	MsgInsufficientTickets = "Vous n'avez pas assez de billets !"
	msgChallengeCompleted  = "Défi complété ! +%d points"
	msgTicketsAwarded      = " et %s billets !"
	msgPrizeWon            = "Tirage effectué ! Vous avez gagné : %s"
)
