package models

// NotificationLevel is the severity of a user facing notification
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is a toast message returned to the client
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}

// CompletionOutcome explains what CompleteChallenge did
type CompletionOutcome string

const (
	OutcomeCompleted        CompletionOutcome = "completed"
	OutcomeNotFound         CompletionOutcome = "not_found"
	OutcomeAlreadyCompleted CompletionOutcome = "already_completed"
	OutcomeLocked           CompletionOutcome = "locked"
)

// CompletionResult is returned by a completion attempt. Rejected attempts
// are not errors: Applied is false and the ledger is untouched.
type CompletionResult struct {
	Applied        bool              `json:"applied"`
	Outcome        CompletionOutcome `json:"outcome"`
	Challenge      *Challenge        `json:"challenge,omitempty"`
	PointsAwarded  int               `json:"pointsAwarded"`
	TicketsAwarded int               `json:"ticketsAwarded"`
	Ledger         PlayerLedger      `json:"ledger"`
	Notification   *Notification     `json:"notification,omitempty"`
}
