package services

import (
	"context"

	"election_governance_system/internal/db/models"
)

// Notifier is the rendering collaborator. Services emit the typed contents
// below and never know how they are rendered; the Discord adapter turns
// them into embeds. A failed publish is a degraded outcome, never a reason
// to roll back a committed state change. Deliveries honor the context, so
// callers doing batch work can bound each one.
type Notifier interface {
	PublishOrUpdate(ctx context.Context, channelID, messageID string, content any) (string, error)
	NotifyPrivately(ctx context.Context, userID string, content any) error
	NotifyAudience(ctx context.Context, channelID string, content any) error
}

// NomineeList is the nominees surface for one election, refreshed in place
// on every nomination and on scheduling.
type NomineeList struct {
	Position string
	StartAt  string
	Nominees []*models.Nomination
	Closed   bool
}

// Ballot is the voting surface published when an election is promoted,
// carrying the nomination set frozen at promotion time.
type Ballot struct {
	Position   string
	Candidates []*models.Nomination
}

// ElectionClosedNotice replaces the voting surface when an election closes.
// It deliberately carries no vote counts: counts go to the closing admin
// only.
type ElectionClosedNotice struct {
	Position string
	StartAt  string
}

// ElectionResultsReport is the private, full results of a closed election.
type ElectionResultsReport struct {
	Position         string
	StatusWhenClosed models.ElectionStatus
	StartAt          string
	Results          *models.ElectionResults
	AlreadyClosed    bool
}

// ScheduleNotice is the log-channel record of a scheduling action.
type ScheduleNotice struct {
	Position        string
	StartAt         string
	ScheduledBy     string
	NomineesCleared bool
}

// RollCall is the public roll-call surface of a motion, republished after
// every accepted vote.
type RollCall struct {
	Motion *models.Motion
	Tally  *models.RollCallTally
}

// MotionSummary is the private close confirmation sent to the closing admin.
type MotionSummary struct {
	Motion *models.Motion
	Tally  *models.RollCallTally
}
