package models

import "time"

type MotionStatus string

const (
	MotionStatusDraft  MotionStatus = "DRAFT"
	MotionStatusVoting MotionStatus = "VOTING"
	MotionStatusClosed MotionStatus = "CLOSED"
)

func (s MotionStatus) String() string {
	return string(s)
}

// Motion is a collective yes/no/abstain roll-call vote on a proposed act or
// resolution. IDs are assigned from a sequence, so they are monotonic.
type Motion struct {
	ID        int64        `json:"id" pg:",pk"`
	GuildID   string       `json:"guild_id" pg:",notnull"`
	Kind      string       `json:"kind" pg:",notnull"`
	Title     string       `json:"title" pg:",notnull"`
	Text      string       `json:"text" pg:",notnull"`
	Status    MotionStatus `json:"status" pg:"type:MotionStatus,notnull,default:'DRAFT'"`
	OpensAt   string       `json:"opens_at"`
	ClosesAt  string       `json:"closes_at"`
	CreatedBy string       `json:"created_by" pg:",notnull"`
	CreatedAt time.Time    `json:"created_at" pg:"default:now()"`
	ChannelID string       `json:"channel_id"`
	MessageID string       `json:"message_id"`
}
