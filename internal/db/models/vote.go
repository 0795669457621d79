package models

import "time"

// Vote is a locked election vote. The primary key enforces one vote per
// voter per position; the row is inserted once and never overwritten.
type Vote struct {
	GuildID     string    `json:"guild_id" pg:",pk"`
	Position    string    `json:"position" pg:",pk"`
	VoterID     string    `json:"voter_id" pg:",pk"`
	CandidateID string    `json:"candidate_id" pg:",notnull"`
	CastAt      time.Time `json:"cast_at" pg:"default:now()"`
}
