package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ElectionStatus string

const (
	ElectionStatusScheduled ElectionStatus = "SCHEDULED"
	ElectionStatusVoting    ElectionStatus = "VOTING"
	ElectionStatusClosed    ElectionStatus = "CLOSED"
)

func (s ElectionStatus) String() string {
	return string(s)
}

// Election is one nomination-then-vote cycle for a single position in a
// guild. start_at is kept as RFC3339 text, exactly as entered at scheduling
// time; the scheduler parses it on every sweep and skips rows it cannot read.
type Election struct {
	GuildID          string           `json:"guild_id" pg:",pk"`
	Position         string           `json:"position" pg:",pk"`
	Status           ElectionStatus   `json:"status" pg:"type:ElectionStatus,notnull,default:'SCHEDULED'"`
	StartAt          string           `json:"start_at" pg:",notnull"`
	CreatedBy        string           `json:"created_by" pg:",notnull"`
	CreatedAt        time.Time        `json:"created_at" pg:"default:now()"`
	NomineeMessageID string           `json:"nominee_message_id"`
	VoteMessageID    string           `json:"vote_message_id"`
	FinalResults     *ElectionResults `json:"final_results" pg:"type:jsonb"`
}

func (e *Election) DisplayPosition() string {
	return cases.Title(language.English).String(e.Position)
}

func (e *Election) ParseStartAt() (time.Time, error) {
	return time.Parse(time.RFC3339, e.StartAt)
}

type CandidateResult struct {
	CandidateID string `json:"candidate_id"`
	DisplayName string `json:"display_name"`
	Votes       int    `json:"votes"`
}

// ElectionResults is the final tally of an election. Candidates are ordered
// by vote count descending, then display name ascending. Winner is nil when
// no votes were recorded; Tied is set when the top two counts are equal and
// callers must surface the ambiguity instead of picking a winner.
type ElectionResults struct {
	Candidates []CandidateResult `json:"candidates"`
	TotalVotes int               `json:"total_votes"`
	Winner     *CandidateResult  `json:"winner"`
	Tied       bool              `json:"tied"`
}
