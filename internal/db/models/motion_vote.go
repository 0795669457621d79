package models

import "time"

type MotionChoice string

const (
	MotionChoiceYes     MotionChoice = "yes"
	MotionChoiceNo      MotionChoice = "no"
	MotionChoiceAbstain MotionChoice = "abstain"
)

func (c MotionChoice) String() string {
	return string(c)
}

type MotionOutcome string

const (
	MotionOutcomePassed MotionOutcome = "PASSED"
	MotionOutcomeFailed MotionOutcome = "FAILED"
	MotionOutcomeTied   MotionOutcome = "TIED"
)

func (o MotionOutcome) String() string {
	return string(o)
}

// MotionVote is a locked roll-call vote. Unlike election votes, roll-call
// votes are public for the lifetime of the motion.
type MotionVote struct {
	GuildID  string       `json:"guild_id" pg:",pk"`
	MotionID int64        `json:"motion_id" pg:",pk"`
	VoterID  string       `json:"voter_id" pg:",pk"`
	Choice   MotionChoice `json:"choice" pg:"type:MotionChoice,notnull"`
	CastAt   time.Time    `json:"cast_at" pg:"default:now()"`
}

// RollCallTally groups roll-call votes into yes/no/abstain voter lists,
// each ordered by cast time ascending. A motion passes on a simple
// majority of yes over no; equal counts, including the zero-vote case,
// are TIED.
type RollCallTally struct {
	Yes     []string      `json:"yes"`
	No      []string      `json:"no"`
	Abstain []string      `json:"abstain"`
	Outcome MotionOutcome `json:"outcome"`
}
