package commands

import (
	"fmt"
	"strconv"
	"strings"

	"election_governance_system/internal/db/models"
)

const (
	electionVoteComponent = "election_vote"
	motionVoteComponent   = "motion_vote"
)

// ElectionVoteCustomID identifies the ballot select menu of one election.
func ElectionVoteCustomID(position string) string {
	return fmt.Sprintf("%s:%s", electionVoteComponent, position)
}

// MotionVoteCustomID identifies one choice button on a motion roll-call.
func MotionVoteCustomID(motionID int64, choice models.MotionChoice) string {
	return fmt.Sprintf("%s:%d:%s", motionVoteComponent, motionID, choice)
}

func parseElectionVoteCustomID(customID string) (position string, ok bool) {
	parts := strings.SplitN(customID, ":", 2)
	if len(parts) != 2 || parts[0] != electionVoteComponent {
		return "", false
	}
	return parts[1], true
}

func parseMotionVoteCustomID(customID string) (motionID int64, choice models.MotionChoice, ok bool) {
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[0] != motionVoteComponent {
		return 0, "", false
	}

	motionID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, "", false
	}

	switch models.MotionChoice(parts[2]) {
	case models.MotionChoiceYes, models.MotionChoiceNo, models.MotionChoiceAbstain:
		return motionID, models.MotionChoice(parts[2]), true
	default:
		return 0, "", false
	}
}
