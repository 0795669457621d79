package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"election_governance_system/internal/db/models"
	"election_governance_system/internal/services"
)

func TestTallyElection_NoVotes(t *testing.T) {
	results := services.TallyElection(nil, nil)

	assert.Equal(t, 0, results.TotalVotes)
	assert.Empty(t, results.Candidates)
	assert.Nil(t, results.Winner)
	assert.False(t, results.Tied)
}

func TestTallyElection_SingleWinner(t *testing.T) {
	votes := []*models.Vote{
		{VoterID: "v1", CandidateID: "alice"},
		{VoterID: "v2", CandidateID: "alice"},
		{VoterID: "v3", CandidateID: "bob"},
	}
	nominees := []*models.Nomination{
		{CandidateID: "alice", DisplayName: "Alice"},
		{CandidateID: "bob", DisplayName: "Bob"},
	}

	results := services.TallyElection(votes, nominees)

	assert.Equal(t, 3, results.TotalVotes)
	assert.False(t, results.Tied)
	assert.Equal(t, "alice", results.Winner.CandidateID)
	assert.Equal(t, 2, results.Winner.Votes)
}

func TestTallyElection_TopTwoTied(t *testing.T) {
	votes := []*models.Vote{
		{VoterID: "v1", CandidateID: "alice"},
		{VoterID: "v2", CandidateID: "alice"},
		{VoterID: "v3", CandidateID: "alice"},
		{VoterID: "v4", CandidateID: "bob"},
		{VoterID: "v5", CandidateID: "bob"},
		{VoterID: "v6", CandidateID: "bob"},
		{VoterID: "v7", CandidateID: "carol"},
	}
	nominees := []*models.Nomination{
		{CandidateID: "alice", DisplayName: "Alice"},
		{CandidateID: "bob", DisplayName: "Bob"},
		{CandidateID: "carol", DisplayName: "Carol"},
	}

	results := services.TallyElection(votes, nominees)

	assert.True(t, results.Tied)
	assert.Equal(t, 7, results.TotalVotes)
	assert.Equal(t, "Carol", results.Candidates[2].DisplayName)
	assert.Equal(t, 1, results.Candidates[2].Votes)
}

func TestTallyElection_OrderedByCountThenName(t *testing.T) {
	votes := []*models.Vote{
		{VoterID: "v1", CandidateID: "bob"},
		{VoterID: "v2", CandidateID: "alice"},
		{VoterID: "v3", CandidateID: "carol"},
		{VoterID: "v4", CandidateID: "carol"},
	}
	nominees := []*models.Nomination{
		{CandidateID: "alice", DisplayName: "Alice"},
		{CandidateID: "bob", DisplayName: "Bob"},
		{CandidateID: "carol", DisplayName: "Carol"},
	}

	results := services.TallyElection(votes, nominees)

	assert.Equal(t, []string{"Carol", "Alice", "Bob"}, []string{
		results.Candidates[0].DisplayName,
		results.Candidates[1].DisplayName,
		results.Candidates[2].DisplayName,
	})
}

func TestTallyElection_VoteForRemovedNominee(t *testing.T) {
	votes := []*models.Vote{
		{VoterID: "v1", CandidateID: "ghost"},
	}

	results := services.TallyElection(votes, nil)

	assert.Equal(t, 1, results.TotalVotes)
	assert.Equal(t, "Unknown candidate (ghost)", results.Candidates[0].DisplayName)
}

func TestTallyRollCall_Passed(t *testing.T) {
	votes := []*models.MotionVote{
		{VoterID: "v1", Choice: models.MotionChoiceYes},
		{VoterID: "v2", Choice: models.MotionChoiceYes},
		{VoterID: "v3", Choice: models.MotionChoiceYes},
		{VoterID: "v4", Choice: models.MotionChoiceNo},
	}

	tally := services.TallyRollCall(votes)

	assert.Equal(t, models.MotionOutcomePassed, tally.Outcome)
	assert.Equal(t, []string{"v1", "v2", "v3"}, tally.Yes)
	assert.Equal(t, []string{"v4"}, tally.No)
}

func TestTallyRollCall_Failed(t *testing.T) {
	votes := []*models.MotionVote{
		{VoterID: "v1", Choice: models.MotionChoiceNo},
		{VoterID: "v2", Choice: models.MotionChoiceYes},
		{VoterID: "v3", Choice: models.MotionChoiceNo},
	}

	tally := services.TallyRollCall(votes)

	assert.Equal(t, models.MotionOutcomeFailed, tally.Outcome)
}

func TestTallyRollCall_TiedWithAbstainMajority(t *testing.T) {
	votes := []*models.MotionVote{
		{VoterID: "v1", Choice: models.MotionChoiceYes},
		{VoterID: "v2", Choice: models.MotionChoiceYes},
		{VoterID: "v3", Choice: models.MotionChoiceNo},
		{VoterID: "v4", Choice: models.MotionChoiceNo},
		{VoterID: "v5", Choice: models.MotionChoiceAbstain},
		{VoterID: "v6", Choice: models.MotionChoiceAbstain},
		{VoterID: "v7", Choice: models.MotionChoiceAbstain},
		{VoterID: "v8", Choice: models.MotionChoiceAbstain},
		{VoterID: "v9", Choice: models.MotionChoiceAbstain},
	}

	tally := services.TallyRollCall(votes)

	assert.Equal(t, models.MotionOutcomeTied, tally.Outcome)
	assert.Equal(t, 5, len(tally.Abstain))
}

func TestTallyRollCall_NoVotesIsTied(t *testing.T) {
	tally := services.TallyRollCall(nil)

	assert.Equal(t, models.MotionOutcomeTied, tally.Outcome)
	assert.Empty(t, tally.Yes)
	assert.Empty(t, tally.No)
	assert.Empty(t, tally.Abstain)
}
