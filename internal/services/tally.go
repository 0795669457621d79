package services

import (
	"election_governance_system/internal/db/models"
	"fmt"
	"sort"
)

// TallyElection computes the final count over a snapshot of vote rows.
// Candidates are ordered by vote count descending, then display name
// ascending, so the presentation of non-winners is deterministic. When the
// top two counts are equal the result is flagged tied instead of silently
// picking one candidate. An empty vote set is a valid result, not an error.
func TallyElection(votes []*models.Vote, nominees []*models.Nomination) *models.ElectionResults {
	names := make(map[string]string, len(nominees))
	for _, nominee := range nominees {
		names[nominee.CandidateID] = nominee.DisplayName
	}

	counts := make(map[string]int)
	for _, vote := range votes {
		counts[vote.CandidateID]++
	}

	candidates := make([]models.CandidateResult, 0, len(counts))
	for candidateID, count := range counts {
		displayName, ok := names[candidateID]
		if !ok {
			displayName = fmt.Sprintf("Unknown candidate (%s)", candidateID)
		}

		candidates = append(candidates, models.CandidateResult{
			CandidateID: candidateID,
			DisplayName: displayName,
			Votes:       count,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Votes != candidates[j].Votes {
			return candidates[i].Votes > candidates[j].Votes
		}
		return candidates[i].DisplayName < candidates[j].DisplayName
	})

	results := &models.ElectionResults{
		Candidates: candidates,
		TotalVotes: len(votes),
	}

	if len(candidates) > 0 {
		winner := candidates[0]
		results.Winner = &winner
		results.Tied = len(candidates) > 1 && candidates[1].Votes == candidates[0].Votes
	}

	return results
}

// TallyRollCall groups roll-call votes into yes/no/abstain voter lists in
// the order the votes arrived. Yes > no passes, no > yes fails, equal
// counts are TIED; that includes the all-abstain and zero-vote case.
func TallyRollCall(votes []*models.MotionVote) *models.RollCallTally {
	tally := &models.RollCallTally{
		Yes:     make([]string, 0),
		No:      make([]string, 0),
		Abstain: make([]string, 0),
	}

	for _, vote := range votes {
		switch vote.Choice {
		case models.MotionChoiceYes:
			tally.Yes = append(tally.Yes, vote.VoterID)
		case models.MotionChoiceNo:
			tally.No = append(tally.No, vote.VoterID)
		case models.MotionChoiceAbstain:
			tally.Abstain = append(tally.Abstain, vote.VoterID)
		}
	}

	switch {
	case len(tally.Yes) > len(tally.No):
		tally.Outcome = models.MotionOutcomePassed
	case len(tally.No) > len(tally.Yes):
		tally.Outcome = models.MotionOutcomeFailed
	default:
		tally.Outcome = models.MotionOutcomeTied
	}

	return tally
}
