package services

import (
	"context"
	"election_governance_system/internal/db/models"
	"election_governance_system/internal/db/repositories"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type NominationOutcome string

const (
	NominationInserted NominationOutcome = "inserted"
	NominationUpdated  NominationOutcome = "updated"
)

type BallotService interface {
	Nominate(guildID, position, candidateID, displayName string) (NominationOutcome, error)
	CastVote(guildID, position, voterID, candidateID string) error
	CastMotionVote(guildID string, motionID int64, voterID string, choice models.MotionChoice) error
}

type ballotService struct {
	elections   repositories.ElectionRepository
	nominations repositories.NominationRepository
	votes       repositories.VoteRepository
	motions     repositories.MotionRepository
	motionVotes repositories.MotionVoteRepository
	settings    repositories.SettingsRepository
	policy      AccessPolicy
	notifier    Notifier
	logger      *zap.SugaredLogger
}

func NewBallotService(
	elections repositories.ElectionRepository,
	nominations repositories.NominationRepository,
	votes repositories.VoteRepository,
	motions repositories.MotionRepository,
	motionVotes repositories.MotionVoteRepository,
	settings repositories.SettingsRepository,
	policy AccessPolicy,
	notifier Notifier,
	logger *zap.SugaredLogger,
) BallotService {
	return &ballotService{
		elections:   elections,
		nominations: nominations,
		votes:       votes,
		motions:     motions,
		motionVotes: motionVotes,
		settings:    settings,
		policy:      policy,
		notifier:    notifier,
		logger:      logger,
	}
}

// Nominate puts a candidate on the ballot while the election is SCHEDULED
// and its start time is still in the future; nominations close the instant
// voting opens. Re-nominating updates the display name, not the identity.
func (s *ballotService) Nominate(guildID, position, candidateID, displayName string) (NominationOutcome, error) {
	settings, err := s.settings.GetOne(guildID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load guild settings")
	}
	if settings == nil {
		return "", ErrNotConfigured
	}

	election, err := s.elections.GetOne(guildID, position)
	if err != nil {
		return "", errors.Wrap(err, "failed to load election")
	}
	if election == nil {
		return "", ErrNotFound
	}

	switch election.Status {
	case models.ElectionStatusClosed:
		return "", ErrElectionClosed
	case models.ElectionStatusVoting:
		return "", ErrNominationsClosed
	}

	startAt, err := election.ParseStartAt()
	if err != nil {
		return "", errors.Wrap(err, "election start time is invalid")
	}
	if !startAt.After(time.Now().UTC()) {
		return "", ErrNominationsClosed
	}

	nomination := &models.Nomination{
		GuildID:     guildID,
		Position:    position,
		CandidateID: candidateID,
		DisplayName: displayName,
	}

	inserted, err := s.nominations.Upsert(nomination)
	if err != nil {
		return "", errors.Wrap(err, "failed to record nomination")
	}

	refreshNomineeList(context.Background(), s.elections, s.nominations, s.notifier, s.logger, settings, election, false)

	if inserted {
		return NominationInserted, nil
	}
	return NominationUpdated, nil
}

// CastVote records a locked election vote. The insert-if-absent is a single
// atomic operation, so two concurrent casts from the same voter yield
// exactly one success and one ErrAlreadyVoted.
func (s *ballotService) CastVote(guildID, position, voterID, candidateID string) error {
	settings, err := s.settings.GetOne(guildID)
	if err != nil {
		return errors.Wrap(err, "failed to load guild settings")
	}
	if settings == nil {
		return ErrNotConfigured
	}

	if !s.policy.HasVoterRole(guildID, voterID, settings) {
		return ErrUnauthorized
	}

	election, err := s.elections.GetOne(guildID, position)
	if err != nil {
		return errors.Wrap(err, "failed to load election")
	}
	if election == nil {
		return ErrNotFound
	}
	if election.Status != models.ElectionStatusVoting {
		return ErrVotingNotOpen
	}

	vote := &models.Vote{
		GuildID:     guildID,
		Position:    position,
		VoterID:     voterID,
		CandidateID: candidateID,
		CastAt:      time.Now().UTC(),
	}

	inserted, err := s.votes.CreateUnique(vote)
	if err != nil {
		return errors.Wrap(err, "failed to record vote")
	}
	if !inserted {
		return ErrAlreadyVoted
	}

	return nil
}

// CastMotionVote records a locked roll-call vote and synchronously
// republishes the public roll-call surface.
func (s *ballotService) CastMotionVote(guildID string, motionID int64, voterID string, choice models.MotionChoice) error {
	settings, err := s.settings.GetOne(guildID)
	if err != nil {
		return errors.Wrap(err, "failed to load guild settings")
	}
	if settings == nil {
		return ErrNotConfigured
	}

	if !s.policy.HasParliamentRole(guildID, voterID, settings) {
		return ErrUnauthorized
	}

	motion, err := s.motions.GetOne(guildID, motionID)
	if err != nil {
		return errors.Wrap(err, "failed to load motion")
	}
	if motion == nil {
		return ErrNotFound
	}
	if motion.Status != models.MotionStatusVoting {
		return ErrVotingNotOpen
	}

	vote := &models.MotionVote{
		GuildID:  guildID,
		MotionID: motionID,
		VoterID:  voterID,
		Choice:   choice,
		CastAt:   time.Now().UTC(),
	}

	inserted, err := s.motionVotes.CreateUnique(vote)
	if err != nil {
		return errors.Wrap(err, "failed to record motion vote")
	}
	if !inserted {
		return ErrAlreadyVoted
	}

	republishRollCall(context.Background(), s.motionVotes, s.notifier, s.logger, motion)

	return nil
}

// republishRollCall recomputes the roll-call tally and edits the public
// surface in place. Roll-call votes are public at all times during VOTING,
// unlike election votes.
func republishRollCall(
	ctx context.Context,
	motionVotes repositories.MotionVoteRepository,
	notifier Notifier,
	logger *zap.SugaredLogger,
	motion *models.Motion,
) *models.RollCallTally {
	votes, err := motionVotes.GetMany(motion.GuildID, motion.ID)
	if err != nil {
		logger.Errorw("failed to load motion votes", "error", err, "guild", motion.GuildID, "motion", motion.ID)
		return nil
	}

	tally := TallyRollCall(votes)

	if motion.ChannelID == "" || motion.MessageID == "" {
		return tally
	}

	if _, err := notifier.PublishOrUpdate(ctx, motion.ChannelID, motion.MessageID, RollCall{Motion: motion, Tally: tally}); err != nil {
		logger.Warnw("failed to update roll-call surface", "error", err, "guild", motion.GuildID, "motion", motion.ID)
	}

	return tally
}
