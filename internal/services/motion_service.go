package services

import (
	"context"
	"election_governance_system/internal/db/models"
	"election_governance_system/internal/db/repositories"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type MotionService interface {
	Create(guildID, kind, title, text, actorID string) (*models.Motion, error)
	Open(guildID string, motionID int64, duration time.Duration, actorID string) (*models.Motion, error)
	Close(guildID string, motionID int64, actorID string) (*models.RollCallTally, error)
	Results(guildID string, motionID int64) (*models.Motion, *models.RollCallTally, error)
}

type motionService struct {
	motions     repositories.MotionRepository
	motionVotes repositories.MotionVoteRepository
	settings    repositories.SettingsRepository
	policy      AccessPolicy
	notifier    Notifier
	logger      *zap.SugaredLogger
}

func NewMotionService(
	motions repositories.MotionRepository,
	motionVotes repositories.MotionVoteRepository,
	settings repositories.SettingsRepository,
	policy AccessPolicy,
	notifier Notifier,
	logger *zap.SugaredLogger,
) MotionService {
	return &motionService{
		motions:     motions,
		motionVotes: motionVotes,
		settings:    settings,
		policy:      policy,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *motionService) Create(guildID, kind, title, text, actorID string) (*models.Motion, error) {
	settings, err := s.settings.GetOne(guildID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guild settings")
	}
	if settings == nil {
		return nil, ErrNotConfigured
	}

	if !s.policy.IsAdmin(guildID, actorID, settings) {
		return nil, ErrUnauthorized
	}

	motion := &models.Motion{
		GuildID:   guildID,
		Kind:      kind,
		Title:     title,
		Text:      text,
		Status:    models.MotionStatusDraft,
		CreatedBy: actorID,
		CreatedAt: time.Now().UTC(),
	}

	motion, err = s.motions.Create(motion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create motion")
	}

	return motion, nil
}

// Open moves a DRAFT motion to VOTING by explicit admin action, stamps the
// voting window and publishes the public roll-call surface. Opening is
// never time-triggered.
func (s *motionService) Open(guildID string, motionID int64, duration time.Duration, actorID string) (*models.Motion, error) {
	settings, err := s.settings.GetOne(guildID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guild settings")
	}
	if settings == nil {
		return nil, ErrNotConfigured
	}

	if !s.policy.IsAdmin(guildID, actorID, settings) {
		return nil, ErrUnauthorized
	}

	if settings.ParliamentChannelID == "" {
		return nil, ErrNotConfigured
	}

	now := time.Now().UTC()
	opensAt := now.Format(time.RFC3339)
	closesAt := now.Add(duration).Format(time.RFC3339)

	opened, err := s.motions.Open(guildID, motionID, opensAt, closesAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open motion")
	}

	motion, err := s.motions.GetOne(guildID, motionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load motion")
	}
	if motion == nil {
		return nil, ErrNotFound
	}
	if !opened {
		return nil, ErrMotionNotDraft
	}

	rollCall := RollCall{Motion: motion, Tally: TallyRollCall(nil)}
	messageID, err := s.notifier.PublishOrUpdate(context.Background(), settings.ParliamentChannelID, "", rollCall)
	if err != nil {
		// The motion is open regardless; only the surface is degraded.
		s.logger.Warnw("failed to publish roll-call surface", "error", err, "guild", guildID, "motion", motionID)
		return motion, nil
	}

	motion.ChannelID = settings.ParliamentChannelID
	motion.MessageID = messageID
	if err := s.motions.SetMessage(guildID, motionID, motion.ChannelID, motion.MessageID); err != nil {
		s.logger.Errorw("failed to store roll-call message", "error", err, "guild", guildID, "motion", motionID)
	}

	return motion, nil
}

// Close finalizes the motion by explicit admin action, republishes the
// roll-call with the final outcome and sends the closing admin a private
// summary.
func (s *motionService) Close(guildID string, motionID int64, actorID string) (*models.RollCallTally, error) {
	settings, err := s.settings.GetOne(guildID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guild settings")
	}
	if settings == nil {
		return nil, ErrNotConfigured
	}

	if !s.policy.IsAdmin(guildID, actorID, settings) {
		return nil, ErrUnauthorized
	}

	closed, err := s.motions.UpdateStatus(guildID, motionID, models.MotionStatusVoting, models.MotionStatusClosed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to close motion")
	}

	motion, err := s.motions.GetOne(guildID, motionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load motion")
	}
	if motion == nil {
		return nil, ErrNotFound
	}
	if !closed {
		return nil, ErrVotingNotOpen
	}

	tally := republishRollCall(context.Background(), s.motionVotes, s.notifier, s.logger, motion)
	if tally == nil {
		votes, err := s.motionVotes.GetMany(guildID, motionID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load motion votes")
		}
		tally = TallyRollCall(votes)
	}

	if err := s.notifier.NotifyPrivately(context.Background(), actorID, MotionSummary{Motion: motion, Tally: tally}); err != nil {
		s.logger.Warnw("failed to deliver motion summary", "error", err, "guild", guildID, "motion", motionID)
	}

	return tally, nil
}

func (s *motionService) Results(guildID string, motionID int64) (*models.Motion, *models.RollCallTally, error) {
	motion, err := s.motions.GetOne(guildID, motionID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load motion")
	}
	if motion == nil {
		return nil, nil, ErrNotFound
	}

	votes, err := s.motionVotes.GetMany(guildID, motionID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load motion votes")
	}

	return motion, TallyRollCall(votes), nil
}
