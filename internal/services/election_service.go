package services

import (
	"context"
	"election_governance_system/internal/db/models"
	"election_governance_system/internal/db/repositories"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// promotePublishTimeout bounds each publish a sweep performs, so one stuck
// delivery cannot stall the whole sweep.
const promotePublishTimeout = 10 * time.Second

// PromotedElection is one election moved to VOTING by a sweep, with the
// nomination set frozen at promotion time.
type PromotedElection struct {
	Election *models.Election
	Nominees []*models.Nomination
}

type ElectionService interface {
	Schedule(guildID, position string, startAt time.Time, actorID string, clearNominees bool) (*models.Election, error)
	Close(guildID, position, actorID string) (*ElectionResultsReport, error)
	Promote(now time.Time) ([]*PromotedElection, error)
}

type electionService struct {
	elections   repositories.ElectionRepository
	nominations repositories.NominationRepository
	votes       repositories.VoteRepository
	settings    repositories.SettingsRepository
	policy      AccessPolicy
	notifier    Notifier
	logger      *zap.SugaredLogger
}

func NewElectionService(
	elections repositories.ElectionRepository,
	nominations repositories.NominationRepository,
	votes repositories.VoteRepository,
	settings repositories.SettingsRepository,
	policy AccessPolicy,
	notifier Notifier,
	logger *zap.SugaredLogger,
) ElectionService {
	return &electionService{
		elections:   elections,
		nominations: nominations,
		votes:       votes,
		settings:    settings,
		policy:      policy,
		notifier:    notifier,
		logger:      logger,
	}
}

// Schedule upserts the election into SCHEDULED. Votes for the position are
// always cleared for the fresh cycle; nominees only when asked. Other
// positions in the guild are untouched.
func (s *electionService) Schedule(guildID, position string, startAt time.Time, actorID string, clearNominees bool) (*models.Election, error) {
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

	if settings.NomineesChannelID == "" {
		return nil, ErrNotConfigured
	}

	election := &models.Election{
		GuildID:   guildID,
		Position:  position,
		Status:    models.ElectionStatusScheduled,
		StartAt:   startAt.UTC().Format(time.RFC3339),
		CreatedBy: actorID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.elections.Schedule(election); err != nil {
		return nil, errors.Wrap(err, "failed to schedule election")
	}

	if err := s.votes.DeleteAll(guildID, position); err != nil {
		return nil, errors.Wrap(err, "failed to clear votes")
	}

	if clearNominees {
		if err := s.nominations.DeleteAll(guildID, position); err != nil {
			return nil, errors.Wrap(err, "failed to clear nominations")
		}
	}

	refreshNomineeList(context.Background(), s.elections, s.nominations, s.notifier, s.logger, settings, election, false)

	if settings.LogChannelID != "" {
		notice := ScheduleNotice{
			Position:        position,
			StartAt:         election.StartAt,
			ScheduledBy:     actorID,
			NomineesCleared: clearNominees,
		}
		if err := s.notifier.NotifyAudience(context.Background(), settings.LogChannelID, notice); err != nil {
			s.logger.Warnw("failed to send schedule notice", "error", err, "guild", guildID, "position", position)
		}
	}

	return election, nil
}

// Close finalizes the election from SCHEDULED or VOTING. The tally is
// persisted with the status change, so closing an already-closed election
// returns the originally stored results instead of recomputing them. Full
// counts go to the closing actor only; public surfaces get a count-free
// closed notice.
func (s *electionService) Close(guildID, position, actorID string) (*ElectionResultsReport, error) {
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

	election, err := s.elections.GetOne(guildID, position)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load election")
	}
	if election == nil {
		return nil, ErrNotFound
	}

	if election.Status == models.ElectionStatusClosed {
		return &ElectionResultsReport{
			Position:         position,
			StatusWhenClosed: models.ElectionStatusClosed,
			StartAt:          election.StartAt,
			Results:          election.FinalResults,
			AlreadyClosed:    true,
		}, nil
	}

	votes, err := s.votes.GetMany(guildID, position)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load votes")
	}

	nominees, err := s.nominations.GetMany(guildID, position)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load nominations")
	}

	results := TallyElection(votes, nominees)

	closed, err := s.elections.CloseWithResults(guildID, position, results)
	if err != nil {
		return nil, errors.Wrap(err, "failed to close election")
	}
	if !closed {
		// Lost the race to another close; the winner's tally is the one
		// that counts.
		election, err = s.elections.GetOne(guildID, position)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload election")
		}
		if election == nil {
			return nil, ErrNotFound
		}

		return &ElectionResultsReport{
			Position:         position,
			StatusWhenClosed: models.ElectionStatusClosed,
			StartAt:          election.StartAt,
			Results:          election.FinalResults,
			AlreadyClosed:    true,
		}, nil
	}

	report := &ElectionResultsReport{
		Position:         position,
		StatusWhenClosed: election.Status,
		StartAt:          election.StartAt,
		Results:          results,
	}

	if settings.ElectionsChannelID != "" && election.VoteMessageID != "" {
		notice := ElectionClosedNotice{Position: position, StartAt: election.StartAt}
		if _, err := s.notifier.PublishOrUpdate(context.Background(), settings.ElectionsChannelID, election.VoteMessageID, notice); err != nil {
			s.logger.Warnw("failed to update voting surface", "error", err, "guild", guildID, "position", position)
		}
	}

	election.Status = models.ElectionStatusClosed
	refreshNomineeList(context.Background(), s.elections, s.nominations, s.notifier, s.logger, settings, election, true)

	if err := s.notifier.NotifyPrivately(context.Background(), actorID, report); err != nil {
		s.logger.Warnw("failed to deliver results privately", "error", err, "guild", guildID, "position", position)
	}

	return report, nil
}

// Promote moves every SCHEDULED election whose start time has arrived to
// VOTING and publishes its voting surface. The transition is a conditional
// update keyed on the current status, so a duplicate sweep observes zero
// affected rows and skips re-posting. One bad election never blocks the
// rest of the sweep.
func (s *electionService) Promote(now time.Time) ([]*PromotedElection, error) {
	scheduled, err := s.elections.GetManyScheduled()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load scheduled elections")
	}

	promoted := make([]*PromotedElection, 0)

	for _, election := range scheduled {
		startAt, err := election.ParseStartAt()
		if err != nil {
			s.logger.Warnw("skipping election with malformed start_at",
				"guild", election.GuildID, "position", election.Position, "start_at", election.StartAt)
			continue
		}

		if startAt.After(now) {
			continue
		}

		settings, err := s.settings.GetOne(election.GuildID)
		if err != nil {
			s.logger.Errorw("failed to load guild settings", "error", err, "guild", election.GuildID)
			continue
		}
		if settings == nil || settings.ElectionsChannelID == "" {
			s.logger.Warnw("cannot promote election without an elections channel",
				"guild", election.GuildID, "position", election.Position)
			continue
		}

		transitioned, err := s.elections.UpdateStatus(election.GuildID, election.Position,
			models.ElectionStatusScheduled, models.ElectionStatusVoting)
		if err != nil {
			s.logger.Errorw("failed to promote election", "error", err,
				"guild", election.GuildID, "position", election.Position)
			continue
		}
		if !transitioned {
			// Already promoted or closed by a racing writer.
			continue
		}

		election.Status = models.ElectionStatusVoting

		nominees, err := s.nominations.GetMany(election.GuildID, election.Position)
		if err != nil {
			s.logger.Errorw("failed to load nominations", "error", err,
				"guild", election.GuildID, "position", election.Position)
			nominees = nil
		}

		ballot := Ballot{Position: election.Position, Candidates: nominees}
		ctx, cancel := context.WithTimeout(context.Background(), promotePublishTimeout)
		messageID, err := s.notifier.PublishOrUpdate(ctx, settings.ElectionsChannelID, "", ballot)
		cancel()
		if err != nil {
			// The transition is committed; a failed publish degrades the
			// surface, nothing else.
			s.logger.Warnw("failed to publish voting surface", "error", err,
				"guild", election.GuildID, "position", election.Position)
		} else if err := s.elections.SetVoteMessageID(election.GuildID, election.Position, messageID); err != nil {
			s.logger.Errorw("failed to store voting message id", "error", err,
				"guild", election.GuildID, "position", election.Position)
		}

		promoted = append(promoted, &PromotedElection{Election: election, Nominees: nominees})
	}

	return promoted, nil
}

// refreshNomineeList rebuilds the nominee surface in place, creating the
// message when the election does not have one yet. Failures are logged and
// swallowed: the surface is presentation, not state.
func refreshNomineeList(
	ctx context.Context,
	elections repositories.ElectionRepository,
	nominations repositories.NominationRepository,
	notifier Notifier,
	logger *zap.SugaredLogger,
	settings *models.GuildSettings,
	election *models.Election,
	closed bool,
) {
	if settings.NomineesChannelID == "" {
		return
	}

	nominees, err := nominations.GetMany(election.GuildID, election.Position)
	if err != nil {
		logger.Errorw("failed to load nominations", "error", err,
			"guild", election.GuildID, "position", election.Position)
		return
	}

	content := NomineeList{
		Position: election.Position,
		StartAt:  election.StartAt,
		Nominees: nominees,
		Closed:   closed,
	}

	messageID, err := notifier.PublishOrUpdate(ctx, settings.NomineesChannelID, election.NomineeMessageID, content)
	if err != nil {
		logger.Warnw("failed to publish nominee list", "error", err,
			"guild", election.GuildID, "position", election.Position)
		return
	}

	if messageID != election.NomineeMessageID {
		election.NomineeMessageID = messageID
		if err := elections.SetNomineeMessageID(election.GuildID, election.Position, messageID); err != nil {
			logger.Errorw("failed to store nominee message id", "error", err,
				"guild", election.GuildID, "position", election.Position)
		}
	}
}
