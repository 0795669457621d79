package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"election_governance_system/internal/db/models"
	"election_governance_system/internal/db/repositories"
	mock_repositories "election_governance_system/internal/db/repositories/mocks"
	"election_governance_system/internal/services"
	mock_services "election_governance_system/internal/services/mocks"
)

type ballotServiceMocks struct {
	elections   *mock_repositories.MockElectionRepository
	nominations *mock_repositories.MockNominationRepository
	votes       *mock_repositories.MockVoteRepository
	motions     *mock_repositories.MockMotionRepository
	motionVotes *mock_repositories.MockMotionVoteRepository
	settings    *mock_repositories.MockSettingsRepository
	policy      *mock_services.MockAccessPolicy
	notifier    *mock_services.MockNotifier
}

func newBallotService(ctrl *gomock.Controller) (services.BallotService, ballotServiceMocks) {
	mocks := ballotServiceMocks{
		elections:   mock_repositories.NewMockElectionRepository(ctrl),
		nominations: mock_repositories.NewMockNominationRepository(ctrl),
		votes:       mock_repositories.NewMockVoteRepository(ctrl),
		motions:     mock_repositories.NewMockMotionRepository(ctrl),
		motionVotes: mock_repositories.NewMockMotionVoteRepository(ctrl),
		settings:    mock_repositories.NewMockSettingsRepository(ctrl),
		policy:      mock_services.NewMockAccessPolicy(ctrl),
		notifier:    mock_services.NewMockNotifier(ctrl),
	}

	service := services.NewBallotService(
		mocks.elections, mocks.nominations, mocks.votes,
		mocks.motions, mocks.motionVotes, mocks.settings,
		mocks.policy, mocks.notifier, zap.NewNop().Sugar(),
	)

	return service, mocks
}

func futureStart() string {
	return time.Now().UTC().Add(time.Hour).Format(time.RFC3339)
}

func TestBallotServiceNominate_GuildNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	mocks.settings.EXPECT().GetOne("g1").Return(nil, nil)

	_, err := service.Nominate("g1", "president", "alice", "Alice")
	assert.ErrorIs(t, err, services.ErrNotConfigured)
}

func TestBallotServiceNominate_ElectionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	mocks.settings.EXPECT().GetOne("g1").Return(configuredSettings(), nil)
	mocks.elections.EXPECT().GetOne("g1", "president").Return(nil, nil)

	_, err := service.Nominate("g1", "president", "alice", "Alice")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBallotServiceNominate_ClosedElection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	mocks.settings.EXPECT().GetOne("g1").Return(configuredSettings(), nil)
	mocks.elections.EXPECT().GetOne("g1", "president").Return(&models.Election{
		Status: models.ElectionStatusClosed,
	}, nil)

	_, err := service.Nominate("g1", "president", "alice", "Alice")
	assert.ErrorIs(t, err, services.ErrElectionClosed)
}

func TestBallotServiceNominate_ClosedOnceVotingOpens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	mocks.settings.EXPECT().GetOne("g1").Return(configuredSettings(), nil)
	mocks.elections.EXPECT().GetOne("g1", "president").Return(&models.Election{
		Status: models.ElectionStatusVoting,
	}, nil)

	_, err := service.Nominate("g1", "president", "alice", "Alice")
	assert.ErrorIs(t, err, services.ErrNominationsClosed)
}

func TestBallotServiceNominate_ClosedOnceStartTimePassed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	mocks.settings.EXPECT().GetOne("g1").Return(configuredSettings(), nil)
	mocks.elections.EXPECT().GetOne("g1", "president").Return(&models.Election{
		Status:  models.ElectionStatusScheduled,
		StartAt: "2020-01-01T00:00:00Z",
	}, nil)

	_, err := service.Nominate("g1", "president", "alice", "Alice")
	assert.ErrorIs(t, err, services.ErrNominationsClosed)
}

func TestBallotServiceNominate_NewCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	election := &models.Election{
		GuildID:          "g1",
		Position:         "president",
		Status:           models.ElectionStatusScheduled,
		StartAt:          futureStart(),
		NomineeMessageID: "nom1",
	}

	mocks.settings.EXPECT().GetOne("g1").Return(configuredSettings(), nil)
	mocks.elections.EXPECT().GetOne("g1", "president").Return(election, nil)
	mocks.nominations.EXPECT().Upsert(&models.Nomination{
		GuildID:     "g1",
		Position:    "president",
		CandidateID: "alice",
		DisplayName: "Alice",
	}).Return(true, nil)
	mocks.nominations.EXPECT().GetMany("g1", "president").Return([]*models.Nomination{
		{CandidateID: "alice", DisplayName: "Alice"},
	}, nil)
	mocks.notifier.EXPECT().PublishOrUpdate(gomock.Any(), "nominees", "nom1", gomock.Any()).Return("nom1", nil)

	outcome, err := service.Nominate("g1", "president", "alice", "Alice")

	assert.NoError(t, err)
	assert.Equal(t, services.NominationInserted, outcome)
}

func TestBallotServiceNominate_RepeatRefreshesDisplayName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	election := &models.Election{
		GuildID:          "g1",
		Position:         "president",
		Status:           models.ElectionStatusScheduled,
		StartAt:          futureStart(),
		NomineeMessageID: "nom1",
	}

	mocks.settings.EXPECT().GetOne("g1").Return(configuredSettings(), nil)
	mocks.elections.EXPECT().GetOne("g1", "president").Return(election, nil)
	mocks.nominations.EXPECT().Upsert(gomock.Any()).Return(false, nil)
	mocks.nominations.EXPECT().GetMany("g1", "president").Return([]*models.Nomination{
		{CandidateID: "alice", DisplayName: "Alice Renamed"},
	}, nil)
	mocks.notifier.EXPECT().PublishOrUpdate(gomock.Any(), "nominees", "nom1", gomock.Any()).Return("nom1", nil)

	outcome, err := service.Nominate("g1", "president", "alice", "Alice Renamed")

	assert.NoError(t, err)
	assert.Equal(t, services.NominationUpdated, outcome)
}

func TestBallotServiceCastVote_RequiresVoterRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	settings := configuredSettings()
	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().HasVoterRole("g1", "v1", settings).Return(false)

	err := service.CastVote("g1", "president", "v1", "alice")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestBallotServiceCastVote_VotingNotOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	settings := configuredSettings()
	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().HasVoterRole("g1", "v1", settings).Return(true)
	mocks.elections.EXPECT().GetOne("g1", "president").Return(&models.Election{
		Status: models.ElectionStatusScheduled,
	}, nil)

	err := service.CastVote("g1", "president", "v1", "alice")
	assert.ErrorIs(t, err, services.ErrVotingNotOpen)
}

func TestBallotServiceCastVote_FirstVoteSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	settings := configuredSettings()
	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().HasVoterRole("g1", "v1", settings).Return(true)
	mocks.elections.EXPECT().GetOne("g1", "president").Return(&models.Election{
		Status: models.ElectionStatusVoting,
	}, nil)
	mocks.votes.EXPECT().CreateUnique(gomock.Any()).Return(true, nil)

	err := service.CastVote("g1", "president", "v1", "alice")
	assert.NoError(t, err)
}

func TestBallotServiceCastVote_SecondVoteIsLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	settings := configuredSettings()
	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().HasVoterRole("g1", "v1", settings).Return(true)
	mocks.elections.EXPECT().GetOne("g1", "president").Return(&models.Election{
		Status: models.ElectionStatusVoting,
	}, nil)
	mocks.votes.EXPECT().CreateUnique(gomock.Any()).Return(false, nil)

	err := service.CastVote("g1", "president", "v1", "bob")
	assert.ErrorIs(t, err, services.ErrAlreadyVoted)
}

// fakeVoteRepository is an in-memory insert-if-absent implementation used to
// exercise concurrent casts end to end.
type fakeVoteRepository struct {
	mu    sync.Mutex
	votes map[string]*models.Vote
}

func newFakeVoteRepository() *fakeVoteRepository {
	return &fakeVoteRepository{votes: make(map[string]*models.Vote)}
}

func (r *fakeVoteRepository) CreateUnique(request *models.Vote) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := request.GuildID + "/" + request.Position + "/" + request.VoterID
	if _, exists := r.votes[key]; exists {
		return false, nil
	}
	r.votes[key] = request
	return true, nil
}

func (r *fakeVoteRepository) GetMany(guildID, position string) ([]*models.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	votes := make([]*models.Vote, 0, len(r.votes))
	for _, vote := range r.votes {
		if vote.GuildID == guildID && vote.Position == position {
			votes = append(votes, vote)
		}
	}
	return votes, nil
}

func (r *fakeVoteRepository) DeleteAll(guildID, position string) error {
	return nil
}

var _ repositories.VoteRepository = (*fakeVoteRepository)(nil)

func TestBallotServiceCastVote_ConcurrentCastsYieldOneSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const casts = 16

	elections := mock_repositories.NewMockElectionRepository(ctrl)
	nominations := mock_repositories.NewMockNominationRepository(ctrl)
	motions := mock_repositories.NewMockMotionRepository(ctrl)
	motionVotes := mock_repositories.NewMockMotionVoteRepository(ctrl)
	settingsRepo := mock_repositories.NewMockSettingsRepository(ctrl)
	policy := mock_services.NewMockAccessPolicy(ctrl)
	notifier := mock_services.NewMockNotifier(ctrl)
	votes := newFakeVoteRepository()

	settings := configuredSettings()
	settingsRepo.EXPECT().GetOne("g1").Return(settings, nil).Times(casts)
	policy.EXPECT().HasVoterRole("g1", "v1", settings).Return(true).Times(casts)
	elections.EXPECT().GetOne("g1", "president").Return(&models.Election{
		Status: models.ElectionStatusVoting,
	}, nil).Times(casts)

	service := services.NewBallotService(
		elections, nominations, votes, motions, motionVotes, settingsRepo,
		policy, notifier, zap.NewNop().Sugar(),
	)

	var wg sync.WaitGroup
	errs := make(chan error, casts)

	for i := 0; i < casts; i++ {
		wg.Add(1)
		go func(candidateID string) {
			defer wg.Done()
			errs <- service.CastVote("g1", "president", "v1", candidateID)
		}("candidate")
	}
	wg.Wait()
	close(errs)

	succeeded, locked := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, services.ErrAlreadyVoted):
			locked++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, casts-1, locked)
}

func TestBallotServiceCastMotionVote_RequiresParliamentRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	settings := configuredSettings()
	settings.ParliamentRoleID = "mp"

	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().HasParliamentRole("g1", "v1", settings).Return(false)

	err := service.CastMotionVote("g1", 7, "v1", models.MotionChoiceYes)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestBallotServiceCastMotionVote_RepublishesRollCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	settings := configuredSettings()
	settings.ParliamentRoleID = "mp"

	motion := &models.Motion{
		ID:        7,
		GuildID:   "g1",
		Status:    models.MotionStatusVoting,
		ChannelID: "parliament",
		MessageID: "roll1",
	}

	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().HasParliamentRole("g1", "v1", settings).Return(true)
	mocks.motions.EXPECT().GetOne("g1", int64(7)).Return(motion, nil)
	mocks.motionVotes.EXPECT().CreateUnique(gomock.Any()).Return(true, nil)
	mocks.motionVotes.EXPECT().GetMany("g1", int64(7)).Return([]*models.MotionVote{
		{VoterID: "v1", Choice: models.MotionChoiceYes},
	}, nil)
	mocks.notifier.EXPECT().PublishOrUpdate(gomock.Any(), "parliament", "roll1", gomock.Any()).Return("roll1", nil)

	err := service.CastMotionVote("g1", 7, "v1", models.MotionChoiceYes)
	assert.NoError(t, err)
}

func TestBallotServiceCastMotionVote_LockedOnRepeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newBallotService(ctrl)
	settings := configuredSettings()
	settings.ParliamentRoleID = "mp"

	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().HasParliamentRole("g1", "v1", settings).Return(true)
	mocks.motions.EXPECT().GetOne("g1", int64(7)).Return(&models.Motion{
		ID:      7,
		GuildID: "g1",
		Status:  models.MotionStatusVoting,
	}, nil)
	mocks.motionVotes.EXPECT().CreateUnique(gomock.Any()).Return(false, nil)

	err := service.CastMotionVote("g1", 7, "v1", models.MotionChoiceNo)
	assert.ErrorIs(t, err, services.ErrAlreadyVoted)
}
