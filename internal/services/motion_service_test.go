package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"election_governance_system/internal/db/models"
	mock_repositories "election_governance_system/internal/db/repositories/mocks"
	"election_governance_system/internal/services"
	mock_services "election_governance_system/internal/services/mocks"
)

type motionServiceMocks struct {
	motions     *mock_repositories.MockMotionRepository
	motionVotes *mock_repositories.MockMotionVoteRepository
	settings    *mock_repositories.MockSettingsRepository
	policy      *mock_services.MockAccessPolicy
	notifier    *mock_services.MockNotifier
}

func newMotionService(ctrl *gomock.Controller) (services.MotionService, motionServiceMocks) {
	mocks := motionServiceMocks{
		motions:     mock_repositories.NewMockMotionRepository(ctrl),
		motionVotes: mock_repositories.NewMockMotionVoteRepository(ctrl),
		settings:    mock_repositories.NewMockSettingsRepository(ctrl),
		policy:      mock_services.NewMockAccessPolicy(ctrl),
		notifier:    mock_services.NewMockNotifier(ctrl),
	}

	service := services.NewMotionService(
		mocks.motions, mocks.motionVotes, mocks.settings,
		mocks.policy, mocks.notifier, zap.NewNop().Sugar(),
	)

	return service, mocks
}

func parliamentSettings() *models.GuildSettings {
	settings := configuredSettings()
	settings.ParliamentChannelID = "parliament"
	settings.ParliamentRoleID = "mp"
	return settings
}

func TestMotionServiceCreate_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newMotionService(ctrl)
	settings := parliamentSettings()
	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().IsAdmin("g1", "someone", settings).Return(false)

	_, err := service.Create("g1", "act", "Budget Act", "The budget is approved.", "someone")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestMotionServiceCreate_StartsAsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newMotionService(ctrl)
	settings := parliamentSettings()
	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().IsAdmin("g1", "admin", settings).Return(true)
	mocks.motions.EXPECT().Create(gomock.Any()).DoAndReturn(func(motion *models.Motion) (*models.Motion, error) {
		motion.ID = 7
		return motion, nil
	})

	motion, err := service.Create("g1", "act", "Budget Act", "The budget is approved.", "admin")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), motion.ID)
	assert.Equal(t, models.MotionStatusDraft, motion.Status)
}

func TestMotionServiceOpen_RequiresParliamentChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newMotionService(ctrl)
	settings := configuredSettings()
	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().IsAdmin("g1", "admin", settings).Return(true)

	_, err := service.Open("g1", 7, time.Hour, "admin")
	assert.ErrorIs(t, err, services.ErrNotConfigured)
}

func TestMotionServiceOpen_PublishesRollCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newMotionService(ctrl)
	settings := parliamentSettings()

	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().IsAdmin("g1", "admin", settings).Return(true)
	mocks.motions.EXPECT().Open("g1", int64(7), gomock.Any(), gomock.Any()).Return(true, nil)
	mocks.motions.EXPECT().GetOne("g1", int64(7)).Return(&models.Motion{
		ID:      7,
		GuildID: "g1",
		Title:   "Budget Act",
		Status:  models.MotionStatusVoting,
	}, nil)
	mocks.notifier.EXPECT().PublishOrUpdate(gomock.Any(), "parliament", "", gomock.Any()).Return("roll1", nil)
	mocks.motions.EXPECT().SetMessage("g1", int64(7), "parliament", "roll1").Return(nil)

	motion, err := service.Open("g1", 7, time.Hour, "admin")

	assert.NoError(t, err)
	assert.Equal(t, "roll1", motion.MessageID)
}

func TestMotionServiceOpen_NotDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newMotionService(ctrl)
	settings := parliamentSettings()

	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().IsAdmin("g1", "admin", settings).Return(true)
	mocks.motions.EXPECT().Open("g1", int64(7), gomock.Any(), gomock.Any()).Return(false, nil)
	mocks.motions.EXPECT().GetOne("g1", int64(7)).Return(&models.Motion{
		ID:     7,
		Status: models.MotionStatusVoting,
	}, nil)

	_, err := service.Open("g1", 7, time.Hour, "admin")
	assert.ErrorIs(t, err, services.ErrMotionNotDraft)
}

func TestMotionServiceClose_SettlesOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newMotionService(ctrl)
	settings := parliamentSettings()

	motion := &models.Motion{
		ID:        7,
		GuildID:   "g1",
		Status:    models.MotionStatusClosed,
		ChannelID: "parliament",
		MessageID: "roll1",
	}

	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().IsAdmin("g1", "admin", settings).Return(true)
	mocks.motions.EXPECT().UpdateStatus("g1", int64(7),
		models.MotionStatusVoting, models.MotionStatusClosed).Return(true, nil)
	mocks.motions.EXPECT().GetOne("g1", int64(7)).Return(motion, nil)
	mocks.motionVotes.EXPECT().GetMany("g1", int64(7)).Return([]*models.MotionVote{
		{VoterID: "v1", Choice: models.MotionChoiceYes},
		{VoterID: "v2", Choice: models.MotionChoiceYes},
		{VoterID: "v3", Choice: models.MotionChoiceNo},
	}, nil)
	mocks.notifier.EXPECT().PublishOrUpdate(gomock.Any(), "parliament", "roll1", gomock.Any()).Return("roll1", nil)
	mocks.notifier.EXPECT().NotifyPrivately(gomock.Any(), "admin", gomock.Any()).Return(nil)

	tally, err := service.Close("g1", 7, "admin")

	assert.NoError(t, err)
	assert.Equal(t, models.MotionOutcomePassed, tally.Outcome)
	assert.Equal(t, []string{"v1", "v2"}, tally.Yes)
}

func TestMotionServiceClose_NotOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newMotionService(ctrl)
	settings := parliamentSettings()

	mocks.settings.EXPECT().GetOne("g1").Return(settings, nil)
	mocks.policy.EXPECT().IsAdmin("g1", "admin", settings).Return(true)
	mocks.motions.EXPECT().UpdateStatus("g1", int64(7),
		models.MotionStatusVoting, models.MotionStatusClosed).Return(false, nil)
	mocks.motions.EXPECT().GetOne("g1", int64(7)).Return(&models.Motion{
		ID:     7,
		Status: models.MotionStatusDraft,
	}, nil)

	_, err := service.Close("g1", 7, "admin")
	assert.ErrorIs(t, err, services.ErrVotingNotOpen)
}

func TestMotionServiceResults_TiedWithoutVotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newMotionService(ctrl)

	mocks.motions.EXPECT().GetOne("g1", int64(7)).Return(&models.Motion{
		ID:     7,
		Status: models.MotionStatusVoting,
	}, nil)
	mocks.motionVotes.EXPECT().GetMany("g1", int64(7)).Return(nil, nil)

	motion, tally, err := service.Results("g1", 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), motion.ID)
	assert.Equal(t, models.MotionOutcomeTied, tally.Outcome)
}
