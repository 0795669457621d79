package repositories

import (
	"election_governance_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type motionRepository struct {
	repository
}

type MotionRepository interface {
	Create(request *models.Motion) (*models.Motion, error)
	GetOne(guildID string, motionID int64) (*models.Motion, error)
	Open(guildID string, motionID int64, opensAt, closesAt string) (bool, error)
	UpdateStatus(guildID string, motionID int64, from, to models.MotionStatus) (bool, error)
	SetMessage(guildID string, motionID int64, channelID, messageID string) error
}

func NewMotionRepository(db *pg.DB) MotionRepository {
	return &motionRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *motionRepository) Create(request *models.Motion) (*models.Motion, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *motionRepository) GetOne(guildID string, motionID int64) (*models.Motion, error) {
	motion := &models.Motion{}

	err := r.db.Model(motion).
		Where("guild_id = ?", guildID).
		Where("id = ?", motionID).
		Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}

	return motion, err
}

// Open moves the motion from DRAFT to VOTING and stamps the voting window
// in one conditional update.
func (r *motionRepository) Open(guildID string, motionID int64, opensAt, closesAt string) (bool, error) {
	result, err := r.db.Model((*models.Motion)(nil)).
		Set("status = ?", models.MotionStatusVoting).
		Set("opens_at = ?", opensAt).
		Set("closes_at = ?", closesAt).
		Where("guild_id = ?", guildID).
		Where("id = ?", motionID).
		Where("status = ?", models.MotionStatusDraft).
		Update()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() == 1, nil
}

func (r *motionRepository) UpdateStatus(guildID string, motionID int64, from, to models.MotionStatus) (bool, error) {
	result, err := r.db.Model((*models.Motion)(nil)).
		Set("status = ?", to).
		Where("guild_id = ?", guildID).
		Where("id = ?", motionID).
		Where("status = ?", from).
		Update()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() == 1, nil
}

func (r *motionRepository) SetMessage(guildID string, motionID int64, channelID, messageID string) error {
	_, err := r.db.Model((*models.Motion)(nil)).
		Set("channel_id = ?", channelID).
		Set("message_id = ?", messageID).
		Where("guild_id = ?", guildID).
		Where("id = ?", motionID).
		Update()

	return err
}
