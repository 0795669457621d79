package repositories

import (
	"election_governance_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type motionVoteRepository struct {
	repository
}

type MotionVoteRepository interface {
	CreateUnique(request *models.MotionVote) (bool, error)
	GetMany(guildID string, motionID int64) ([]*models.MotionVote, error)
}

func NewMotionVoteRepository(db *pg.DB) MotionVoteRepository {
	return &motionVoteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *motionVoteRepository) CreateUnique(request *models.MotionVote) (bool, error) {
	result, err := r.db.Model(request).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() == 1, nil
}

// GetMany returns the roll in cast order, so the first voter appears first
// in the public display.
func (r *motionVoteRepository) GetMany(guildID string, motionID int64) ([]*models.MotionVote, error) {
	votes := make([]*models.MotionVote, 0)

	err := r.db.Model(&votes).
		Where("guild_id = ?", guildID).
		Where("motion_id = ?", motionID).
		OrderExpr("cast_at ASC, voter_id ASC").
		Select()

	return votes, err
}
