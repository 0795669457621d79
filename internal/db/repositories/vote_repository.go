package repositories

import (
	"election_governance_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	CreateUnique(request *models.Vote) (bool, error)
	GetMany(guildID, position string) ([]*models.Vote, error)
	DeleteAll(guildID, position string) error
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

// CreateUnique records the vote with a single insert-if-absent. Two
// concurrent casts from the same voter resolve to exactly one inserted row;
// the loser sees false.
func (r *voteRepository) CreateUnique(request *models.Vote) (bool, error) {
	result, err := r.db.Model(request).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() == 1, nil
}

func (r *voteRepository) GetMany(guildID, position string) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.Model(&votes).
		Where("guild_id = ?", guildID).
		Where("position = ?", position).
		Select()

	return votes, err
}

func (r *voteRepository) DeleteAll(guildID, position string) error {
	_, err := r.db.Model((*models.Vote)(nil)).
		Where("guild_id = ?", guildID).
		Where("position = ?", position).
		Delete()

	return err
}
