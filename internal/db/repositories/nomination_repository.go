package repositories

import (
	"election_governance_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type nominationRepository struct {
	repository
}

type NominationRepository interface {
	Upsert(request *models.Nomination) (bool, error)
	GetMany(guildID, position string) ([]*models.Nomination, error)
	DeleteAll(guildID, position string) error
}

func NewNominationRepository(db *pg.DB) NominationRepository {
	return &nominationRepository{
		repository: repository{
			db: db,
		},
	}
}

// Upsert inserts the nomination or, when the candidate is already on the
// ballot, updates the display name. Returns true when a new row was created.
func (r *nominationRepository) Upsert(request *models.Nomination) (bool, error) {
	result, err := r.db.Model(request).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return false, err
	}

	if result.RowsAffected() == 1 {
		return true, nil
	}

	_, err = r.db.Model((*models.Nomination)(nil)).
		Set("display_name = ?", request.DisplayName).
		Where("guild_id = ?", request.GuildID).
		Where("position = ?", request.Position).
		Where("candidate_id = ?", request.CandidateID).
		Update()

	return false, err
}

func (r *nominationRepository) GetMany(guildID, position string) ([]*models.Nomination, error) {
	nominations := make([]*models.Nomination, 0)

	err := r.db.Model(&nominations).
		Where("guild_id = ?", guildID).
		Where("position = ?", position).
		OrderExpr("display_name ASC").
		Select()

	return nominations, err
}

func (r *nominationRepository) DeleteAll(guildID, position string) error {
	_, err := r.db.Model((*models.Nomination)(nil)).
		Where("guild_id = ?", guildID).
		Where("position = ?", position).
		Delete()

	return err
}
