package repositories

import (
	"election_governance_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type electionRepository struct {
	repository
}

// ElectionRepository owns election rows and is the only writer of their
// status. Every status change is a conditional update guarded on the current
// status, so racing writers get exactly one winner.
type ElectionRepository interface {
	Schedule(request *models.Election) error
	GetOne(guildID, position string) (*models.Election, error)
	GetManyScheduled() ([]*models.Election, error)
	GetManyByGuild(guildID string) ([]*models.Election, error)
	UpdateStatus(guildID, position string, from, to models.ElectionStatus) (bool, error)
	CloseWithResults(guildID, position string, results *models.ElectionResults) (bool, error)
	SetNomineeMessageID(guildID, position, messageID string) error
	SetVoteMessageID(guildID, position, messageID string) error
}

func NewElectionRepository(db *pg.DB) ElectionRepository {
	return &electionRepository{
		repository: repository{
			db: db,
		},
	}
}

// scheduleConflictUpdate restarts the cycle in place on re-schedule: status,
// window and creator come from the new request, the voting surface and stored
// tally are reset. NOT NULL text columns reset to '', never NULL.
const scheduleConflictUpdate = "status = EXCLUDED.status, start_at = EXCLUDED.start_at, " +
	"created_by = EXCLUDED.created_by, created_at = EXCLUDED.created_at, " +
	"vote_message_id = '', final_results = NULL"

func (r *electionRepository) Schedule(request *models.Election) error {
	_, err := r.db.Model(request).
		OnConflict("(guild_id, position) DO UPDATE").
		Set(scheduleConflictUpdate).
		Insert()

	return err
}

func (r *electionRepository) GetOne(guildID, position string) (*models.Election, error) {
	election := &models.Election{}

	err := r.db.Model(election).
		Where("guild_id = ?", guildID).
		Where("position = ?", position).
		Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}

	return election, err
}

func (r *electionRepository) GetManyScheduled() ([]*models.Election, error) {
	elections := make([]*models.Election, 0)

	err := r.db.Model(&elections).
		Where("status = ?", models.ElectionStatusScheduled).
		Select()

	return elections, err
}

func (r *electionRepository) GetManyByGuild(guildID string) ([]*models.Election, error) {
	elections := make([]*models.Election, 0)

	err := r.db.Model(&elections).
		Where("guild_id = ?", guildID).
		OrderExpr("position ASC").
		Select()

	return elections, err
}

func (r *electionRepository) UpdateStatus(guildID, position string, from, to models.ElectionStatus) (bool, error) {
	result, err := r.db.Model((*models.Election)(nil)).
		Set("status = ?", to).
		Where("guild_id = ?", guildID).
		Where("position = ?", position).
		Where("status = ?", from).
		Update()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() == 1, nil
}

func (r *electionRepository) CloseWithResults(guildID, position string, results *models.ElectionResults) (bool, error) {
	result, err := r.db.Model((*models.Election)(nil)).
		Set("status = ?", models.ElectionStatusClosed).
		Set("final_results = ?", results).
		Where("guild_id = ?", guildID).
		Where("position = ?", position).
		Where("status != ?", models.ElectionStatusClosed).
		Update()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() == 1, nil
}

func (r *electionRepository) SetNomineeMessageID(guildID, position, messageID string) error {
	_, err := r.db.Model((*models.Election)(nil)).
		Set("nominee_message_id = ?", messageID).
		Where("guild_id = ?", guildID).
		Where("position = ?", position).
		Update()

	return err
}

func (r *electionRepository) SetVoteMessageID(guildID, position, messageID string) error {
	_, err := r.db.Model((*models.Election)(nil)).
		Set("vote_message_id = ?", messageID).
		Where("guild_id = ?", guildID).
		Where("position = ?", position).
		Update()

	return err
}
