package repositories

import (
	"election_governance_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type settingsRepository struct {
	repository
}

type SettingsRepository interface {
	GetOne(guildID string) (*models.GuildSettings, error)
	Upsert(request *models.GuildSettings) error
}

func NewSettingsRepository(db *pg.DB) SettingsRepository {
	return &settingsRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *settingsRepository) GetOne(guildID string) (*models.GuildSettings, error) {
	settings := &models.GuildSettings{}

	err := r.db.Model(settings).
		Where("guild_id = ?", guildID).
		Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}

	return settings, err
}

func (r *settingsRepository) Upsert(request *models.GuildSettings) error {
	_, err := r.db.Model(request).
		OnConflict("(guild_id) DO UPDATE").
		Set("nominees_channel_id = EXCLUDED.nominees_channel_id, elections_channel_id = EXCLUDED.elections_channel_id, parliament_channel_id = EXCLUDED.parliament_channel_id, log_channel_id = EXCLUDED.log_channel_id, voter_role_id = EXCLUDED.voter_role_id, admin_role_id = EXCLUDED.admin_role_id, parliament_role_id = EXCLUDED.parliament_role_id").
		Insert()

	return err
}
