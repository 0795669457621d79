package models

// GuildSettings is the per-guild configuration saved by /setup: the channels
// surfaces are posted to and the roles the access policy checks against.
type GuildSettings struct {
	GuildID             string `json:"guild_id" pg:",pk"`
	NomineesChannelID   string `json:"nominees_channel_id"`
	ElectionsChannelID  string `json:"elections_channel_id"`
	ParliamentChannelID string `json:"parliament_channel_id"`
	LogChannelID        string `json:"log_channel_id"`
	VoterRoleID         string `json:"voter_role_id"`
	AdminRoleID         string `json:"admin_role_id"`
	ParliamentRoleID    string `json:"parliament_role_id"`
}
