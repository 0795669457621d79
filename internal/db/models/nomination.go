package models

// Nomination is one candidate on the ballot of an election. Re-nominating
// the same candidate updates the display name, it never duplicates the row.
type Nomination struct {
	GuildID     string `json:"guild_id" pg:",pk"`
	Position    string `json:"position" pg:",pk"`
	CandidateID string `json:"candidate_id" pg:",pk"`
	DisplayName string `json:"display_name" pg:",notnull"`
}
