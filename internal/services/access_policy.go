package services

import (
	"election_governance_system/internal/db/models"
)

// AccessPolicy resolves whether an actor may perform administrative or
// voting actions against the guild's configured role bindings. The guild
// configuration is opaque to the services beyond these predicates; the
// Discord adapter provides the implementation.
type AccessPolicy interface {
	IsAdmin(guildID, actorID string, settings *models.GuildSettings) bool
	HasVoterRole(guildID, actorID string, settings *models.GuildSettings) bool
	HasParliamentRole(guildID, actorID string, settings *models.GuildSettings) bool
}
