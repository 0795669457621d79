package discord_bot

import (
	"election_governance_system/internal/db/models"
	"election_governance_system/internal/services"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type accessPolicy struct {
	session *discordgo.Session
	logger  *zap.SugaredLogger
}

// NewAccessPolicy resolves capability checks against guild role bindings.
// Guild administrators always pass the admin check, so /setup works before
// any configuration exists.
func NewAccessPolicy(session *discordgo.Session, logger *zap.SugaredLogger) services.AccessPolicy {
	return &accessPolicy{
		session: session,
		logger:  logger,
	}
}

func (p *accessPolicy) IsAdmin(guildID, actorID string, settings *models.GuildSettings) bool {
	member := p.member(guildID, actorID)
	if member == nil {
		return false
	}

	if p.hasAdministratorPermission(guildID, actorID, member) {
		return true
	}

	if settings == nil || settings.AdminRoleID == "" {
		return false
	}

	return hasRole(member, settings.AdminRoleID)
}

func (p *accessPolicy) HasVoterRole(guildID, actorID string, settings *models.GuildSettings) bool {
	if settings == nil || settings.VoterRoleID == "" {
		return false
	}

	member := p.member(guildID, actorID)
	if member == nil {
		return false
	}

	return hasRole(member, settings.VoterRoleID)
}

func (p *accessPolicy) HasParliamentRole(guildID, actorID string, settings *models.GuildSettings) bool {
	if settings == nil || settings.ParliamentRoleID == "" {
		return false
	}

	member := p.member(guildID, actorID)
	if member == nil {
		return false
	}

	return hasRole(member, settings.ParliamentRoleID)
}

func (p *accessPolicy) member(guildID, userID string) *discordgo.Member {
	member, err := p.session.State.Member(guildID, userID)
	if err == nil {
		return member
	}

	member, err = p.session.GuildMember(guildID, userID)
	if err != nil {
		p.logger.Warnw("failed to load guild member", "error", err, "guild", guildID, "user", userID)
		return nil
	}

	return member
}

func (p *accessPolicy) hasAdministratorPermission(guildID, userID string, member *discordgo.Member) bool {
	guild, err := p.session.State.Guild(guildID)
	if err != nil {
		guild, err = p.session.Guild(guildID)
		if err != nil {
			p.logger.Warnw("failed to load guild", "error", err, "guild", guildID)
			return false
		}
	}

	if guild.OwnerID == userID {
		return true
	}

	permissions := make(map[string]int64, len(guild.Roles))
	for _, role := range guild.Roles {
		permissions[role.ID] = role.Permissions
	}

	for _, roleID := range member.Roles {
		if permissions[roleID]&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	return false
}

func hasRole(member *discordgo.Member, roleID string) bool {
	for _, id := range member.Roles {
		if id == roleID {
			return true
		}
	}
	return false
}
