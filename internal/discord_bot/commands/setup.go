package commands

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"election_governance_system/internal/db/models"
	"election_governance_system/internal/db/repositories"
	"election_governance_system/internal/services"
)

const setupCommandName = "setup"

type setupCommand struct {
	settingsRepository repositories.SettingsRepository
	policy             services.AccessPolicy
	logger             *zap.SugaredLogger
}

// NewSetupCommand binds the channels and roles everything else depends on.
// Only guild administrators can run it before any settings exist, so the
// admin check here cannot rely on a configured admin role.
func NewSetupCommand(settingsRepository repositories.SettingsRepository, policy services.AccessPolicy, logger *zap.SugaredLogger) Command {
	return &setupCommand{
		settingsRepository: settingsRepository,
		policy:             policy,
		logger:             logger,
	}
}

func (c *setupCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        setupCommandName,
		Description: "Configure the channels and roles used for elections and motions",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "nominees_channel",
				Description: "Channel where nominee lists are posted",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "elections_channel",
				Description: "Channel where ballots are posted",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "voter_role",
				Description: "Role allowed to vote in elections",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "parliament_channel",
				Description: "Channel where motion roll-calls are posted",
			},
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "log_channel",
				Description: "Channel for administrative notices",
			},
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "admin_role",
				Description: "Role allowed to manage elections and motions",
			},
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "parliament_role",
				Description: "Role allowed to vote on motions",
			},
		},
	}
}

func (c *setupCommand) CanHandle(command string) bool {
	return command == setupCommandName
}

func (c *setupCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	guildID := interaction.GuildID

	settings, err := c.settingsRepository.GetOne(guildID)
	if err != nil {
		c.logger.Errorw("failed to load guild settings", "error", err, "guild", guildID)
		replyEphemeral(session, interaction, c.logger, userMessage(err))
		return
	}

	if !c.policy.IsAdmin(guildID, actorID(interaction), settings) {
		replyEphemeral(session, interaction, c.logger, userMessage(services.ErrUnauthorized))
		return
	}

	if settings == nil {
		settings = &models.GuildSettings{GuildID: guildID}
	}

	options := commandOptions(interaction)
	if option, ok := options["nominees_channel"]; ok {
		settings.NomineesChannelID = option.ChannelValue(nil).ID
	}
	if option, ok := options["elections_channel"]; ok {
		settings.ElectionsChannelID = option.ChannelValue(nil).ID
	}
	if option, ok := options["parliament_channel"]; ok {
		settings.ParliamentChannelID = option.ChannelValue(nil).ID
	}
	if option, ok := options["log_channel"]; ok {
		settings.LogChannelID = option.ChannelValue(nil).ID
	}
	if option, ok := options["voter_role"]; ok {
		settings.VoterRoleID = option.RoleValue(nil, guildID).ID
	}
	if option, ok := options["admin_role"]; ok {
		settings.AdminRoleID = option.RoleValue(nil, guildID).ID
	}
	if option, ok := options["parliament_role"]; ok {
		settings.ParliamentRoleID = option.RoleValue(nil, guildID).ID
	}

	if err := c.settingsRepository.Upsert(settings); err != nil {
		c.logger.Errorw("failed to save guild settings", "error", err, "guild", guildID)
		replyEphemeral(session, interaction, c.logger, userMessage(err))
		return
	}

	replyEphemeral(session, interaction, c.logger, "Setup saved. Elections and motions are ready to use.")
}
