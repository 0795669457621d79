package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"election_governance_system/internal"
	"election_governance_system/internal/db/repositories"
)

const statusCommandName = "status"

type statusCommand struct {
	electionRepository repositories.ElectionRepository
	settingsRepository repositories.SettingsRepository
	logger             *zap.SugaredLogger
}

func NewStatusCommand(electionRepository repositories.ElectionRepository, settingsRepository repositories.SettingsRepository, logger *zap.SugaredLogger) Command {
	return &statusCommand{
		electionRepository: electionRepository,
		settingsRepository: settingsRepository,
		logger:             logger,
	}
}

func (c *statusCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        statusCommandName,
		Description: "Show the configuration and every election in this server",
	}
}

func (c *statusCommand) CanHandle(command string) bool {
	return command == statusCommandName
}

func (c *statusCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	guildID := interaction.GuildID

	settings, err := c.settingsRepository.GetOne(guildID)
	if err != nil {
		c.logger.Errorw("failed to load guild settings", "error", err, "guild", guildID)
		replyEphemeral(session, interaction, c.logger, userMessage(err))
		return
	}

	lines := make([]string, 0, 8)
	if settings == nil {
		lines = append(lines, "This server is not set up yet. Run /setup to begin.")
	} else {
		lines = append(lines, fmt.Sprintf("Nominees channel: <#%s>", settings.NomineesChannelID))
		lines = append(lines, fmt.Sprintf("Elections channel: <#%s>", settings.ElectionsChannelID))
		if settings.ParliamentChannelID != "" {
			lines = append(lines, fmt.Sprintf("Parliament channel: <#%s>", settings.ParliamentChannelID))
		}
	}

	elections, err := c.electionRepository.GetManyByGuild(guildID)
	if err != nil {
		c.logger.Errorw("failed to load elections", "error", err, "guild", guildID)
		replyEphemeral(session, interaction, c.logger, userMessage(err))
		return
	}

	if len(elections) == 0 {
		lines = append(lines, "", "No elections.")
	} else {
		lines = append(lines, "", "Elections:")
		for _, election := range elections {
			lines = append(lines, fmt.Sprintf("- **%s**: %s, voting opens %s",
				election.DisplayPosition(), election.Status, internal.FormatStoredTime(election.StartAt)))
		}
	}

	replyEphemeral(session, interaction, c.logger, strings.Join(lines, "\n"))
}
