package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"election_governance_system/internal"
	"election_governance_system/internal/services"
)

const openElectionCommandName = "open_election"

type openElectionCommand struct {
	electionService services.ElectionService
	logger          *zap.SugaredLogger
}

// NewOpenElectionCommand schedules a fresh election cycle for one position.
// Re-running it for the same position restarts that cycle in place.
func NewOpenElectionCommand(electionService services.ElectionService, logger *zap.SugaredLogger) Command {
	return &openElectionCommand{
		electionService: electionService,
		logger:          logger,
	}
}

func (c *openElectionCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        openElectionCommandName,
		Description: "Schedule an election for a position",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "position",
				Description: "Position the election is for",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "start_time",
				Description: "When voting opens, Europe/London time (YYYY-MM-DD HH:MM)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "clear_nominees",
				Description: "Also remove the current nominees for the position",
			},
		},
	}
}

func (c *openElectionCommand) CanHandle(command string) bool {
	return command == openElectionCommandName
}

func (c *openElectionCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	options := commandOptions(interaction)

	position := strings.ToLower(strings.TrimSpace(options["position"].StringValue()))
	if position == "" {
		replyEphemeral(session, interaction, c.logger, "Position cannot be empty.")
		return
	}

	startAt, err := internal.ParseLocalTime(options["start_time"].StringValue())
	if err != nil {
		replyEphemeral(session, interaction, c.logger, "Could not read the start time. Use YYYY-MM-DD HH:MM, Europe/London.")
		return
	}

	clearNominees := false
	if option, ok := options["clear_nominees"]; ok {
		clearNominees = option.BoolValue()
	}

	election, err := c.electionService.Schedule(interaction.GuildID, position, startAt, actorID(interaction), clearNominees)
	if err != nil {
		c.logger.Errorw("failed to schedule election", "error", err, "guild", interaction.GuildID, "position", position)
		replyEphemeral(session, interaction, c.logger, userMessage(err))
		return
	}

	text := fmt.Sprintf("Election for **%s** is scheduled. Voting opens %s.",
		election.DisplayPosition(), internal.FormatStoredTime(election.StartAt))
	if clearNominees {
		text += " Previous nominees were cleared."
	}
	replyEphemeral(session, interaction, c.logger, text)
}
