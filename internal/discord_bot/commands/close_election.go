package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"election_governance_system/internal/services"
)

const closeElectionCommandName = "close_election"

type closeElectionCommand struct {
	electionService services.ElectionService
	notifier        services.Notifier
	logger          *zap.SugaredLogger
}

// NewCloseElectionCommand finalizes an election. The full counted results go
// to the closing admin by direct message; the channel reply stays count-free.
func NewCloseElectionCommand(electionService services.ElectionService, notifier services.Notifier, logger *zap.SugaredLogger) Command {
	return &closeElectionCommand{
		electionService: electionService,
		notifier:        notifier,
		logger:          logger,
	}
}

func (c *closeElectionCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        closeElectionCommandName,
		Description: "Close an election and receive the results privately",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "position",
				Description: "Position the election is for",
				Required:    true,
			},
		},
	}
}

func (c *closeElectionCommand) CanHandle(command string) bool {
	return command == closeElectionCommandName
}

func (c *closeElectionCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	options := commandOptions(interaction)
	position := strings.ToLower(strings.TrimSpace(options["position"].StringValue()))

	report, err := c.electionService.Close(interaction.GuildID, position, actorID(interaction))
	if err != nil {
		c.logger.Errorw("failed to close election", "error", err, "guild", interaction.GuildID, "position", position)
		replyEphemeral(session, interaction, c.logger, userMessage(err))
		return
	}

	if report.AlreadyClosed {
		// Closing twice is harmless; re-deliver the recorded results so the
		// repeat is still useful.
		if err := c.notifier.NotifyPrivately(context.Background(), actorID(interaction), *report); err != nil {
			c.logger.Warnw("failed to re-deliver stored results", "error", err, "guild", interaction.GuildID, "position", position)
		}

		replyEphemeral(session, interaction, c.logger,
			fmt.Sprintf("The election for **%s** was already closed. The recorded results were sent to you privately.", position))
		return
	}

	replyEphemeral(session, interaction, c.logger,
		fmt.Sprintf("The election for **%s** is closed. Results were sent to you privately.", position))
}
