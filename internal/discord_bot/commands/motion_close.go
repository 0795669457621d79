package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"election_governance_system/internal/services"
)

const motionCloseCommandName = "motion_close"

type motionCloseCommand struct {
	motionService services.MotionService
	logger        *zap.SugaredLogger
}

// NewMotionCloseCommand finalizes a motion. The roll-call surface gets the
// outcome; the closing admin gets a private summary.
func NewMotionCloseCommand(motionService services.MotionService, logger *zap.SugaredLogger) Command {
	return &motionCloseCommand{
		motionService: motionService,
		logger:        logger,
	}
}

func (c *motionCloseCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        motionCloseCommandName,
		Description: "Close a motion and settle its outcome",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "motion_id",
				Description: "ID of the open motion",
				Required:    true,
			},
		},
	}
}

func (c *motionCloseCommand) CanHandle(command string) bool {
	return command == motionCloseCommandName
}

func (c *motionCloseCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	options := commandOptions(interaction)
	motionID := options["motion_id"].IntValue()

	tally, err := c.motionService.Close(interaction.GuildID, motionID, actorID(interaction))
	if err != nil {
		c.logger.Errorw("failed to close motion", "error", err, "guild", interaction.GuildID, "motion", motionID)
		replyEphemeral(session, interaction, c.logger, userMessage(err))
		return
	}

	replyEphemeral(session, interaction, c.logger,
		fmt.Sprintf("Motion #%d is closed: **%s** (%d yes, %d no, %d abstain).",
			motionID, tally.Outcome, len(tally.Yes), len(tally.No), len(tally.Abstain)))
}
