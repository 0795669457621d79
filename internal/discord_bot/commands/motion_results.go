package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"election_governance_system/internal/db/models"
	"election_governance_system/internal/services"
)

const motionResultsCommandName = "motion_results"

type motionResultsCommand struct {
	motionService services.MotionService
	logger        *zap.SugaredLogger
}

// NewMotionResultsCommand shows the current roll-call of a motion. Roll-call
// votes are public, so the reply is visible to the whole channel.
func NewMotionResultsCommand(motionService services.MotionService, logger *zap.SugaredLogger) Command {
	return &motionResultsCommand{
		motionService: motionService,
		logger:        logger,
	}
}

func (c *motionResultsCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        motionResultsCommandName,
		Description: "Show the roll-call of a motion",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "motion_id",
				Description: "ID of the motion",
				Required:    true,
			},
		},
	}
}

func (c *motionResultsCommand) CanHandle(command string) bool {
	return command == motionResultsCommandName
}

func (c *motionResultsCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	options := commandOptions(interaction)
	motionID := options["motion_id"].IntValue()

	motion, tally, err := c.motionService.Results(interaction.GuildID, motionID)
	if err != nil {
		c.logger.Errorw("failed to load motion results", "error", err, "guild", interaction.GuildID, "motion", motionID)
		replyEphemeral(session, interaction, c.logger, userMessage(err))
		return
	}

	lines := []string{
		fmt.Sprintf("Motion #%d: **%s** (%s)", motion.ID, motion.Title, motion.Status),
		fmt.Sprintf("Yes: %d, No: %d, Abstain: %d", len(tally.Yes), len(tally.No), len(tally.Abstain)),
	}
	if motion.Status == models.MotionStatusClosed {
		lines = append(lines, fmt.Sprintf("Result: **%s**", tally.Outcome))
	}

	replyPublic(session, interaction, c.logger, strings.Join(lines, "\n"))
}
