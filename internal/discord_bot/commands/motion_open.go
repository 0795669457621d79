package commands

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"election_governance_system/internal/services"
)

const (
	motionOpenCommandName = "motion_open"

	defaultVotingMinutes = 60
)

type motionOpenCommand struct {
	motionService services.MotionService
	logger        *zap.SugaredLogger
}

// NewMotionOpenCommand opens a draft motion for voting and posts its public
// roll-call to the parliament channel.
func NewMotionOpenCommand(motionService services.MotionService, logger *zap.SugaredLogger) Command {
	return &motionOpenCommand{
		motionService: motionService,
		logger:        logger,
	}
}

func (c *motionOpenCommand) Definition() *discordgo.ApplicationCommand {
	minMinutes := float64(1)

	return &discordgo.ApplicationCommand{
		Name:        motionOpenCommandName,
		Description: "Open a draft motion for voting",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "motion_id",
				Description: "ID of the draft motion",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "duration_minutes",
				Description: "Intended voting window in minutes, default 60",
				MinValue:    &minMinutes,
			},
		},
	}
}

func (c *motionOpenCommand) CanHandle(command string) bool {
	return command == motionOpenCommandName
}

func (c *motionOpenCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	options := commandOptions(interaction)

	motionID := options["motion_id"].IntValue()

	minutes := int64(defaultVotingMinutes)
	if option, ok := options["duration_minutes"]; ok {
		minutes = option.IntValue()
	}

	motion, err := c.motionService.Open(interaction.GuildID, motionID, time.Duration(minutes)*time.Minute, actorID(interaction))
	if err != nil {
		c.logger.Errorw("failed to open motion", "error", err, "guild", interaction.GuildID, "motion", motionID)
		replyEphemeral(session, interaction, c.logger, userMessage(err))
		return
	}

	replyEphemeral(session, interaction, c.logger,
		fmt.Sprintf("Motion #%d (**%s**) is open for voting. Close it with /motion_close.", motion.ID, motion.Title))
}
