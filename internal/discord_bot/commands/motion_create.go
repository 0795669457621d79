package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"election_governance_system/internal/services"
)

const motionCreateCommandName = "motion_create"

type motionCreateCommand struct {
	motionService services.MotionService
	logger        *zap.SugaredLogger
}

// NewMotionCreateCommand drafts a motion. Drafts are invisible to the
// parliament channel until they are explicitly opened.
func NewMotionCreateCommand(motionService services.MotionService, logger *zap.SugaredLogger) Command {
	return &motionCreateCommand{
		motionService: motionService,
		logger:        logger,
	}
}

func (c *motionCreateCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        motionCreateCommandName,
		Description: "Draft a motion for a roll-call vote",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "kind",
				Description: "Kind of motion, for example act or resolution",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "title",
				Description: "Short title",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "Full text of the motion",
				Required:    true,
			},
		},
	}
}

func (c *motionCreateCommand) CanHandle(command string) bool {
	return command == motionCreateCommandName
}

func (c *motionCreateCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	options := commandOptions(interaction)

	kind := strings.ToLower(strings.TrimSpace(options["kind"].StringValue()))
	title := strings.TrimSpace(options["title"].StringValue())
	text := strings.TrimSpace(options["text"].StringValue())

	if kind == "" || title == "" || text == "" {
		replyEphemeral(session, interaction, c.logger, "Kind, title and text are all required.")
		return
	}

	motion, err := c.motionService.Create(interaction.GuildID, kind, title, text, actorID(interaction))
	if err != nil {
		c.logger.Errorw("failed to create motion", "error", err, "guild", interaction.GuildID)
		replyEphemeral(session, interaction, c.logger, userMessage(err))
		return
	}

	replyEphemeral(session, interaction, c.logger,
		fmt.Sprintf("Draft motion #%d created: **%s**. Open it with /motion_open when it is ready.", motion.ID, motion.Title))
}
