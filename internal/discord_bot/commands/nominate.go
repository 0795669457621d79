package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"election_governance_system/internal/services"
)

const nominateCommandName = "nominate"

type nominateCommand struct {
	ballotService services.BallotService
	logger        *zap.SugaredLogger
}

// NewNominateCommand puts a member on the ballot of a scheduled election.
// Nominating the same member again only refreshes their display name.
func NewNominateCommand(ballotService services.BallotService, logger *zap.SugaredLogger) Command {
	return &nominateCommand{
		ballotService: ballotService,
		logger:        logger,
	}
}

func (c *nominateCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        nominateCommandName,
		Description: "Nominate a member for a scheduled election",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "position",
				Description: "Position the election is for",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "candidate",
				Description: "Member to nominate",
				Required:    true,
			},
		},
	}
}

func (c *nominateCommand) CanHandle(command string) bool {
	return command == nominateCommandName
}

func (c *nominateCommand) Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	options := commandOptions(interaction)
	position := strings.ToLower(strings.TrimSpace(options["position"].StringValue()))

	candidate := options["candidate"].UserValue(session)
	if candidate == nil {
		replyEphemeral(session, interaction, c.logger, "Could not resolve that member.")
		return
	}

	displayName := candidate.Username
	if member, err := session.GuildMember(interaction.GuildID, candidate.ID); err == nil && member.Nick != "" {
		displayName = member.Nick
	}

	outcome, err := c.ballotService.Nominate(interaction.GuildID, position, candidate.ID, displayName)
	if err != nil {
		c.logger.Errorw("failed to nominate", "error", err, "guild", interaction.GuildID, "position", position)
		replyEphemeral(session, interaction, c.logger, userMessage(err))
		return
	}

	if outcome == services.NominationUpdated {
		replyEphemeral(session, interaction, c.logger,
			fmt.Sprintf("**%s** was already nominated for **%s**. Their display name was refreshed.", displayName, position))
		return
	}

	replyEphemeral(session, interaction, c.logger,
		fmt.Sprintf("**%s** is now nominated for **%s**.", displayName, position))
}
