package commands

import (
	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"election_governance_system/internal/services"
)

// Command is one slash command: its registration payload plus its handler.
type Command interface {
	Definition() *discordgo.ApplicationCommand
	CanHandle(command string) bool
	Handle(session *discordgo.Session, interaction *discordgo.InteractionCreate)
}

// ComponentHandler reacts to message components (ballot select menus and
// roll-call buttons) by their custom ID.
type ComponentHandler interface {
	CanHandleComponent(customID string) bool
	HandleComponent(session *discordgo.Session, interaction *discordgo.InteractionCreate)
}

func respondEphemeral(session *discordgo.Session, interaction *discordgo.InteractionCreate, text string) error {
	return session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respond(session *discordgo.Session, interaction *discordgo.InteractionCreate, text string) error {
	return session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
		},
	})
}

func replyEphemeral(session *discordgo.Session, interaction *discordgo.InteractionCreate, logger *zap.SugaredLogger, text string) {
	if err := respondEphemeral(session, interaction, text); err != nil {
		logger.Errorw("failed to respond to interaction", "error", err)
	}
}

func replyPublic(session *discordgo.Session, interaction *discordgo.InteractionCreate, logger *zap.SugaredLogger, text string) {
	if err := respond(session, interaction, text); err != nil {
		logger.Errorw("failed to respond to interaction", "error", err)
	}
}

// userMessage maps service failures to the text shown to the acting user.
// Unknown errors get a generic line so internals never leak into the guild.
func userMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return "You are not allowed to do that."
	case errors.Is(err, services.ErrNotConfigured):
		return "This server is not set up yet. An administrator has to run /setup first."
	case errors.Is(err, services.ErrNotFound):
		return "Nothing with that name or ID exists here."
	case errors.Is(err, services.ErrAlreadyVoted):
		return "You already voted. Votes are final and cannot be changed."
	case errors.Is(err, services.ErrElectionClosed):
		return "That election is closed."
	case errors.Is(err, services.ErrVotingNotOpen):
		return "Voting is not open."
	case errors.Is(err, services.ErrNominationsClosed):
		return "Nominations are closed for that election."
	case errors.Is(err, services.ErrMotionNotDraft):
		return "That motion is not a draft anymore."
	default:
		return "Something went wrong. Please try again later."
	}
}

func commandOptions(interaction *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := interaction.ApplicationCommandData().Options
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, option := range options {
		byName[option.Name] = option
	}
	return byName
}

func actorID(interaction *discordgo.InteractionCreate) string {
	if interaction.Member != nil && interaction.Member.User != nil {
		return interaction.Member.User.ID
	}
	if interaction.User != nil {
		return interaction.User.ID
	}
	return ""
}
