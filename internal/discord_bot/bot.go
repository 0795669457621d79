package discord_bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"election_governance_system/internal/discord_bot/commands"
)

type Bot interface {
	Start() error
	Stop() error
}

type bot struct {
	session           *discordgo.Session
	commands          []commands.Command
	componentHandlers []commands.ComponentHandler
	logger            *zap.SugaredLogger
}

func NewBot(
	session *discordgo.Session,
	botCommands []commands.Command,
	componentHandlers []commands.ComponentHandler,
	logger *zap.SugaredLogger,
) Bot {
	return &bot{
		session:           session,
		commands:          botCommands,
		componentHandlers: componentHandlers,
		logger:            logger,
	}
}

// Start opens the gateway connection and registers every slash command
// globally. Registration is idempotent: re-registering an existing command
// overwrites it.
func (b *bot) Start() error {
	b.session.AddHandler(b.handleInteraction)
	b.session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	if err := b.session.Open(); err != nil {
		return errors.Wrap(err, "failed to open gateway connection")
	}

	for _, command := range b.commands {
		definition := command.Definition()
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", definition); err != nil {
			return errors.Wrapf(err, "failed to register command %s", definition.Name)
		}
		b.logger.Infow("command registered", "command", definition.Name)
	}

	return nil
}

func (b *bot) Stop() error {
	return b.session.Close()
}

func (b *bot) handleInteraction(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		name := interaction.ApplicationCommandData().Name
		for _, command := range b.commands {
			if command.CanHandle(name) {
				command.Handle(session, interaction)
				return
			}
		}
		b.logger.Warnw("unknown command", "command", name)
	case discordgo.InteractionMessageComponent:
		customID := interaction.MessageComponentData().CustomID
		for _, handler := range b.componentHandlers {
			if handler.CanHandleComponent(customID) {
				handler.HandleComponent(session, interaction)
				return
			}
		}
		b.logger.Warnw("unknown component", "custom_id", customID)
	}
}
