package commands

import (
	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"election_governance_system/internal/services"
)

type electionVoteComponentHandler struct {
	ballotService services.BallotService
	logger        *zap.SugaredLogger
}

// NewElectionVoteComponentHandler turns ballot select-menu picks into locked
// votes. Every reply is ephemeral; election votes stay secret.
func NewElectionVoteComponentHandler(ballotService services.BallotService, logger *zap.SugaredLogger) ComponentHandler {
	return &electionVoteComponentHandler{
		ballotService: ballotService,
		logger:        logger,
	}
}

func (h *electionVoteComponentHandler) CanHandleComponent(customID string) bool {
	_, ok := parseElectionVoteCustomID(customID)
	return ok
}

func (h *electionVoteComponentHandler) HandleComponent(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	data := interaction.MessageComponentData()

	position, ok := parseElectionVoteCustomID(data.CustomID)
	if !ok || len(data.Values) != 1 {
		replyEphemeral(session, interaction, h.logger, "This ballot is malformed. Ask an administrator to repost it.")
		return
	}

	voterID := actorID(interaction)
	candidateID := data.Values[0]

	if err := h.ballotService.CastVote(interaction.GuildID, position, voterID, candidateID); err != nil {
		if !isExpectedVoteFailure(err) {
			h.logger.Errorw("failed to cast vote", "error", err, "guild", interaction.GuildID, "position", position)
		}
		replyEphemeral(session, interaction, h.logger, userMessage(err))
		return
	}

	replyEphemeral(session, interaction, h.logger, "Your vote is in. It is final and cannot be changed.")
}

func isExpectedVoteFailure(err error) bool {
	for _, expected := range []error{
		services.ErrAlreadyVoted,
		services.ErrVotingNotOpen,
		services.ErrUnauthorized,
		services.ErrNotFound,
		services.ErrNotConfigured,
	} {
		if errors.Is(err, expected) {
			return true
		}
	}
	return false
}
