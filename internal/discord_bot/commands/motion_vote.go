package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"election_governance_system/internal/services"
)

type motionVoteComponentHandler struct {
	ballotService services.BallotService
	logger        *zap.SugaredLogger
}

// NewMotionVoteComponentHandler turns roll-call button presses into locked
// votes. The public roll-call surface is refreshed by the service; the reply
// here only confirms to the voter.
func NewMotionVoteComponentHandler(ballotService services.BallotService, logger *zap.SugaredLogger) ComponentHandler {
	return &motionVoteComponentHandler{
		ballotService: ballotService,
		logger:        logger,
	}
}

func (h *motionVoteComponentHandler) CanHandleComponent(customID string) bool {
	_, _, ok := parseMotionVoteCustomID(customID)
	return ok
}

func (h *motionVoteComponentHandler) HandleComponent(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	data := interaction.MessageComponentData()

	motionID, choice, ok := parseMotionVoteCustomID(data.CustomID)
	if !ok {
		replyEphemeral(session, interaction, h.logger, "This roll-call is malformed. Ask an administrator to repost it.")
		return
	}

	voterID := actorID(interaction)

	if err := h.ballotService.CastMotionVote(interaction.GuildID, motionID, voterID, choice); err != nil {
		if !isExpectedVoteFailure(err) {
			h.logger.Errorw("failed to cast motion vote", "error", err, "guild", interaction.GuildID, "motion", motionID)
		}
		replyEphemeral(session, interaction, h.logger, userMessage(err))
		return
	}

	replyEphemeral(session, interaction, h.logger,
		fmt.Sprintf("Your **%s** vote on motion #%d is recorded. It is final.", choice, motionID))
}
