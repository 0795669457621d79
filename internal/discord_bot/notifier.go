package discord_bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"election_governance_system/internal"
	"election_governance_system/internal/db/models"
	"election_governance_system/internal/discord_bot/commands"
	"election_governance_system/internal/services"
)

const (
	colorActive = 0x5865F2
	colorClosed = 0x95A5A6
	colorPassed = 0x57F287
	colorFailed = 0xED4245
	colorTied   = 0xFEE75C
	colorNotice = 0xEB459E
	ballotLimit = 25
)

type notifier struct {
	session *discordgo.Session
	logger  *zap.SugaredLogger
}

// NewNotifier renders service-level contents into Discord embeds and
// message components.
func NewNotifier(session *discordgo.Session, logger *zap.SugaredLogger) services.Notifier {
	return &notifier{
		session: session,
		logger:  logger,
	}
}

func (n *notifier) PublishOrUpdate(ctx context.Context, channelID, messageID string, content any) (string, error) {
	embed, components, err := render(content)
	if err != nil {
		return "", err
	}

	if messageID == "" {
		message, err := n.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		}, discordgo.WithContext(ctx))
		if err != nil {
			return "", errors.Wrap(err, "failed to send channel message")
		}
		return message.ID, nil
	}

	edit := discordgo.NewMessageEdit(channelID, messageID)
	edit.Embeds = []*discordgo.MessageEmbed{embed}
	edit.Components = components

	message, err := n.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx))
	if err != nil {
		return "", errors.Wrap(err, "failed to edit channel message")
	}

	return message.ID, nil
}

func (n *notifier) NotifyPrivately(ctx context.Context, userID string, content any) error {
	embed, _, err := render(content)
	if err != nil {
		return err
	}

	channel, err := n.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "failed to open direct message channel")
	}

	_, err = n.session.ChannelMessageSendEmbed(channel.ID, embed, discordgo.WithContext(ctx))
	return errors.Wrap(err, "failed to send direct message")
}

func (n *notifier) NotifyAudience(ctx context.Context, channelID string, content any) error {
	embed, _, err := render(content)
	if err != nil {
		return err
	}

	_, err = n.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx))
	return errors.Wrap(err, "failed to send channel message")
}

func render(content any) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	switch content := content.(type) {
	case services.NomineeList:
		return renderNomineeList(content), nil, nil
	case services.Ballot:
		embed, components := renderBallot(content)
		return embed, components, nil
	case services.ElectionClosedNotice:
		return renderElectionClosedNotice(content), nil, nil
	case services.ElectionResultsReport:
		return renderElectionResultsReport(content), nil, nil
	case *services.ElectionResultsReport:
		return renderElectionResultsReport(*content), nil, nil
	case services.ScheduleNotice:
		return renderScheduleNotice(content), nil, nil
	case services.RollCall:
		return renderRollCall(content.Motion, content.Tally, true)
	case services.MotionSummary:
		embed, _, err := renderRollCall(content.Motion, content.Tally, false)
		if err != nil {
			return nil, nil, err
		}
		embed.Title = fmt.Sprintf("Motion #%d closed: %s", content.Motion.ID, content.Motion.Title)
		return embed, nil, nil
	default:
		return nil, nil, errors.Errorf("unsupported notification content %T", content)
	}
}

func renderNomineeList(content services.NomineeList) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Nominations: %s", displayPosition(content.Position)),
		Color: colorActive,
	}

	if len(content.Nominees) == 0 {
		embed.Description = "No nominees yet."
	} else {
		lines := make([]string, 0, len(content.Nominees))
		for i, nominee := range content.Nominees {
			lines = append(lines, fmt.Sprintf("%d. **%s** (%s)", i+1, nominee.DisplayName, userMention(nominee.CandidateID)))
		}
		embed.Description = strings.Join(lines, "\n")
	}

	if content.Closed {
		embed.Color = colorClosed
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Nominations are closed."}
	} else {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Voting opens", Value: internal.FormatStoredTime(content.StartAt)},
		}
	}

	return embed
}

func renderBallot(content services.Ballot) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Election: %s", displayPosition(content.Position)),
		Description: "Voting is open. Pick a candidate below. Your first vote is final.",
		Color:       colorActive,
	}

	if len(content.Candidates) == 0 {
		embed.Description = "Voting is open, but no candidates were nominated."
		return embed, nil
	}

	options := make([]discordgo.SelectMenuOption, 0, ballotLimit)
	for _, candidate := range content.Candidates {
		if len(options) == ballotLimit {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: candidate.DisplayName,
			Value: candidate.CandidateID,
		})
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    commands.ElectionVoteCustomID(content.Position),
					Placeholder: "Cast your vote",
					Options:     options,
				},
			},
		},
	}

	return embed, components
}

func renderElectionClosedNotice(content services.ElectionClosedNotice) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Election closed: %s", displayPosition(content.Position)),
		Description: "Voting has ended. Results are announced separately.",
		Color:       colorClosed,
	}
}

func renderElectionResultsReport(content services.ElectionResultsReport) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Results: %s", displayPosition(content.Position)),
		Color: colorNotice,
	}

	results := content.Results
	if results == nil || results.TotalVotes == 0 {
		embed.Description = "No votes were cast."
	} else {
		lines := make([]string, 0, len(results.Candidates)+1)
		for i, candidate := range results.Candidates {
			lines = append(lines, fmt.Sprintf("%d. **%s**: %d", i+1, candidate.DisplayName, candidate.Votes))
		}
		embed.Description = strings.Join(lines, "\n")

		switch {
		case results.Tied:
			embed.Color = colorTied
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "Outcome", Value: "Tied. A runoff is needed.",
			})
		case results.Winner != nil:
			embed.Color = colorPassed
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "Winner", Value: fmt.Sprintf("**%s** with %d votes", results.Winner.DisplayName, results.Winner.Votes),
			})
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Total votes", Value: fmt.Sprintf("%d", results.TotalVotes), Inline: true,
		})
	}

	if content.AlreadyClosed {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "This election was already closed. Showing the recorded results."}
	}

	return embed
}

func renderScheduleNotice(content services.ScheduleNotice) *discordgo.MessageEmbed {
	description := fmt.Sprintf("%s scheduled an election for **%s**.", userMention(content.ScheduledBy), displayPosition(content.Position))
	if content.NomineesCleared {
		description += " Previous nominees were cleared."
	}

	return &discordgo.MessageEmbed{
		Title:       "Election scheduled",
		Description: description,
		Color:       colorNotice,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Voting opens", Value: internal.FormatStoredTime(content.StartAt)},
		},
	}
}

func renderRollCall(motion *models.Motion, tally *models.RollCallTally, withButtons bool) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	if motion == nil || tally == nil {
		return nil, nil, errors.New("roll-call content is missing motion or tally")
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s #%d: %s", displayPosition(motion.Kind), motion.ID, motion.Title),
		Description: motion.Text,
		Color:       colorActive,
		Fields: []*discordgo.MessageEmbedField{
			{Name: fmt.Sprintf("Yes (%d)", len(tally.Yes)), Value: formatVoterList(tally.Yes)},
			{Name: fmt.Sprintf("No (%d)", len(tally.No)), Value: formatVoterList(tally.No)},
			{Name: fmt.Sprintf("Abstain (%d)", len(tally.Abstain)), Value: formatVoterList(tally.Abstain)},
		},
	}

	if motion.Status == models.MotionStatusClosed {
		switch tally.Outcome {
		case models.MotionOutcomePassed:
			embed.Color = colorPassed
		case models.MotionOutcomeFailed:
			embed.Color = colorFailed
		default:
			embed.Color = colorTied
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Result", Value: tally.Outcome.String(),
		})
	}

	if !withButtons || motion.Status != models.MotionStatusVoting {
		return embed, nil, nil
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Yes",
					Style:    discordgo.SuccessButton,
					CustomID: commands.MotionVoteCustomID(motion.ID, models.MotionChoiceYes),
				},
				discordgo.Button{
					Label:    "No",
					Style:    discordgo.DangerButton,
					CustomID: commands.MotionVoteCustomID(motion.ID, models.MotionChoiceNo),
				},
				discordgo.Button{
					Label:    "Abstain",
					Style:    discordgo.SecondaryButton,
					CustomID: commands.MotionVoteCustomID(motion.ID, models.MotionChoiceAbstain),
				},
			},
		},
	}

	return embed, components, nil
}
