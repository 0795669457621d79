package discord_bot

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const voterListLimit = 25

func userMention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// formatVoterList turns voter IDs into mentions, capped for embed
// readability.
func formatVoterList(userIDs []string) string {
	if len(userIDs) == 0 {
		return "-"
	}

	shown := make([]string, 0, voterListLimit+1)
	for _, userID := range userIDs {
		if len(shown) == voterListLimit {
			break
		}
		shown = append(shown, userMention(userID))
	}

	if extra := len(userIDs) - len(shown); extra > 0 {
		shown = append(shown, fmt.Sprintf("+ %d more", extra))
	}

	return strings.Join(shown, ", ")
}

func displayPosition(position string) string {
	return cases.Title(language.English).String(position)
}
