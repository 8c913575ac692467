package commands

import (
	"fmt"
	"strings"
)

const (
	qodFailureMessage     = "Failed to fetch the question of the day. Please try again later."
	noSubmissionsLine     = "No submissions for today."
	submissionsFailedLine = "Could not fetch submissions right now."
	solvedFailedLine      = "Could not fetch solved counts right now."
	noBadgesLine          = "No badges yet."
	badgesFailedLine      = "Could not fetch badges right now."
)

func formatQuestionOfTheDay(q DailyQuestion) string {
	title := strings.TrimSpace(q.Title)
	if title == "" {
		title = "N/A"
	}
	difficulty := strings.TrimSpace(q.Difficulty)
	if difficulty == "" {
		difficulty = "N/A"
	}

	body := strings.TrimSpace(q.Question)
	if body == "" {
		body = "Could not load the question statement. Open the link above."
	}
	body = truncateRunes(body, maxQuestionRunes)

	lines := []string{
		"Title: " + markdownLink(title, q.URL),
		"Difficulty: " + escapeMarkdownV2(difficulty),
		"",
		"Question:",
		escapeMarkdownV2(body),
	}
	return strings.Join(lines, "\n")
}

func userHeader(username string) string {
	return "User: " + escapeMarkdownV2(username)
}

func formatUserSubmissions(username string, subs []DisplaySubmission) string {
	if len(subs) == 0 {
		return userHeader(username) + "\n" + escapeMarkdownV2(noSubmissionsLine)
	}

	entries := make([]string, 0, len(subs))
	for _, s := range subs {
		entries = append(entries,
			"Title: "+markdownLink(s.Title, s.URL)+"\n"+
				"Completed on: "+escapeMarkdownV2(s.Timestamp))
	}
	return userHeader(username) + "\n" + strings.Join(entries, "\n\n")
}

func formatUserSolved(username string, counts SolvedCounts) string {
	lines := []string{
		userHeader(username),
		escapeMarkdownV2(fmt.Sprintf("Total Solved: %d", counts.TotalSolved)),
		escapeMarkdownV2(fmt.Sprintf("Easy: %d", counts.Easy)),
		escapeMarkdownV2(fmt.Sprintf("Medium: %d", counts.Medium)),
		escapeMarkdownV2(fmt.Sprintf("Hard: %d", counts.Hard)),
	}
	return strings.Join(lines, "\n")
}

func formatUserBadges(username string, badges []Badge) string {
	if len(badges) == 0 {
		return userHeader(username) + "\n" + escapeMarkdownV2(noBadgesLine)
	}

	lines := make([]string, 0, len(badges)+1)
	lines = append(lines, userHeader(username))
	for _, b := range badges {
		lines = append(lines, "• "+escapeMarkdownV2(b.DisplayName))
	}
	return strings.Join(lines, "\n")
}

func formatUserFailure(username, line string) string {
	return userHeader(username) + "\n" + escapeMarkdownV2(line)
}
