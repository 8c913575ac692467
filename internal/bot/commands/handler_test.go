package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	ChatID   int64
	Text     string
	Markdown bool
}

type fakeDeps struct {
	sent []sentMessage

	daily       DailyQuestion
	dailyErr    error
	submissions map[string][]Submission
	solved      map[string]SolvedCounts
	badges      map[string][]Badge
	failUsers   map[string]bool

	roster []string
	now    time.Time
}

func newFakeDeps(roster ...string) *fakeDeps {
	return &fakeDeps{
		submissions: make(map[string][]Submission),
		solved:      make(map[string]SolvedCounts),
		badges:      make(map[string][]Badge),
		failUsers:   make(map[string]bool),
		roster:      roster,
		now:         time.Date(2024, 3, 10, 21, 0, 0, 0, sgt),
	}
}

func (f *fakeDeps) SendMessage(_ context.Context, chatID int64, text string) error {
	f.sent = append(f.sent, sentMessage{ChatID: chatID, Text: text})
	return nil
}

func (f *fakeDeps) SendMarkdownMessage(_ context.Context, chatID int64, text string) error {
	f.sent = append(f.sent, sentMessage{ChatID: chatID, Text: text, Markdown: true})
	return nil
}

func (f *fakeDeps) DailyQuestion(context.Context) (DailyQuestion, error) {
	return f.daily, f.dailyErr
}

func (f *fakeDeps) AcceptedSubmissions(_ context.Context, username string) ([]Submission, error) {
	if f.failUsers[username] {
		return nil, errors.New("status 503")
	}
	return f.submissions[username], nil
}

func (f *fakeDeps) Solved(_ context.Context, username string) (SolvedCounts, error) {
	if f.failUsers[username] {
		return SolvedCounts{}, errors.New("status 503")
	}
	return f.solved[username], nil
}

func (f *fakeDeps) Badges(_ context.Context, username string) ([]Badge, error) {
	if f.failUsers[username] {
		return nil, errors.New("status 503")
	}
	return f.badges[username], nil
}

func (f *fakeDeps) Roster() []string         { return f.roster }
func (f *fakeDeps) Location() *time.Location { return sgt }
func (f *fakeDeps) Now() time.Time           { return f.now }

func run(t *testing.T, deps *fakeDeps, text string) []sentMessage {
	t.Helper()
	h := NewHandler(deps, zerolog.Nop())
	require.NoError(t, h.Handle(context.Background(), 42, text))
	return deps.sent
}

func TestSubmissionsListsRosterInOrder(t *testing.T) {
	deps := newFakeDeps("alice", "bob")
	deps.submissions["alice"] = []Submission{
		{Title: "Two Sum", TitleSlug: "two-sum", Timestamp: time.Date(2024, 3, 10, 9, 15, 0, 0, sgt).Unix()},
		{Title: "Old One", TitleSlug: "old-one", Timestamp: time.Date(2024, 3, 8, 9, 15, 0, 0, sgt).Unix()},
		{Title: "Valid Parentheses", TitleSlug: "valid-parentheses", Timestamp: time.Date(2024, 3, 10, 20, 0, 5, 0, sgt).Unix()},
	}

	sent := run(t, deps, "/submissions")
	require.Len(t, sent, 1)
	msg := sent[0].Text
	assert.True(t, sent[0].Markdown)

	want := "User: alice\n" +
		"Title: [Two Sum](https://leetcode.com/problems/two-sum/)\n" +
		"Completed on: 2024\\-03\\-10 09:15:00\n" +
		"\n" +
		"Title: [Valid Parentheses](https://leetcode.com/problems/valid-parentheses/)\n" +
		"Completed on: 2024\\-03\\-10 20:00:05\n" +
		"\n" +
		"User: bob\n" +
		"No submissions for today\\."
	assert.Equal(t, want, msg)
	assert.NotContains(t, msg, "Old One")
}

func TestSubmissionsToleratesPerUserFailure(t *testing.T) {
	deps := newFakeDeps("alice", "broken_user", "carol")
	deps.failUsers["broken_user"] = true

	sent := run(t, deps, "/Submissions@leet_bot")
	require.Len(t, sent, 1)
	msg := sent[0].Text

	assert.Contains(t, msg, "User: broken\\_user\nCould not fetch submissions right now\\.")
	assert.Contains(t, msg, "User: alice\nNo submissions for today\\.")
	assert.Contains(t, msg, "User: carol\nNo submissions for today\\.")
	assert.Less(t, strings.Index(msg, "alice"), strings.Index(msg, "broken"))
	assert.Less(t, strings.Index(msg, "broken"), strings.Index(msg, "carol"))
}

func TestSolvedFormatsCounts(t *testing.T) {
	deps := newFakeDeps("alice", "bob")
	deps.solved["alice"] = SolvedCounts{TotalSolved: 10, Easy: 6, Medium: 3, Hard: 1}
	deps.failUsers["bob"] = true

	sent := run(t, deps, "/solved")
	require.Len(t, sent, 1)
	assert.Equal(t,
		"User: alice\nTotal Solved: 10\nEasy: 6\nMedium: 3\nHard: 1\n\nUser: bob\nCould not fetch solved counts right now\\.",
		sent[0].Text)
}

func TestBadgesListsNamesOrFallback(t *testing.T) {
	deps := newFakeDeps("alice", "bob")
	deps.badges["alice"] = []Badge{{DisplayName: "50 Days Badge 2024"}, {DisplayName: "Jan LeetCoding Challenge"}}

	sent := run(t, deps, "/badges")
	require.Len(t, sent, 1)
	assert.Equal(t,
		"User: alice\n• 50 Days Badge 2024\n• Jan LeetCoding Challenge\n\nUser: bob\nNo badges yet\\.",
		sent[0].Text)
}

func TestQuestionOfTheDay(t *testing.T) {
	deps := newFakeDeps("alice")
	deps.daily = DailyQuestion{
		Title:      "Two Sum",
		Difficulty: "Easy",
		Question:   "Given nums[i] and target, return indices.",
		URL:        "https://leetcode.com/problems/two-sum/",
	}

	sent := run(t, deps, "/QOD")
	require.Len(t, sent, 1)
	assert.True(t, sent[0].Markdown)
	assert.Equal(t,
		"Title: [Two Sum](https://leetcode.com/problems/two-sum/)\n"+
			"Difficulty: Easy\n"+
			"\n"+
			"Question:\n"+
			"Given nums\\[i\\] and target, return indices\\.",
		sent[0].Text)
}

func TestQuestionOfTheDayFailureSendsFixedNotice(t *testing.T) {
	deps := newFakeDeps("alice")
	deps.dailyErr = errors.New("leetcode api /daily: status 500")

	sent := run(t, deps, "/qod")
	require.Len(t, sent, 1)
	assert.Equal(t, "Failed to fetch the question of the day. Please try again later.", sent[0].Text)
	assert.False(t, sent[0].Markdown)
}

func TestQuestionOfTheDayMissingFieldsUseDefaults(t *testing.T) {
	deps := newFakeDeps("alice")

	sent := run(t, deps, "/qod")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "Title: N/A\nDifficulty: N/A")
	assert.Contains(t, sent[0].Text, "Could not load the question statement\\.")
}

func TestStartHelpAndUnknown(t *testing.T) {
	deps := newFakeDeps("alice")
	run(t, deps, "/start")
	run(t, deps, "/help extra args")
	run(t, deps, "/nope")

	require.Len(t, deps.sent, 3)
	assert.Contains(t, deps.sent[0].Text, "Reminder to practice LeetCode daily")
	assert.Contains(t, deps.sent[1].Text, "/badges")
	assert.Equal(t, "Unknown command. Use /help to see available commands.", deps.sent[2].Text)
}

func TestEmptyRosterReport(t *testing.T) {
	deps := newFakeDeps()
	sent := run(t, deps, "/solved")
	require.Len(t, sent, 1)
	assert.Equal(t, "No users are being tracked.", sent[0].Text)
}

func TestRosterReportSplitsLongReplies(t *testing.T) {
	users := make([]string, 0, 300)
	for i := 0; i < 300; i++ {
		users = append(users, strings.Repeat("u", 20)+string(rune('a'+i%26)))
	}
	deps := newFakeDeps(users...)

	sent := run(t, deps, "/badges")
	require.Greater(t, len(sent), 1)
	for _, m := range sent {
		assert.LessOrEqual(t, len([]rune(m.Text)), maxMessageRunes)
	}
}
