package bot

import (
	"context"
)

type DailyQuestion struct {
	Title      string
	Difficulty string
	// Question is the statement with markup already stripped.
	Question string
	URL      string
}

type Submission struct {
	Title     string
	TitleSlug string
	Timestamp int64
}

type SolvedCounts struct {
	TotalSolved int
	Easy        int
	Medium      int
	Hard        int
}

type Badge struct {
	DisplayName string
}

type TelegramSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMarkdownMessage(ctx context.Context, chatID int64, text string) error
}

// StatsProvider fetches per-request data from the LeetCode statistics API.
// A non-nil error means the fetch failed and no partial data is returned.
type StatsProvider interface {
	DailyQuestion(ctx context.Context) (DailyQuestion, error)
	AcceptedSubmissions(ctx context.Context, username string) ([]Submission, error)
	Solved(ctx context.Context, username string) (SolvedCounts, error)
	Badges(ctx context.Context, username string) ([]Badge, error)
}
