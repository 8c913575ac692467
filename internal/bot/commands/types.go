package commands

import (
	"context"
	"time"
)

type DailyQuestion struct {
	Title      string
	Difficulty string
	// Question is the problem statement as plain text.
	Question string
	URL      string
}

type Submission struct {
	Title     string
	TitleSlug string
	Timestamp int64
}

type DisplaySubmission struct {
	Title     string
	URL       string
	Timestamp string
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

type Dependencies interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMarkdownMessage(ctx context.Context, chatID int64, text string) error

	DailyQuestion(ctx context.Context) (DailyQuestion, error)
	AcceptedSubmissions(ctx context.Context, username string) ([]Submission, error)
	Solved(ctx context.Context, username string) (SolvedCounts, error)
	Badges(ctx context.Context, username string) ([]Badge, error)

	Roster() []string
	Location() *time.Location
	Now() time.Time
}
