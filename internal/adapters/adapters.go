package adapters

import (
	"context"
	"errors"

	"github.com/FunkyQai/Leetcode-Bot/internal/bot"
	"github.com/FunkyQai/Leetcode-Bot/internal/leetcode"
	"github.com/FunkyQai/Leetcode-Bot/internal/roster"
	"github.com/FunkyQai/Leetcode-Bot/internal/storage"
)

// leetCodeAPI is the subset of *leetcode.Client the provider needs.
type leetCodeAPI interface {
	DailyQuestion(ctx context.Context) (leetcode.DailyQuestion, error)
	AcceptedSubmissions(ctx context.Context, username string, limit int) ([]leetcode.Submission, error)
	Solved(ctx context.Context, username string) (leetcode.SolvedCounts, error)
	Badges(ctx context.Context, username string) ([]leetcode.Badge, error)
}

func NewLeetCodeProvider(client *leetcode.Client, submissionLimit int) bot.StatsProvider {
	return newLeetCodeProvider(client, submissionLimit)
}

func newLeetCodeProvider(client leetCodeAPI, submissionLimit int) *leetCodeProvider {
	if submissionLimit <= 0 {
		submissionLimit = 10
	}
	return &leetCodeProvider{client: client, submissionLimit: submissionLimit}
}

type leetCodeProvider struct {
	client          leetCodeAPI
	submissionLimit int
}

func (p *leetCodeProvider) DailyQuestion(ctx context.Context) (bot.DailyQuestion, error) {
	q, err := p.client.DailyQuestion(ctx)
	if err != nil {
		return bot.DailyQuestion{}, err
	}
	return bot.DailyQuestion{
		Title:      q.Title,
		Difficulty: string(q.Difficulty),
		Question:   leetcode.ExtractPlainText(q.QuestionBody),
		URL:        q.URL,
	}, nil
}

func (p *leetCodeProvider) AcceptedSubmissions(ctx context.Context, username string) ([]bot.Submission, error) {
	items, err := p.client.AcceptedSubmissions(ctx, username, p.submissionLimit)
	if err != nil {
		return nil, err
	}

	out := make([]bot.Submission, 0, len(items))
	for _, item := range items {
		out = append(out, bot.Submission{
			Title:     item.Title,
			TitleSlug: item.TitleSlug,
			Timestamp: item.Timestamp,
		})
	}
	return out, nil
}

func (p *leetCodeProvider) Solved(ctx context.Context, username string) (bot.SolvedCounts, error) {
	counts, err := p.client.Solved(ctx, username)
	if err != nil {
		return bot.SolvedCounts{}, err
	}
	return bot.SolvedCounts{
		TotalSolved: counts.TotalSolved,
		Easy:        counts.Easy,
		Medium:      counts.Medium,
		Hard:        counts.Hard,
	}, nil
}

func (p *leetCodeProvider) Badges(ctx context.Context, username string) ([]bot.Badge, error) {
	items, err := p.client.Badges(ctx, username)
	if err != nil {
		return nil, err
	}

	out := make([]bot.Badge, 0, len(items))
	for _, item := range items {
		out = append(out, bot.Badge{DisplayName: item.DisplayName})
	}
	return out, nil
}

// rosterMembers is the subset of *storage.Store the roster source needs.
type rosterMembers interface {
	ListMembers(ctx context.Context, rosterID string) ([]storage.RosterMember, error)
}

// NewFirestoreRosterSource reads the roster from rosters/{rosterID}. A missing
// roster document counts as "nothing configured" so later sources are not
// masked by an error.
func NewFirestoreRosterSource(store *storage.Store, rosterID string) roster.Source {
	return &firestoreRosterSource{store: store, rosterID: rosterID}
}

type firestoreRosterSource struct {
	store    rosterMembers
	rosterID string
}

func (s *firestoreRosterSource) Name() string {
	return "firestore roster " + s.rosterID
}

func (s *firestoreRosterSource) Usernames(ctx context.Context) ([]string, error) {
	members, err := s.store.ListMembers(ctx, s.rosterID)
	if err != nil {
		if errors.Is(err, storage.ErrRosterNotFound) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.Username)
	}
	return out, nil
}
