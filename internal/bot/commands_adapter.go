package bot

import (
	"context"
	"time"

	"github.com/FunkyQai/Leetcode-Bot/internal/bot/commands"
)

type commandDeps struct {
	service *Service
}

func newCommandHandler(service *Service) *commands.Handler {
	return commands.NewHandler(&commandDeps{service: service}, service.logger)
}

func (d *commandDeps) SendMessage(ctx context.Context, chatID int64, text string) error {
	return d.service.tgClient.SendMessage(ctx, chatID, text)
}

func (d *commandDeps) SendMarkdownMessage(ctx context.Context, chatID int64, text string) error {
	return d.service.tgClient.SendMarkdownMessage(ctx, chatID, text)
}

func (d *commandDeps) DailyQuestion(ctx context.Context) (commands.DailyQuestion, error) {
	q, err := d.service.stats.DailyQuestion(ctx)
	if err != nil {
		return commands.DailyQuestion{}, err
	}
	return commands.DailyQuestion{
		Title:      q.Title,
		Difficulty: q.Difficulty,
		Question:   q.Question,
		URL:        q.URL,
	}, nil
}

func (d *commandDeps) AcceptedSubmissions(ctx context.Context, username string) ([]commands.Submission, error) {
	items, err := d.service.stats.AcceptedSubmissions(ctx, username)
	if err != nil {
		return nil, err
	}
	out := make([]commands.Submission, 0, len(items))
	for _, item := range items {
		out = append(out, commands.Submission{
			Title:     item.Title,
			TitleSlug: item.TitleSlug,
			Timestamp: item.Timestamp,
		})
	}
	return out, nil
}

func (d *commandDeps) Solved(ctx context.Context, username string) (commands.SolvedCounts, error) {
	counts, err := d.service.stats.Solved(ctx, username)
	if err != nil {
		return commands.SolvedCounts{}, err
	}
	return commands.SolvedCounts{
		TotalSolved: counts.TotalSolved,
		Easy:        counts.Easy,
		Medium:      counts.Medium,
		Hard:        counts.Hard,
	}, nil
}

func (d *commandDeps) Badges(ctx context.Context, username string) ([]commands.Badge, error) {
	items, err := d.service.stats.Badges(ctx, username)
	if err != nil {
		return nil, err
	}
	out := make([]commands.Badge, 0, len(items))
	for _, item := range items {
		out = append(out, commands.Badge{DisplayName: item.DisplayName})
	}
	return out, nil
}

func (d *commandDeps) Roster() []string {
	return d.service.roster.Users()
}

func (d *commandDeps) Location() *time.Location {
	return d.service.loc
}

func (d *commandDeps) Now() time.Time {
	return d.service.nowFn()
}
