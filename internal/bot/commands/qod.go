package commands

import (
	"context"

	"github.com/rs/zerolog"
)

func (h *Handler) cmdQuestionOfTheDay(ctx context.Context, chatID int64) error {
	q, err := h.deps.DailyQuestion(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("fetch question of the day failed")
		return h.deps.SendMessage(ctx, chatID, qodFailureMessage)
	}

	return h.deps.SendMarkdownMessage(ctx, chatID, formatQuestionOfTheDay(q))
}
