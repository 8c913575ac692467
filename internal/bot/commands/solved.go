package commands

import (
	"context"

	"github.com/rs/zerolog"
)

func (h *Handler) cmdSolved(ctx context.Context, chatID int64) error {
	return h.sendRosterReport(ctx, chatID, func(ctx context.Context, username string) string {
		counts, err := h.deps.Solved(ctx, username)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("user", username).Msg("fetch solved counts failed")
			return formatUserFailure(username, solvedFailedLine)
		}
		return formatUserSolved(username, counts)
	})
}
