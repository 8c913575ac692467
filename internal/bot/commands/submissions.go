package commands

import (
	"context"

	"github.com/rs/zerolog"
)

func (h *Handler) cmdSubmissions(ctx context.Context, chatID int64) error {
	now := h.deps.Now()
	loc := h.deps.Location()

	return h.sendRosterReport(ctx, chatID, func(ctx context.Context, username string) string {
		subs, err := h.deps.AcceptedSubmissions(ctx, username)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("user", username).Msg("fetch submissions failed")
			return formatUserFailure(username, submissionsFailedLine)
		}
		return formatUserSubmissions(username, filterTodaysSubmissions(subs, loc, now))
	})
}
