package commands

import (
	"context"

	"github.com/rs/zerolog"
)

func (h *Handler) cmdBadges(ctx context.Context, chatID int64) error {
	return h.sendRosterReport(ctx, chatID, func(ctx context.Context, username string) string {
		badges, err := h.deps.Badges(ctx, username)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("user", username).Msg("fetch badges failed")
			return formatUserFailure(username, badgesFailedLine)
		}
		return formatUserBadges(username, badges)
	})
}
