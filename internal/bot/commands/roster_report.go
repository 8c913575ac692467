package commands

import "context"

// sendRosterReport builds one block per roster user, in roster order, and
// sends them as few messages as the length limit allows.
func (h *Handler) sendRosterReport(ctx context.Context, chatID int64, build func(ctx context.Context, username string) string) error {
	users := h.deps.Roster()
	if len(users) == 0 {
		return h.deps.SendMessage(ctx, chatID, "No users are being tracked.")
	}

	blocks := make([]string, 0, len(users))
	for _, username := range users {
		blocks = append(blocks, build(ctx, username))
	}

	for _, msg := range packBlocks(blocks, maxMessageRunes) {
		if err := h.deps.SendMarkdownMessage(ctx, chatID, msg); err != nil {
			return err
		}
	}
	return nil
}
