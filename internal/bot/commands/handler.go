package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Handler struct {
	deps   Dependencies
	logger zerolog.Logger
}

func NewHandler(deps Dependencies, logger zerolog.Logger) *Handler {
	return &Handler{deps: deps, logger: logger}
}

// Handle runs the command in text. Arguments after the command are ignored.
func (h *Handler) Handle(ctx context.Context, chatID int64, text string) error {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return nil
	}

	cmd := normalizeCommand(parts[0])
	logger := h.logger.With().
		Str("invocation", uuid.NewString()).
		Str("command", cmd).
		Int64("chat_id", chatID).
		Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Msg("handling command")

	switch cmd {
	case "/start":
		return h.deps.SendMessage(ctx, chatID, startText())
	case "/help":
		return h.deps.SendMessage(ctx, chatID, helpText())
	case "/qod":
		return h.cmdQuestionOfTheDay(ctx, chatID)
	case "/submissions":
		return h.cmdSubmissions(ctx, chatID)
	case "/solved":
		return h.cmdSolved(ctx, chatID)
	case "/badges":
		return h.cmdBadges(ctx, chatID)
	default:
		return h.deps.SendMessage(ctx, chatID, "Unknown command. Use /help to see available commands.")
	}
}
