package bot

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/FunkyQai/Leetcode-Bot/internal/bot/commands"
	"github.com/FunkyQai/Leetcode-Bot/internal/roster"
	"github.com/FunkyQai/Leetcode-Bot/internal/telegram"
)

type Service struct {
	logger         zerolog.Logger
	tgClient       TelegramSender
	stats          StatsProvider
	commandHandler *commands.Handler
	roster         roster.Roster
	allowedUsers   map[string]struct{}
	webhookSecret  string
	loc            *time.Location
	nowFn          func() time.Time
}

func NewService(
	logger zerolog.Logger,
	tgClient TelegramSender,
	stats StatsProvider,
	users roster.Roster,
	loc *time.Location,
	webhookSecret string,
	allowedUsernames []string,
) *Service {
	if loc == nil {
		loc = time.FixedZone("UTC+8", 8*3600)
	}

	svc := &Service{
		logger:        logger,
		tgClient:      tgClient,
		stats:         stats,
		roster:        users,
		allowedUsers:  buildAllowedUserSet(allowedUsernames),
		webhookSecret: webhookSecret,
		loc:           loc,
		nowFn:         time.Now,
	}
	svc.commandHandler = newCommandHandler(svc)
	return svc
}

func (s *Service) WebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.webhookSecret == "" || subtle.ConstantTimeCompare([]byte(r.URL.Path), []byte("/webhook/"+s.webhookSecret)) != 1 {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	defer r.Body.Close()

	var update telegram.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	s.HandleUpdate(r.Context(), update)
	w.WriteHeader(http.StatusOK)
}

// HandleUpdate processes one update to completion. Errors are logged and
// never returned, so one failing update does not stop the transport.
func (s *Service) HandleUpdate(ctx context.Context, update telegram.Update) {
	if update.Message == nil {
		return
	}
	if err := s.handleMessage(ctx, *update.Message); err != nil {
		s.logger.Error().
			Err(err).
			Int64("update_id", update.UpdateID).
			Int64("chat_id", update.Message.Chat.ID).
			Msg("handle message failed")
	}
}

func (s *Service) handleMessage(ctx context.Context, msg telegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/") {
		return nil
	}

	if !s.isAllowedUsername(msg.From.Username) {
		s.logger.Warn().
			Str("username", msg.From.Username).
			Int64("chat_id", msg.Chat.ID).
			Msg("blocked message from unauthorized username")
		return s.tgClient.SendMessage(ctx, msg.Chat.ID, "You are not allowed to use this bot.")
	}

	return s.commandHandler.Handle(ctx, msg.Chat.ID, text)
}

func buildAllowedUserSet(usernames []string) map[string]struct{} {
	if len(usernames) == 0 {
		return nil
	}

	out := make(map[string]struct{}, len(usernames))
	for _, username := range usernames {
		normalized := normalizeTelegramUsername(username)
		if normalized == "" {
			continue
		}
		out[normalized] = struct{}{}
	}
	return out
}

func (s *Service) isAllowedUsername(username string) bool {
	if len(s.allowedUsers) == 0 {
		return true
	}
	normalized := normalizeTelegramUsername(username)
	if normalized == "" {
		return false
	}
	_, ok := s.allowedUsers[normalized]
	return ok
}

func normalizeTelegramUsername(raw string) string {
	out := strings.TrimSpace(strings.ToLower(raw))
	return strings.TrimPrefix(out, "@")
}
