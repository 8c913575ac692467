package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"

	"github.com/FunkyQai/Leetcode-Bot/internal/adapters"
	"github.com/FunkyQai/Leetcode-Bot/internal/bot"
	"github.com/FunkyQai/Leetcode-Bot/internal/config"
	"github.com/FunkyQai/Leetcode-Bot/internal/leetcode"
	"github.com/FunkyQai/Leetcode-Bot/internal/roster"
	"github.com/FunkyQai/Leetcode-Bot/internal/storage"
	"github.com/FunkyQai/Leetcode-Bot/internal/telegram"
)

func Main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	sources := []roster.Source{
		roster.StaticSource{Label: "USERS", Names: cfg.Users},
		roster.FileSource{Path: cfg.RosterFile},
	}
	if cfg.FirestoreProject != "" {
		fireClient, err := firestore.NewClient(ctx, cfg.FirestoreProject)
		if err != nil {
			return fmt.Errorf("create firestore client: %w", err)
		}
		defer func() {
			if err := fireClient.Close(); err != nil {
				logger.Warn().Err(err).Msg("close firestore client")
			}
		}()
		store := storage.NewStore(fireClient)
		sources = append(sources, adapters.NewFirestoreRosterSource(store, cfg.FirestoreRosterID))
	}

	users, source, err := roster.Load(ctx, sources...)
	if err != nil {
		return fmt.Errorf("roster: %w", err)
	}
	logger.Info().
		Str("source", source).
		Int("users", users.Len()).
		Str("timezone", loc.String()).
		Msg("roster loaded")

	tgClient := telegram.NewClient(cfg.TelegramBotToken, cfg.HTTPTimeout())
	lcClient := leetcode.NewClient(cfg.LeetCodeBaseURL, cfg.HTTPTimeout())

	service := bot.NewService(
		logger,
		tgClient,
		adapters.NewLeetCodeProvider(lcClient, cfg.SubmissionLimit),
		users,
		loc,
		cfg.WebhookSecret,
		cfg.AllowedUsernames,
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Mode == config.ModeWebhook {
		return serveWebhook(ctx, cfg, logger, tgClient, service)
	}
	return runPolling(ctx, logger, tgClient, service, cfg.PollInterval())
}

func runPolling(ctx context.Context, logger zerolog.Logger, client *telegram.Client, service *bot.Service, interval time.Duration) error {
	// getUpdates is refused while a webhook is registered.
	delCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	if err := client.DeleteWebhook(delCtx); err != nil {
		logger.Warn().Err(err).Msg("delete webhook before polling failed")
	}
	cancel()

	poller := telegram.NewPoller(client, service, logger, interval)
	if err := poller.Run(ctx); err != nil {
		return fmt.Errorf("polling: %w", err)
	}
	logger.Info().Msg("shutdown complete")
	return nil
}

func serveWebhook(ctx context.Context, cfg config.Config, logger zerolog.Logger, client *telegram.Client, service *bot.Service) error {
	if cfg.AutoSetWebhook {
		autoSetWebhook(ctx, logger, client, cfg.BotBaseURL, cfg.WebhookSecret)
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(newRequestLogger(cfg.LogLevel, cfg.LogFormat), service.WebhookHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown error")
		}
	}()

	logger.Info().Str("addr", httpServer.Addr).Msg("bot server listening")
	err := httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	<-shutdownDone
	logger.Info().Msg("shutdown complete")
	return nil
}

func autoSetWebhook(ctx context.Context, logger zerolog.Logger, client *telegram.Client, baseURL, secret string) {
	if baseURL == "" {
		logger.Warn().Msg("AUTO_SET_WEBHOOK=true but BOT_BASE_URL is empty; skipping")
		return
	}

	webhookURL, err := telegram.BuildWebhookURL(baseURL, secret)
	if err != nil {
		logger.Error().Err(err).Msg("build webhook URL failed")
		return
	}

	setCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := client.SetWebhook(setCtx, webhookURL); err != nil {
		logger.Error().Err(err).Msg("set webhook failed")
		return
	}
	logger.Info().Str("url", webhookURL).Msg("webhook set")
}
