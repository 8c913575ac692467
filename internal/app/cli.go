package app

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/FunkyQai/Leetcode-Bot/internal/config"
	"github.com/FunkyQai/Leetcode-Bot/internal/telegram"
)

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "leetcode-bot",
		Short:         "Telegram bot reporting LeetCode progress for a fixed group of users",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			logger := newLogger(cfg.LogLevel, cfg.LogFormat, cmd.OutOrStdout())
			return run(cmd.Context(), cfg, logger)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file to load before reading the environment")
	root.AddCommand(newWebhookCommand(&envFile))

	return root
}

func newWebhookCommand(envFile *string) *cobra.Command {
	webhook := &cobra.Command{
		Use:   "webhook",
		Short: "Manage the Telegram webhook registration",
	}

	webhook.AddCommand(&cobra.Command{
		Use:   "set",
		Short: "Register BOT_BASE_URL/webhook/WEBHOOK_SECRET with Telegram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			webhookURL, err := telegram.BuildWebhookURL(cfg.BotBaseURL, cfg.WebhookSecret)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
			defer cancel()
			if err := telegram.NewClient(cfg.TelegramBotToken, cfg.HTTPTimeout()).SetWebhook(ctx, webhookURL); err != nil {
				return err
			}
			cmd.Printf("webhook set to %s\n", webhookURL)
			return nil
		},
	})

	webhook.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Remove the Telegram webhook so polling can be used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
			defer cancel()
			if err := telegram.NewClient(cfg.TelegramBotToken, cfg.HTTPTimeout()).DeleteWebhook(ctx); err != nil {
				return err
			}
			cmd.Println("webhook deleted")
			return nil
		},
	})

	return webhook
}
