package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/okarlsson/ffwrapped/internal/api/espn"
	"github.com/okarlsson/ffwrapped/internal/api/fantasy"
	"github.com/okarlsson/ffwrapped/internal/bot"
	"github.com/okarlsson/ffwrapped/internal/config"
	"github.com/okarlsson/ffwrapped/internal/models"
	"github.com/okarlsson/ffwrapped/internal/repository/memory"
	"github.com/okarlsson/ffwrapped/internal/scheduler"
	"github.com/okarlsson/ffwrapped/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	slots := models.SlotConfig{
		QB:   cfg.Roster.QB,
		RB:   cfg.Roster.RB,
		WR:   cfg.Roster.WR,
		TE:   cfg.Roster.TE,
		Flex: cfg.Roster.Flex,
		DST:  cfg.Roster.DST,
		K:    cfg.Roster.K,
	}
	if err := slots.Validate(); err != nil {
		return fmt.Errorf("invalid roster configuration: %w", err)
	}

	espnClient := espn.NewClient(cfg.ESPNAPI)
	espnAPI := espn.NewAPI(espnClient)
	fantasyAPI := fantasy.NewAPI(espnAPI)

	repo := memory.NewRepository()
	statsService := service.NewStatsService(fantasyAPI, repo, slots, cfg.ESPNAPI.PlayersPerCall)

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, statsService)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(statsService, telegramBot.SendMessage)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler)

	go func() {
		if err := http.ListenAndServe(":80", nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Warm the season snapshot so the first command answers fast.
	go func() {
		if _, err := statsService.Snapshot(ctx); err != nil {
			slog.Error("Error building initial season snapshot", "error", err)
		}
	}()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
