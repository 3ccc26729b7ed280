package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/okarlsson/ffwrapped/internal/service"
)

type Handler struct {
	statsService *service.StatsService
}

func NewHandler(statsService *service.StatsService) *Handler {
	return &Handler{statsService: statsService}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n" +
			"/scores - Current week's scores\n" +
			"/standings - League standings\n" +
			"/perfect - Record with optimal lineups every week\n" +
			"/closegames - Closest games of the season\n" +
			"/hardluck - Highest scores that still lost\n" +
			"/luckywins - Lowest scores that still won\n" +
			"/scoring - Points for and against per team\n" +
			"/booms - Players most over projection\n" +
			"/busts - Players most under projection\n" +
			"/top <position> - Top players for a position\n" +
			"/missed - Games missed by early-round picks, per team\n" +
			"/whohas <player> - A player's season line and draft origin"
	case "scores":
		h.reply(ctx, &msg, h.statsService.GetCurrentScores)
	case "standings":
		h.reply(ctx, &msg, h.statsService.GetStandings)
	case "perfect":
		h.reply(ctx, &msg, h.statsService.GetPerfectRecord)
	case "closegames":
		h.reply(ctx, &msg, h.statsService.GetCloseGames)
	case "hardluck":
		h.reply(ctx, &msg, h.statsService.GetHighScoreAndLost)
	case "luckywins":
		h.reply(ctx, &msg, h.statsService.GetLowScoreAndWon)
	case "scoring":
		h.reply(ctx, &msg, h.statsService.GetTeamScoring)
	case "booms":
		h.handleExpectation(ctx, &msg, false)
	case "busts":
		h.handleExpectation(ctx, &msg, true)
	case "top":
		h.handleTopPlayers(ctx, &msg, args)
	case "missed":
		h.reply(ctx, &msg, h.statsService.GetMissedGamesPerTeam)
	case "whohas":
		h.handleWhoHas(ctx, &msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) reply(ctx context.Context, msg *tgbotapi.MessageConfig, get func(context.Context) (string, error)) {
	text, err := get(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error: %v", err)
		return
	}
	msg.Text = text
}

func (h *Handler) handleExpectation(ctx context.Context, msg *tgbotapi.MessageConfig, ascending bool) {
	text, err := h.statsService.GetExpectation(ctx, ascending)
	if err != nil {
		msg.Text = fmt.Sprintf("Error: %v", err)
		return
	}
	msg.Text = text
}

func (h *Handler) handleTopPlayers(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if strings.TrimSpace(args) == "" {
		msg.Text = "Usage: /top <position> (QB, RB, WR, TE, K, D/ST)"
		return
	}
	text, err := h.statsService.GetTopPlayers(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Unknown position '%s'. Try QB, RB, WR, TE, K or D/ST.", args)
		return
	}
	msg.Text = text
}

func (h *Handler) handleWhoHas(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if strings.TrimSpace(args) == "" {
		msg.Text = "Usage: /whohas <player name>"
		return
	}
	text, err := h.statsService.WhoHas(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error: %v", err)
		return
	}
	msg.Text = text
}
