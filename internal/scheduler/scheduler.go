package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/okarlsson/ffwrapped/internal/service"
)

type Scheduler struct {
	s            gocron.Scheduler
	statsService *service.StatsService
	sendMessage  func(string) error
}

func NewScheduler(statsService *service.StatsService, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago") // CDT
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:            s,
		statsService: statsService,
		sendMessage:  sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	// Weekly recap - Tuesday 7:30 CDT, after Monday night wraps the week
	_, err := s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendWeeklyRecap),
	)
	if err != nil {
		return fmt.Errorf("failed to create weekly recap job: %w", err)
	}

	// Standings - Wednesday 7:30 CDT
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings job: %w", err)
	}

	// Scoreboard - Sunday 16:00 and 20:00 EDT (15:00 and 19:00 CDT)
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Sunday), gocron.NewAtTimes(gocron.NewAtTime(15, 0, 0), gocron.NewAtTime(19, 0, 0))),
		gocron.NewTask(s.sendScoreboard),
	)
	if err != nil {
		return fmt.Errorf("failed to create scoreboard job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendWeeklyRecap() {
	ctx := context.Background()

	// A fresh snapshot so the recap includes the finished week.
	if _, err := s.statsService.Rebuild(ctx); err != nil {
		slog.Error("Failed to rebuild season snapshot", "error", err)
		return
	}

	sections := []func(context.Context) (string, error){
		s.statsService.GetPerfectRecord,
		s.statsService.GetCloseGames,
		s.statsService.GetHighScoreAndLost,
		s.statsService.GetLowScoreAndWon,
	}
	for _, section := range sections {
		report, err := section(ctx)
		if err != nil {
			slog.Error("Failed to build recap section", "error", err)
			continue
		}
		s.sendMessage(report)
	}
}

func (s *Scheduler) sendStandings() {
	standings, err := s.statsService.GetStandings(context.Background())
	if err != nil {
		slog.Error("Failed to get standings", "error", err)
		return
	}
	s.sendMessage(standings)
}

func (s *Scheduler) sendScoreboard() {
	scores, err := s.statsService.GetCurrentScores(context.Background())
	if err != nil {
		slog.Error("Failed to get current scores", "error", err)
		return
	}
	s.sendMessage(scores)
}
