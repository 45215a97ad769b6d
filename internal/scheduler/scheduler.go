// Package scheduler runs the periodic mock-external-job seeding.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SeedFunc is one seeding run. The returned message is logged.
type SeedFunc func(ctx context.Context) (string, error)

type Scheduler struct {
	cron   *cron.Cron
	seed   SeedFunc
	logger *log.Logger
}

func New(seed SeedFunc, logger *log.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), seed: seed, logger: logger}
}

// Start registers the seeding job at the given interval and launches the cron
// loop. An interval of zero or less disables scheduling.
func (s *Scheduler) Start(intervalHours int) error {
	if s == nil || s.seed == nil {
		return nil
	}
	if intervalHours <= 0 {
		if s.logger != nil {
			s.logger.Printf("scheduler | seeding disabled")
		}
		return nil
	}

	spec := fmt.Sprintf("@every %dh", intervalHours)
	if _, err := s.cron.AddFunc(spec, s.runSeed); err != nil {
		return fmt.Errorf("schedule seeding: %w", err)
	}

	s.cron.Start()
	if s.logger != nil {
		s.logger.Printf("scheduler | seeding every %dh", intervalHours)
	}
	return nil
}

func (s *Scheduler) Stop() {
	if s == nil || s.cron == nil {
		return
	}
	s.cron.Stop()
}

func (s *Scheduler) runSeed() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	msg, err := s.seed(ctx)
	if s.logger == nil {
		return
	}
	if err != nil {
		s.logger.Printf("scheduler | seeding failed: %v", err)
		return
	}
	s.logger.Printf("scheduler | %s", msg)
}
