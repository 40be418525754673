package exprserve

import (
	"errors"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartStats logs the request counters every interval.
func (s *Service) StartStats(interval time.Duration) error {
	if interval <= 0 {
		return errors.New("stats interval must be positive")
	}
	if s.scheduler != nil {
		return errors.New("stats job already running")
	}
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	job, err := scheduler.NewJob(gocron.DurationJob(interval), gocron.NewTask(s.statsTask))
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}
	log.Printf("stats job %s every %s", job.ID(), interval)
	s.scheduler = scheduler
	scheduler.Start()
	return nil
}

func (s *Service) StopStats() error {
	if s.scheduler == nil {
		return nil
	}
	err := s.scheduler.Shutdown()
	s.scheduler = nil
	return err
}

func (s *Service) statsTask() {
	s.reportStats()
}

// reportStats logs once. A run overlapping a slow predecessor is skipped.
func (s *Service) reportStats() bool {
	if !s.statsRunning.SetToIf(false, true) {
		return false
	}
	defer s.statsRunning.UnSet()
	log.Printf("stats: %s", s.Stats())
	return true
}
