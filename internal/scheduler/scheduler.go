package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Stepper advances the displayed year.
type Stepper interface {
	Advance() int
}

// Scheduler steps through the years on a fixed interval (autoplay).
type Scheduler struct {
	scheduler *gocron.Scheduler
	stepper   Stepper
	interval  time.Duration
}

// New creates a new Scheduler. A non-positive interval disables autoplay.
func New(interval time.Duration, stepper Stepper) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		stepper:   stepper,
		interval:  interval,
	}
}

// Start schedules the autoplay job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: autoplay disabled; nothing to schedule")
		return nil
	}

	// The first tick would otherwise skip the initial year immediately.
	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(func() {
		year := s.stepper.Advance()
		log.Printf("scheduler: autoplay showing %d", year)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
