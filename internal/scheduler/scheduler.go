package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Task is one recurring job. Executar runs on every tick until the scheduler
// context is canceled; errors are logged and the schedule keeps going.
type Task struct {
	Nome      string
	Intervalo time.Duration
	Executar  func(ctx context.Context) error
}

// Scheduler runs plain ticker-driven tasks, one goroutine per task. No cron
// expressions: intervals only.
type Scheduler struct {
	logger zerolog.Logger
	tasks  []Task
	wg     sync.WaitGroup
}

func New(logger zerolog.Logger) *Scheduler {
	return &Scheduler{logger: logger.With().Str("component", "scheduler").Logger()}
}

func (s *Scheduler) Add(t Task) {
	s.tasks = append(s.tasks, t)
}

// Start launches every registered task. It returns immediately; use Wait to
// block until ctx cancellation has wound all tasks down.
func (s *Scheduler) Start(ctx context.Context) {
	for _, t := range s.tasks {
		s.wg.Add(1)
		go s.run(ctx, t)
	}
}

func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context, t Task) {
	defer s.wg.Done()

	s.logger.Info().Str("task", t.Nome).Dur("intervalo", t.Intervalo).Msg("tarefa agendada")
	ticker := time.NewTicker(t.Intervalo)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Str("task", t.Nome).Msg("tarefa encerrada")
			return
		case <-ticker.C:
			inicio := time.Now()
			if err := t.Executar(ctx); err != nil {
				s.logger.Error().Err(err).Str("task", t.Nome).Msg("execucao da tarefa falhou")
				continue
			}
			s.logger.Debug().
				Str("task", t.Nome).
				Int64("duration_ms", time.Since(inicio).Milliseconds()).
				Msg("execucao da tarefa concluida")
		}
	}
}
