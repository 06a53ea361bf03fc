package service

import (
	"context"
	"fmt"
	"time"

	"workforce-scheduler-backend/internal/config"
	"workforce-scheduler-backend/internal/logger"
)

// SchedulingEngine runs the two duty cycles: a daily materialization pass
// over a horizon of upcoming dates, and a short-interval delay-evaluation
// pass. The engine holds no authoritative state between cycles; every pass
// reloads definitions and tasks from storage, so restarts lose nothing.
// Both cycles are idempotent and safe to trigger redundantly on demand.
type SchedulingEngine struct {
	materializer *Materializer
	evaluator    *DelayEvaluator
	scheduler    *SchedulerService
	cfg          *config.Config
	log          *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewSchedulingEngine creates a new scheduling engine
func NewSchedulingEngine(materializer *Materializer, evaluator *DelayEvaluator, scheduler *SchedulerService, cfg *config.Config) *SchedulingEngine {
	return &SchedulingEngine{
		materializer: materializer,
		evaluator:    evaluator,
		scheduler:    scheduler,
		cfg:          cfg,
		log:          logger.WithComponent("engine"),
	}
}

// Start registers the periodic duty cycles and begins scheduling.
func (e *SchedulingEngine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	if _, err := e.scheduler.ScheduleDaily(e.cfg.MaterializationTime, e.runMaterialization); err != nil {
		return fmt.Errorf("schedule materialization: %w", err)
	}
	if _, err := e.scheduler.ScheduleInterval(e.cfg.EvaluationInterval(), e.runEvaluation); err != nil {
		return fmt.Errorf("schedule delay evaluation: %w", err)
	}

	// Catch-up pass: a process that was down across the daily tick must not
	// leave today's horizon unmaterialized until the next tick.
	e.log.Info("running catch-up materialization pass")
	e.runMaterialization()

	e.scheduler.Start()
	e.log.WithFields(map[string]interface{}{
		"materialization_time": e.cfg.MaterializationTime,
		"horizon_days":         e.cfg.MaterializationHorizonDays,
		"evaluation_interval":  e.cfg.EvaluationInterval().String(),
	}).Info("scheduling engine started")
	return nil
}

// Stop cancels pending work and waits for in-flight cycles to finish, so a
// single event or task is never left half-processed.
func (e *SchedulingEngine) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
	e.scheduler.Stop()
	e.log.Info("scheduling engine stopped")
}

// GenerateForDate runs an on-demand materialization pass for one date
// (backfill or manual re-run), optionally scoped to one store. Redundant
// invocations are no-ops beyond field reconciliation.
func (e *SchedulingEngine) GenerateForDate(ctx context.Context, date time.Time, storeID string) (*MaterializationSummary, error) {
	return e.materializer.MaterializeDate(ctx, date, storeID)
}

// EvaluateNow runs an on-demand delay-evaluation pass.
func (e *SchedulingEngine) EvaluateNow(ctx context.Context) error {
	return e.evaluator.EvaluateAll(ctx, time.Now())
}

// runMaterialization is the daily duty cycle: today plus the configured
// horizon of upcoming dates. A failed date is retried by the next cycle;
// idempotency makes the replay safe.
func (e *SchedulingEngine) runMaterialization() {
	ctx, cancel := context.WithTimeout(e.ctx, 10*time.Minute)
	defer cancel()

	today := DateOnly(time.Now())
	for i := 0; i < e.cfg.MaterializationHorizonDays; i++ {
		date := today.AddDate(0, 0, i)
		if _, err := e.materializer.MaterializeDate(ctx, date, ""); err != nil {
			e.log.WithError(err).WithField("date", date.Format("2006-01-02")).Error("materialization cycle aborted, will retry next tick")
			return
		}
	}
}

func (e *SchedulingEngine) runEvaluation() {
	ctx, cancel := context.WithTimeout(e.ctx, 2*time.Minute)
	defer cancel()

	if err := e.evaluator.EvaluateAll(ctx, time.Now()); err != nil {
		e.log.WithError(err).Error("delay evaluation cycle aborted, will retry next tick")
	}
}
