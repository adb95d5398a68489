package cronrunner

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Runner owns the process-wide cron scheduler and hands every job the base
// context so shutdown cancels in-flight work.
type Runner struct {
	cron    *cron.Cron
	logger  *zap.Logger
	baseCtx context.Context
}

func New(logger *zap.Logger, baseCtx context.Context) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Runner{
		cron:    cron.New(),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

func (r *Runner) Add(spec string, name string, job func(context.Context)) (cron.EntryID, error) {
	return r.cron.AddFunc(spec, func() {
		r.logger.Debug("cron job start", zap.String("job", name))
		job(r.baseCtx)
	})
}

func (r *Runner) Start() {
	r.cron.Start()
}

func (r *Runner) Stop() context.Context {
	return r.cron.Stop()
}
