// Package jobs provides the scheduled background tasks of the service,
// built on github.com/robfig/cron/v3 and coordinated by JobManager.
package jobs

import (
	"context"
	"log/slog"

	"fleetrent/internal/core/domain/model/pedido"
	"fleetrent/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// overdueSweepSchedule runs the sweep at the top of every hour.
const overdueSweepSchedule = "0 * * * *"

// OverdueReturnJob periodically sweeps pedidos sitting in ENTREGADO and logs
// a warning for each one. Visibility only: the sweep never mutates state,
// returns are always registered by the requester.
type OverdueReturnJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOverdueReturnJob creates the overdue-return sweep.
func NewOverdueReturnJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *OverdueReturnJob {
	return &OverdueReturnJob{
		uowFactory: uowFactory,
		cron:       cron.New(),
		logger:     logger.With("component", "overdue_return_job"),
	}
}

// Start schedules the hourly sweep.
func (j *OverdueReturnJob) Start() error {
	_, err := j.cron.AddFunc(overdueSweepSchedule, func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue return job started (running hourly)")
	return nil
}

// Stop stops the sweep.
func (j *OverdueReturnJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue return job stopped")
}

func (j *OverdueReturnJob) sweep(ctx context.Context) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Overdue return sweep failed to begin", "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	delivered, err := uow.PedidoRepository().GetAllInStatus(ctx, pedido.Delivered)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue return sweep failed", "error", err)
		return
	}

	for _, p := range delivered {
		j.logger.WarnContext(ctx, "pedido delivered and awaiting return",
			"pedido", p.ID().String(),
			"requester", p.Requester(),
			"service", p.Service(),
		)
	}
}
