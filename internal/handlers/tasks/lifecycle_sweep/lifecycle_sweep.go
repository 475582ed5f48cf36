package lifecycle_sweep

import (
	"context"
	"time"

	"fleet/pkg/logger"
)

type Service interface {
	SweepLifecycle(ctx context.Context) (int64, int64, error)
}

// LifecycleSweep periodically promotes due awaiting deliveries and
// completes overdue in-progress ones.
type LifecycleSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewLifecycleSweep(log logger.Logger, service Service, interval time.Duration) *LifecycleSweep {
	return &LifecycleSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (l *LifecycleSweep) TTL() time.Duration {
	return l.interval
}

func (l *LifecycleSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	promoted, completed, err := l.service.SweepLifecycle(ctxWithTimeout)

	if promoted > 0 || completed > 0 {
		l.log.With(
			logger.NewField("promoted", promoted),
			logger.NewField("completed", completed),
		).Info("lifecycle sweep")
	}

	return err
}

func (l *LifecycleSweep) Info() string {
	return "lifecycle sweep"
}
