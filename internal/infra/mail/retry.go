package mail

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Retrier wraps a send with bounded exponential backoff: 1s, 2s, 4s between
// attempts. It never propagates the error - form submissions must not fail
// because email delivery did - but exhaustion is counted and logged so
// sustained delivery trouble shows up in metrics.
type Retrier struct {
	MaxRetries int
	sleep      func(time.Duration)
	logger     *zap.Logger
}

func NewRetrier(maxRetries int, logger *zap.Logger) *Retrier {
	return &Retrier{
		MaxRetries: maxRetries,
		sleep:      time.Sleep,
		logger:     logger,
	}
}

// Do invokes fn up to MaxRetries+1 times and reports whether it eventually
// succeeded.
func (r *Retrier) Do(ctx context.Context, name string, fn func(context.Context) error) bool {
	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return true
		}
		if attempt >= r.MaxRetries {
			recordDeliveryExhausted(name)
			r.logger.Error("email delivery failed after retries",
				zap.String("email", name),
				zap.Int("attempts", attempt+1),
				zap.Error(err))
			return false
		}
		r.logger.Warn("email delivery failed, retrying",
			zap.String("email", name),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
		r.sleep(time.Duration(1<<attempt) * time.Second)
	}
}
