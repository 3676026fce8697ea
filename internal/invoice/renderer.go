package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"canteen/internal/logger"
	"canteen/internal/metrics"
	"canteen/internal/order"

	"go.uber.org/zap"
)

const DefaultTimeout = 10 * time.Second

// Renderer produces invoice PDFs. Every call renders afresh; nothing is
// cached and failures are not retried.
type Renderer struct {
	engine  Engine
	timeout time.Duration
	metrics *metrics.Registry
}

func NewRenderer(engine Engine, timeout time.Duration, reg *metrics.Registry) *Renderer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &Renderer{engine: engine, timeout: timeout, metrics: reg}
}

type renderResult struct {
	pdf []byte
	err error
}

// Render returns the PDF for o. The engine runs in its own goroutine so the
// timeout holds even for an engine that ignores ctx.
func (r *Renderer) Render(ctx context.Context, o order.Order) ([]byte, error) {
	log := logger.FromCtx(ctx).With(zap.Int("order_id", o.ID))

	if r.engine == nil {
		r.metrics.Counter(metrics.InvoiceFailures).Inc()
		log.Error("invoice engine not configured")
		return nil, ErrEngineUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	timer := metrics.StartTimer()
	done := make(chan renderResult, 1)
	go func() {
		pdf, err := r.engine.Render(ctx, Text(o))
		done <- renderResult{pdf: pdf, err: err}
	}()

	var res renderResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res.err = ctx.Err()
	}

	if err := classify(ctx, res); err != nil {
		r.metrics.Counter(metrics.InvoiceFailures).Inc()
		log.Error("invoice rendering failed",
			zap.Duration("elapsed", timer.Duration()),
			zap.Error(err),
		)
		return nil, err
	}

	r.metrics.Counter(metrics.InvoicesRendered).Inc()
	log.Info("invoice rendered",
		zap.Int("bytes", len(res.pdf)),
		zap.Duration("elapsed", timer.Duration()),
	)
	return res.pdf, nil
}

func classify(ctx context.Context, res renderResult) error {
	switch {
	case res.err == nil && len(res.pdf) > 0:
		return nil
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrRenderTimeout
	case res.err != nil && errors.Is(res.err, ErrRender):
		return res.err
	case res.err != nil:
		return fmt.Errorf("%w: %w", ErrRender, res.err)
	}
	return fmt.Errorf("%w: engine returned no output", ErrRender)
}
