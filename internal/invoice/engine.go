package invoice

import "context"

// Engine turns invoice text into PDF bytes. Implementations are called
// synchronously once per request and must honor ctx cancellation.
type Engine interface {
	Render(ctx context.Context, text string) ([]byte, error)
}

type EngineFunc func(ctx context.Context, text string) ([]byte, error)

func (f EngineFunc) Render(ctx context.Context, text string) ([]byte, error) {
	return f(ctx, text)
}
