package invoice

import (
	"fmt"

	"canteen/internal/apperror"
)

var (
	ErrRender            = fmt.Errorf("%w: invoice rendering failed", apperror.ErrExternal)
	ErrEngineUnavailable = fmt.Errorf("%w: engine unavailable", ErrRender)
	ErrRenderTimeout     = fmt.Errorf("%w: engine timed out", ErrRender)
)
