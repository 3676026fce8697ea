package order

import (
	"fmt"

	"canteen/internal/apperror"
)

var (
	ErrOrderNotFound     = fmt.Errorf("%w: order not found", apperror.ErrNotFound)
	ErrInvalidQuantity   = fmt.Errorf("%w: quantity must be greater than zero", apperror.ErrValidation)
	ErrMissingStudent    = fmt.Errorf("%w: student identity is required", apperror.ErrValidation)
	ErrInvalidStatus     = fmt.Errorf("%w: unknown order status", apperror.ErrValidation)
	ErrInvalidTransition = fmt.Errorf("%w: status transition not allowed", apperror.ErrValidation)
)
