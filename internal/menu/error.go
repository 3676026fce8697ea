package menu

import (
	"fmt"

	"canteen/internal/apperror"
)

var (
	ErrMissingField = fmt.Errorf("%w: missing item or price", apperror.ErrValidation)
	ErrInvalidPrice = fmt.Errorf("%w: invalid price value", apperror.ErrValidation)
	ErrItemNotFound = fmt.Errorf("%w: item not found", apperror.ErrNotFound)
)
