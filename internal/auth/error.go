package auth

import (
	"fmt"

	"canteen/internal/apperror"
)

var (
	ErrUnauthorized = fmt.Errorf("%w: login required", apperror.ErrUnauthorized)
	ErrInvalidToken = fmt.Errorf("%w: invalid session token", apperror.ErrUnauthorized)
	ErrMissingKey   = fmt.Errorf("%w: session secret is empty", apperror.ErrValidation)
)
