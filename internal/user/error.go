package user

import (
	"fmt"

	"canteen/internal/apperror"
)

var (
	ErrMissingData        = fmt.Errorf("%w: missing data", apperror.ErrValidation)
	ErrInvalidCredentials = fmt.Errorf("%w: login failed", apperror.ErrUnauthorized)
)
