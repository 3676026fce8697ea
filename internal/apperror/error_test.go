package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"plain", errors.New("boom"), KindUnknown},
		{"validation", fmt.Errorf("%w: bad price", ErrValidation), KindValidation},
		{"not found", fmt.Errorf("%w: order", ErrNotFound), KindNotFound},
		{"unauthorized", ErrUnauthorized, KindUnauthorized},
		{"external wrapped twice", fmt.Errorf("render: %w", fmt.Errorf("%w: engine", ErrExternal)), KindExternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
