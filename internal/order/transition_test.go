package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusAccepted, StatusCompleted, true},
		{StatusCompleted, StatusDelivered, true},
		{StatusPending, StatusDelivered, false},
		{StatusPending, StatusCompleted, false},
		{"", StatusPending, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusAccepted, false},
		{StatusDelivered, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, ValidTransition(tt.from, tt.to))
		})
	}
}

func TestStrictTransition(t *testing.T) {
	assert.NoError(t, strictTransition(StatusPending, StatusAccepted))
	assert.ErrorIs(t, strictTransition(StatusPending, "On the way"), ErrInvalidStatus)
	assert.ErrorIs(t, strictTransition(StatusPending, ""), ErrInvalidStatus)
	assert.ErrorIs(t, strictTransition(StatusPending, "Cooking"), ErrInvalidStatus)
	assert.ErrorIs(t, strictTransition(StatusCompleted, StatusPending), ErrInvalidTransition)
}

func TestIsKnownStatus(t *testing.T) {
	assert.True(t, IsKnownStatus(StatusCompleted))
	assert.False(t, IsKnownStatus("completed"))
}
