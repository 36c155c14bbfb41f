package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "not running",
			err:  ErrNotRunning,
			want: true,
		},
		{
			name: "wrapped restart limit",
			err:  fmt.Errorf("executing: %w", ErrRestartLimitExceeded),
			want: true,
		},
		{
			name: "startup failure",
			err:  &StartupError{Attempts: 3, Err: ErrHandshakeTimeout},
			want: true,
		},
		{
			name: "request failure",
			err:  New("rpc error"),
			want: false,
		},
		{
			name: "deadline",
			err:  context.DeadlineExceeded,
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsUnavailable(tt.err))
		})
	}
}

func TestStartupError(t *testing.T) {
	err := fmt.Errorf("start: %w", &StartupError{Attempts: 3, Err: ErrHandshakeTimeout})

	assert.True(t, IsStartupFailure(err))
	assert.ErrorIs(t, err, ErrHandshakeTimeout)
	assert.Contains(t, err.Error(), "3 attempt(s)")

	attempts, ok := StartupAttempts(err)
	assert.True(t, ok)
	assert.Equal(t, 3, attempts)

	_, ok = StartupAttempts(ErrNotRunning)
	assert.False(t, ok)
	assert.False(t, IsStartupFailure(ErrNotRunning))
}
