package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInstanceState(t *testing.T) {
	tests := []struct {
		state    InstanceState
		str      string
		terminal bool
	}{
		{InstanceStarting, "starting", false},
		{InstanceHandshaking, "handshaking", false},
		{InstanceReady, "ready", false},
		{InstanceDisposed, "disposed", true},
		{InstanceFailed, "failed", true},
		{InstanceState(99), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.state.String())
			assert.Equal(t, tt.terminal, tt.state.Terminal())
		})
	}
}

func TestAvailability(t *testing.T) {
	assert.True(t, Availability{Kind: Available}.IsAvailable())
	assert.False(t, Availability{}.IsAvailable())
	assert.Equal(t, "unavailable", Unavailable.String())
	assert.Equal(t, "available", Available.String())
}

func TestLanguageServerConfigWithDefaults(t *testing.T) {
	cfg := LanguageServerConfig{
		Timeouts: Timeouts{Execute: time.Second},
	}.WithDefaults()

	assert.Equal(t, time.Second, cfg.Timeouts.Execute)
	assert.Equal(t, DefaultInitializeTimeout, cfg.Timeouts.Initialize)
	assert.Equal(t, DefaultEncryptionWriteTimeout, cfg.Timeouts.EncryptionWrite)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Timeouts.Shutdown)
	assert.Equal(t, DefaultStartAttemptTimeout, cfg.Timeouts.StartAttempt)
	assert.Equal(t, DefaultHeartbeatInterval, cfg.HeartbeatInterval)
	assert.Equal(t, DefaultMaxRestarts, cfg.RestartPolicy.MaxRestarts)
	assert.Equal(t, DefaultRestartWindow, cfg.RestartPolicy.Window)
}

func TestCredentialsMetadata(t *testing.T) {
	assert.Equal(t, BuilderIDStartURL, Credentials{}.Metadata().SSO.StartURL)
	assert.Equal(t, "https://example.awsapps.com/start", Credentials{StartURL: "https://example.awsapps.com/start"}.Metadata().SSO.StartURL)
	assert.False(t, Credentials{}.HasToken())
	assert.True(t, Credentials{BearerToken: "t"}.HasToken())
}
