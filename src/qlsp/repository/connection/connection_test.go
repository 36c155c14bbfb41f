package connection

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	"go.uber.org/config"
)

func newRepository(t *testing.T, yaml string) (Repository, tally.TestScope) {
	provider, err := config.NewYAML(config.Source(strings.NewReader(yaml)))
	require.NoError(t, err)

	stats := tally.NewTestScope("", nil)
	r, err := New(Params{Config: provider, Stats: stats})
	require.NoError(t, err)
	return r, stats
}

func gauge(t *testing.T, stats tally.TestScope) float64 {
	g, ok := stats.Snapshot().Gauges()["connection.bearer_connection+"]
	require.True(t, ok)
	return g.Value()
}

func TestNew(t *testing.T) {
	t.Run("seeded from config", func(t *testing.T) {
		r, stats := newRepository(t, `
amazonq:
  connection:
    bearerToken: token
    startUrl: https://example.awsapps.com/start
    profileArn: arn:p
`)
		creds, err := r.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token", creds.BearerToken)
		assert.Equal(t, "arn:p", creds.ProfileArn)
		assert.Equal(t, "https://example.awsapps.com/start", creds.Metadata().SSO.StartURL)
		assert.Equal(t, 1.0, gauge(t, stats))
	})

	t.Run("empty config", func(t *testing.T) {
		r, stats := newRepository(t, `amazonq: {}`)
		creds, err := r.Get(context.Background())
		require.NoError(t, err)
		assert.False(t, creds.HasToken())
		assert.Equal(t, entity.BuilderIDStartURL, creds.Metadata().SSO.StartURL)
		assert.Equal(t, 0.0, gauge(t, stats))
	})

	t.Run("invalid config", func(t *testing.T) {
		provider, err := config.NewYAML(config.Source(strings.NewReader(`amazonq: [1]`)))
		require.NoError(t, err)
		_, err = New(Params{Config: provider, Stats: tally.NoopScope})
		assert.Error(t, err)
	})
}

func TestSetToken(t *testing.T) {
	ctx := context.Background()
	r, stats := newRepository(t, `amazonq: {}`)

	assert.Error(t, r.SetToken(ctx, "", ""))

	require.NoError(t, r.SetToken(ctx, "token", ""))
	require.NoError(t, r.SetProfile(ctx, "arn:p"))
	creds, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token", creds.BearerToken)
	assert.Equal(t, "arn:p", creds.ProfileArn)
	assert.Equal(t, 1.0, gauge(t, stats))

	require.NoError(t, r.DeleteToken(ctx))
	creds, err = r.Get(ctx)
	require.NoError(t, err)
	assert.False(t, creds.HasToken())
	assert.Empty(t, creds.ProfileArn)
	assert.Equal(t, 0.0, gauge(t, stats))
}
