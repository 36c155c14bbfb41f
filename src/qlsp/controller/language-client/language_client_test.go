package languageclient

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	"github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client/ideclientmock"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/fs/fsmock"
	"github.com/uber/amazonq-lsp/src/qlsp/repository/connection/connectionmock"
	"go.uber.org/config"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const _testSettings = `
amazonq:
  settings:
    codeWhisperer:
      includeSuggestionsWithCodeReferences: true
      nested:
        depth: 2
    q:
      customizationArn: arn:custom
`

type testDeps struct {
	gateway     *ideclientmock.MockGateway
	connections *connectionmock.MockRepository
	fs          *fsmock.MockQlspFS
	logs        *observer.ObservedLogs
	stats       tally.TestScope
}

func getTestController(t *testing.T) (*controller, testDeps) {
	ctrl := gomock.NewController(t)
	provider, err := config.NewYAML(config.Source(strings.NewReader(_testSettings)))
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	deps := testDeps{
		gateway:     ideclientmock.NewMockGateway(ctrl),
		connections: connectionmock.NewMockRepository(ctrl),
		fs:          fsmock.NewMockQlspFS(ctrl),
		logs:        logs,
		stats:       tally.NewTestScope("", nil),
	}

	c, err := New(Params{
		Config:      provider,
		IdeGateway:  deps.gateway,
		Connections: deps.connections,
		FS:          deps.fs,
		Logger:      zap.New(core).Sugar(),
		Stats:       deps.stats,
	})
	require.NoError(t, err)
	return c.(*controller), deps
}

func TestNew(t *testing.T) {
	t.Run("settings normalized", func(t *testing.T) {
		c, _ := getTestController(t)
		cw, ok := c.settings[SectionCodeWhisperer].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, cw["includeSuggestionsWithCodeReferences"])
		nested, ok := cw["nested"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 2, nested["depth"])
	})

	t.Run("invalid config", func(t *testing.T) {
		provider, err := config.NewYAML(config.Source(strings.NewReader(`amazonq: [1, 2]`)))
		require.NoError(t, err)
		_, err = New(Params{Config: provider, Logger: zap.NewNop().Sugar(), Stats: tally.NoopScope})
		assert.Error(t, err)
	})
}

func TestGetConnectionMetadata(t *testing.T) {
	ctx := context.Background()

	t.Run("bearer connection", func(t *testing.T) {
		c, deps := getTestController(t)
		deps.connections.EXPECT().Get(gomock.Any()).Return(entity.Credentials{
			BearerToken: "token",
			StartURL:    "https://example.awsapps.com/start",
		}, nil)

		result, err := c.GetConnectionMetadata(ctx)
		require.NoError(t, err)
		assert.Equal(t, "https://example.awsapps.com/start", result.SSO.StartURL)
	})

	t.Run("no token defaults to builder id", func(t *testing.T) {
		c, deps := getTestController(t)
		deps.connections.EXPECT().Get(gomock.Any()).Return(entity.Credentials{StartURL: "https://stale.awsapps.com/start"}, nil)

		result, err := c.GetConnectionMetadata(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.BuilderIDStartURL, result.SSO.StartURL)
	})

	t.Run("repository failure", func(t *testing.T) {
		c, deps := getTestController(t)
		deps.connections.EXPECT().Get(gomock.Any()).Return(entity.Credentials{}, errors.New("closed"))

		_, err := c.GetConnectionMetadata(ctx)
		assert.ErrorContains(t, err, "closed")
	})
}

func TestNormalize(t *testing.T) {
	in := map[interface{}]interface{}{
		"a": []interface{}{map[interface{}]interface{}{1: "one"}},
		"b": "c",
	}
	assert.Equal(t, map[string]interface{}{
		"a": []interface{}{map[string]interface{}{"1": "one"}},
		"b": "c",
	}, normalize(in))
	assert.Nil(t, normalize(map[string]interface{}(nil)))
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
