package serverinstance

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/amazonq-lsp/src/qlsp/controller/language-client/languageclientmock"
	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	"github.com/uber/amazonq-lsp/src/qlsp/factory"
	languageclient "github.com/uber/amazonq-lsp/src/qlsp/handler/language-client"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/encryption"
	qerrors "github.com/uber/amazonq-lsp/src/qlsp/internal/errors"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/jsonrpcfx"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/launcher/launchermock"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const _waitTimeout = 2 * time.Second

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testDeps struct {
	launcher   *launchermock.MockLauncher
	controller *languageclientmock.MockController
	logs       *observer.ObservedLogs
	stats      tally.TestScope
}

func getTestFactory(t *testing.T, cfg entity.LanguageServerConfig) (*instanceFactory, testDeps) {
	ctrl := gomock.NewController(t)
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core).Sugar()

	provider, err := config.NewYAML(config.Source(strings.NewReader(`jsonrpc: {trace: false}`)))
	require.NoError(t, err)
	rpc, err := jsonrpcfx.New(jsonrpcfx.Params{Config: provider, Logger: logger})
	require.NoError(t, err)

	deps := testDeps{
		launcher:   launchermock.NewMockLauncher(ctrl),
		controller: languageclientmock.NewMockController(ctrl),
		logs:       logs,
		stats:      tally.NewTestScope("", nil),
	}

	f := &instanceFactory{
		cfg:       cfg.WithDefaults(),
		workspace: entity.WorkspaceConfig{Root: "/work/project"},
		client:    entity.ClientConfig{Name: "qlsp", Version: "1.2.3", ExtensionName: "amazon-q-lsp-client", ExtensionVersion: "1.2.3"},
		clientID:  factory.UUID(),
		launcher:  deps.launcher,
		jsonrpc:   rpc,
		handler:   languageclient.New(languageclient.Params{Controller: deps.controller, Stats: tally.NoopScope}),
		logger:    logger,
		stats:     deps.stats.SubScope("instance"),
	}
	f.newEncryption = func() (encryption.Manager, error) {
		return encryption.New(encryption.WithWriteTimeout(f.cfg.Timeouts.EncryptionWrite))
	}
	return f, deps
}

func newFake(t *testing.T, opts factory.FakeLanguageServerOptions) *factory.FakeLanguageServer {
	fake := factory.NewFakeLanguageServer(opts)
	t.Cleanup(fake.Close)
	return fake
}

func awaitInitialized(t *testing.T, i Instance) {
	select {
	case <-i.Initialized():
	case <-time.After(_waitTimeout):
		require.FailNow(t, "handshake did not settle")
	}
}

func awaitDone(t *testing.T, i Instance) {
	select {
	case <-i.Done():
	case <-time.After(_waitTimeout):
		require.FailNow(t, "transport did not terminate")
	}
}

func TestNew(t *testing.T) {
	provider, err := config.NewYAML(config.Source(strings.NewReader(`
languageServer:
  bundlePath: /opt/aws-lsp-codewhisperer.js
  timeouts:
    initialize: 1s
workspace:
  root: /work/project
client:
  name: qlsp
`)))
	require.NoError(t, err)

	f, err := New(Params{Config: provider, Logger: zap.NewNop().Sugar(), Stats: tally.NoopScope})
	require.NoError(t, err)

	impl := f.(*instanceFactory)
	assert.Equal(t, time.Second, impl.cfg.Timeouts.Initialize)
	assert.Equal(t, entity.DefaultShutdownTimeout, impl.cfg.Timeouts.Shutdown)
	assert.Equal(t, "qlsp", impl.client.Name)
	assert.False(t, impl.clientID.IsNil())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f, deps := getTestFactory(t, entity.LanguageServerConfig{})
	fake := newFake(t, factory.FakeLanguageServerOptions{
		Capabilities: protocol.ServerCapabilities{HoverProvider: true},
	})
	deps.launcher.EXPECT().Launch(gomock.Any()).Return(fake, nil)

	i, err := f.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, fake.Pid(), i.Pid())
	assert.False(t, i.ID().IsNil())

	awaitInitialized(t, i)
	result, err := i.InitializeResult()
	require.NoError(t, err)
	assert.Equal(t, "fake-amazonq", result.ServerInfo.Name)
	assert.Equal(t, true, result.Capabilities.HoverProvider)
	assert.Equal(t, entity.InstanceReady, i.State())

	payload, ok := fake.Payload(_waitTimeout)
	require.True(t, ok)
	var announced encryption.InitializationPayload
	require.NoError(t, json.Unmarshal([]byte(payload), &announced))
	assert.NotEmpty(t, announced.Key)

	_, ok = fake.WaitFor(protocol.MethodInitialized, _waitTimeout)
	assert.True(t, ok)

	i.Dispose(ctx)
	awaitDone(t, i)
	assert.Equal(t, entity.InstanceDisposed, i.State())

	var methods []string
	for _, msg := range fake.Received() {
		methods = append(methods, msg.Method)
	}
	assert.Equal(t, []string{
		protocol.MethodInitialize,
		protocol.MethodInitialized,
		protocol.MethodShutdown,
		protocol.MethodExit,
	}, methods)
}

func TestCreateLaunchFailure(t *testing.T) {
	f, deps := getTestFactory(t, entity.LanguageServerConfig{})
	deps.launcher.EXPECT().Launch(gomock.Any()).Return(nil, errors.New("node not found"))

	_, err := f.Create(context.Background())
	assert.ErrorContains(t, err, "node not found")
}

func TestHandshakeFailures(t *testing.T) {
	tests := []struct {
		name    string
		cfg     entity.LanguageServerConfig
		opts    factory.FakeLanguageServerOptions
		wantErr error
		wantMsg string
	}{
		{
			name:    "initialize timeout",
			cfg:     entity.LanguageServerConfig{Timeouts: entity.Timeouts{Initialize: 50 * time.Millisecond}},
			opts:    factory.FakeLanguageServerOptions{InitializeDelay: time.Minute},
			wantErr: qerrors.ErrHandshakeTimeout,
		},
		{
			name:    "encryption write timeout",
			cfg:     entity.LanguageServerConfig{Timeouts: entity.Timeouts{EncryptionWrite: 50 * time.Millisecond}},
			opts:    factory.FakeLanguageServerOptions{IgnoreStdin: true},
			wantMsg: "writing encryption key",
		},
		{
			name:    "initialize error",
			opts:    factory.FakeLanguageServerOptions{InitializeErr: errors.New("unsupported client")},
			wantMsg: "unsupported client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, deps := getTestFactory(t, tt.cfg)
			fake := newFake(t, tt.opts)
			deps.launcher.EXPECT().Launch(gomock.Any()).Return(fake, nil)

			i, err := f.Create(context.Background())
			require.NoError(t, err)

			awaitInitialized(t, i)
			_, err = i.InitializeResult()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}

			assert.Equal(t, entity.InstanceFailed, i.State())
			assert.True(t, fake.Terminated())
			awaitDone(t, i)
			assert.Equal(t, int64(1), deps.stats.Snapshot().Counters()["instance.handshake_failures+"].Value())

			// Disposing a failed instance is harmless.
			i.Dispose(context.Background())
		})
	}
}

func TestInitializeResultPending(t *testing.T) {
	f, deps := getTestFactory(t, entity.LanguageServerConfig{Timeouts: entity.Timeouts{Shutdown: 100 * time.Millisecond}})
	fake := newFake(t, factory.FakeLanguageServerOptions{InitializeDelay: time.Minute})
	deps.launcher.EXPECT().Launch(gomock.Any()).Return(fake, nil)

	i, err := f.Create(context.Background())
	require.NoError(t, err)

	_, err = i.InitializeResult()
	assert.ErrorContains(t, err, "handshake pending")

	i.Dispose(context.Background())
	awaitInitialized(t, i)
	assert.Equal(t, entity.InstanceDisposed, i.State())
}

func TestDisposeDeadTransport(t *testing.T) {
	ctx := context.Background()
	f, deps := getTestFactory(t, entity.LanguageServerConfig{})
	fake := newFake(t, factory.FakeLanguageServerOptions{})
	deps.launcher.EXPECT().Launch(gomock.Any()).Return(fake, nil)

	i, err := f.Create(ctx)
	require.NoError(t, err)
	awaitInitialized(t, i)

	fake.Crash()
	awaitDone(t, i)
	assert.Equal(t, 1, deps.logs.FilterMessage("language server transport terminated").Len())

	assert.NotPanics(t, func() {
		i.Dispose(ctx)
		i.Dispose(ctx)
	})
	assert.Equal(t, entity.InstanceDisposed, i.State())
	assert.Equal(t, 1, deps.logs.FilterMessage("language server disposed").Len())

	for _, msg := range fake.Received() {
		assert.NotEqual(t, protocol.MethodShutdown, msg.Method)
	}
}

func TestServerInitiatedRequest(t *testing.T) {
	ctx := context.Background()
	f, deps := getTestFactory(t, entity.LanguageServerConfig{})
	fake := newFake(t, factory.FakeLanguageServerOptions{})
	deps.launcher.EXPECT().Launch(gomock.Any()).Return(fake, nil)
	deps.controller.EXPECT().GetConnectionMetadata(gomock.Any()).Return(&entity.ConnectionMetadata{
		SSO: entity.SSOMetadata{StartURL: entity.BuilderIDStartURL},
	}, nil)

	i, err := f.Create(ctx)
	require.NoError(t, err)
	awaitInitialized(t, i)

	callCtx, cancel := context.WithTimeout(ctx, _waitTimeout)
	defer cancel()
	var result entity.ConnectionMetadata
	require.NoError(t, fake.Call(callCtx, languageclient.MethodGetConnectionMetadata, nil, &result))
	assert.Equal(t, entity.BuilderIDStartURL, result.SSO.StartURL)

	i.Dispose(ctx)
}

func TestInitializeParams(t *testing.T) {
	f, _ := getTestFactory(t, entity.LanguageServerConfig{})
	params := f.initializeParams()

	assert.NotZero(t, params.ProcessID)
	assert.Equal(t, "qlsp", params.ClientInfo.Name)
	assert.True(t, params.Capabilities.TextDocument.Synchronization.DidSave)
	assert.False(t, params.Capabilities.Workspace.ApplyEdit)
	assert.True(t, params.Capabilities.Workspace.WorkspaceFolders)
	assert.True(t, params.Capabilities.Workspace.Configuration)
	assert.True(t, params.Capabilities.Workspace.FileOperations.DidCreate)
	assert.True(t, params.Capabilities.Workspace.FileOperations.DidDelete)
	assert.True(t, params.Capabilities.Window.ShowDocument.Support)
	assert.Equal(t, []protocol.WorkspaceFolder{{URI: "file:///work/project", Name: "project"}}, params.WorkspaceFolders)

	encoded, err := json.Marshal(params.InitializationOptions)
	require.NoError(t, err)
	assert.JSONEq(t, `{"aws":{
		"clientInfo":{
			"name":"qlsp",
			"version":"1.2.3",
			"extension":{"name":"amazon-q-lsp-client","version":"1.2.3"},
			"clientId":"`+f.clientID.String()+`"
		},
		"awsClientCapabilities":{"q":{"developerProfiles":true},"window":{"showSaveFileDialog":true}}
	}}`, string(encoded))
}

func TestWorkspaceFolder(t *testing.T) {
	_, ok := workspaceFolder(entity.WorkspaceConfig{})
	assert.False(t, ok)

	folder, ok := workspaceFolder(entity.WorkspaceConfig{Root: "/work/project", Name: "Project"})
	require.True(t, ok)
	assert.Equal(t, "Project", folder.Name)
	assert.Equal(t, "file:///work/project", folder.URI)
}
