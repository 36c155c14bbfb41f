// Package serverinstance owns a single language server process from launch to disposal.
package serverinstance

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	amazonqserver "github.com/uber/amazonq-lsp/src/qlsp/gateway/amazonq-server"
	languageclient "github.com/uber/amazonq-lsp/src/qlsp/handler/language-client"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/encryption"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/jsonrpcfx"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/launcher"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _errCreateInstance = "creating language server instance: %w"

// Module provides the instance Factory.
var Module = fx.Provide(New)

// Instance is one live language server: its process, its JSON-RPC connection and its handshake.
type Instance interface {
	ID() uuid.UUID
	Pid() int
	State() entity.InstanceState

	// Initialized is closed once the handshake has settled, successfully or not.
	Initialized() <-chan struct{}
	// InitializeResult is valid after Initialized is closed.
	InitializeResult() (*protocol.InitializeResult, error)
	// Done is closed once the transport to the process has terminated.
	Done() <-chan struct{}

	Server() amazonqserver.Server

	// Dispose shuts the server down and releases the process. Only the first call has an effect.
	Dispose(ctx context.Context)
}

// Factory launches new instances.
type Factory interface {
	// Create launches a process and attaches the transport. The handshake continues in the background
	// and is bounded by ctx.
	Create(ctx context.Context) (Instance, error)
}

// Params are inbound parameters to initialize a new Factory.
type Params struct {
	fx.In

	Config   config.Provider
	Launcher launcher.Launcher
	JSONRPC  jsonrpcfx.JSONRPCModule
	Handler  languageclient.Handler
	Logger   *zap.SugaredLogger
	Stats    tally.Scope
}

type instanceFactory struct {
	cfg       entity.LanguageServerConfig
	workspace entity.WorkspaceConfig
	client    entity.ClientConfig
	clientID  uuid.UUID

	launcher launcher.Launcher
	jsonrpc  jsonrpcfx.JSONRPCModule
	handler  languageclient.Handler
	logger   *zap.SugaredLogger
	stats    tally.Scope

	newEncryption func() (encryption.Manager, error)
}

// New creates a Factory from the languageServer, workspace and client config sections.
func New(p Params) (Factory, error) {
	f := &instanceFactory{
		launcher: p.Launcher,
		jsonrpc:  p.JSONRPC,
		handler:  p.Handler,
		logger:   p.Logger,
		stats:    p.Stats.SubScope("instance"),
	}

	for key, target := range map[string]interface{}{
		entity.LanguageServerConfigKey: &f.cfg,
		entity.WorkspaceConfigKey:      &f.workspace,
		entity.ClientConfigKey:         &f.client,
	} {
		if err := p.Config.Get(key).Populate(target); err != nil {
			return nil, fmt.Errorf("getting config field %q: %w", key, err)
		}
	}
	f.cfg = f.cfg.WithDefaults()

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	f.clientID = id

	f.newEncryption = func() (encryption.Manager, error) {
		return encryption.New(encryption.WithWriteTimeout(f.cfg.Timeouts.EncryptionWrite))
	}
	return f, nil
}

func (f *instanceFactory) Create(ctx context.Context) (Instance, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf(_errCreateInstance, err)
	}

	enc, err := f.newEncryption()
	if err != nil {
		return nil, fmt.Errorf(_errCreateInstance, err)
	}

	proc, err := f.launcher.Launch(ctx)
	if err != nil {
		enc.Destroy()
		return nil, fmt.Errorf(_errCreateInstance, err)
	}

	logger := f.logger.With("instance", id.String(), "pid", proc.Pid())
	i := &instance{
		id:          id,
		cfg:         f.cfg,
		process:     proc,
		encryption:  enc,
		logger:      logger,
		stats:       f.stats,
		state:       entity.InstanceStarting,
		initialized: make(chan struct{}),
		done:        make(chan struct{}),
	}

	// The read loop outlives the attempt that created the instance.
	i.conn = f.jsonrpc.Connect(context.WithoutCancel(ctx), proc.Stream(), f.handler.NewRouter(id))
	i.server = amazonqserver.New(i.conn, enc, logger)
	go i.watchTransport()

	logger.Infow("language server launched")
	go i.handshake(ctx, f.initializeParams())

	return i, nil
}

type instance struct {
	id         uuid.UUID
	cfg        entity.LanguageServerConfig
	process    launcher.Process
	conn       jsonrpc2.Conn
	server     amazonqserver.Server
	encryption encryption.Manager
	logger     *zap.SugaredLogger
	stats      tally.Scope

	mu    sync.Mutex
	state entity.InstanceState

	initialized chan struct{}
	initResult  *protocol.InitializeResult
	initErr     error

	done        chan struct{}
	disposeOnce sync.Once
}

func (i *instance) ID() uuid.UUID {
	return i.id
}

func (i *instance) Pid() int {
	return i.process.Pid()
}

func (i *instance) State() entity.InstanceState {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// setState moves to next unless a terminal state was already reached.
func (i *instance) setState(next entity.InstanceState) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.state.Terminal() {
		return false
	}
	i.state = next
	return true
}

func (i *instance) Initialized() <-chan struct{} {
	return i.initialized
}

func (i *instance) InitializeResult() (*protocol.InitializeResult, error) {
	select {
	case <-i.initialized:
		return i.initResult, i.initErr
	default:
		return nil, fmt.Errorf("instance %s: handshake pending", i.id)
	}
}

func (i *instance) Done() <-chan struct{} {
	return i.done
}

func (i *instance) Server() amazonqserver.Server {
	return i.server
}

// watchTransport settles the transport future once either the connection or the process goes away.
func (i *instance) watchTransport() {
	select {
	case <-i.conn.Done():
	case <-i.process.Done():
	}
	close(i.done)

	if !i.State().Terminal() {
		i.logger.Warnw("language server transport terminated", "error", i.conn.Err(), "exitErr", i.process.ExitErr())
		i.stats.Counter("transport_terminated").Inc(1)
	}
}
