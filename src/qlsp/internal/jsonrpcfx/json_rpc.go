package jsonrpcfx

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gofrs/uuid"
	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	qerrors "github.com/uber/amazonq-lsp/src/qlsp/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Module is an fx module to manage JSON-RPC connections to language servers.
var Module = fx.Provide(New)

// JSONRPCModule attaches JSON-RPC connections to language server stdio streams.
type JSONRPCModule interface {
	Connect(ctx context.Context, rwc io.ReadWriteCloser, router Router) jsonrpc2.Conn
}

// Router serves as the interface through which handling of server initiated requests will be implemented.
type Router interface {
	HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error
	UUID() uuid.UUID
}

type module struct {
	logger     *zap.SugaredLogger
	traceLevel zapcore.Level
}

// Params define values to be used by JSONRPCModule.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
}

// New creates a new JSONRPCModule.
func New(p Params) (JSONRPCModule, error) {
	if p.Config == nil || p.Logger == nil {
		return nil, errors.New("required parameters are missing")
	}

	m := module{
		logger:     p.Logger,
		traceLevel: zapcore.DebugLevel,
	}

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	return &m, nil
}

// Connect frames the stream with Content-Length headers and starts the read loop.
// Server initiated requests are routed to the router one at a time, in arrival order.
// The returned connection's Done channel closes when the stream fails or is closed.
func (m *module) Connect(ctx context.Context, rwc io.ReadWriteCloser, router Router) jsonrpc2.Conn {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, jsonrpc2.AsyncHandler(m.traced(router)))

	m.logger.Infow("language server connected", zap.Stringer("instance", router.UUID()))
	go func() {
		<-conn.Done()
		m.logger.Infow("language server disconnected", zap.Stringer("instance", router.UUID()), zap.Error(conn.Err()))
	}()

	return conn
}

func (m *module) traced(router Router) jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		m.logger.Logw(m.traceLevel, "received request",
			"instance", router.UUID().String(),
			"method", req.Method(),
			"params", string(req.Params()),
		)
		return router.HandleReq(ctx, reply, req)
	}
}

// processConfig will parse the configuration for any values required by this module.
func (m *module) processConfig(cfg config.Provider) error {
	var c entity.JSONRPCConfig
	if err := cfg.Get(entity.JSONRPCConfigKey).Populate(&c); err != nil {
		return fmt.Errorf("getting config field %q: %w", entity.JSONRPCConfigKey, err)
	}

	if c.Trace {
		m.traceLevel = zapcore.InfoLevel
	}
	return nil
}

// CallContext derives a context that is cancelled when conn terminates, so calls
// pending on a dead transport return instead of waiting for a reply that never comes.
// The cancellation cause is errors.ErrTransportClosed.
func CallContext(ctx context.Context, conn jsonrpc2.Conn) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(ctx)
	go func() {
		select {
		case <-conn.Done():
			cancel(qerrors.ErrTransportClosed)
		case <-ctx.Done():
		}
	}()
	return ctx, func() { cancel(context.Canceled) }
}

// TransportErr replaces err with the transport failure when ctx was cancelled by CallContext.
func TransportErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if cause := context.Cause(ctx); qerrors.Is(cause, qerrors.ErrTransportClosed) {
		return fmt.Errorf("%w: %v", qerrors.ErrTransportClosed, err)
	}
	return err
}
