package handler

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	notifier "github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// stdio joins stdin and stdout into the stream the IDE host speaks on.
type stdio struct {
	io.Reader
	io.WriteCloser
}

// connectHost registers the IDE on the other end of stdin and stdout when host.stdio is set.
// Processes embedding qlsp with their own IDE transport call Gateway.RegisterHost instead.
func connectHost(cfg config.Provider, lc fx.Lifecycle, gw notifier.Gateway, logger *zap.SugaredLogger) error {
	var host entity.HostConfig
	if err := cfg.Get(entity.HostConfigKey).Populate(&host); err != nil {
		return fmt.Errorf("getting config field %q: %w", entity.HostConfigKey, err)
	}
	if !host.Stdio {
		return nil
	}
	registerHost(lc, gw, stdio{Reader: os.Stdin, WriteCloser: os.Stdout}, logger)
	return nil
}

func registerHost(lc fx.Lifecycle, gw notifier.Gateway, rwc io.ReadWriteCloser, logger *zap.SugaredLogger) {
	var conn jsonrpc2.Conn
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			conn = jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
			conn.Go(context.Background(), jsonrpc2.MethodNotFoundHandler)
			if err := gw.RegisterHost(ctx, conn); err != nil {
				return multierr.Append(fmt.Errorf("registering IDE host: %w", err), conn.Close())
			}
			logger.Infow("IDE host connected")

			go func() {
				<-conn.Done()
				logger.Infow("IDE host disconnected", "error", conn.Err())
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := gw.DeregisterHost(ctx)
			return multierr.Append(err, conn.Close())
		},
	})
}
