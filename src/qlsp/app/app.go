package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/amazonq-lsp/src/qlsp/gateway"
	"github.com/uber/amazonq-lsp/src/qlsp/handler"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/bundlewatch"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/clock"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/core"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/executor"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/fs"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/jsonrpcfx"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/launcher"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/serverinfofile"
	"go.uber.org/fx"
)

// Module defines the qlsp application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	launcher.Module,
	bundlewatch.Module,
	fs.Module,
	executor.Module,
	serverinfofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(clock.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Prefix: "qlsp",
			Tags: map[string]string{
				"service": "qlsp",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
)
