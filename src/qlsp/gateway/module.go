package gateway

import (
	notifier "github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client"
	"go.uber.org/fx"
)

// Module provides the outbound gateways. The language server proxy is created per instance and is not part of the graph.
var Module = fx.Options(
	notifier.Module,
)
