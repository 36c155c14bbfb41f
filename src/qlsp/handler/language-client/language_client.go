// Package languageclient routes requests sent by the language server to the language client controller.
package languageclient

import (
	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	controller "github.com/uber/amazonq-lsp/src/qlsp/controller/language-client"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/jsonrpcfx"
	"go.uber.org/fx"
)

// Module provides the router factory.
var Module = fx.Provide(New)

// Handler creates one router per language server instance.
type Handler interface {
	NewRouter(id uuid.UUID) jsonrpcfx.Router
}

// Params are inbound parameters to initialize a new handler.
type Params struct {
	fx.In

	Controller controller.Controller
	Stats      tally.Scope
}

type handler struct {
	ctrl  controller.Controller
	stats tally.Scope
}

// New constructs a new language client Handler.
func New(p Params) Handler {
	return &handler{
		ctrl:  p.Controller,
		stats: p.Stats.SubScope("json_rpc"),
	}
}

func (h *handler) NewRouter(id uuid.UUID) jsonrpcfx.Router {
	return &jsonRPCRouter{
		client: h.ctrl,
		uuid:   id,
		stats:  h.stats,
	}
}
