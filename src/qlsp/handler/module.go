package handler

import (
	controller "github.com/uber/amazonq-lsp/src/qlsp/controller"
	authcredentials "github.com/uber/amazonq-lsp/src/qlsp/controller/auth-credentials"
	lspservice "github.com/uber/amazonq-lsp/src/qlsp/controller/lsp-service"
	languageclient "github.com/uber/amazonq-lsp/src/qlsp/handler/language-client"
	"github.com/uber/amazonq-lsp/src/qlsp/repository/connection"
	"go.uber.org/fx"
)

// Module provides the inbound router and everything it drives into an Fx application.
var Module = fx.Options(
	controller.Module,
	connection.Module,
	languageclient.Module,
	fx.Invoke(outputClientInfo),
	fx.Invoke(connectHost),
	fx.Invoke(func(s lspservice.Service) {}),
	fx.Invoke(func(c authcredentials.Controller) {}),
)
