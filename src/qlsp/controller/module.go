package controller

import (
	authcredentials "github.com/uber/amazonq-lsp/src/qlsp/controller/auth-credentials"
	languageclient "github.com/uber/amazonq-lsp/src/qlsp/controller/language-client"
	lspservice "github.com/uber/amazonq-lsp/src/qlsp/controller/lsp-service"
	serverinstance "github.com/uber/amazonq-lsp/src/qlsp/controller/server-instance"
	"go.uber.org/fx"
)

var Module = fx.Options(
	languageclient.Module,
	serverinstance.Module,
	lspservice.Module,
	authcredentials.Module,
)
