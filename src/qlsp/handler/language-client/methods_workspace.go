package languageclient

import (
	"context"
	"encoding/json"

	controller "github.com/uber/amazonq-lsp/src/qlsp/controller/language-client"
	"github.com/uber/amazonq-lsp/src/qlsp/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) Configuration(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToConfigurationParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.client.Configuration(ctx, params)
	return reply(ctx, result, err)
}

func (r *jsonRPCRouter) PublishDiagnostics(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToPublishDiagnosticsParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.client.PublishDiagnostics(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) DidCopyFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params controller.CopyFileParams
	if err := mapper.RequestToParams(req, &params); err != nil {
		return reply(ctx, nil, err)
	}

	err := r.client.FilesChanged(ctx, req.Method(), params.OldPath, params.NewPath)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) DidChangeFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params controller.FileParams
	if err := mapper.RequestToParams(req, &params); err != nil {
		return reply(ctx, nil, err)
	}

	err := r.client.FilesChanged(ctx, req.Method(), params.Path)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) OpenFileDiff(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params controller.OpenFileDiffParams
	if err := mapper.RequestToParams(req, &params); err != nil {
		return reply(ctx, nil, err)
	}

	err := r.client.OpenFileDiff(ctx, &params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) ShowSaveFileDialog(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	result, err := r.client.ShowSaveFileDialog(ctx, json.RawMessage(req.Params()))
	return reply(ctx, result, err)
}
