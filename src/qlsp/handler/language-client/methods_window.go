package languageclient

import (
	"context"
	"encoding/json"

	"github.com/uber/amazonq-lsp/src/qlsp/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) GetConnectionMetadata(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	result, err := r.client.GetConnectionMetadata(ctx)
	return reply(ctx, result, err)
}

func (r *jsonRPCRouter) ShowMessage(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToShowMessageParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.client.ShowMessage(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) ShowMessageRequest(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToShowMessageRequestParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.client.ShowMessageRequest(ctx, params)
	return reply(ctx, result, err)
}

func (r *jsonRPCRouter) LogMessage(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToLogMessageParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.client.LogMessage(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) ShowDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToShowDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.client.ShowDocument(ctx, params)
	return reply(ctx, result, err)
}

func (r *jsonRPCRouter) Progress(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToProgressParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.client.Progress(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) Telemetry(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.client.Telemetry(ctx, json.RawMessage(req.Params()))
	return reply(ctx, nil, err)
}
