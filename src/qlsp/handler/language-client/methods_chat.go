package languageclient

import (
	"context"
	"encoding/json"

	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) ChatUpdate(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.client.ChatUpdate(ctx, req.Method(), json.RawMessage(req.Params()))
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) OpenTab(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	result, err := r.client.OpenTab(ctx, json.RawMessage(req.Params()))
	return reply(ctx, result, err)
}
