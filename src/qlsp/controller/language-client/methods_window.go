package languageclient

import (
	"context"
	"encoding/json"
	"errors"

	notifier "github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client"
	"go.lsp.dev/protocol"
)

func (c *controller) ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error {
	return c.ideGateway.ShowMessage(ctx, params)
}

func (c *controller) ShowMessageRequest(ctx context.Context, params *protocol.ShowMessageRequestParams) (*protocol.MessageActionItem, error) {
	if len(params.Actions) == 0 {
		return nil, c.ideGateway.ShowMessage(ctx, &protocol.ShowMessageParams{Message: params.Message, Type: params.Type})
	}

	result, err := c.ideGateway.ShowMessageRequest(ctx, params)
	if errors.Is(err, notifier.ErrNoHost) {
		return nil, nil
	}
	return result, err
}

func (c *controller) LogMessage(ctx context.Context, params *protocol.LogMessageParams) error {
	return c.ideGateway.LogMessage(ctx, params)
}

func (c *controller) ShowDocument(ctx context.Context, params *protocol.ShowDocumentParams) (*protocol.ShowDocumentResult, error) {
	if params.URI == "" {
		return &protocol.ShowDocumentResult{Success: false}, nil
	}

	result, err := c.ideGateway.ShowDocument(ctx, params)
	if err != nil {
		c.logger.Warnw("unable to show document", "uri", params.URI, "error", err)
		return &protocol.ShowDocumentResult{Success: false}, nil
	}
	return result, nil
}

// Progress forwards chat partial results.
func (c *controller) Progress(ctx context.Context, params *protocol.ProgressParams) error {
	err := c.ideGateway.Progress(ctx, params)
	if errors.Is(err, notifier.ErrNoHost) {
		c.logger.Debugw("dropping partial result", "token", params.Token.String())
		return nil
	}
	return err
}

func (c *controller) Telemetry(ctx context.Context, params json.RawMessage) error {
	c.stats.Counter("telemetry_events").Inc(1)
	return c.ideGateway.Telemetry(ctx, params)
}
