package languageclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	notifier "github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client"
)

func (c *controller) ChatUpdate(ctx context.Context, method string, params json.RawMessage) error {
	err := c.ideGateway.ChatUpdate(ctx, method, params)
	if errors.Is(err, notifier.ErrNoHost) {
		c.logger.Debugw("dropping chat update", "method", method)
		return nil
	}
	return err
}

// OpenTab waits at most 30 seconds for the host to open the tab.
func (c *controller) OpenTab(ctx context.Context, params json.RawMessage) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.openTabTimeout)
	defer cancel()

	result, err := c.ideGateway.OpenTab(ctx, params)
	if err != nil {
		c.stats.Counter("open_tab_failures").Inc(1)
		return nil, fmt.Errorf("opening chat tab: %w", err)
	}
	return result, nil
}
