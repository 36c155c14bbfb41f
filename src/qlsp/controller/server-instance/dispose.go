package serverinstance

import (
	"context"
	"time"

	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	"go.uber.org/multierr"
)

func (i *instance) Dispose(ctx context.Context) {
	i.disposeOnce.Do(func() {
		i.mu.Lock()
		i.state = entity.InstanceDisposed
		i.mu.Unlock()

		if err := i.shutdown(ctx); err != nil {
			i.logger.Warnw("language server did not shut down cleanly", "error", err)
		}
		i.terminate()
		i.encryption.Destroy()
		i.logger.Infow("language server disposed")
	})
}

// shutdown runs shutdown and exit when the transport is still alive.
func (i *instance) shutdown(ctx context.Context) error {
	select {
	case <-i.done:
		return nil
	default:
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, i.cfg.Timeouts.Shutdown)
	defer cancel()

	if err := i.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := i.server.Exit(shutdownCtx); err != nil {
		return err
	}

	select {
	case <-i.process.Done():
	case <-shutdownCtx.Done():
	}
	return nil
}

// terminate closes the transport and kills the process when it is still running.
func (i *instance) terminate() {
	var err error
	if !i.process.Terminated() {
		err = multierr.Append(err, i.process.Kill())
	}
	err = multierr.Append(err, i.conn.Close())
	if err != nil {
		i.logger.Debugw("releasing language server", "error", err)
	}

	select {
	case <-i.done:
	case <-time.After(i.cfg.Timeouts.Shutdown):
		i.logger.Warnw("language server transport still open after release")
	}
}
