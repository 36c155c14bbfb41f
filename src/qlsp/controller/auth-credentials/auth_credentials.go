// Package authcredentials pushes the stored bearer token and developer profile to every new language server instance.
package authcredentials

import (
	"context"
	"fmt"
	"sync"
	"time"

	tally "github.com/uber-go/tally/v4"
	lspservice "github.com/uber/amazonq-lsp/src/qlsp/controller/lsp-service"
	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	amazonqserver "github.com/uber/amazonq-lsp/src/qlsp/gateway/amazonq-server"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/errors"
	"github.com/uber/amazonq-lsp/src/qlsp/repository/connection"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	_refreshInterval = 5 * time.Minute
	_pushTimeout     = 30 * time.Second

	_errPush = "pushing %s to language server: %w"
)

// Module provides the auth credentials controller.
var Module = fx.Provide(New)

// Controller keeps the language server's credentials in sync with the connection repository.
type Controller interface {
	// UpdateToken stores a bearer token and pushes it to a running server.
	UpdateToken(ctx context.Context, token, startURL string) error
	// DeleteToken clears the stored credentials and tells a running server to forget them.
	DeleteToken(ctx context.Context) error
	// SelectProfile stores the developer profile and pushes it to a running server.
	SelectProfile(ctx context.Context, profileArn string) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Service     lspservice.Service
	Connections connection.Repository
	Lifecycle   fx.Lifecycle
	Logger      *zap.SugaredLogger
	Stats       tally.Scope
}

type controller struct {
	service     lspservice.Service
	connections connection.Repository
	logger      *zap.SugaredLogger
	stats       tally.Scope

	refreshInterval time.Duration
	group           singleflight.Group

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup
}

// New creates the controller and registers its lifecycle hooks.
func New(p Params) Controller {
	c := newController(p)
	p.Lifecycle.Append(fx.Hook{
		OnStart: c.onStart,
		OnStop:  c.onStop,
	})
	return c
}

func newController(p Params) *controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &controller{
		service:         p.Service,
		connections:     p.Connections,
		logger:          p.Logger.With("component", "auth-credentials"),
		stats:           p.Stats.SubScope("auth_credentials"),
		refreshInterval: _refreshInterval,
		ctx:             ctx,
		cancel:          cancel,
	}
}

func (c *controller) onStart(ctx context.Context) error {
	events, unsubscribe := c.service.Subscribe()
	c.unsubscribe = unsubscribe

	c.wg.Add(2)
	go c.watch(events)
	go c.refresh()
	return nil
}

func (c *controller) onStop(ctx context.Context) error {
	c.cancel()
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	c.wg.Wait()
	return nil
}

// watch re-pushes credentials whenever a new instance becomes available.
func (c *controller) watch(events <-chan entity.Availability) {
	defer c.wg.Done()

	for ev := range events {
		if !ev.IsAvailable() {
			continue
		}
		c.logger.Debugw("language server available, pushing credentials", "instance", ev.InstanceID.String())
		if err := c.sync(c.ctx, ev.InstanceID.String()); err != nil {
			c.logger.Warnw("unable to push credentials", "instance", ev.InstanceID.String(), "error", err)
		}
	}
}

func (c *controller) refresh() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.stats.Counter("refreshes").Inc(1)
			if err := c.sync(c.ctx, ""); err != nil {
				c.logger.Warnw("unable to refresh credentials", "error", err)
			}
		}
	}
}

// sync pushes the stored credentials if a server is running. Concurrent pushes of the same
// credentials within the same scope share one round trip. Pushes for a newly available instance
// are scoped to it, so they never join a push still in flight to its predecessor.
func (c *controller) sync(ctx context.Context, scope string) error {
	creds, err := c.connections.Get(ctx)
	if err != nil {
		return err
	}
	if !creds.HasToken() {
		return nil
	}

	key := scope + "\x00" + creds.StartURL + "\x00" + creds.ProfileArn + "\x00" + creds.BearerToken
	_, err, shared := c.group.Do(key, func() (interface{}, error) {
		return nil, c.push(ctx, func(ctx context.Context, server amazonqserver.Server) error {
			if err := pushToken(ctx, server, creds); err != nil {
				return err
			}
			return pushProfile(ctx, server, creds.ProfileArn)
		})
	})
	if shared {
		c.stats.Counter("pushes_shared").Inc(1)
	}
	return err
}

func (c *controller) UpdateToken(ctx context.Context, token, startURL string) error {
	if err := c.connections.SetToken(ctx, token, startURL); err != nil {
		return err
	}
	c.logger.Infow("bearer token updated", "startUrl", startURL)
	return c.sync(ctx, "")
}

func (c *controller) DeleteToken(ctx context.Context) error {
	if err := c.connections.DeleteToken(ctx); err != nil {
		return err
	}
	c.logger.Infow("bearer token deleted")
	return c.push(ctx, func(ctx context.Context, server amazonqserver.Server) error {
		if err := server.DeleteTokenCredentials(ctx); err != nil {
			return fmt.Errorf(_errPush, "token deletion", err)
		}
		return nil
	})
}

func (c *controller) SelectProfile(ctx context.Context, profileArn string) error {
	if err := c.connections.SetProfile(ctx, profileArn); err != nil {
		return err
	}
	c.logger.Infow("developer profile selected", "profileArn", profileArn)
	return c.push(ctx, func(ctx context.Context, server amazonqserver.Server) error {
		return pushProfile(ctx, server, profileArn)
	})
}

// push runs fn against a running server. A missing server is not an error, the next instance gets the credentials on availability.
func (c *controller) push(ctx context.Context, fn lspservice.ExecuteFunc) error {
	ctx, cancel := context.WithTimeout(ctx, _pushTimeout)
	defer cancel()

	err := c.service.ExecuteIfRunning(ctx, fn)
	switch {
	case err == nil:
		c.stats.Counter("pushes").Inc(1)
		return nil
	case errors.IsUnavailable(err):
		c.logger.Debugw("language server unavailable, skipping push", "error", err)
		return nil
	default:
		c.stats.Counter("push_failures").Inc(1)
		return err
	}
}

func pushToken(ctx context.Context, server amazonqserver.Server, creds entity.Credentials) error {
	metadata := creds.Metadata()
	if err := server.UpdateTokenCredentials(ctx, creds.BearerToken, &metadata); err != nil {
		return fmt.Errorf(_errPush, "bearer token", err)
	}
	return nil
}

func pushProfile(ctx context.Context, server amazonqserver.Server, profileArn string) error {
	params := &amazonqserver.UpdateConfigurationParams{
		Section:  amazonqserver.SectionQ,
		Settings: amazonqserver.ProfileSettings{ProfileArn: profileArn},
	}
	if err := server.UpdateConfiguration(ctx, params); err != nil {
		return fmt.Errorf(_errPush, "developer profile", err)
	}
	return nil
}
