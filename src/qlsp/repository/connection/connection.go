package connection

import (
	"context"
	"fmt"
	"sync"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	"go.uber.org/config"
	"go.uber.org/fx"
)

// Module provides the connection repository.
var Module = fx.Provide(New)

// Repository stores the credentials pushed to the language server.
type Repository interface {
	Get(ctx context.Context) (entity.Credentials, error)
	SetToken(ctx context.Context, token, startURL string) error
	SetProfile(ctx context.Context, profileArn string) error
	DeleteToken(ctx context.Context) error
}

// Params are inbound parameters to initialize a new repository.
type Params struct {
	fx.In

	Config config.Provider
	Stats  tally.Scope
}

type repository struct {
	mu    sync.Mutex
	creds entity.Credentials
	stats tally.Scope
}

// New returns a repository seeded from the amazonq.connection config section.
func New(p Params) (Repository, error) {
	var cfg entity.AmazonQConfig
	if err := p.Config.Get(entity.AmazonQConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", entity.AmazonQConfigKey, err)
	}

	r := &repository{
		creds: entity.Credentials{
			BearerToken: cfg.Connection.BearerToken,
			StartURL:    cfg.Connection.StartURL,
			ProfileArn:  cfg.Connection.ProfileArn,
		},
		stats: p.Stats.SubScope("connection"),
	}
	r.updateGauge()
	return r, nil
}

func (r *repository) Get(ctx context.Context) (entity.Credentials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.creds, nil
}

func (r *repository) SetToken(ctx context.Context, token, startURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token == "" {
		return fmt.Errorf("can't save empty bearer token")
	}
	r.creds.BearerToken = token
	r.creds.StartURL = startURL
	r.updateGauge()
	return nil
}

func (r *repository) SetProfile(ctx context.Context, profileArn string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.creds.ProfileArn = profileArn
	return nil
}

func (r *repository) DeleteToken(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.creds = entity.Credentials{}
	r.updateGauge()
	return nil
}

func (r *repository) updateGauge() {
	v := 0.0
	if r.creds.HasToken() {
		v = 1
	}
	r.stats.Gauge("bearer_connection").Update(v)
}
