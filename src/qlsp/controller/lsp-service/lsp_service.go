// Package lspservice keeps one Amazon Q language server available and serializes access to it.
package lspservice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	tally "github.com/uber-go/tally/v4"
	serverinstance "github.com/uber/amazonq-lsp/src/qlsp/controller/server-instance"
	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	amazonqserver "github.com/uber/amazonq-lsp/src/qlsp/gateway/amazonq-server"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/bundlewatch"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/clock"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/errors"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/serverinfofile"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_maxStartAttempts = 3
	_attemptDelay     = 500 * time.Millisecond

	_heartbeatBackoffInitial = time.Second
	_heartbeatBackoffMax     = time.Minute

	_infoFieldPid      = "pid"
	_infoFieldInstance = "instance"
	_infoFieldState    = "state"
)

// Module provides the Service and ties it to the application lifecycle.
var Module = fx.Provide(New)

// ExecuteFunc runs against a ready language server.
type ExecuteFunc func(ctx context.Context, server amazonqserver.Server) error

// Service owns the current language server instance.
type Service interface {
	// Start begins constructing an instance unless one exists or is being constructed.
	Start(ctx context.Context) (*Task, error)
	// Execute waits for a ready instance and runs fn against it. Only the wait is bounded.
	Execute(ctx context.Context, fn ExecuteFunc) error
	// ExecuteIfRunning behaves like Execute but returns errors.ErrNotRunning when nothing was started.
	ExecuteIfRunning(ctx context.Context, fn ExecuteFunc) error
	// Restart replaces a settled instance. It is a no-op while a start or handshake is pending.
	Restart(ctx context.Context) error
	// Subscribe returns a channel carrying the latest availability event and a func to unsubscribe.
	Subscribe() (<-chan entity.Availability, func())
	// Close disposes the current instance and ends every subscription.
	Close(ctx context.Context) error
}

// Params are inbound parameters to initialize a new Service.
type Params struct {
	fx.In

	Config         config.Provider
	Factory        serverinstance.Factory
	Watcher        bundlewatch.Watcher
	ServerInfoFile serverinfofile.ServerInfoFile
	Clock          clock.Clock
	Lifecycle      fx.Lifecycle
	Logger         *zap.SugaredLogger
	Stats          tally.Scope
}

type service struct {
	cfg      entity.LanguageServerConfig
	factory  serverinstance.Factory
	watcher  bundlewatch.Watcher
	infoFile serverinfofile.ServerInfoFile
	clock    clock.Clock
	logger   *zap.SugaredLogger
	stats    tally.Scope

	events       *broadcaster
	startBackoff func() backoff.BackOff

	// ctx bounds every background start and is cancelled by Close.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.Mutex
	current     *Task
	closed      bool
	restarts    []time.Time
	limited     bool
	stopWatch   func() error
	hbBackoff   *backoff.ExponentialBackOff
	nextRestart time.Time
	// bundleChanged marks a bundle change seen while a start was still pending.
	bundleChanged bool
}

// New creates the Service and registers its lifecycle hooks.
func New(p Params) (Service, error) {
	var cfg entity.LanguageServerConfig
	if err := p.Config.Get(entity.LanguageServerConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", entity.LanguageServerConfigKey, err)
	}

	s := newService(cfg.WithDefaults(), p)
	p.Lifecycle.Append(fx.Hook{
		OnStart: s.onStart,
		OnStop:  s.Close,
	})
	return s, nil
}

func newService(cfg entity.LanguageServerConfig, p Params) *service {
	ctx, cancel := context.WithCancel(context.Background())
	s := &service{
		cfg:      cfg,
		factory:  p.Factory,
		watcher:  p.Watcher,
		infoFile: p.ServerInfoFile,
		clock:    p.Clock,
		logger:   p.Logger.With("component", "lsp-service"),
		stats:    p.Stats.SubScope("lsp_service"),
		events:   newBroadcaster(),
		ctx:      ctx,
		cancel:   cancel,
		startBackoff: func() backoff.BackOff {
			return backoff.NewConstantBackOff(_attemptDelay)
		},
	}
	s.hbBackoff = backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(_heartbeatBackoffInitial),
		backoff.WithMaxInterval(_heartbeatBackoffMax),
		backoff.WithMaxElapsedTime(0),
		backoff.WithClockProvider(s.clock),
	)
	return s
}

// onStart kicks off the first instance without waiting for it.
func (s *service) onStart(ctx context.Context) error {
	if _, err := s.Start(ctx); err != nil {
		return err
	}

	s.wg.Add(1)
	go s.heartbeat()

	if s.cfg.WatchBundle && s.watcher != nil {
		stop, err := s.watcher.Watch(s.cfg.BundlePath, s.onBundleChange)
		if err != nil {
			s.logger.Warnw("unable to watch language server bundle", "error", err)
			return nil
		}
		s.mu.Lock()
		s.stopWatch = stop
		s.mu.Unlock()
	}
	return nil
}

// onBundleChange restarts onto the new bundle. A change that lands while a start or handshake is
// pending is remembered and applied once that instance is up.
func (s *service) onBundleChange() {
	s.mu.Lock()
	defer s.mu.Unlock()

	restarted, err := s.restartLocked(s.ctx, false)
	if err != nil {
		if !errors.Is(err, errors.ErrServiceClosed) {
			s.logger.Warnw("restart after bundle change failed", "error", err)
		}
		return
	}
	if restarted {
		return
	}

	// construct applies it once the pending start settles.
	s.logger.Infow("language server bundle changed during start, restart deferred")
	s.bundleChanged = true
}

// applyBundleChange runs a deferred bundle restart if task is still the current one.
func (s *service) applyBundleChange(task *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.bundleChanged || s.closed || s.current != task {
		return
	}
	if _, err := s.restartLocked(s.ctx, false); err != nil && !errors.Is(err, errors.ErrServiceClosed) {
		s.logger.Warnw("restart after bundle change failed", "error", err)
	}
}

func (s *service) Start(ctx context.Context) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.ErrServiceClosed
	}
	if s.current != nil {
		return s.current, nil
	}
	return s.startLocked(), nil
}

// startLocked installs a new construction task. s.mu must be held.
func (s *service) startLocked() *Task {
	task := newTask()
	s.current = task

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.construct(task)
	}()
	return task
}

// construct runs up to three bounded attempts and settles task with the outcome.
func (s *service) construct(task *Task) {
	var (
		attempts int
		causes   error
	)

	operation := func() (serverinstance.Instance, error) {
		attempts++
		s.stats.Counter("start.attempts").Inc(1)

		instance, err := s.attempt()
		if err != nil {
			causes = multierr.Append(causes, fmt.Errorf("attempt %d: %w", attempts, err))
			return nil, err
		}
		return instance, nil
	}
	notify := func(err error, next time.Duration) {
		s.logger.Warnw("language server start attempt failed", "attempt", attempts, "retryIn", next, "error", err)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(s.startBackoff(), _maxStartAttempts-1), s.ctx)
	instance, err := backoff.RetryNotifyWithData(operation, b, notify)
	if err != nil {
		if causes == nil {
			causes = err
		}
		startErr := &errors.StartupError{Attempts: attempts, Err: causes}
		s.stats.Counter("start.failures").Inc(1)
		s.logger.Errorw("language server failed to start", "attempts", attempts, "error", causes)

		task.settle(nil, startErr)
		s.publish(entity.Availability{Kind: entity.Unavailable, Err: startErr})
		s.applyBundleChange(task)
		return
	}

	task.settle(instance, nil)

	ev := entity.Availability{Kind: entity.Available, InstanceID: instance.ID(), Pid: instance.Pid()}
	if result, err := instance.InitializeResult(); err == nil && result != nil {
		ev.Capabilities = &result.Capabilities
	}
	s.logger.Infow("language server available", "instance", ev.InstanceID.String(), "pid", ev.Pid, "attempts", attempts)
	s.publish(ev)
	s.applyBundleChange(task)
}

// attempt launches one instance and waits for its handshake within the attempt timeout.
func (s *service) attempt() (serverinstance.Instance, error) {
	ctx, cancel := context.WithTimeout(s.ctx, s.cfg.Timeouts.StartAttempt)
	defer cancel()

	instance, err := s.factory.Create(ctx)
	if err != nil {
		return nil, err
	}

	select {
	case <-instance.Initialized():
	case <-ctx.Done():
		instance.Dispose(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("waiting for initialize: %w", ctx.Err())
	}

	if _, err := instance.InitializeResult(); err != nil {
		instance.Dispose(context.WithoutCancel(ctx))
		return nil, err
	}
	return instance, nil
}

func (s *service) Execute(ctx context.Context, fn ExecuteFunc) error {
	return s.execute(ctx, fn, false)
}

func (s *service) ExecuteIfRunning(ctx context.Context, fn ExecuteFunc) error {
	return s.execute(ctx, fn, true)
}

func (s *service) execute(ctx context.Context, fn ExecuteFunc, ifRunning bool) error {
	instance, err := s.ready(ctx, ifRunning)
	if err != nil {
		return err
	}
	return fn(ctx, instance.Server())
}

// ready waits, within the execute timeout, for the current instance to finish its handshake.
func (s *service) ready(ctx context.Context, ifRunning bool) (serverinstance.Instance, error) {
	sw := s.stats.Timer("execute.wait").Start()
	defer sw.Stop()

	waitCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeouts.Execute)
	defer cancel()

	s.mu.Lock()
	switch {
	case s.closed && ifRunning, s.current == nil && ifRunning:
		s.mu.Unlock()
		return nil, errors.ErrNotRunning
	case s.closed:
		s.mu.Unlock()
		return nil, errors.ErrServiceClosed
	case s.limited:
		s.mu.Unlock()
		return nil, errors.ErrRestartLimitExceeded
	}
	task := s.current
	if task == nil {
		task = s.startLocked()
	}
	s.mu.Unlock()

	instance, err := task.Wait(waitCtx)
	if err != nil {
		return nil, err
	}

	select {
	case <-instance.Initialized():
	case <-waitCtx.Done():
		return nil, fmt.Errorf("waiting for language server initialize: %w", waitCtx.Err())
	}
	if _, err := instance.InitializeResult(); err != nil {
		return nil, err
	}
	return instance, nil
}

// Call runs fn through svc.Execute and returns its value.
func Call[T any](ctx context.Context, svc Service, fn func(ctx context.Context, server amazonqserver.Server) (T, error)) (T, error) {
	var result T
	err := svc.Execute(ctx, func(ctx context.Context, server amazonqserver.Server) error {
		var err error
		result, err = fn(ctx, server)
		return err
	})
	return result, err
}

func (s *service) Restart(ctx context.Context) error {
	return s.restart(ctx, false)
}

// restart replaces the current instance. Heartbeat restarts count against the restart policy,
// explicit restarts reset it.
func (s *service) restart(ctx context.Context, heartbeat bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.restartLocked(ctx, heartbeat)
	return err
}

// restartLocked reports whether a new start was installed. It is a no-op while the current
// start or handshake is still pending. s.mu must be held.
func (s *service) restartLocked(ctx context.Context, heartbeat bool) (bool, error) {
	if s.closed {
		return false, errors.ErrServiceClosed
	}

	previous := s.current
	if previous != nil {
		if !previous.Settled() {
			return false, nil
		}
		if instance, err := previous.Result(); err == nil {
			select {
			case <-instance.Initialized():
			default:
				return false, nil
			}
		}
	}

	if heartbeat {
		if !s.allowRestartLocked() {
			return false, errors.ErrRestartLimitExceeded
		}
	} else {
		s.restarts = nil
		s.limited = false
		s.hbBackoff.Reset()
		s.nextRestart = time.Time{}
	}

	if previous != nil {
		if instance, err := previous.Result(); err == nil {
			instance.Dispose(ctx)
		}
	}

	s.bundleChanged = false
	s.stats.Counter("restarts").Inc(1)
	s.logger.Infow("restarting language server", "heartbeat", heartbeat)
	s.startLocked()
	return true, nil
}

// allowRestartLocked records a heartbeat restart unless the policy's budget for the window is spent.
func (s *service) allowRestartLocked() bool {
	if s.limited {
		return false
	}

	now := s.clock.Now()
	windowStart := now.Add(-s.cfg.RestartPolicy.Window)
	kept := s.restarts[:0]
	for _, t := range s.restarts {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}
	s.restarts = kept

	if len(s.restarts) >= s.cfg.RestartPolicy.MaxRestarts {
		s.limited = true
		s.logger.Errorw("language server restart limit reached",
			"restarts", len(s.restarts),
			"window", s.cfg.RestartPolicy.Window,
		)
		return false
	}
	s.restarts = append(s.restarts, now)
	return true
}

func (s *service) Subscribe() (<-chan entity.Availability, func()) {
	return s.events.subscribe()
}

func (s *service) publish(ev entity.Availability) {
	if ev.IsAvailable() {
		s.stats.Gauge("instance.available").Update(1)
	} else {
		s.stats.Gauge("instance.available").Update(0)
	}
	s.events.publish(ev)

	fields := map[string]string{
		_infoFieldState:    ev.Kind.String(),
		_infoFieldPid:      "",
		_infoFieldInstance: "",
	}
	if ev.IsAvailable() {
		fields[_infoFieldPid] = fmt.Sprint(ev.Pid)
		fields[_infoFieldInstance] = ev.InstanceID.String()
	}
	if s.infoFile != nil {
		if err := s.infoFile.UpdateFields(fields); err != nil {
			s.logger.Warnw("unable to update server info file", "error", err)
		}
	}
}

func (s *service) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	stopWatch := s.stopWatch
	s.mu.Unlock()

	s.cancel()

	var err error
	if stopWatch != nil {
		err = stopWatch()
	}
	s.wg.Wait()

	s.mu.Lock()
	current := s.current
	s.mu.Unlock()
	if current != nil {
		if instance, startErr := current.Result(); startErr == nil {
			instance.Dispose(ctx)
		}
	}

	s.publish(entity.Availability{Kind: entity.Unavailable, Err: errors.ErrServiceClosed})
	s.events.close()
	s.logger.Infow("language server service closed")
	return err
}
