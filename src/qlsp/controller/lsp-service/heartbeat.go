package lspservice

import (
	"time"

	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/errors"
)

// heartbeat restarts the language server when its transport has terminated or its start failed.
// It never sends requests to the server.
func (s *service) heartbeat() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.checkHeartbeat()
		}
	}
}

func (s *service) checkHeartbeat() {
	now := s.clock.Now()

	reason, unhealthy := s.unhealthy()
	if !unhealthy {
		s.mu.Lock()
		if !s.nextRestart.IsZero() && now.Sub(s.nextRestart) > s.cfg.RestartPolicy.Window {
			s.hbBackoff.Reset()
			s.nextRestart = time.Time{}
		}
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	spaced := now.Before(s.nextRestart)
	s.mu.Unlock()
	if spaced {
		return
	}

	s.logger.Warnw("language server unhealthy, restarting", "reason", reason)
	err := s.restart(s.ctx, true)
	switch {
	case errors.Is(err, errors.ErrRestartLimitExceeded):
		s.publish(entity.Availability{Kind: entity.Unavailable, Err: err})
	case err != nil:
		s.logger.Warnw("heartbeat restart failed", "error", err)
	default:
		s.mu.Lock()
		s.nextRestart = now.Add(s.hbBackoff.NextBackOff())
		s.mu.Unlock()
	}
}

// unhealthy inspects the current task without blocking.
func (s *service) unhealthy() (string, bool) {
	s.mu.Lock()
	task, limited := s.current, s.limited
	s.mu.Unlock()

	if task == nil || limited || !task.Settled() {
		return "", false
	}

	instance, err := task.Result()
	if err != nil {
		return "start failed", true
	}
	select {
	case <-instance.Done():
		s.stats.Counter("heartbeat.dead_transport").Inc(1)
		return "transport terminated", true
	default:
		return "", false
	}
}
