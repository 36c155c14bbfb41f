package lspservice

import (
	"context"
	"fmt"

	serverinstance "github.com/uber/amazonq-lsp/src/qlsp/controller/server-instance"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/errors"
)

var errStartPending = errors.New("language server start pending")

// Task is the construction of one language server instance. It settles exactly once.
type Task struct {
	done     chan struct{}
	instance serverinstance.Instance
	err      error
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

func (t *Task) settle(instance serverinstance.Instance, err error) {
	t.instance = instance
	t.err = err
	close(t.done)
}

// Done is closed once the task has settled.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Settled reports whether the task has completed.
func (t *Task) Settled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Result returns the ready instance or the startup failure. Only valid once Done is closed.
func (t *Task) Result() (serverinstance.Instance, error) {
	if !t.Settled() {
		return nil, errStartPending
	}
	return t.instance, t.err
}

// Wait blocks until the task settles or ctx is done.
func (t *Task) Wait(ctx context.Context) (serverinstance.Instance, error) {
	select {
	case <-t.done:
		return t.instance, t.err
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for language server start: %w", ctx.Err())
	}
}
