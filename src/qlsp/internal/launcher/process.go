package launcher

import (
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/uber/amazonq-lsp/src/qlsp/internal/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Process is a running language server child process.
type Process interface {
	// Stdin is the raw process stdin, used before any JSON-RPC framing.
	Stdin() io.Writer
	// Stream joins stdout and stdin for the JSON-RPC transport. Closing it closes both ends.
	Stream() io.ReadWriteCloser
	Pid() int
	// Done is closed once the process has exited and its output has been drained.
	Done() <-chan struct{}
	Terminated() bool
	// ExitErr is the process exit error, valid after Done is closed.
	ExitErr() error
	Kill() error
}

type process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *io.PipeReader
	logger *zap.SugaredLogger

	done    chan struct{}
	exitErr error

	closeOnce sync.Once
	closeErr  error
}

func startProcess(cmd *exec.Cmd, stdin io.WriteCloser, stdout, stderr io.ReadCloser, stderrSink io.WriteCloser, drainDelay time.Duration, logger *zap.SugaredLogger) *process {
	pr, pw := io.Pipe()
	p := &process{
		cmd:    cmd,
		stdin:  stdin,
		stdout: pr,
		logger: logger,
		done:   make(chan struct{}),
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(pw, stdout)
		return multierr.Append(err, stdout.Close())
	})
	g.Go(func() error {
		_, err := io.Copy(stderrSink, stderr)
		return multierr.Combine(err, stderr.Close(), stderrSink.Close())
	})

	go func() {
		waitErr := cmd.Wait()

		// Output written before exit is still delivered. A descendant holding the
		// pipes open only delays Done by drainDelay.
		drained := make(chan error, 1)
		go func() { drained <- g.Wait() }()

		var pumpErr error
		select {
		case pumpErr = <-drained:
		case <-time.After(drainDelay):
			logger.Warnw("language server output still open after exit, closing", "delay", drainDelay)
			pw.CloseWithError(waitErr)
			stdout.Close()
			stderr.Close()
			pumpErr = <-drained
		}

		p.exitErr = waitErr
		pw.CloseWithError(waitErr)
		close(p.done)

		logger.Infow("language server exited", "exitCode", cmd.ProcessState.ExitCode(), "error", waitErr)
		if pumpErr != nil && !errors.Is(pumpErr, io.ErrClosedPipe) && !errors.Is(pumpErr, os.ErrClosed) {
			logger.Debugw("language server output pump stopped", "error", pumpErr)
		}
	}()

	return p
}

func (p *process) Stdin() io.Writer {
	return p.stdin
}

func (p *process) Stream() io.ReadWriteCloser {
	return p
}

func (p *process) Read(b []byte) (int, error) {
	return p.stdout.Read(b)
}

func (p *process) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

// Close releases both pipe ends. The process itself is left running.
func (p *process) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = multierr.Combine(p.stdin.Close(), p.stdout.Close())
	})
	return p.closeErr
}

func (p *process) Pid() int {
	return p.cmd.Process.Pid
}

func (p *process) Done() <-chan struct{} {
	return p.done
}

func (p *process) Terminated() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

func (p *process) ExitErr() error {
	select {
	case <-p.done:
		return p.exitErr
	default:
		return nil
	}
}

func (p *process) Kill() error {
	if p.Terminated() {
		return nil
	}
	err := p.cmd.Process.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
