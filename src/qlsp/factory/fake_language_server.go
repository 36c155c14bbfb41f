package factory

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/multierr"
)

var (
	_fakePid int32 = 40000

	errFakeKilled = errors.New("signal: killed")
)

// FakeLanguageServerOptions control how a FakeLanguageServer answers.
type FakeLanguageServerOptions struct {
	// IgnoreStdin never reads the process stdin, so the key payload write blocks.
	IgnoreStdin bool
	// InitializeDelay is waited before answering initialize.
	InitializeDelay time.Duration
	// InitializeErr fails initialize.
	InitializeErr error
	// Capabilities are returned from initialize.
	Capabilities protocol.ServerCapabilities
}

// FakeReceived is one message received by a FakeLanguageServer.
type FakeReceived struct {
	Method string
	Params json.RawMessage
	Call   bool
}

// FakeLanguageServer is an in-memory language server process speaking JSON-RPC over pipes.
// It satisfies the launcher Process interface.
type FakeLanguageServer struct {
	opts FakeLanguageServerOptions
	pid  int

	stdinR  *io.PipeReader
	stdinW  *io.PipeWriter
	stdoutR *io.PipeReader
	stdoutW *io.PipeWriter

	payload  chan string
	conn     jsonrpc2.Conn
	connSet  chan struct{}
	done     chan struct{}
	killOnce sync.Once
	exitErr  error

	mu       sync.Mutex
	received []FakeReceived
	notify   chan FakeReceived
}

// NewFakeLanguageServer starts a fake language server.
func NewFakeLanguageServer(opts FakeLanguageServerOptions) *FakeLanguageServer {
	stdinR, stdinW := io.Pipe()
	stdoutR, stdoutW := io.Pipe()
	f := &FakeLanguageServer{
		opts:    opts,
		pid:     int(atomic.AddInt32(&_fakePid, 1)),
		stdinR:  stdinR,
		stdinW:  stdinW,
		stdoutR: stdoutR,
		stdoutW: stdoutW,
		payload: make(chan string, 1),
		connSet: make(chan struct{}),
		done:    make(chan struct{}),
		notify:  make(chan FakeReceived, 64),
	}
	if !opts.IgnoreStdin {
		go f.serve()
	}
	return f
}

func (f *FakeLanguageServer) serve() {
	r := bufio.NewReader(f.stdinR)
	line, err := r.ReadString('\n')
	if err != nil {
		return
	}
	f.payload <- line

	f.conn = jsonrpc2.NewConn(jsonrpc2.NewStream(&fakeStream{Reader: r, Writer: f.stdoutW, close: f.stdinR.Close}))
	close(f.connSet)
	// Reading continues while a slow handler runs, like a real server process.
	f.conn.Go(context.Background(), jsonrpc2.AsyncHandler(f.handle))
}

func (f *FakeLanguageServer) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	_, isCall := req.(*jsonrpc2.Call)
	msg := FakeReceived{Method: req.Method(), Params: req.Params(), Call: isCall}
	f.mu.Lock()
	f.received = append(f.received, msg)
	f.mu.Unlock()
	select {
	case f.notify <- msg:
	default:
	}

	switch req.Method() {
	case protocol.MethodInitialize:
		if f.opts.InitializeDelay > 0 {
			select {
			case <-time.After(f.opts.InitializeDelay):
			case <-f.done:
				return reply(ctx, nil, errFakeKilled)
			}
		}
		if f.opts.InitializeErr != nil {
			return reply(ctx, nil, f.opts.InitializeErr)
		}
		return reply(ctx, protocol.InitializeResult{
			Capabilities: f.opts.Capabilities,
			ServerInfo:   &protocol.ServerInfo{Name: "fake-amazonq", Version: "1.0.0"},
		}, nil)
	case protocol.MethodExit:
		err := reply(ctx, nil, nil)
		go f.exit(nil)
		return err
	}
	if isCall {
		return reply(ctx, req.Params(), nil)
	}
	return reply(ctx, nil, nil)
}

// Payload returns the key announcement line once it was read.
func (f *FakeLanguageServer) Payload(timeout time.Duration) (string, bool) {
	select {
	case p := <-f.payload:
		return p, true
	case <-time.After(timeout):
		return "", false
	}
}

// Received returns the methods received so far.
func (f *FakeLanguageServer) Received() []FakeReceived {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FakeReceived(nil), f.received...)
}

// WaitFor blocks until method is received or timeout expires.
func (f *FakeLanguageServer) WaitFor(method string, timeout time.Duration) (FakeReceived, bool) {
	deadline := time.After(timeout)
	for {
		select {
		case msg := <-f.notify:
			if msg.Method == method {
				return msg, true
			}
		case <-deadline:
			return FakeReceived{}, false
		}
	}
}

// Call sends a server initiated request to the client.
func (f *FakeLanguageServer) Call(ctx context.Context, method string, params, result interface{}) error {
	select {
	case <-f.connSet:
	case <-ctx.Done():
		return ctx.Err()
	}
	_, err := f.conn.Call(ctx, method, params, result)
	return err
}

// Notify sends a server initiated notification to the client.
func (f *FakeLanguageServer) Notify(ctx context.Context, method string, params interface{}) error {
	select {
	case <-f.connSet:
	case <-ctx.Done():
		return ctx.Err()
	}
	return f.conn.Notify(ctx, method, params)
}

// Crash terminates the process as if it died on its own.
func (f *FakeLanguageServer) Crash() {
	f.exit(errors.New("exit status 1"))
}

func (f *FakeLanguageServer) exit(err error) {
	f.killOnce.Do(func() {
		f.exitErr = err
		f.stdoutW.CloseWithError(io.EOF)
		f.stdinR.Close()
		close(f.done)
	})
}

// Stdin is the raw stdin of the fake process.
func (f *FakeLanguageServer) Stdin() io.Writer {
	return f.stdinW
}

// Stream joins the fake process stdout and stdin.
func (f *FakeLanguageServer) Stream() io.ReadWriteCloser {
	return &fakeStream{Reader: f.stdoutR, Writer: f.stdinW, close: func() error {
		return multierr.Append(f.stdinW.Close(), f.stdoutR.Close())
	}}
}

// Pid is a unique fake process id.
func (f *FakeLanguageServer) Pid() int {
	return f.pid
}

// Done is closed once the fake process has exited.
func (f *FakeLanguageServer) Done() <-chan struct{} {
	return f.done
}

// Terminated reports whether the fake process has exited.
func (f *FakeLanguageServer) Terminated() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// ExitErr is the exit error after Done is closed.
func (f *FakeLanguageServer) ExitErr() error {
	return f.exitErr
}

// Kill terminates the fake process.
func (f *FakeLanguageServer) Kill() error {
	f.exit(errFakeKilled)
	return nil
}

// Close stops the fake server side connection. Use in test cleanup.
func (f *FakeLanguageServer) Close() {
	f.Kill()
	select {
	case <-f.connSet:
		f.conn.Close()
		<-f.conn.Done()
	default:
	}
}

type fakeStream struct {
	io.Reader
	io.Writer
	close func() error
}

func (s *fakeStream) Close() error {
	return s.close()
}
