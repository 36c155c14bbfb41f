package logfilewriter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/uber/amazonq-lsp/src/qlsp/internal/fs"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/serverinfofile"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const _fmtOutputKey = "output:%s"

// Params define the dependencies for SetupOutputWriter.
type Params struct {
	FS             fs.QlspFS
	Lifecycle      fx.Lifecycle
	ServerInfoFile serverinfofile.ServerInfoFile
}

// SetupOutputWriter creates a writer that will be used to write human readable language server output to a temporary file.
// The file path will be stored in the server info file so it can be tailed while the server runs.
func SetupOutputWriter(p Params, name string) (io.WriteCloser, error) {
	logsDirPath := filepath.Join(os.TempDir(), name)
	if err := p.FS.MkdirAll(logsDirPath); err != nil {
		return nil, err
	}

	logFile, err := p.FS.TempFile(logsDirPath, "")
	if err != nil {
		return nil, err
	}

	if err := p.ServerInfoFile.UpdateField(fmt.Sprintf(_fmtOutputKey, name), logFile.Name()); err != nil {
		logFile.Close()
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(logFile),
		zap.InfoLevel,
	)
	outputLogger := zap.New(core).Sugar()

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			outputLogger.Sync()
			logFile.Close()
			return p.FS.Remove(logFile.Name())
		},
	})

	return New(outputLogger, zapcore.InfoLevel), nil
}

type loggerWriter struct {
	logger *zap.SugaredLogger
	level  zapcore.Level

	mu      sync.Mutex
	pending []byte
}

// New returns a writer that logs every complete line written to it at the given level.
// A trailing partial line is held until its newline arrives or the writer is closed.
func New(logger *zap.SugaredLogger, level zapcore.Level) io.WriteCloser {
	return &loggerWriter{logger: logger, level: level}
}

// Write implements the io.Writer interface by sending data to the given logger.
func (o *loggerWriter) Write(p []byte) (n int, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.pending = append(o.pending, p...)
	for {
		idx := bytes.IndexByte(o.pending, '\n')
		if idx < 0 {
			break
		}
		o.log(o.pending[:idx])
		o.pending = o.pending[idx+1:]
	}

	return len(p), nil
}

// Close flushes any partial line.
func (o *loggerWriter) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.log(o.pending)
	o.pending = nil
	return nil
}

func (o *loggerWriter) log(line []byte) {
	line = bytes.TrimRight(line, "\r")
	if len(line) == 0 {
		return
	}
	o.logger.Logw(o.level, string(line))
}
