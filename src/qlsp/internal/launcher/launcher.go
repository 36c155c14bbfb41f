package launcher

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/executor"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/fs"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/logfilewriter"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/serverinfofile"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	_argStdio                = "--stdio"
	_argSetEncryptionKey     = "--set-credentials-encryption-key"
	_envNodeExtraCACerts     = "NODE_EXTRA_CA_CERTS"
	_envHTTPSProxy           = "HTTPS_PROXY"
	_envHTTPProxy            = "HTTP_PROXY"
	_outputWriterName        = "amazonq-language-server"
	_caBundleDir             = "qlsp"
	_caBundleFile            = "ca-certs.pem"
	_errStartLanguageServer  = "starting language server: %w"
	_errMissingBundlePath    = "missing field %q in config"
	_configKeyBundlePathFull = entity.LanguageServerConfigKey + ".bundlePath"
	_outputDrainDelay        = 2 * time.Second
)

// Module provides the Launcher.
var Module = fx.Provide(New)

// Launcher spawns language server child processes.
type Launcher interface {
	Launch(ctx context.Context) (Process, error)
}

// Params are the dependencies of the Launcher.
type Params struct {
	fx.In

	Config         config.Provider
	Executor       executor.Executor
	FS             fs.QlspFS
	Lifecycle      fx.Lifecycle
	Logger         *zap.SugaredLogger
	ServerInfoFile serverinfofile.ServerInfoFile
}

type launcher struct {
	cfg      entity.LanguageServerConfig
	executor executor.Executor
	fs       fs.QlspFS
	logger   *zap.SugaredLogger

	// output receives a copy of the server's stderr when output logging is enabled.
	output io.Writer

	// drainDelay bounds how long output is read after the process exits.
	drainDelay time.Duration

	lookPath func(file string) (string, error)
	goos     string
	goarch   string
}

// New creates a Launcher from the languageServer config section.
func New(p Params) (Launcher, error) {
	var cfg entity.LanguageServerConfig
	if err := p.Config.Get(entity.LanguageServerConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", entity.LanguageServerConfigKey, err)
	}
	if cfg.BundlePath == "" {
		return nil, fmt.Errorf(_errMissingBundlePath, _configKeyBundlePathFull)
	}

	l := &launcher{
		cfg:        cfg,
		executor:   p.Executor,
		fs:         p.FS,
		logger:     p.Logger,
		drainDelay: _outputDrainDelay,
		lookPath:   exec.LookPath,
		goos:       runtime.GOOS,
		goarch:     runtime.GOARCH,
	}

	if cfg.OutputLog {
		w, err := logfilewriter.SetupOutputWriter(logfilewriter.Params{
			FS:             p.FS,
			Lifecycle:      p.Lifecycle,
			ServerInfoFile: p.ServerInfoFile,
		}, _outputWriterName)
		if err != nil {
			return nil, fmt.Errorf("setting up output log: %w", err)
		}
		l.output = w
	}

	return l, nil
}

// Launch starts one language server process with piped stdio.
func (l *launcher) Launch(ctx context.Context) (Process, error) {
	name, args := l.commandLine(ctx)
	cmd := exec.Command(name, args...)
	cmd.Dir = filepath.Dir(l.cfg.BundlePath)

	env, err := l.environment()
	if err != nil {
		return nil, fmt.Errorf(_errStartLanguageServer, err)
	}
	cmd.Env = env

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf(_errStartLanguageServer, err)
	}
	// Parent owned pipes, so Wait returns on process exit even when a descendant inherited the write ends.
	stdout, stdoutW, err := os.Pipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf(_errStartLanguageServer, err)
	}
	stderr, stderrW, err := os.Pipe()
	if err != nil {
		stdin.Close()
		closeAll(stdout, stdoutW)
		return nil, fmt.Errorf(_errStartLanguageServer, err)
	}
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	startErr := l.executor.Start(cmd)
	closeAll(stdoutW, stderrW)
	if startErr != nil {
		stdin.Close()
		closeAll(stdout, stderr)
		return nil, fmt.Errorf(_errStartLanguageServer, startErr)
	}

	logger := l.logger.With("pid", cmd.Process.Pid)
	var stderrSink io.WriteCloser = logfilewriter.New(logger, zapcore.WarnLevel)
	if l.output != nil {
		stderrSink = multiWriteCloser{stderrSink, io.MultiWriter(stderrSink, l.output)}
	}

	return startProcess(cmd, stdin, stdout, stderr, stderrSink, l.drainDelay, logger), nil
}

func (l *launcher) commandLine(ctx context.Context) (string, []string) {
	node := l.resolveNode(ctx)

	args := []string{l.cfg.BundlePath, _argStdio, _argSetEncryptionKey}
	args = append(args, l.cfg.ExtraArgs...)

	if linker, libPath := l.glibcPatch(); linker != "" {
		l.logger.Infow("running node with custom glibc", "linker", linker, "glibc", libPath)
		return linker, append([]string{"--library-path", libPath, node}, args...)
	}
	return node, args
}

func (l *launcher) environment() ([]string, error) {
	env := os.Environ()

	caCerts, err := l.caCertsPath()
	if err != nil {
		return nil, err
	}
	if caCerts != "" {
		env = append(env, _envNodeExtraCACerts+"="+caCerts)
	}

	proxy, err := l.proxyURL()
	if err != nil {
		return nil, err
	}
	if proxy != "" {
		env = append(env, _envHTTPSProxy+"="+proxy, _envHTTPProxy+"="+proxy)
	}

	return env, nil
}

// caCertsPath returns the configured CA bundle or writes the configured certificate files into one.
func (l *launcher) caCertsPath() (string, error) {
	network := l.cfg.Network
	if network.CACertsPath != "" {
		return network.CACertsPath, nil
	}
	if len(network.CACertFiles) == 0 {
		return "", nil
	}

	var bundle strings.Builder
	for _, f := range network.CACertFiles {
		pem, err := l.fs.ReadFile(f)
		if err != nil {
			return "", fmt.Errorf("reading CA certificate %q: %w", f, err)
		}
		bundle.Write(pem)
		if len(pem) > 0 && pem[len(pem)-1] != '\n' {
			bundle.WriteByte('\n')
		}
	}

	dir := filepath.Join(os.TempDir(), _caBundleDir)
	if err := l.fs.MkdirAll(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, _caBundleFile)
	if err := l.fs.WriteFile(path, bundle.String()); err != nil {
		return "", fmt.Errorf("writing CA bundle: %w", err)
	}
	return path, nil
}

func (l *launcher) proxyURL() (string, error) {
	network := l.cfg.Network
	if network.ProxyURL == "" {
		return "", nil
	}

	u, err := url.Parse(network.ProxyURL)
	if err != nil {
		return "", fmt.Errorf("parsing proxy url: %w", err)
	}
	if network.ProxyUser != "" {
		u.User = url.UserPassword(network.ProxyUser, network.ProxyPassword)
	}
	return u.String(), nil
}

type multiWriteCloser struct {
	closer io.Closer
	io.Writer
}

func (m multiWriteCloser) Close() error {
	return m.closer.Close()
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		f.Close()
	}
}
