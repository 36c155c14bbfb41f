package entity

import "time"

// Config keys read by the qlsp modules.
const (
	LanguageServerConfigKey = "languageServer"
	WorkspaceConfigKey      = "workspace"
	ClientConfigKey         = "client"
	AmazonQConfigKey        = "amazonq"
	JSONRPCConfigKey        = "jsonrpc"
	HostConfigKey           = "host"
)

// LanguageServerConfig describes how the language server is launched and supervised.
type LanguageServerConfig struct {
	BundlePath        string        `yaml:"bundlePath"`
	ExtraArgs         []string      `yaml:"extraArgs"`
	WatchBundle       bool          `yaml:"watchBundle"`
	OutputLog         bool          `yaml:"outputLog"`
	Node              NodeConfig    `yaml:"node"`
	Network           NetworkConfig `yaml:"network"`
	Timeouts          Timeouts      `yaml:"timeouts"`
	HeartbeatInterval time.Duration `yaml:"heartbeatInterval"`
	RestartPolicy     RestartPolicy `yaml:"restartPolicy"`
}

// NodeConfig selects the node runtime. An empty Path triggers runtime resolution.
type NodeConfig struct {
	Path        string `yaml:"path"`
	BundledPath string `yaml:"bundledPath"`
}

// NetworkConfig is propagated to the server through its environment.
type NetworkConfig struct {
	CACertsPath   string   `yaml:"caCertsPath"`
	CACertFiles   []string `yaml:"caCertFiles"`
	ProxyURL      string   `yaml:"proxyURL"`
	ProxyUser     string   `yaml:"proxyUser"`
	ProxyPassword string   `yaml:"proxyPassword"`
}

// Timeouts bound every externally visible wait.
type Timeouts struct {
	EncryptionWrite time.Duration `yaml:"encryptionWrite"`
	Initialize      time.Duration `yaml:"initialize"`
	Shutdown        time.Duration `yaml:"shutdown"`
	StartAttempt    time.Duration `yaml:"startAttempt"`
	Execute         time.Duration `yaml:"execute"`
}

// RestartPolicy caps heartbeat driven restarts within a sliding window.
type RestartPolicy struct {
	MaxRestarts int           `yaml:"maxRestarts"`
	Window      time.Duration `yaml:"window"`
}

// Default values applied to zero config fields.
const (
	DefaultEncryptionWriteTimeout = 5 * time.Second
	DefaultInitializeTimeout      = 5 * time.Second
	DefaultShutdownTimeout        = 2 * time.Second
	DefaultStartAttemptTimeout    = 30 * time.Second
	DefaultExecuteTimeout         = 10 * time.Second
	DefaultHeartbeatInterval      = 5 * time.Second
	DefaultMaxRestarts            = 5
	DefaultRestartWindow          = 5 * time.Minute
)

// WithDefaults fills zero durations and limits.
func (c LanguageServerConfig) WithDefaults() LanguageServerConfig {
	setDuration(&c.Timeouts.EncryptionWrite, DefaultEncryptionWriteTimeout)
	setDuration(&c.Timeouts.Initialize, DefaultInitializeTimeout)
	setDuration(&c.Timeouts.Shutdown, DefaultShutdownTimeout)
	setDuration(&c.Timeouts.StartAttempt, DefaultStartAttemptTimeout)
	setDuration(&c.Timeouts.Execute, DefaultExecuteTimeout)
	setDuration(&c.HeartbeatInterval, DefaultHeartbeatInterval)
	setDuration(&c.RestartPolicy.Window, DefaultRestartWindow)
	if c.RestartPolicy.MaxRestarts <= 0 {
		c.RestartPolicy.MaxRestarts = DefaultMaxRestarts
	}
	return c
}

func setDuration(d *time.Duration, def time.Duration) {
	if *d <= 0 {
		*d = def
	}
}

// WorkspaceConfig names the single workspace root served by this process.
type WorkspaceConfig struct {
	Root string `yaml:"root"`
	Name string `yaml:"name"`
}

// ClientConfig is reported to the server as client info.
type ClientConfig struct {
	Name             string `yaml:"name"`
	Version          string `yaml:"version"`
	ExtensionName    string `yaml:"extensionName"`
	ExtensionVersion string `yaml:"extensionVersion"`
}

// AmazonQConfig holds the settings blobs answered to workspace/configuration and the initial connection.
type AmazonQConfig struct {
	Settings   AmazonQSettings  `yaml:"settings"`
	Connection ConnectionConfig `yaml:"connection"`
}

// AmazonQSettings are passed through to the server unmodified.
type AmazonQSettings struct {
	CodeWhisperer map[string]interface{} `yaml:"codeWhisperer"`
	Q             map[string]interface{} `yaml:"q"`
}

// ConnectionConfig seeds the connection repository at startup.
type ConnectionConfig struct {
	StartURL    string `yaml:"startUrl"`
	BearerToken string `yaml:"bearerToken"`
	ProfileArn  string `yaml:"profileArn"`
}

// HostConfig selects how the IDE host reaches this process.
type HostConfig struct {
	// Stdio serves the IDE host over the process stdin and stdout.
	Stdio bool `yaml:"stdio"`
}

// JSONRPCConfig controls message tracing.
type JSONRPCConfig struct {
	Trace bool `yaml:"trace"`
}
