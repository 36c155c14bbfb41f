// Package languageclient implements the client side of server initiated requests.
package languageclient

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	notifier "github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/fs"
	"github.com/uber/amazonq-lsp/src/qlsp/repository/connection"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the language client controller.
var Module = fx.Provide(New)

const (
	// SectionCodeWhisperer is the workspace/configuration section for inline suggestion settings.
	SectionCodeWhisperer = "aws.codeWhisperer"
	// SectionQ is the workspace/configuration section for chat and agent settings.
	SectionQ = "aws.q"

	_openTabTimeout = 30 * time.Second
)

// FileParams names a file or directory the language server touched.
type FileParams struct {
	Path string `json:"path"`
}

// CopyFileParams names both ends of a copy.
type CopyFileParams struct {
	OldPath string `json:"oldPath"`
	NewPath string `json:"newPath"`
}

// OpenFileDiffParams asks for a diff view of a proposed change.
type OpenFileDiffParams struct {
	OriginalFileURI     string  `json:"originalFileUri"`
	OriginalFileContent *string `json:"originalFileContent,omitempty"`
	FileContent         *string `json:"fileContent,omitempty"`
	IsDeleted           bool    `json:"isDeleted"`
	MessageID           string  `json:"messageId,omitempty"`
}

// Controller answers requests and notifications sent by the language server.
type Controller interface {
	// Credential methods.
	GetConnectionMetadata(ctx context.Context) (*entity.ConnectionMetadata, error)

	// Window methods.
	ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error
	ShowMessageRequest(ctx context.Context, params *protocol.ShowMessageRequestParams) (*protocol.MessageActionItem, error)
	LogMessage(ctx context.Context, params *protocol.LogMessageParams) error
	ShowDocument(ctx context.Context, params *protocol.ShowDocumentParams) (*protocol.ShowDocumentResult, error)
	Progress(ctx context.Context, params *protocol.ProgressParams) error
	Telemetry(ctx context.Context, params json.RawMessage) error

	// Workspace methods.
	Configuration(ctx context.Context, params *protocol.ConfigurationParams) ([]interface{}, error)
	PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error
	FilesChanged(ctx context.Context, reason string, paths ...string) error
	OpenFileDiff(ctx context.Context, params *OpenFileDiffParams) error
	ShowSaveFileDialog(ctx context.Context, params json.RawMessage) (*notifier.SaveFileDialogResult, error)

	// Chat methods.
	ChatUpdate(ctx context.Context, method string, params json.RawMessage) error
	OpenTab(ctx context.Context, params json.RawMessage) (json.RawMessage, error)
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Config      config.Provider
	IdeGateway  notifier.Gateway
	Connections connection.Repository
	FS          fs.QlspFS
	Logger      *zap.SugaredLogger
	Stats       tally.Scope
}

type controller struct {
	ideGateway     notifier.Gateway
	connections    connection.Repository
	fs             fs.QlspFS
	logger         *zap.SugaredLogger
	stats          tally.Scope
	settings       map[string]interface{}
	historyDir     string
	openTabTimeout time.Duration
}

// New creates a new language client controller.
func New(p Params) (Controller, error) {
	var cfg entity.AmazonQConfig
	if err := p.Config.Get(entity.AmazonQConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", entity.AmazonQConfigKey, err)
	}

	c := &controller{
		ideGateway:  p.IdeGateway,
		connections: p.Connections,
		fs:          p.FS,
		logger:      p.Logger.With("component", "language-client"),
		stats:       p.Stats.SubScope("language_client"),
		settings: map[string]interface{}{
			SectionCodeWhisperer: normalize(cfg.Settings.CodeWhisperer),
			SectionQ:             normalize(cfg.Settings.Q),
		},
		openTabTimeout: _openTabTimeout,
	}
	if home, err := os.UserHomeDir(); err == nil {
		c.historyDir = filepath.Join(home, ".aws", "amazonq", "history")
	}
	return c, nil
}

func (c *controller) GetConnectionMetadata(ctx context.Context) (*entity.ConnectionMetadata, error) {
	creds, err := c.connections.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading connection: %w", err)
	}
	if !creds.HasToken() {
		creds = entity.Credentials{}
	}
	metadata := creds.Metadata()
	return &metadata, nil
}

// normalize converts YAML decoded maps into maps with string keys so they can be encoded as JSON.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case map[string]interface{}:
		if t == nil {
			return nil
		}
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[k] = normalize(val)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(t))
		for i, val := range t {
			s[i] = normalize(val)
		}
		return s
	default:
		return v
	}
}
