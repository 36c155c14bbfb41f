package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/uber/amazonq-lsp/src/qlsp/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Module provides the IDE gateway.
var Module = fx.Provide(New)

const (
	_errSendToHost = "sending %s to IDE: %w"

	// MethodChatSendChatUpdate pushes a chat update to the host chat UI.
	MethodChatSendChatUpdate = "aws/chat/sendChatUpdate"
	// MethodChatSendContextCommands pushes the available context commands to the host chat UI.
	MethodChatSendContextCommands = "aws/chat/sendContextCommands"
	// MethodChatOpenTab asks the host chat UI to open or focus a tab.
	MethodChatOpenTab = "aws/chat/openTab"
	// MethodOpenFileDiff asks the host to show a diff view.
	MethodOpenFileDiff = "aws/openFileDiff"
	// MethodShowSaveFileDialog asks the host for a save location.
	MethodShowSaveFileDialog = "aws/showSaveFileDialog"
	// MethodRefreshFiles asks the host to reload files the language server changed on disk.
	MethodRefreshFiles = "qlsp/refreshFiles"
)

// ErrNoHost is returned by calls that need an answer from the IDE while none is registered.
var ErrNoHost = errors.New("no IDE host registered")

// OpenFileDiffParams describes a proposed change to one file.
type OpenFileDiffParams struct {
	OriginalFileURI     uri.URI             `json:"originalFileUri"`
	OriginalFileContent *string             `json:"originalFileContent,omitempty"`
	FileContent         *string             `json:"fileContent,omitempty"`
	IsDeleted           bool                `json:"isDeleted"`
	MessageID           string              `json:"messageId,omitempty"`
	UnifiedDiff         string              `json:"unifiedDiff,omitempty"`
	Edits               []protocol.TextEdit `json:"edits,omitempty"`
}

// RefreshFilesParams lists files or directories changed by the language server.
type RefreshFilesParams struct {
	Reason string    `json:"reason"`
	URIs   []uri.URI `json:"uris"`
}

// SaveFileDialogResult is the location picked by the user. Empty when cancelled.
type SaveFileDialogResult struct {
	TargetURI uri.URI `json:"targetUri"`
}

// Gateway is used to send outbound notifications and calls to the IDE.
// Display-only notifications fall back to the process log when no host is registered.
type Gateway interface {
	// RegisterHost attaches the IDE connection that receives forwarded callbacks. The binary registers
	// a stdio host when host.stdio is set, processes embedding qlsp register their own connection.
	RegisterHost(ctx context.Context, conn jsonrpc2.Conn) error
	// DeregisterHost detaches the IDE connection.
	DeregisterHost(ctx context.Context) error

	ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error
	ShowMessageRequest(ctx context.Context, params *protocol.ShowMessageRequestParams) (*protocol.MessageActionItem, error)
	LogMessage(ctx context.Context, params *protocol.LogMessageParams) error
	ShowDocument(ctx context.Context, params *protocol.ShowDocumentParams) (*protocol.ShowDocumentResult, error)
	Telemetry(ctx context.Context, params interface{}) error
	PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error
	// Progress carries chat partial results.
	Progress(ctx context.Context, params *protocol.ProgressParams) error

	ChatUpdate(ctx context.Context, method string, params json.RawMessage) error
	OpenTab(ctx context.Context, params json.RawMessage) (json.RawMessage, error)
	RefreshFiles(ctx context.Context, params *RefreshFilesParams) error
	OpenFileDiff(ctx context.Context, params *OpenFileDiffParams) error
	ShowSaveFileDialog(ctx context.Context, params json.RawMessage) (*SaveFileDialogResult, error)
}

type gateway struct {
	mu     sync.Mutex
	conn   jsonrpc2.Conn
	client protocol.Client
	logger *zap.Logger
}

// New returns a Gateway for sending IDE notifications and calls.
func New(logger *zap.Logger) Gateway {
	return &gateway{logger: logger}
}

func (g *gateway) RegisterHost(ctx context.Context, conn jsonrpc2.Conn) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.conn = conn
	g.client = protocol.ClientDispatcher(conn, g.logger)
	return nil
}

func (g *gateway) DeregisterHost(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.conn = nil
	g.client = nil
	return nil
}

func (g *gateway) ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error {
	c, _ := g.getHost()
	if c == nil {
		g.logger.Log(messageLevel(params.Type), params.Message, zap.String("method", protocol.MethodWindowShowMessage))
		return nil
	}
	if err := c.ShowMessage(ctx, params); err != nil {
		return fmt.Errorf(_errSendToHost, protocol.MethodWindowShowMessage, err)
	}
	return nil
}

func (g *gateway) ShowMessageRequest(ctx context.Context, params *protocol.ShowMessageRequestParams) (*protocol.MessageActionItem, error) {
	c, _ := g.getHost()
	if c == nil {
		g.logger.Log(messageLevel(params.Type), params.Message, zap.String("method", protocol.MethodWindowShowMessageRequest))
		return nil, fmt.Errorf(_errSendToHost, protocol.MethodWindowShowMessageRequest, ErrNoHost)
	}
	result, err := c.ShowMessageRequest(ctx, params)
	if err != nil {
		return nil, fmt.Errorf(_errSendToHost, protocol.MethodWindowShowMessageRequest, err)
	}
	return result, nil
}

func (g *gateway) LogMessage(ctx context.Context, params *protocol.LogMessageParams) error {
	c, _ := g.getHost()
	if c == nil {
		g.logger.Log(messageLevel(params.Type), params.Message, zap.String("method", protocol.MethodWindowLogMessage))
		return nil
	}
	if err := c.LogMessage(ctx, params); err != nil {
		return fmt.Errorf(_errSendToHost, protocol.MethodWindowLogMessage, err)
	}
	return nil
}

func (g *gateway) ShowDocument(ctx context.Context, params *protocol.ShowDocumentParams) (*protocol.ShowDocumentResult, error) {
	_, conn := g.getHost()
	if conn == nil {
		return nil, fmt.Errorf(_errSendToHost, protocol.MethodShowDocument, ErrNoHost)
	}

	// ShowDocument is not part of protocol.Client.
	var result protocol.ShowDocumentResult
	if err := protocol.Call(ctx, conn, protocol.MethodShowDocument, params, &result); err != nil {
		return nil, fmt.Errorf(_errSendToHost, protocol.MethodShowDocument, err)
	}
	return &result, nil
}

func (g *gateway) Telemetry(ctx context.Context, params interface{}) error {
	c, _ := g.getHost()
	if c == nil {
		g.logger.Debug("telemetry event", zap.Any("params", params))
		return nil
	}
	if err := c.Telemetry(ctx, params); err != nil {
		return fmt.Errorf(_errSendToHost, protocol.MethodTelemetryEvent, err)
	}
	return nil
}

func (g *gateway) PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
	c, _ := g.getHost()
	if c == nil {
		g.logger.Debug("diagnostics published", zap.String("uri", string(params.URI)), zap.Int("count", len(params.Diagnostics)))
		return nil
	}
	if err := c.PublishDiagnostics(ctx, params); err != nil {
		return fmt.Errorf(_errSendToHost, protocol.MethodTextDocumentPublishDiagnostics, err)
	}
	return nil
}

func (g *gateway) Progress(ctx context.Context, params *protocol.ProgressParams) error {
	c, _ := g.getHost()
	if c == nil {
		return fmt.Errorf(_errSendToHost, protocol.MethodProgress, ErrNoHost)
	}
	if err := c.Progress(ctx, params); err != nil {
		return fmt.Errorf(_errSendToHost, protocol.MethodProgress, err)
	}
	return nil
}

func (g *gateway) ChatUpdate(ctx context.Context, method string, params json.RawMessage) error {
	return g.notify(ctx, method, params)
}

func (g *gateway) OpenTab(ctx context.Context, params json.RawMessage) (json.RawMessage, error) {
	var result json.RawMessage
	if err := g.call(ctx, MethodChatOpenTab, params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (g *gateway) RefreshFiles(ctx context.Context, params *RefreshFilesParams) error {
	_, conn := g.getHost()
	if conn == nil {
		g.logger.Debug("files changed on disk", zap.String("reason", params.Reason), zap.Int("count", len(params.URIs)))
		return nil
	}
	return g.notify(ctx, MethodRefreshFiles, params)
}

func (g *gateway) OpenFileDiff(ctx context.Context, params *OpenFileDiffParams) error {
	return g.notify(ctx, MethodOpenFileDiff, params)
}

func (g *gateway) ShowSaveFileDialog(ctx context.Context, params json.RawMessage) (*SaveFileDialogResult, error) {
	var result SaveFileDialogResult
	if err := g.call(ctx, MethodShowSaveFileDialog, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (g *gateway) notify(ctx context.Context, method string, params interface{}) error {
	_, conn := g.getHost()
	if conn == nil {
		return fmt.Errorf(_errSendToHost, method, ErrNoHost)
	}
	if err := conn.Notify(ctx, method, params); err != nil {
		return fmt.Errorf(_errSendToHost, method, err)
	}
	return nil
}

func (g *gateway) call(ctx context.Context, method string, params, result interface{}) error {
	_, conn := g.getHost()
	if conn == nil {
		return fmt.Errorf(_errSendToHost, method, ErrNoHost)
	}
	if err := protocol.Call(ctx, conn, method, params, result); err != nil {
		return fmt.Errorf(_errSendToHost, method, err)
	}
	return nil
}

func (g *gateway) getHost() (protocol.Client, jsonrpc2.Conn) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.client, g.conn
}

func messageLevel(t protocol.MessageType) zapcore.Level {
	switch t {
	case protocol.MessageTypeError:
		return zapcore.ErrorLevel
	case protocol.MessageTypeWarning:
		return zapcore.WarnLevel
	case protocol.MessageTypeInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
