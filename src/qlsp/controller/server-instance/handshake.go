package serverinstance

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	qerrors "github.com/uber/amazonq-lsp/src/qlsp/internal/errors"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// ExtendedClientMetadata is sent as initializationOptions.
type ExtendedClientMetadata struct {
	AWS AWSClientMetadata `json:"aws"`
}

// AWSClientMetadata describes the client to the language server.
type AWSClientMetadata struct {
	ClientInfo            AWSClientInfo         `json:"clientInfo"`
	AWSClientCapabilities AWSClientCapabilities `json:"awsClientCapabilities"`
}

// AWSClientInfo identifies the client product and extension.
type AWSClientInfo struct {
	Name      string       `json:"name"`
	Version   string       `json:"version"`
	Extension AWSExtension `json:"extension"`
	ClientID  string       `json:"clientId"`
}

// AWSExtension names the extension hosting the client.
type AWSExtension struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// AWSClientCapabilities lists the Amazon Q specific features the client supports.
type AWSClientCapabilities struct {
	Q      QCapabilities      `json:"q"`
	Window WindowCapabilities `json:"window"`
}

// QCapabilities are chat related client capabilities.
type QCapabilities struct {
	DeveloperProfiles bool `json:"developerProfiles"`
}

// WindowCapabilities are window related client capabilities.
type WindowCapabilities struct {
	ShowSaveFileDialog bool `json:"showSaveFileDialog"`
}

func (f *instanceFactory) initializeParams() *protocol.InitializeParams {
	params := &protocol.InitializeParams{
		ProcessID: int32(os.Getpid()),
		ClientInfo: &protocol.ClientInfo{
			Name:    f.client.Name,
			Version: f.client.Version,
		},
		Capabilities: protocol.ClientCapabilities{
			TextDocument: &protocol.TextDocumentClientCapabilities{
				Synchronization: &protocol.TextDocumentSyncClientCapabilities{DidSave: true},
			},
			Workspace: &protocol.WorkspaceClientCapabilities{
				ApplyEdit:        false,
				WorkspaceFolders: true,
				Configuration:    true,
				FileOperations: &protocol.WorkspaceClientCapabilitiesFileOperations{
					DidCreate: true,
					DidDelete: true,
				},
			},
			Window: &protocol.WindowClientCapabilities{
				ShowDocument: &protocol.ShowDocumentClientCapabilities{Support: true},
			},
		},
		InitializationOptions: ExtendedClientMetadata{
			AWS: AWSClientMetadata{
				ClientInfo: AWSClientInfo{
					Name:    f.client.Name,
					Version: f.client.Version,
					Extension: AWSExtension{
						Name:    f.client.ExtensionName,
						Version: f.client.ExtensionVersion,
					},
					ClientID: f.clientID.String(),
				},
				AWSClientCapabilities: AWSClientCapabilities{
					Q:      QCapabilities{DeveloperProfiles: true},
					Window: WindowCapabilities{ShowSaveFileDialog: true},
				},
			},
		},
	}
	if folder, ok := workspaceFolder(f.workspace); ok {
		params.WorkspaceFolders = []protocol.WorkspaceFolder{folder}
	}
	return params
}

// workspaceFolder returns the configured root as a file URI named after its base name.
func workspaceFolder(cfg entity.WorkspaceConfig) (protocol.WorkspaceFolder, bool) {
	if cfg.Root == "" {
		return protocol.WorkspaceFolder{}, false
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return protocol.WorkspaceFolder{}, false
	}
	name := cfg.Name
	if name == "" {
		name = filepath.Base(root)
	}
	return protocol.WorkspaceFolder{URI: string(uri.File(root)), Name: name}, true
}

// handshake announces the encryption key and runs initialize. A failed handshake kills the process.
func (i *instance) handshake(ctx context.Context, params *protocol.InitializeParams) {
	result, err := i.initialize(ctx, params)

	if err != nil {
		i.initErr = err
		if i.setState(entity.InstanceFailed) {
			i.logger.Warnw("language server initialization failed", "error", err)
			i.stats.Counter("handshake_failures").Inc(1)
		}
		i.terminate()
	} else {
		i.initResult = result
		if i.setState(entity.InstanceReady) {
			i.logger.Infow("language server initialized", "server", serverName(result))
		}
	}
	close(i.initialized)
}

func (i *instance) initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	if !i.setState(entity.InstanceHandshaking) {
		return nil, qerrors.ErrTransportClosed
	}

	if err := i.encryption.WriteInitializationPayload(ctx, i.process.Stdin()); err != nil {
		return nil, fmt.Errorf("writing encryption key: %w", err)
	}

	initCtx, cancel := context.WithTimeout(ctx, i.cfg.Timeouts.Initialize)
	defer cancel()

	result, err := i.server.Initialize(initCtx, params)
	if err != nil {
		if errors.Is(initCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: %v", qerrors.ErrHandshakeTimeout, err)
		}
		return nil, err
	}

	if err := i.server.Initialized(ctx, &protocol.InitializedParams{}); err != nil {
		return nil, err
	}
	return result, nil
}

func serverName(result *protocol.InitializeResult) string {
	if result == nil || result.ServerInfo == nil {
		return ""
	}
	return result.ServerInfo.Name + " " + result.ServerInfo.Version
}
