package handler

import (
	"fmt"
	"path/filepath"

	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/serverinfofile"
	"go.uber.org/config"
)

const (
	_fieldClient        = "client"
	_fieldClientVersion = "client-version"
	_fieldWorkspaceRoot = "workspace-root"
)

// Output the client identity and workspace served by this process.
// The lifecycle service adds the live language server fields independently.
func outputClientInfo(cfg config.Provider, infofile serverinfofile.ServerInfoFile) error {
	var client entity.ClientConfig
	if err := cfg.Get(entity.ClientConfigKey).Populate(&client); err != nil {
		return fmt.Errorf("getting config field %q: %w", entity.ClientConfigKey, err)
	}
	var workspace entity.WorkspaceConfig
	if err := cfg.Get(entity.WorkspaceConfigKey).Populate(&workspace); err != nil {
		return fmt.Errorf("getting config field %q: %w", entity.WorkspaceConfigKey, err)
	}

	root := workspace.Root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	if err := infofile.UpdateFields(map[string]string{
		_fieldClient:        client.Name,
		_fieldClientVersion: client.Version,
		_fieldWorkspaceRoot: root,
	}); err != nil {
		return fmt.Errorf("outputting client info to info file: %w", err)
	}
	return nil
}
