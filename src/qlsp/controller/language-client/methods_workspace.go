package languageclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	notifier "github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client"
	"github.com/uber/amazonq-lsp/src/qlsp/mapper"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// Configuration answers one value per item. Unknown sections answer null so results stay aligned with items.
func (c *controller) Configuration(ctx context.Context, params *protocol.ConfigurationParams) ([]interface{}, error) {
	if len(params.Items) == 0 {
		return nil, nil
	}

	result := make([]interface{}, 0, len(params.Items))
	for _, item := range params.Items {
		result = append(result, c.settings[item.Section])
	}
	return result, nil
}

func (c *controller) PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
	return c.ideGateway.PublishDiagnostics(ctx, params)
}

// FilesChanged asks the host to reload paths written by the language server.
// Paths inside the chat history directory are skipped.
func (c *controller) FilesChanged(ctx context.Context, reason string, paths ...string) error {
	uris := make([]uri.URI, 0, len(paths))
	for _, p := range paths {
		if p == "" || c.inHistoryDir(p) {
			continue
		}
		uris = append(uris, uri.File(p))
	}
	if len(uris) == 0 {
		return nil
	}
	return c.ideGateway.RefreshFiles(ctx, &notifier.RefreshFilesParams{Reason: reason, URIs: uris})
}

func (c *controller) inHistoryDir(path string) bool {
	if c.historyDir == "" {
		return false
	}
	rel, err := filepath.Rel(c.historyDir, filepath.Clean(path))
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (c *controller) OpenFileDiff(ctx context.Context, params *OpenFileDiffParams) error {
	path := params.OriginalFileURI
	if strings.HasPrefix(path, uri.FileScheme+"://") {
		path = uri.New(path).Filename()
	}

	var before string
	if params.OriginalFileContent != nil {
		before = *params.OriginalFileContent
	} else if exists, err := c.fs.FileExists(path); err == nil && exists {
		content, err := c.fs.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		before = string(content)
	}

	var after string
	if !params.IsDeleted && params.FileContent != nil {
		after = *params.FileContent
	}

	patch, edits, err := mapper.ContentDiff(before, after)
	if err != nil {
		return err
	}

	return c.ideGateway.OpenFileDiff(ctx, &notifier.OpenFileDiffParams{
		OriginalFileURI:     uri.File(path),
		OriginalFileContent: params.OriginalFileContent,
		FileContent:         params.FileContent,
		IsDeleted:           params.IsDeleted,
		MessageID:           params.MessageID,
		UnifiedDiff:         patch,
		Edits:               edits,
	})
}

// ShowSaveFileDialog answers an empty target when no host can ask the user.
func (c *controller) ShowSaveFileDialog(ctx context.Context, params json.RawMessage) (*notifier.SaveFileDialogResult, error) {
	result, err := c.ideGateway.ShowSaveFileDialog(ctx, params)
	if errors.Is(err, notifier.ErrNoHost) {
		return &notifier.SaveFileDialogResult{}, nil
	}
	return result, err
}
