package languageclient

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	notifier "github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/mock/gomock"
)

func TestConfiguration(t *testing.T) {
	ctx := context.Background()
	c, _ := getTestController(t)

	t.Run("no items", func(t *testing.T) {
		result, err := c.Configuration(ctx, &protocol.ConfigurationParams{})
		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("one value per item", func(t *testing.T) {
		result, err := c.Configuration(ctx, &protocol.ConfigurationParams{
			Items: []protocol.ConfigurationItem{
				{Section: SectionQ},
				{Section: "editor.tabSize"},
				{Section: SectionCodeWhisperer},
			},
		})
		require.NoError(t, err)
		require.Len(t, result, 3)

		encoded, err := json.Marshal(result)
		require.NoError(t, err)
		assert.JSONEq(t, `[
			{"customizationArn":"arn:custom"},
			null,
			{"includeSuggestionsWithCodeReferences":true,"nested":{"depth":2}}
		]`, string(encoded))
	})
}

func TestFilesChanged(t *testing.T) {
	ctx := context.Background()

	t.Run("refresh requested", func(t *testing.T) {
		c, deps := getTestController(t)
		c.historyDir = "/home/user/.aws/amazonq/history"
		deps.gateway.EXPECT().RefreshFiles(gomock.Any(), &notifier.RefreshFilesParams{
			Reason: "aws/didCopyFile",
			URIs:   []uri.URI{uri.File("/work/a.go"), uri.File("/work/b.go")},
		}).Return(nil)

		assert.NoError(t, c.FilesChanged(ctx, "aws/didCopyFile", "/work/a.go", "", "/work/b.go"))
	})

	t.Run("history paths skipped", func(t *testing.T) {
		c, _ := getTestController(t)
		c.historyDir = "/home/user/.aws/amazonq/history"
		assert.NoError(t, c.FilesChanged(ctx, "aws/didWriteFile", filepath.Join(c.historyDir, "chat.json"), c.historyDir))
	})

	t.Run("sibling of history dir", func(t *testing.T) {
		c, deps := getTestController(t)
		c.historyDir = "/home/user/.aws/amazonq/history"
		deps.gateway.EXPECT().RefreshFiles(gomock.Any(), gomock.Any()).Return(errors.New("closed"))
		assert.Error(t, c.FilesChanged(ctx, "aws/didWriteFile", "/home/user/.aws/amazonq/history2/a"))
	})
}

func TestOpenFileDiff(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }

	t.Run("content supplied", func(t *testing.T) {
		c, deps := getTestController(t)
		deps.gateway.EXPECT().OpenFileDiff(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, params *notifier.OpenFileDiffParams) error {
			assert.Equal(t, uri.File("/work/a.go"), params.OriginalFileURI)
			assert.Equal(t, "m1", params.MessageID)
			assert.NotEmpty(t, params.UnifiedDiff)
			require.Len(t, params.Edits, 1)
			assert.Equal(t, " world", params.Edits[0].NewText)
			return nil
		})

		err := c.OpenFileDiff(ctx, &OpenFileDiffParams{
			OriginalFileURI:     "file:///work/a.go",
			OriginalFileContent: strPtr("hello"),
			FileContent:         strPtr("hello world"),
			MessageID:           "m1",
		})
		assert.NoError(t, err)
	})

	t.Run("original read from disk", func(t *testing.T) {
		c, deps := getTestController(t)
		deps.fs.EXPECT().FileExists("/work/a.go").Return(true, nil)
		deps.fs.EXPECT().ReadFile("/work/a.go").Return([]byte("package a\n"), nil)
		deps.gateway.EXPECT().OpenFileDiff(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, params *notifier.OpenFileDiffParams) error {
			assert.True(t, params.IsDeleted)
			require.Len(t, params.Edits, 1)
			assert.Equal(t, "", params.Edits[0].NewText)
			return nil
		})

		assert.NoError(t, c.OpenFileDiff(ctx, &OpenFileDiffParams{OriginalFileURI: "/work/a.go", IsDeleted: true}))
	})

	t.Run("new file", func(t *testing.T) {
		c, deps := getTestController(t)
		deps.fs.EXPECT().FileExists("/work/new.go").Return(false, nil)
		deps.gateway.EXPECT().OpenFileDiff(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, c.OpenFileDiff(ctx, &OpenFileDiffParams{OriginalFileURI: "/work/new.go", FileContent: strPtr("package a\n")}))
	})

	t.Run("read failure", func(t *testing.T) {
		c, deps := getTestController(t)
		deps.fs.EXPECT().FileExists("/work/a.go").Return(true, nil)
		deps.fs.EXPECT().ReadFile("/work/a.go").Return(nil, errors.New("permission denied"))

		assert.ErrorContains(t, c.OpenFileDiff(ctx, &OpenFileDiffParams{OriginalFileURI: "/work/a.go"}), "permission denied")
	})
}

func TestShowSaveFileDialog(t *testing.T) {
	ctx := context.Background()

	t.Run("selected", func(t *testing.T) {
		c, deps := getTestController(t)
		deps.gateway.EXPECT().ShowSaveFileDialog(gomock.Any(), gomock.Any()).Return(&notifier.SaveFileDialogResult{TargetURI: uri.File("/tmp/out.md")}, nil)

		result, err := c.ShowSaveFileDialog(ctx, json.RawMessage(`{}`))
		require.NoError(t, err)
		assert.Equal(t, uri.File("/tmp/out.md"), result.TargetURI)
	})

	t.Run("no host", func(t *testing.T) {
		c, deps := getTestController(t)
		deps.gateway.EXPECT().ShowSaveFileDialog(gomock.Any(), gomock.Any()).Return(nil, notifier.ErrNoHost)

		result, err := c.ShowSaveFileDialog(ctx, json.RawMessage(`{}`))
		require.NoError(t, err)
		assert.Empty(t, result.TargetURI)
	})
}

func TestPublishDiagnostics(t *testing.T) {
	c, deps := getTestController(t)
	deps.gateway.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Return(nil)
	assert.NoError(t, c.PublishDiagnostics(context.Background(), &protocol.PublishDiagnosticsParams{URI: uri.File("/work/a.go")}))
}
