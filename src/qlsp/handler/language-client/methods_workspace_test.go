package languageclient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	tally "github.com/uber-go/tally/v4"
	controller "github.com/uber/amazonq-lsp/src/qlsp/controller/language-client"
	"github.com/uber/amazonq-lsp/src/qlsp/controller/language-client/languageclientmock"
	notifier "github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
)

func TestWorkspaceMethods(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		setReturn func(c *languageclientmock.MockController, err error)
		params    interface{}
		validated bool
	}{
		{
			name:   "Configuration",
			method: protocol.MethodWorkspaceConfiguration,
			setReturn: func(c *languageclientmock.MockController, err error) {
				c.EXPECT().Configuration(gomock.Any(), gomock.Any()).Return(nil, err)
			},
			params:    protocol.ConfigurationParams{Items: []protocol.ConfigurationItem{{Section: "aws.q"}}},
			validated: true,
		},
		{
			name:   "PublishDiagnostics",
			method: protocol.MethodTextDocumentPublishDiagnostics,
			setReturn: func(c *languageclientmock.MockController, err error) {
				c.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Return(err)
			},
			params:    protocol.PublishDiagnosticsParams{URI: "file:///work/a.go"},
			validated: true,
		},
		{
			name:   "DidCopyFile",
			method: MethodDidCopyFile,
			setReturn: func(c *languageclientmock.MockController, err error) {
				c.EXPECT().FilesChanged(gomock.Any(), MethodDidCopyFile, "/work/a.go", "/work/b.go").Return(err)
			},
			params:    controller.CopyFileParams{OldPath: "/work/a.go", NewPath: "/work/b.go"},
			validated: true,
		},
		{
			name:   "DidWriteFile",
			method: MethodDidWriteFile,
			setReturn: func(c *languageclientmock.MockController, err error) {
				c.EXPECT().FilesChanged(gomock.Any(), MethodDidWriteFile, "/work/a.go").Return(err)
			},
			params:    controller.FileParams{Path: "/work/a.go"},
			validated: true,
		},
		{
			name:   "DidRemoveFileOrDirectory",
			method: MethodDidRemoveFileOrDirectory,
			setReturn: func(c *languageclientmock.MockController, err error) {
				c.EXPECT().FilesChanged(gomock.Any(), MethodDidRemoveFileOrDirectory, "/work/dir").Return(err)
			},
			params:    controller.FileParams{Path: "/work/dir"},
			validated: true,
		},
		{
			name:   "OpenFileDiff",
			method: notifier.MethodOpenFileDiff,
			setReturn: func(c *languageclientmock.MockController, err error) {
				c.EXPECT().OpenFileDiff(gomock.Any(), &controller.OpenFileDiffParams{OriginalFileURI: "file:///work/a.go", IsDeleted: true}).Return(err)
			},
			params:    controller.OpenFileDiffParams{OriginalFileURI: "file:///work/a.go", IsDeleted: true},
			validated: true,
		},
		{
			name:   "ShowSaveFileDialog",
			method: notifier.MethodShowSaveFileDialog,
			setReturn: func(c *languageclientmock.MockController, err error) {
				c.EXPECT().ShowSaveFileDialog(gomock.Any(), gomock.Any()).Return(nil, err)
			},
			params: map[string]string{"supportedFormats": "md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()
			replier := newMockReplier()

			c := languageclientmock.NewMockController(ctrl)
			r := jsonRPCRouter{client: c, stats: tally.NoopScope}

			tt.setReturn(c, nil)
			req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), tt.method, tt.params)
			assert.NoError(t, r.HandleReq(ctx, replier, req))

			tt.setReturn(c, errors.New("err"))
			req, _ = jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), tt.method, tt.params)
			assert.Error(t, r.HandleReq(ctx, replier, req))

			if tt.validated {
				req, _ = jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), tt.method, 5)
				assert.Error(t, r.HandleReq(ctx, replier, req))
			}
		})
	}
}
