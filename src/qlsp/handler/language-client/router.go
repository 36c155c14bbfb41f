package languageclient

import (
	"context"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	controller "github.com/uber/amazonq-lsp/src/qlsp/controller/language-client"
	notifier "github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// Server initiated methods handled by the client.
const (
	MethodGetConnectionMetadata    = "aws/credentials/getConnectionMetadata"
	MethodChatPinnedContextAdd     = "aws/chat/pinnedContextAdd"
	MethodChatPinnedContextRemove  = "aws/chat/pinnedContextRemove"
	MethodChatOptionsUpdate        = "aws/chat/chatOptionsUpdate"
	MethodDidCopyFile              = "aws/didCopyFile"
	MethodDidWriteFile             = "aws/didWriteFile"
	MethodDidAppendFile            = "aws/didAppendFile"
	MethodDidRemoveFileOrDirectory = "aws/didRemoveFileOrDirectory"
	MethodDidCreateDirectory       = "aws/didCreateDirectory"
)

type jsonRPCRouter struct {
	client controller.Controller
	uuid   uuid.UUID
	stats  tally.Scope
}

// HandleReq handles routing for a single request. Every path replies, also for notifications,
// since the connection does not read the next message before the current one is answered.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)

	switch req.Method() {
	// Credential methods.
	case MethodGetConnectionMetadata:
		return r.GetConnectionMetadata(ctx, reply, req)

	// Window methods.
	case protocol.MethodWindowShowMessage:
		return r.ShowMessage(ctx, reply, req)

	case protocol.MethodWindowShowMessageRequest:
		return r.ShowMessageRequest(ctx, reply, req)

	case protocol.MethodWindowLogMessage:
		return r.LogMessage(ctx, reply, req)

	case protocol.MethodShowDocument:
		return r.ShowDocument(ctx, reply, req)

	case protocol.MethodProgress:
		return r.Progress(ctx, reply, req)

	case protocol.MethodTelemetryEvent:
		return r.Telemetry(ctx, reply, req)

	case protocol.MethodWorkDoneProgressCreate,
		protocol.MethodClientRegisterCapability,
		protocol.MethodClientUnregisterCapability:
		return reply(ctx, nil, nil)

	// Workspace methods.
	case protocol.MethodWorkspaceConfiguration:
		return r.Configuration(ctx, reply, req)

	case protocol.MethodTextDocumentPublishDiagnostics:
		return r.PublishDiagnostics(ctx, reply, req)

	case MethodDidCopyFile:
		return r.DidCopyFile(ctx, reply, req)

	case MethodDidWriteFile, MethodDidAppendFile, MethodDidRemoveFileOrDirectory, MethodDidCreateDirectory:
		return r.DidChangeFile(ctx, reply, req)

	case notifier.MethodOpenFileDiff:
		return r.OpenFileDiff(ctx, reply, req)

	case notifier.MethodShowSaveFileDialog:
		return r.ShowSaveFileDialog(ctx, reply, req)

	// Chat methods.
	case notifier.MethodChatSendChatUpdate,
		notifier.MethodChatSendContextCommands,
		MethodChatPinnedContextAdd,
		MethodChatPinnedContextRemove,
		MethodChatOptionsUpdate:
		return r.ChatUpdate(ctx, reply, req)

	case notifier.MethodChatOpenTab:
		return r.OpenTab(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
