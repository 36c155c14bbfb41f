package amazonqserver

import (
	"encoding/json"
	"reflect"

	"go.lsp.dev/protocol"
)

// Amazon Q language server methods.
const (
	MethodInlineCompletionWithReferences    = "aws/textDocument/inlineCompletionWithReferences"
	MethodLogInlineCompletionSessionResults = "aws/logInlineCompletionSessionResults"
	MethodDidChangeDependencyPaths          = "aws/didChangeDependencyPaths"
	MethodUpdateTokenCredentials            = "aws/credentials/token/update"
	MethodDeleteTokenCredentials            = "aws/credentials/token/delete"
	MethodGetConfigurationFromServer        = "aws/getConfigurationFromServer"
	MethodUpdateConfiguration               = "aws/updateConfiguration"

	MethodChatSendChatPrompt          = "aws/chat/sendChatPrompt"
	MethodChatQuickAction             = "aws/chat/sendChatQuickAction"
	MethodChatTabAdd                  = "aws/chat/tabAdd"
	MethodChatTabRemove               = "aws/chat/tabRemove"
	MethodChatTabChange               = "aws/chat/tabChange"
	MethodChatCopyCodeToClipboard     = "aws/chat/copyCodeToClipboard"
	MethodChatInsertToCursorPosition  = "aws/chat/insertToCursorPosition"
	MethodChatFeedback                = "aws/chat/feedback"
	MethodChatReady                   = "aws/chat/ready"
	MethodChatLinkClick               = "aws/chat/linkClick"
	MethodChatInfoLinkClick           = "aws/chat/infoLinkClick"
	MethodChatSourceLinkClick         = "aws/chat/sourceLinkClick"
	MethodChatPromptInputOptionChange = "aws/chat/promptInputOptionChange"
	MethodChatFollowUpClick           = "aws/chat/followUpClick"
	MethodChatFileClick               = "aws/chat/fileClick"
	MethodChatButtonClick             = "aws/chat/buttonClick"
	MethodChatListConversations       = "aws/chat/listConversations"
	MethodChatConversationClick       = "aws/chat/conversationClick"
	MethodChatListMcpServers          = "aws/chat/listMcpServers"
	MethodChatMcpServerClick          = "aws/chat/mcpServerClick"
	MethodChatGetSerializedChat       = "aws/chat/getSerializedChat"
	MethodChatTabBarAction            = "aws/chat/tabBarAction"
	MethodChatCreatePrompt            = "aws/chat/createPrompt"
)

// Kind tells whether a method expects a response.
type Kind int

const (
	KindRequest Kind = iota
	KindNotification
)

func (k Kind) String() string {
	if k == KindNotification {
		return "notification"
	}
	return "request"
}

// Method describes one outbound method: its kind and the Go types of its params and result.
// A nil Result means the method has no result. json.RawMessage marks payloads passed through unmodified.
type Method struct {
	Name   string
	Kind   Kind
	Params reflect.Type
	Result reflect.Type
}

var (
	_rawType = reflect.TypeOf(json.RawMessage(nil))
	_strType = reflect.TypeOf("")
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func request(name string, params, result reflect.Type) Method {
	return Method{Name: name, Kind: KindRequest, Params: params, Result: result}
}

func notification(name string, params reflect.Type) Method {
	return Method{Name: name, Kind: KindNotification, Params: params}
}

var _registry = buildRegistry(
	request(MethodInlineCompletionWithReferences, typeOf[InlineCompletionWithReferencesParams](), typeOf[InlineCompletionListWithReferences]()),
	notification(MethodLogInlineCompletionSessionResults, _rawType),
	notification(MethodDidChangeDependencyPaths, typeOf[DidChangeDependencyPathsParams]()),
	request(MethodUpdateTokenCredentials, typeOf[UpdateCredentialsPayload](), _rawType),
	notification(MethodDeleteTokenCredentials, nil),
	request(MethodGetConfigurationFromServer, typeOf[GetConfigurationFromServerParams](), _rawType),
	request(MethodUpdateConfiguration, typeOf[UpdateConfigurationParams](), _rawType),

	request(MethodChatSendChatPrompt, typeOf[EncryptedChatParams](), _strType),
	request(MethodChatQuickAction, typeOf[EncryptedQuickActionChatParams](), _strType),
	notification(MethodChatTabAdd, _rawType),
	notification(MethodChatTabRemove, _rawType),
	notification(MethodChatTabChange, _rawType),
	notification(MethodChatCopyCodeToClipboard, _rawType),
	notification(MethodChatInsertToCursorPosition, _rawType),
	notification(MethodChatFeedback, _rawType),
	notification(MethodChatReady, nil),
	notification(MethodChatLinkClick, _rawType),
	notification(MethodChatInfoLinkClick, _rawType),
	notification(MethodChatSourceLinkClick, _rawType),
	notification(MethodChatPromptInputOptionChange, _rawType),
	notification(MethodChatFollowUpClick, _rawType),
	notification(MethodChatFileClick, _rawType),
	notification(MethodChatCreatePrompt, _rawType),
	notification(protocol.MethodTelemetryEvent, _rawType),
	request(MethodChatButtonClick, _rawType, _rawType),
	request(MethodChatListConversations, _rawType, _rawType),
	request(MethodChatConversationClick, _rawType, _rawType),
	request(MethodChatListMcpServers, _rawType, _rawType),
	request(MethodChatMcpServerClick, _rawType, _rawType),
	request(MethodChatGetSerializedChat, _rawType, _rawType),
	request(MethodChatTabBarAction, _rawType, _rawType),
)

func buildRegistry(methods ...Method) map[string]Method {
	r := make(map[string]Method, len(methods))
	for _, m := range methods {
		if _, ok := r[m.Name]; ok {
			panic("duplicate method " + m.Name)
		}
		r[m.Name] = m
	}
	return r
}

// Lookup returns the registry entry for a method.
func Lookup(name string) (Method, bool) {
	m, ok := _registry[name]
	return m, ok
}

// Methods returns every registered method name.
func Methods() []string {
	names := make([]string, 0, len(_registry))
	for name := range _registry {
		names = append(names, name)
	}
	return names
}
