package amazonqserver

import (
	"encoding/json"

	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	"go.lsp.dev/protocol"
)

// InlineCompletionWithReferencesParams requests inline suggestions at a position.
type InlineCompletionWithReferencesParams struct {
	protocol.TextDocumentPositionParams
	Context            json.RawMessage `json:"context,omitempty"`
	PartialResultToken json.RawMessage `json:"partialResultToken,omitempty"`
}

// InlineCompletionListWithReferences is the inline completion result. Items are opaque.
type InlineCompletionListWithReferences struct {
	SessionID          string            `json:"sessionId"`
	Items              []json.RawMessage `json:"items"`
	PartialResultToken json.RawMessage   `json:"partialResultToken,omitempty"`
}

// DidChangeDependencyPathsParams announces dependency locations of a module.
type DidChangeDependencyPathsParams struct {
	ModuleName      string   `json:"moduleName"`
	RuntimeLanguage string   `json:"runtimeLanguage"`
	Paths           []string `json:"paths"`
	IncludePatterns []string `json:"includePatterns"`
	ExcludePatterns []string `json:"excludePatterns"`
}

// UpdateCredentialsPayload carries an encrypted bearer token.
type UpdateCredentialsPayload struct {
	Data      string                     `json:"data"`
	Metadata  *entity.ConnectionMetadata `json:"metadata,omitempty"`
	Encrypted bool                       `json:"encrypted"`
}

// BearerCredentials is the plaintext inside UpdateCredentialsPayload.Data.
type BearerCredentials struct {
	Data BearerToken `json:"data"`
}

// BearerToken holds the token value.
type BearerToken struct {
	Token string `json:"token"`
}

// GetConfigurationFromServerParams selects a server side configuration section.
type GetConfigurationFromServerParams struct {
	Section string `json:"section"`
}

// SectionQ is the configuration section holding chat and profile settings.
const SectionQ = "aws.q"

// UpdateConfigurationParams pushes client side settings to the server.
type UpdateConfigurationParams struct {
	Section  string      `json:"section"`
	Settings interface{} `json:"settings"`
}

// ProfileSettings is the aws.q settings blob selecting a developer profile.
type ProfileSettings struct {
	ProfileArn string `json:"profileArn"`
}

// EncryptedChatParams wraps an encrypted chat prompt.
type EncryptedChatParams struct {
	Message            string          `json:"message"`
	PartialResultToken json.RawMessage `json:"partialResultToken,omitempty"`
}

// EncryptedQuickActionChatParams wraps an encrypted quick action.
type EncryptedQuickActionChatParams struct {
	Message            string          `json:"message"`
	PartialResultToken json.RawMessage `json:"partialResultToken,omitempty"`
}
