// Package amazonqserver is the typed proxy for requests sent to the Amazon Q language server.
package amazonqserver

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/encryption"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/errors"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const (
	_errSendToServer = "sending %s to language server: %w"
	_errParamsType   = "params for %s must be %v, got %T"
)

// Server is the remote side of one language server instance.
// Every call fails with errors.ErrTransportClosed once the connection has terminated.
type Server interface {
	Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error)
	Initialized(ctx context.Context, params *protocol.InitializedParams) error
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error

	InlineCompletionWithReferences(ctx context.Context, params *InlineCompletionWithReferencesParams) (*InlineCompletionListWithReferences, error)
	LogInlineCompletionSessionResults(ctx context.Context, params json.RawMessage) error
	DidChangeDependencyPaths(ctx context.Context, params *DidChangeDependencyPathsParams) error
	UpdateTokenCredentials(ctx context.Context, token string, metadata *entity.ConnectionMetadata) error
	DeleteTokenCredentials(ctx context.Context) error
	GetConfigurationFromServer(ctx context.Context, section string) (json.RawMessage, error)
	UpdateConfiguration(ctx context.Context, params *UpdateConfigurationParams) error
	SendChatPrompt(ctx context.Context, params json.RawMessage, partialResultToken json.RawMessage) (json.RawMessage, error)
	SendQuickAction(ctx context.Context, params json.RawMessage, partialResultToken json.RawMessage) (json.RawMessage, error)

	// Request sends a registered request method. A nil result discards the response.
	Request(ctx context.Context, method string, params interface{}, result interface{}) error
	// Notify sends a registered notification method.
	Notify(ctx context.Context, method string, params interface{}) error
}

type server struct {
	conn       jsonrpc2.Conn
	dispatcher protocol.Server
	encryption encryption.Manager
	logger     *zap.SugaredLogger
}

// New creates a Server that sends over conn and protects payloads with enc.
func New(conn jsonrpc2.Conn, enc encryption.Manager, logger *zap.SugaredLogger) Server {
	return &server{
		conn:       conn,
		dispatcher: protocol.ServerDispatcher(conn, logger.Desugar()),
		encryption: enc,
		logger:     logger,
	}
}

func (s *server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	ctx, cancel := jsonrpcfx.CallContext(ctx, s.conn)
	defer cancel()

	result, err := s.dispatcher.Initialize(ctx, params)
	if err != nil {
		return nil, fmt.Errorf(_errSendToServer, protocol.MethodInitialize, jsonrpcfx.TransportErr(ctx, err))
	}
	return result, nil
}

func (s *server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	if err := s.dispatcher.Initialized(ctx, params); err != nil {
		return fmt.Errorf(_errSendToServer, protocol.MethodInitialized, err)
	}
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	ctx, cancel := jsonrpcfx.CallContext(ctx, s.conn)
	defer cancel()

	if err := s.dispatcher.Shutdown(ctx); err != nil {
		return fmt.Errorf(_errSendToServer, protocol.MethodShutdown, jsonrpcfx.TransportErr(ctx, err))
	}
	return nil
}

func (s *server) Exit(ctx context.Context) error {
	if err := s.dispatcher.Exit(ctx); err != nil {
		return fmt.Errorf(_errSendToServer, protocol.MethodExit, err)
	}
	return nil
}

func (s *server) InlineCompletionWithReferences(ctx context.Context, params *InlineCompletionWithReferencesParams) (*InlineCompletionListWithReferences, error) {
	var result InlineCompletionListWithReferences
	if err := s.Request(ctx, MethodInlineCompletionWithReferences, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *server) LogInlineCompletionSessionResults(ctx context.Context, params json.RawMessage) error {
	return s.Notify(ctx, MethodLogInlineCompletionSessionResults, params)
}

func (s *server) DidChangeDependencyPaths(ctx context.Context, params *DidChangeDependencyPathsParams) error {
	return s.Notify(ctx, MethodDidChangeDependencyPaths, params)
}

func (s *server) UpdateTokenCredentials(ctx context.Context, token string, metadata *entity.ConnectionMetadata) error {
	data, err := s.encryption.Encrypt(BearerCredentials{Data: BearerToken{Token: token}})
	if err != nil {
		return fmt.Errorf(_errSendToServer, MethodUpdateTokenCredentials, err)
	}

	payload := &UpdateCredentialsPayload{
		Data:      data,
		Metadata:  metadata,
		Encrypted: true,
	}
	return s.Request(ctx, MethodUpdateTokenCredentials, payload, nil)
}

func (s *server) DeleteTokenCredentials(ctx context.Context) error {
	return s.Notify(ctx, MethodDeleteTokenCredentials, nil)
}

func (s *server) GetConfigurationFromServer(ctx context.Context, section string) (json.RawMessage, error) {
	var result json.RawMessage
	if err := s.Request(ctx, MethodGetConfigurationFromServer, &GetConfigurationFromServerParams{Section: section}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *server) UpdateConfiguration(ctx context.Context, params *UpdateConfigurationParams) error {
	return s.Request(ctx, MethodUpdateConfiguration, params, nil)
}

func (s *server) SendChatPrompt(ctx context.Context, params json.RawMessage, partialResultToken json.RawMessage) (json.RawMessage, error) {
	message, err := s.encryption.Encrypt(params)
	if err != nil {
		return nil, fmt.Errorf(_errSendToServer, MethodChatSendChatPrompt, err)
	}
	return s.encryptedRequest(ctx, MethodChatSendChatPrompt, &EncryptedChatParams{
		Message:            message,
		PartialResultToken: partialResultToken,
	})
}

func (s *server) SendQuickAction(ctx context.Context, params json.RawMessage, partialResultToken json.RawMessage) (json.RawMessage, error) {
	message, err := s.encryption.Encrypt(params)
	if err != nil {
		return nil, fmt.Errorf(_errSendToServer, MethodChatQuickAction, err)
	}
	return s.encryptedRequest(ctx, MethodChatQuickAction, &EncryptedQuickActionChatParams{
		Message:            message,
		PartialResultToken: partialResultToken,
	})
}

func (s *server) encryptedRequest(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	var token string
	if err := s.Request(ctx, method, params, &token); err != nil {
		return nil, err
	}

	plain, err := s.encryption.Decrypt(token)
	if err != nil {
		return nil, fmt.Errorf(_errSendToServer, method, err)
	}
	return json.RawMessage(plain), nil
}

func (s *server) Request(ctx context.Context, method string, params interface{}, result interface{}) error {
	if err := validate(method, KindRequest, params); err != nil {
		return err
	}

	if s.closed() {
		return fmt.Errorf(_errSendToServer, method, errors.ErrTransportClosed)
	}

	ctx, cancel := jsonrpcfx.CallContext(ctx, s.conn)
	defer cancel()

	s.logger.Debugw("sending request", "method", method)
	if _, err := s.conn.Call(ctx, method, params, result); err != nil {
		return fmt.Errorf(_errSendToServer, method, jsonrpcfx.TransportErr(ctx, err))
	}
	return nil
}

func (s *server) Notify(ctx context.Context, method string, params interface{}) error {
	if err := validate(method, KindNotification, params); err != nil {
		return err
	}

	if s.closed() {
		return fmt.Errorf(_errSendToServer, method, errors.ErrTransportClosed)
	}

	s.logger.Debugw("sending notification", "method", method)
	if err := s.conn.Notify(ctx, method, params); err != nil {
		return fmt.Errorf(_errSendToServer, method, err)
	}
	return nil
}

func (s *server) closed() bool {
	select {
	case <-s.conn.Done():
		return true
	default:
		return false
	}
}

// validate checks method against the registry. Params must be of the registered type,
// a pointer to it, or raw JSON. Passthrough methods accept any JSON encodable value.
func validate(method string, kind Kind, params interface{}) error {
	m, ok := Lookup(method)
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnknownMethod, method)
	}
	if m.Kind != kind {
		return fmt.Errorf("%w: %s is a %s", errors.ErrMethodKind, method, m.Kind)
	}

	if params == nil || m.Params == nil || m.Params == _rawType {
		return nil
	}
	t := reflect.TypeOf(params)
	if t == _rawType || t == m.Params || (t.Kind() == reflect.Pointer && t.Elem() == m.Params) {
		return nil
	}
	return fmt.Errorf(_errParamsType, method, m.Params, params)
}
