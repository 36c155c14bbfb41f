package factory

import (
	"github.com/gofrs/uuid"
	"github.com/uber/amazonq-lsp/src/qlsp/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// JSONRPCNotification is a user-defined factory for a JSON-RPC notification.
func JSONRPCNotification(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewNotification(method, params)
	return req
}

// Credentials is a factory for stored bearer credentials.
func Credentials() entity.Credentials {
	return entity.Credentials{
		BearerToken: "sample-token",
		StartURL:    "https://example.awsapps.com/start",
		ProfileArn:  "arn:aws:codewhisperer:us-east-1:123456789012:profile/SAMPLE",
	}
}
