package entity

// BuilderIDStartURL is the start URL reported when no bearer connection is configured.
const BuilderIDStartURL = "https://view.awsapps.com/start"

// SSOMetadata carries the identity center start URL.
type SSOMetadata struct {
	StartURL string `json:"startUrl"`
}

// ConnectionMetadata answers aws/credentials/getConnectionMetadata.
type ConnectionMetadata struct {
	SSO SSOMetadata `json:"sso"`
}

// Credentials are the bearer credentials pushed to the server.
type Credentials struct {
	BearerToken string
	StartURL    string
	ProfileArn  string
}

// HasToken reports whether a bearer token is stored.
func (c Credentials) HasToken() bool {
	return c.BearerToken != ""
}

// Metadata returns the connection metadata for these credentials, defaulting to Builder ID.
func (c Credentials) Metadata() ConnectionMetadata {
	startURL := c.StartURL
	if startURL == "" {
		startURL = BuilderIDStartURL
	}
	return ConnectionMetadata{SSO: SSOMetadata{StartURL: startURL}}
}
