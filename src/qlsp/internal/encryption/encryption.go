// Package encryption holds the per-instance symmetric key shared with the language server.
//
// The key is announced once over the raw process stdin, before any JSON-RPC framing,
// and afterwards protects credential and chat payloads as compact JWE tokens.
package encryption

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/uber/amazonq-lsp/src/qlsp/internal/errors"
)

const (
	_keySize = 32

	// DefaultWriteTimeout bounds the initialization payload write.
	DefaultWriteTimeout = 5 * time.Second

	_payloadVersion = "1.0"
	_payloadMode    = "JWT"

	_errWritePayload = "writing encryption initialization payload: %w"
	_errEncrypt      = "encrypting payload: %w"
	_errDecrypt      = "decrypting payload: %w"
)

// Manager encrypts and decrypts payloads exchanged with one language server instance.
type Manager interface {
	WriteInitializationPayload(ctx context.Context, w io.Writer) error
	Encrypt(v any) (string, error)
	Decrypt(token string) ([]byte, error)
	DecryptInto(token string, v any) error
	Destroy()
}

// InitializationPayload is the single JSON line announcing the key to the server.
type InitializationPayload struct {
	Version string `json:"version"`
	Mode    string `json:"mode"`
	Key     string `json:"key"`
}

type manager struct {
	mu           sync.RWMutex
	key          []byte
	writeTimeout time.Duration
}

// Option configures a Manager.
type Option func(*manager)

// WithWriteTimeout overrides DefaultWriteTimeout.
func WithWriteTimeout(d time.Duration) Option {
	return func(m *manager) {
		if d > 0 {
			m.writeTimeout = d
		}
	}
}

// New generates a fresh 256-bit key.
func New(opts ...Option) (Manager, error) {
	key, err := generateKey()
	if err != nil {
		return nil, err
	}
	return newWithKey(key, opts...), nil
}

func newWithKey(key []byte, opts ...Option) *manager {
	m := &manager{
		key:          key,
		writeTimeout: DefaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func generateKey() ([]byte, error) {
	key := make([]byte, _keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating encryption key: %w", err)
	}
	return key, nil
}

// WriteInitializationPayload writes the key announcement line to w. The write is
// abandoned once ctx is done or the write timeout elapses; it is never retried.
func (m *manager) WriteInitializationPayload(ctx context.Context, w io.Writer) error {
	line, err := m.initializationLine()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, m.writeTimeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		_, err := w.Write(line)
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf(_errWritePayload, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf(_errWritePayload, ctx.Err())
	}
}

func (m *manager) initializationLine() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.key == nil {
		return nil, errors.ErrKeyDestroyed
	}

	line, err := json.Marshal(InitializationPayload{
		Version: _payloadVersion,
		Mode:    _payloadMode,
		Key:     base64.StdEncoding.EncodeToString(m.key),
	})
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// Encrypt produces a compact JWE (alg=dir, enc=A256GCM). Strings are encrypted
// verbatim, anything else is marshalled to JSON first.
func (m *manager) Encrypt(v any) (string, error) {
	var plain []byte
	switch val := v.(type) {
	case string:
		plain = []byte(val)
	case []byte:
		plain = val
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf(_errEncrypt, err)
		}
		plain = b
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.key == nil {
		return "", errors.ErrKeyDestroyed
	}

	enc, err := jose.NewEncrypter(jose.A256GCM, jose.Recipient{Algorithm: jose.DIRECT, Key: m.key}, nil)
	if err != nil {
		return "", fmt.Errorf(_errEncrypt, err)
	}
	obj, err := enc.Encrypt(plain)
	if err != nil {
		return "", fmt.Errorf(_errEncrypt, err)
	}
	token, err := obj.CompactSerialize()
	if err != nil {
		return "", fmt.Errorf(_errEncrypt, err)
	}
	return token, nil
}

// Decrypt parses a compact JWE restricted to dir/A256GCM and returns its plaintext.
func (m *manager) Decrypt(token string) ([]byte, error) {
	obj, err := jose.ParseEncryptedCompact(token, []jose.KeyAlgorithm{jose.DIRECT}, []jose.ContentEncryption{jose.A256GCM})
	if err != nil {
		return nil, fmt.Errorf(_errDecrypt, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.key == nil {
		return nil, errors.ErrKeyDestroyed
	}

	plain, err := obj.Decrypt(m.key)
	if err != nil {
		return nil, fmt.Errorf(_errDecrypt, err)
	}
	return plain, nil
}

func (m *manager) DecryptInto(token string, v any) error {
	plain, err := m.Decrypt(token)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(plain, v); err != nil {
		return fmt.Errorf(_errDecrypt, err)
	}
	return nil
}

// Destroy zeroes the key. Safe to call more than once.
func (m *manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.key {
		m.key[i] = 0
	}
	m.key = nil
}
