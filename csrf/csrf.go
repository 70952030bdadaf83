// Package csrf implements stateless, session-bound CSRF tokens. A token is
// an AES-GCM sealed blob carrying the session identifier and an expiry
// timestamp; validation needs only the key, no server-side token store.
package csrf

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 4 * time.Hour

// Error definitions
var (
	// ErrInvalidKeySize is returned for keys that are not 16, 24 or 32 bytes.
	ErrInvalidKeySize = errors.New("key must be 16, 24 or 32 bytes")

	// ErrEmptySession is returned when the session identifier is empty.
	ErrEmptySession = errors.New("session identifier must not be empty")

	// ErrTokenInvalid is returned for tokens that fail decoding or
	// authentication, including tokens sealed under a different key.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired is returned for authentic tokens past their expiry.
	ErrTokenExpired = errors.New("token has expired")

	// ErrSessionMismatch is returned for authentic tokens bound to a
	// different session.
	ErrSessionMismatch = errors.New("token is bound to a different session")
)

// Manager generates and validates tokens for one key. A Manager is safe for
// concurrent use.
type Manager struct {
	aead cipher.AEAD
	ttl  time.Duration
	now  func() time.Time
}

// Option adjusts a Manager during construction.
type Option func(*Manager)

// WithTTL overrides the default token lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) { m.ttl = ttl }
}

// withClock injects a clock for tests.
func withClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a Manager from an AES key.
func NewManager(key []byte, opts ...Option) (*Manager, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	m := &Manager{aead: aead, ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// GenerateToken seals a token bound to sessionID, valid for the configured
// lifetime. The result is base64 URL-safe and contains no padding.
func (m *Manager) GenerateToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrEmptySession
	}

	nonce := make([]byte, m.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	expiry := m.now().Add(m.ttl).Unix()
	plaintext := make([]byte, 8+len(sessionID))
	binary.BigEndian.PutUint64(plaintext, uint64(expiry))
	copy(plaintext[8:], sessionID)

	sealed := m.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// ValidateToken checks that token is authentic, unexpired and bound to
// sessionID. The session binding is checked only after authentication
// succeeds, so ErrSessionMismatch implies the token was sealed by us.
func (m *Manager) ValidateToken(sessionID, token string) error {
	if sessionID == "" {
		return ErrEmptySession
	}

	sealed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(sealed) < m.aead.NonceSize() {
		return ErrTokenInvalid
	}

	nonce, ciphertext := sealed[:m.aead.NonceSize()], sealed[m.aead.NonceSize():]
	plaintext, err := m.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil || len(plaintext) < 8 {
		return ErrTokenInvalid
	}

	expiry := time.Unix(int64(binary.BigEndian.Uint64(plaintext)), 0)
	if m.now().After(expiry) {
		return ErrTokenExpired
	}
	if string(plaintext[8:]) != sessionID {
		return ErrSessionMismatch
	}
	return nil
}
