package csrf

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef") // 32 bytes

func TestGenerateAndValidate(t *testing.T) {
	manager, err := NewManager(testKey)
	require.NoError(t, err)

	token, err := manager.GenerateToken("session-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, manager.ValidateToken("session-1", token))
}

func TestTokensAreUnique(t *testing.T) {
	manager, err := NewManager(testKey)
	require.NoError(t, err)

	first, err := manager.GenerateToken("session-1")
	require.NoError(t, err)
	second, err := manager.GenerateToken("session-1")
	require.NoError(t, err)

	// random nonces make even same-session tokens distinct
	assert.NotEqual(t, first, second)
	assert.NoError(t, manager.ValidateToken("session-1", first))
	assert.NoError(t, manager.ValidateToken("session-1", second))
}

func TestValidateRejections(t *testing.T) {
	manager, err := NewManager(testKey)
	require.NoError(t, err)

	token, err := manager.GenerateToken("session-1")
	require.NoError(t, err)

	t.Run("other session", func(t *testing.T) {
		assert.ErrorIs(t, manager.ValidateToken("session-2", token), ErrSessionMismatch)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.ErrorIs(t, manager.ValidateToken("session-1", "not!base64!"), ErrTokenInvalid)
	})

	t.Run("empty token", func(t *testing.T) {
		assert.ErrorIs(t, manager.ValidateToken("session-1", ""), ErrTokenInvalid)
	})

	t.Run("tampered token", func(t *testing.T) {
		tampered := []byte(token)
		tampered[len(tampered)-1] ^= 'x'
		assert.ErrorIs(t, manager.ValidateToken("session-1", string(tampered)), ErrTokenInvalid)
	})

	t.Run("other key", func(t *testing.T) {
		otherKey := []byte(strings.Repeat("k", 32))
		other, err := NewManager(otherKey)
		require.NoError(t, err)
		assert.ErrorIs(t, other.ValidateToken("session-1", token), ErrTokenInvalid)
	})

	t.Run("empty session", func(t *testing.T) {
		assert.ErrorIs(t, manager.ValidateToken("", token), ErrEmptySession)
		_, err := manager.GenerateToken("")
		assert.ErrorIs(t, err, ErrEmptySession)
	})
}

func TestTokenExpiry(t *testing.T) {
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	manager, err := NewManager(testKey,
		WithTTL(time.Hour),
		withClock(func() time.Time { return current }),
	)
	require.NoError(t, err)

	token, err := manager.GenerateToken("session-1")
	require.NoError(t, err)

	assert.NoError(t, manager.ValidateToken("session-1", token))

	current = current.Add(59 * time.Minute)
	assert.NoError(t, manager.ValidateToken("session-1", token))

	current = current.Add(2 * time.Minute)
	assert.ErrorIs(t, manager.ValidateToken("session-1", token), ErrTokenExpired)
}

func TestNewManagerKeySizes(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		_, err := NewManager(make([]byte, size))
		assert.NoError(t, err, "key size %d", size)
	}
	for _, size := range []int{0, 8, 17, 64} {
		_, err := NewManager(make([]byte, size))
		assert.ErrorIs(t, err, ErrInvalidKeySize, "key size %d", size)
	}
}
