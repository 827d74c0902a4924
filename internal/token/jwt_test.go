package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueVerify_RoundTrip(t *testing.T) {
	m := NewManager("secret", 0)
	tok, err := m.Issue(42)
	require.NoError(t, err)

	id, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestManager_NoExpiryByDefault(t *testing.T) {
	m := NewManager("secret", 0)
	tok, err := m.Issue(7)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)

	// спустя годы токен всё ещё валиден
	m.now = func() time.Time { return time.Now().Add(10 * 365 * 24 * time.Hour) }
	id, err := m.Verify(tok)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestManager_Expiry(t *testing.T) {
	m := NewManager("secret", time.Hour)
	tok, err := m.Issue(7)
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_Rejects(t *testing.T) {
	m := NewManager("secret-A", 0)
	other := NewManager("secret-B", 0)

	tok, err := other.Issue(5)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		good, _ := m.Issue(5)
		tampered := good[:len(good)-2] + "xx"
		_, err := m.Verify(tampered)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("alg none", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 5}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Verify(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"foo": "bar"}).SignedString([]byte("secret-A"))
		require.NoError(t, err)
		_, err = m.Verify(s)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
