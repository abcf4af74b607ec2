package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims(now time.Time) *Claims {
	return &Claims{
		UserID:  42,
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestNewCodecRejectsEmptySecret(t *testing.T) {
	_, err := NewCodec("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestCodecRoundTrip(t *testing.T) {
	codec, err := NewCodec("test-secret")
	require.NoError(t, err)

	now := time.Now().Truncate(time.Second)
	token, err := codec.Encode(testClaims(now))
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "alice@example.com", claims.Email())
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestCodecRejectsWrongSecret(t *testing.T) {
	issuerCodec, err := NewCodec("right-secret")
	require.NoError(t, err)
	otherCodec, err := NewCodec("wrong-secret")
	require.NoError(t, err)

	token, err := issuerCodec.Encode(testClaims(time.Now().Truncate(time.Second)))
	require.NoError(t, err)

	_, err = otherCodec.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestCodecRejectsTamperedSignature(t *testing.T) {
	codec, err := NewCodec("test-secret")
	require.NoError(t, err)

	token, err := codec.Encode(testClaims(time.Now().Truncate(time.Second)))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestCodecRejectsTamperedPayload(t *testing.T) {
	codec, err := NewCodec("test-secret")
	require.NoError(t, err)

	token, err := codec.Encode(testClaims(time.Now().Truncate(time.Second)))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Swap in the payload of a token signed with another secret.
	otherCodec, err := NewCodec("other-secret")
	require.NoError(t, err)
	other := testClaims(time.Now().Truncate(time.Second))
	other.UserID = 99
	otherToken, err := otherCodec.Encode(other)
	require.NoError(t, err)
	otherParts := strings.Split(otherToken, ".")

	forged := parts[0] + "." + otherParts[1] + "." + parts[2]
	_, err = codec.Decode(forged)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestCodecRejectsMalformedToken(t *testing.T) {
	codec, err := NewCodec("test-secret")
	require.NoError(t, err)

	for _, token := range []string{
		"",
		"not-a-token",
		"only.two",
		"a.b.c.d",
		"!!!.###.$$$",
	} {
		_, err := codec.Decode(token)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", token)
	}
}

func TestCodecDecodeIgnoresExpiry(t *testing.T) {
	codec, err := NewCodec("test-secret")
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour).Truncate(time.Second)
	claims := testClaims(past)
	token, err := codec.Encode(claims)
	require.NoError(t, err)

	// Signature checks out even though the token is stale; expiry is the
	// validator's concern.
	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, claims.ExpiresAt.Unix(), decoded.ExpiresAt.Unix())
}
