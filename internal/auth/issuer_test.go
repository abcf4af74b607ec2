package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuerIssue(t *testing.T) {
	codec, err := NewCodec("test-secret")
	require.NoError(t, err)
	issuer := NewIssuer(codec)

	now := time.Now().Truncate(time.Second)
	principal := Principal{UserID: 7, Email: "bob@example.com", IsAdmin: false}

	token, expiresAt, err := issuer.Issue(principal, now, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, principal, claims.Principal())
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestIssuerRejectsNonPositiveTTL(t *testing.T) {
	codec, err := NewCodec("test-secret")
	require.NoError(t, err)
	issuer := NewIssuer(codec)

	now := time.Now()
	for _, ttl := range []time.Duration{0, -time.Second} {
		_, _, err := issuer.Issue(Principal{UserID: 1}, now, ttl)
		assert.Error(t, err)
	}
}
