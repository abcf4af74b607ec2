package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Issuer builds claims for an authenticated principal and produces signed
// tokens. Issuance is a pure function of its inputs plus the shared secret;
// publishing a login notification is the caller's concern and must never
// gate whether a token is returned.
type Issuer struct {
	codec *Codec
}

// NewIssuer builds an issuer on top of the codec.
func NewIssuer(codec *Codec) *Issuer {
	return &Issuer{codec: codec}
}

// Issue creates a token for the principal valid from now until now+ttl.
func (i *Issuer) Issue(p Principal, now time.Time, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		return "", time.Time{}, errors.New("token ttl must be positive")
	}

	expiresAt := now.Add(ttl)
	claims := &Claims{
		UserID:  p.UserID,
		IsAdmin: p.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := i.codec.Encode(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
