package auth

import (
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Codec encodes claims into signed HS256 tokens and decodes them back.
// The wire format is the standard three base64url segments joined by dots;
// the algorithm is fixed and treated as part of the format. Decode verifies
// the signature but deliberately does not check expiry, so codec failures
// and staleness failures stay distinguishable for the Validator.
type Codec struct {
	secret []byte
}

// NewCodec builds a codec for the given shared secret.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Encode serializes and signs the claims.
func (c *Codec) Encode(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode splits the token, verifies the MAC and returns the parsed claims.
// Signature comparison inside the jwt library is constant-time. Returns
// ErrInvalidSignature on MAC mismatch and ErrTokenMalformed on anything
// structurally wrong.
func (c *Codec) Decode(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrInvalidSignature
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
