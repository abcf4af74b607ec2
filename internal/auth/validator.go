package auth

import "time"

// Validator is the consumer-side counterpart of the Issuer: it verifies the
// signature, then the expiry, and surfaces the claims or a specific failure.
// Signature verification always runs before the expiry check so forged
// tokens take the same rejection path whether or not they are also stale.
type Validator struct {
	codec *Codec
}

// NewValidator builds a validator on top of the codec.
func NewValidator(codec *Codec) *Validator {
	return &Validator{codec: codec}
}

// Validate returns the claims carried by the token, or ErrTokenMalformed,
// ErrInvalidSignature or ErrTokenExpired.
func (v *Validator) Validate(tokenStr string, now time.Time) (*Claims, error) {
	claims, err := v.codec.Decode(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.ExpiresAt == nil {
		return nil, ErrTokenMalformed
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}
