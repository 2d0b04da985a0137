package auth

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a bearer credential cannot be verified or
// does not resolve to a known principal.
var ErrInvalidToken = errors.New("invalid token")

// Verifier checks bearer tokens issued by the identity provider. Tokens are
// HS256 JWTs whose sub claim carries the user id.
type Verifier struct {
	secret []byte
}

// NewVerifier builds a Verifier from JWT_SECRET. It returns nil when the
// secret is not configured; the authenticated entry points answer 503 in
// that case.
func NewVerifier() *Verifier {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("WARN: JWT_SECRET not set. Authenticated endpoints will be unavailable.")
		return nil
	}
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a bearer token and returns the user id from
// its sub claim.
func (v *Verifier) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}
	return userID, nil
}
