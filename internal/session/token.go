package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStatus describes the locally observable state of the session token.
//
// The server is the authority on token validity; TokenStatus only lets callers skip a round trip
// that is certain to fail with a session-invalid response.
type TokenStatus int

const (
	TokenMissing TokenStatus = iota
	TokenInvalid
	TokenExpired
	TokenValid
)

var tokenStatusNames = []string{"TokenMissing", "TokenInvalid", "TokenExpired", "TokenValid"}

func (t TokenStatus) String() string {
	if t < 0 || int(t) >= len(tokenStatusNames) {
		return fmt.Sprintf("TokenStatus(%d)", int(t))
	}
	return tokenStatusNames[t]
}

// TokenStatus checks the session token at time now.
//
// Tokens that look like JWTs are parsed without signature verification to read the exp claim.
// Opaque (non-JWT) tokens and JWTs without an exp claim are reported as TokenValid.
func (s *Session) TokenStatus(now time.Time) TokenStatus {
	token := s.Token()
	if token == "" {
		return TokenMissing
	}

	if strings.Count(token, ".") != 2 {
		return TokenValid
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &jwt.RegisteredClaims{}

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenInvalid
	}

	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(now) {
		return TokenExpired
	}

	return TokenValid
}
