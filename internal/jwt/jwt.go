package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = fmt.Errorf("token is invalid")
	ErrSignToken    = fmt.Errorf("failed to sign token")
	ErrParseToken   = fmt.Errorf("failed to parse token")
)

// Verifier signs and checks HS256 tokens against one shared secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// SignKey mints a token the report endpoint accepts, for callers issuing
// access and for tests.
func (v *Verifier) SignKey(claims map[string]interface{}) (string, error) {
	// Set 'exp' to 24 hours from now if not provided
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(24 * time.Hour).Unix()
	}
	claims["iat"] = time.Now().Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims))

	signedToken, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("SignKey: %w -- %w", ErrSignToken, err)
	}

	return signedToken, nil
}

func (v *Verifier) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("VerifyToken: %w -- %w", ErrParseToken, err)
	}

	if !parsed.Valid {
		return nil, fmt.Errorf("VerifyToken: %w", ErrInvalidToken)
	}

	return claims, nil
}
