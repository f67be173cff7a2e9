package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid run token")

// runClaims ties a token to one run.
type runClaims struct {
	RunID string `json:"rid"`
	jwt.RegisteredClaims
}

// RunTokens signs and checks the HS256 tokens handed out with every new run.
type RunTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewRunTokens(secret string, ttl time.Duration) *RunTokens {
	return &RunTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for the run and its expiry.
func (t *RunTokens) Issue(runID string) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(t.ttl)
	claims := runClaims{
		RunID: runID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   runID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign run token: %w", err)
	}
	return signed, expires, nil
}

// Parse checks a token and returns the run id it was issued for.
func (t *RunTokens) Parse(token string) (string, error) {
	var claims runClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.RunID == "" {
		return "", fmt.Errorf("%w: no run id", ErrInvalidToken)
	}
	return claims.RunID, nil
}

// ParseBearer accepts "Bearer <token>" and returns the run id.
func (t *RunTokens) ParseBearer(header string) (string, error) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: expected a Bearer token", ErrInvalidToken)
	}
	return t.Parse(strings.TrimSpace(token))
}

// Socketio_JWT_decoder reads the run id from the socket.io handshake auth
// data, which carries the token under "authorization".
func (t *RunTokens) Socketio_JWT_decoder(authData map[string]interface{}) (string, error) {
	header, ok := authData["authorization"].(string)
	if !ok {
		return "", fmt.Errorf("%w: missing authorization", ErrInvalidToken)
	}
	return t.ParseBearer(header)
}
