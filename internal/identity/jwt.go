package identity

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/juju/errors"
)

const issuer = "bola-go"

// JWT resolves the caller from an HS256 bearer token's subject.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWT returns a JWT resolver and issuer. ttl <= 0 defaults to one hour.
func NewJWT(secret string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = 60 * time.Minute
	}
	return &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the lifetime of issued tokens.
func (j *JWT) TTL() time.Duration { return j.ttl }

// Issue signs a token for userID.
func (j *JWT) Issue(userID string) (string, error) {
	now := j.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", errors.Annotate(err, "sign token")
	}
	return signed, nil
}

// Resolve verifies the bearer token and returns its subject.
func (j *JWT) Resolve(r *http.Request) (string, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", errors.Annotate(ErrMissingIdentity, "authorization header")
	}
	if !IsVisibleText(auth) {
		return "", errors.Annotate(ErrMalformedIdentity, "authorization header")
	}
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", errors.Annotate(ErrMalformedIdentity, "expected bearer token")
	}
	tokenStr := strings.TrimSpace(auth[len("Bearer "):])

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !tok.Valid {
		return "", errors.Annotatef(ErrInvalidIdentity, "token: %v", err)
	}
	if claims.Subject == "" {
		return "", errors.Annotate(ErrInvalidIdentity, "token without subject")
	}
	return claims.Subject, nil
}

// Describe names the bearer credential.
func (j *JWT) Describe() string { return "Authorization bearer token" }
