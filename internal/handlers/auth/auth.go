package auth

import (
	"github.com/Jeomhps/projet-IAC/bola-go/internal/identity"
)

// Package auth provides the demo login and "who am I" endpoints.
// KISS: define a small handler type and a simple constructor.
// The HTTP methods are implemented in separate files (login.go, me.go).

// Handler wires auth endpoints to the demo credentials, the token issuer and
// the resolver used by the secure endpoint.
type Handler struct {
	creds    *identity.Credentials
	tokens   *identity.JWT
	resolver identity.Resolver
}

// New returns a new auth handler.
func New(creds *identity.Credentials, tokens *identity.JWT, resolver identity.Resolver) *Handler {
	return &Handler{creds: creds, tokens: tokens, resolver: resolver}
}
