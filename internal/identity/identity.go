package identity

import (
	"net/http"

	"github.com/juju/errors"
)

// Package identity turns an incoming request into the id of the user making
// it. Authorization decisions are made elsewhere; a Resolver only answers
// "who is calling".

// DefaultHeader carries the caller's asserted identity in header mode.
const DefaultHeader = "X-Authenticated-User-ID"

var (
	// ErrMissingIdentity means the request carries no credential at all.
	ErrMissingIdentity = errors.New("missing identity")
	// ErrMalformedIdentity means a credential is present but cannot be read as text.
	ErrMalformedIdentity = errors.New("malformed identity")
	// ErrInvalidIdentity means a credential was readable but did not verify.
	ErrInvalidIdentity = errors.New("invalid identity")
)

// Resolver resolves the current principal from a request.
type Resolver interface {
	Resolve(r *http.Request) (string, error)
	// Describe names the credential the resolver reads, for error messages.
	Describe() string
}
