package identity

import (
	"net/http"
	"net/textproto"

	"github.com/juju/errors"
)

// Header trusts whatever identity the caller puts in a request header. It
// stands in for a real authentication layer and verifies nothing.
type Header struct {
	Name string
	key  string
}

// NewHeader returns a Header resolver for name, or DefaultHeader if empty.
func NewHeader(name string) *Header {
	if name == "" {
		name = DefaultHeader
	}
	return &Header{Name: name, key: textproto.CanonicalMIMEHeaderKey(name)}
}

// Resolve returns the header value. An absent header and a present but empty
// one are different: only the former is ErrMissingIdentity.
func (h *Header) Resolve(r *http.Request) (string, error) {
	vals, ok := r.Header[h.key]
	if !ok || len(vals) == 0 {
		return "", errors.Annotatef(ErrMissingIdentity, "header %s", h.Name)
	}
	v := vals[0]
	if !IsVisibleText(v) {
		return "", errors.Annotatef(ErrMalformedIdentity, "header %s", h.Name)
	}
	return v, nil
}

// Describe names the header, e.g. "X-Authenticated-User-ID header".
func (h *Header) Describe() string { return h.Name + " header" }

// IsVisibleText reports whether s only holds visible ASCII, spaces and tabs.
// Header values with other bytes (obs-text, controls) are not readable as text.
func IsVisibleText(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
