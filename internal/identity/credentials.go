package identity

import (
	"github.com/juju/errors"
	"golang.org/x/crypto/bcrypt"
)

// Credentials holds bcrypt password hashes for the demo accounts. It is built
// once at startup and only read afterwards.
type Credentials struct {
	hashes map[string][]byte
}

// NewCredentials hashes every password in users (user id -> password).
func NewCredentials(users map[string]string, cost int) (*Credentials, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	c := &Credentials{hashes: make(map[string][]byte, len(users))}
	for id, pw := range users {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
		if err != nil {
			return nil, errors.Annotatef(err, "hash password for %q", id)
		}
		c.hashes[id] = h
	}
	return c, nil
}

// Verify reports whether password matches the stored hash for userID.
func (c *Credentials) Verify(userID, password string) bool {
	h, ok := c.hashes[userID]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(h, []byte(password)) == nil
}
