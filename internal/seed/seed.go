package seed

import (
	"context"
	_ "embed"
	"os"
	"strings"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/reservation"
)

// Package seed loads the fixed demo data the service starts with.

//go:embed seed.yaml
var defaultSeed []byte

// User is a demo account. Password is plain text on purpose: it is hashed
// when the credential table is built.
type User struct {
	ID       string `yaml:"user_id"`
	Password string `yaml:"password"`
}

// Data is the whole fixture.
type Data struct {
	Users        []User                    `yaml:"users"`
	Reservations []reservation.Reservation `yaml:"reservations"`
}

// Load reads the fixture at path, or the embedded default when path is empty.
func Load(path string) (*Data, error) {
	raw := defaultSeed
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Annotatef(err, "read seed file %q", path)
		}
		raw = b
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML fixture.
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, errors.Annotate(err, "decode seed")
	}
	seen := make(map[string]bool, len(d.Reservations))
	for i, r := range d.Reservations {
		if r.ID == "" || r.UserID == "" {
			return nil, errors.NotValidf("reservation #%d without id or owner", i)
		}
		if seen[r.ID] {
			return nil, errors.AlreadyExistsf("reservation %q", r.ID)
		}
		seen[r.ID] = true
	}
	return &d, nil
}

// ByUser groups reservations by owner, keeping file order within each owner.
// The returned owner list is in order of first appearance.
func (d *Data) ByUser() ([]string, map[string][]reservation.Reservation) {
	var owners []string
	groups := make(map[string][]reservation.Reservation)
	for _, r := range d.Reservations {
		if _, ok := groups[r.UserID]; !ok {
			owners = append(owners, r.UserID)
		}
		groups[r.UserID] = append(groups[r.UserID], r)
	}
	return owners, groups
}

// Apply writes every owner's reservations into the store.
func Apply(ctx context.Context, st reservation.Store, d *Data) error {
	owners, groups := d.ByUser()
	for _, u := range owners {
		if err := st.Put(ctx, u, groups[u]); err != nil {
			return errors.Annotatef(err, "seed reservations for %q", u)
		}
	}
	return nil
}
