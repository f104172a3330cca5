// Package directory holds the fixed, read-only table of known identities.
//
// The table is loaded once (from the embedded users.yaml or an external file
// of the same shape) and never changes afterwards; the only capability is
// Lookup.
package directory

import (
	"bytes"
	"crypto/subtle"
	_ "embed"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sitegate/internal/common"
	"gopkg.in/yaml.v3"
)

//go:embed users.yaml
var defaultUsers []byte

type file struct {
	Users []Identity `yaml:"users"`
}

// Directory is an immutable identity table. It is safe for concurrent use.
type Directory struct {
	users []Identity
}

// New copies users into a new Directory. Later changes to the argument do
// not affect the directory.
func New(users []Identity) *Directory {
	d := &Directory{users: make([]Identity, 0, len(users))}
	for _, u := range users {
		d.users = append(d.users, u.clone())
	}
	return d
}

// Default returns the directory compiled into the binary.
func Default() (*Directory, error) {
	return Parse(defaultUsers)
}

// LoadFile reads a YAML user table from path.
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a YAML user table. Unknown fields, empty usernames and
// unknown roles are rejected.
func Parse(data []byte) (*Directory, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInvalidDirectory, err)
	}

	for i, u := range f.Users {
		if u.Username == "" {
			return nil, fmt.Errorf("%w: user #%d has no username", common.ErrorInvalidDirectory, i+1)
		}
		if !u.Role.Valid() {
			return nil, fmt.Errorf("%w: user %q has unknown role %q", common.ErrorInvalidDirectory, u.Username, u.Role)
		}
	}

	return New(f.Users), nil
}

// Lookup returns the first identity whose username and password both match
// exactly. Comparison is case-sensitive with no normalisation.
func (d *Directory) Lookup(username, password string) (Identity, bool) {
	for _, u := range d.users {
		if equal(u.Username, username) && equal(u.Password, password) {
			return u.clone(), true
		}
	}
	return Identity{}, false
}

// Len is the number of identities in the table.
func (d *Directory) Len() int { return len(d.users) }

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
