package directory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/sitegate/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ContainsDemoUsers(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	admin, ok := d.Lookup("admin", "admin123")
	require.True(t, ok)
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.Equal(t, []string{"dashboard1.html", "dashboard2.html", "dashboard3.html", "dashboard4.html"}, admin.Dashboards)

	user, ok := d.Lookup("jjparkerlee", "123456")
	require.True(t, ok)
	assert.Equal(t, RoleUser, user.Role)
	assert.Equal(t, []string{"dashboard2.html", "dashboard3.html"}, user.Dashboards)
}

func TestLookup_ExactMatchOnly(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	cases := []struct{ name, user, pass string }{
		{"wrong password", "admin", "admin1234"},
		{"unknown user", "root", "admin123"},
		{"case differs", "Admin", "admin123"},
		{"padded username", " admin", "admin123"},
		{"empty", "", ""},
		{"password of another user", "admin", "123456"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := d.Lookup(tc.user, tc.pass)
			assert.False(t, ok)
		})
	}
}

func TestLookup_FirstMatchWins(t *testing.T) {
	d := New([]Identity{
		{Username: "dup", Password: "p", Role: RoleUser, Dashboards: []string{"a.html"}},
		{Username: "dup", Password: "p", Role: RoleAdmin, Dashboards: []string{"b.html"}},
	})

	got, ok := d.Lookup("dup", "p")
	require.True(t, ok)
	assert.Equal(t, RoleUser, got.Role)
}

func TestDirectory_IsImmutable(t *testing.T) {
	src := []Identity{{Username: "u", Password: "p", Role: RoleUser, Dashboards: []string{"a.html"}}}
	d := New(src)

	src[0].Dashboards[0] = "changed.html"
	got, ok := d.Lookup("u", "p")
	require.True(t, ok)
	assert.Equal(t, []string{"a.html"}, got.Dashboards)

	got.Dashboards[0] = "mutated.html"
	again, _ := d.Lookup("u", "p")
	assert.Equal(t, []string{"a.html"}, again.Dashboards)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"not yaml":      "users: [",
		"unknown role":  "users:\n  - username: u\n    password: p\n    role: root\n",
		"no username":   "users:\n  - password: p\n    role: user\n",
		"unknown field": "users:\n  - username: u\n    password: p\n    role: user\n    email: x\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrorInvalidDirectory))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - username: viewer
    password: v
    role: user
`), 0o600))

	d, err := LoadFile(path)
	require.NoError(t, err)

	got, ok := d.Lookup("viewer", "v")
	require.True(t, ok)
	assert.Empty(t, got.Dashboards)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read directory")
}
