package session

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/sitegate/internal/client/directory"
	"github.com/dmitrijs2005/sitegate/internal/client/repositories/localstorage"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, *localstorage.MemoryRepository) {
	t.Helper()
	repo := localstorage.NewMemoryRepository()
	return NewStore(repo, nil), repo
}

func rawValue(t *testing.T, repo localstorage.Repository, key string) (string, bool) {
	t.Helper()
	v, ok, err := repo.Get(context.Background(), key)
	require.NoError(t, err)
	return v, ok
}

// failingRepo fails every call, standing in for a broken database file.
type failingRepo struct{ err error }

func (f failingRepo) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingRepo) Set(context.Context, string, string) error         { return f.err }
func (f failingRepo) Delete(context.Context, string) error              { return f.err }
func (f failingRepo) List(context.Context) (map[string]string, error)   { return nil, f.err }
func (f failingRepo) Clear(context.Context) error                       { return f.err }

func TestSession_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	want := Session{Username: "jjparkerlee", Role: directory.RoleUser, Dashboards: []string{"dashboard2.html", "dashboard3.html"}}
	require.NoError(t, s.WriteSession(ctx, want))

	got, err := s.ReadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, cmp.Diff(want, *got))
}

func TestSession_StoredShape(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	id := directory.Identity{Username: "admin", Password: "admin123", Role: directory.RoleAdmin, Dashboards: []string{"dashboard1.html"}}
	require.NoError(t, s.WriteSession(ctx, FromIdentity(id)))

	raw, ok := rawValue(t, repo, SessionKey)
	require.True(t, ok)
	assert.JSONEq(t, `{"username":"admin","role":"admin","dashboards":["dashboard1.html"]}`, raw)
	assert.NotContains(t, raw, "admin123")
}

func TestSession_AbsentIsNil(t *testing.T) {
	s, _ := newStore(t)
	got, err := s.ReadSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSession_CorruptValueSelfHeals(t *testing.T) {
	cases := map[string]string{
		"not json":      "{not json",
		"json null":     "null",
		"json string":   `"admin"`,
		"json array":    `["admin"]`,
		"no username":   `{"role":"admin","dashboards":[]}`,
		"bad dashboard": `{"username":"admin","dashboards":"dashboard1.html"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			s, repo := newStore(t)
			ctx := context.Background()
			require.NoError(t, repo.Set(ctx, SessionKey, raw))

			got, err := s.ReadSession(ctx)
			require.NoError(t, err)
			assert.Nil(t, got)

			_, ok := rawValue(t, repo, SessionKey)
			assert.False(t, ok, "corrupt entry must be removed")
		})
	}
}

func TestSession_NullDashboardsReadAsEmpty(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, SessionKey, `{"username":"u","role":"user","dashboards":null}`))

	got, err := s.ReadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotNil(t, got.Dashboards)
	assert.Empty(t, got.Dashboards)
}

func TestSession_ClearIsIdempotent(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteSession(ctx, Session{Username: "u"}))
	require.NoError(t, s.ClearSession(ctx))
	require.NoError(t, s.ClearSession(ctx))

	got, err := s.ReadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSession_Allows(t *testing.T) {
	sess := Session{Dashboards: []string{"dashboard3.html", "dashboard2.html"}}
	assert.True(t, sess.Allows("dashboard2.html"))
	assert.True(t, sess.Allows("dashboard3.html"))
	assert.False(t, sess.Allows("dashboard1.html"))
	assert.False(t, sess.Allows("Dashboard2.html"))
	assert.False(t, Session{}.Allows(""))
}

func TestPreference_RoundTripKeepsUnknownFields(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, PreferenceKey("admin"), `{"theme":"dark","fontSize":14}`))

	p, err := s.ReadPreference(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "dark", p.Theme)

	p.Theme = "system"
	require.NoError(t, s.WritePreference(ctx, "admin", *p))

	raw, _ := rawValue(t, repo, "prefs_admin")
	assert.JSONEq(t, `{"theme":"system","fontSize":14}`, raw)
}

func TestPreference_PerUser(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.WritePreference(ctx, "admin", Preference{Theme: "dark"}))

	p, err := s.ReadPreference(ctx, "jjparkerlee")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = s.ReadPreference(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "dark", p.Theme)
}

func TestPreference_NoThemeField(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, PreferenceKey("u"), `{}`))

	p, err := s.ReadPreference(ctx, "u")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Empty(t, p.Theme)
}

func TestPreference_CorruptValueSelfHeals(t *testing.T) {
	for name, raw := range map[string]string{
		"not json":     "dark",
		"null":         "null",
		"theme number": `{"theme":1}`,
	} {
		t.Run(name, func(t *testing.T) {
			s, repo := newStore(t)
			ctx := context.Background()
			require.NoError(t, repo.Set(ctx, PreferenceKey("u"), raw))

			p, err := s.ReadPreference(ctx, "u")
			require.NoError(t, err)
			assert.Nil(t, p)

			_, ok := rawValue(t, repo, PreferenceKey("u"))
			assert.False(t, ok)
		})
	}
}

func TestGlobalTheme(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	got, err := s.ReadGlobalTheme(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.WriteGlobalTheme(ctx, "dark"))
	got, err = s.ReadGlobalTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	raw, _ := rawValue(t, repo, GlobalThemeKey)
	assert.Equal(t, "dark", raw, "global theme is stored as a bare string")

	require.Error(t, s.WriteGlobalTheme(ctx, "system"))

	require.NoError(t, repo.Set(ctx, GlobalThemeKey, "system"))
	got, err = s.ReadGlobalTheme(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "only light and dark are usable")
}

func TestStore_BackendErrorsWrapped(t *testing.T) {
	boom := errors.New("disk I/O error")
	s := NewStore(failingRepo{err: boom}, nil)
	ctx := context.Background()

	_, err := s.ReadSession(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.WriteSession(ctx, Session{Username: "u"}), boom)
	assert.ErrorIs(t, s.ClearSession(ctx), boom)

	_, err = s.ReadPreference(ctx, "u")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.WritePreference(ctx, "u", Preference{Theme: "dark"}), boom)

	_, err = s.ReadGlobalTheme(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.WriteGlobalTheme(ctx, "light"), boom)
}
