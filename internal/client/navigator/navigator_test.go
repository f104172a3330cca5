package navigator

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/sitegate/internal/client/directory"
	"github.com/dmitrijs2005/sitegate/internal/client/guard"
	"github.com/dmitrijs2005/sitegate/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/sitegate/internal/client/session"
	"github.com/dmitrijs2005/sitegate/internal/client/site"
	"github.com/dmitrijs2005/sitegate/internal/client/theme"
	"github.com/dmitrijs2005/sitegate/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	nav   *Navigator
	repo  *localstorage.MemoryRepository
	store *session.Store
}

func newFixture(t *testing.T, dir *directory.Directory, catalog *site.Catalog, prefersDark bool) *fixture {
	t.Helper()
	if dir == nil {
		var err error
		dir, err = directory.Default()
		require.NoError(t, err)
	}
	if catalog == nil {
		catalog = site.Default()
	}
	repo := localstorage.NewMemoryRepository()
	store := session.NewStore(repo, nil)
	g := guard.New(dir, store, nil)
	r := theme.NewResolver(store, g.Current, theme.StaticScheme(prefersDark), nil)
	return &fixture{nav: New(catalog, g, r, nil), repo: repo, store: store}
}

func TestOpen_AnonymousPublicPage(t *testing.T) {
	f := newFixture(t, nil, nil, false)

	v, err := f.nav.Open(context.Background(), "index.html")
	require.NoError(t, err)
	assert.Equal(t, "index.html", v.Page.ID)
	assert.Empty(t, v.Redirects)
	assert.Empty(t, v.Notices)
	assert.Equal(t, theme.Resolution{Logical: theme.System, Effective: theme.Light}, v.Theme)
	assert.True(t, v.Nav.LoggedOut)
	assert.Equal(t, theme.Light, f.nav.Document().Theme)
	assert.Same(t, v, f.nav.Current())
}

func TestOpen_AnonymousGuardedPagesGoToLogin(t *testing.T) {
	for _, id := range []string{"profile.html", "admin.html", "dashboard2.html"} {
		f := newFixture(t, nil, nil, false)
		v, err := f.nav.Open(context.Background(), id)
		require.NoError(t, err, id)
		assert.Equal(t, "login.html", v.Page.ID, id)
		assert.Equal(t, []string{"login.html"}, v.Redirects, id)
		assert.Empty(t, v.Notices, id)
	}
}

func TestOpen_UnknownPage(t *testing.T) {
	f := newFixture(t, nil, nil, false)
	_, err := f.nav.Open(context.Background(), "nope.html")
	require.True(t, errors.Is(err, common.ErrPageNotFound))
	assert.Nil(t, f.nav.Current())
}

func TestOpen_RedirectToMissingPageKeepsNotice(t *testing.T) {
	f := newFixture(t, nil, nil, false)
	ctx := context.Background()

	stale := session.Session{Username: "ghost", Role: directory.RoleUser, Dashboards: []string{"old.html"}}
	require.NoError(t, f.store.WriteSession(ctx, stale))

	v, err := f.nav.Open(ctx, "dashboard1.html")
	require.True(t, errors.Is(err, common.ErrPageNotFound))
	require.NotNil(t, v)
	assert.Equal(t, []string{guard.PermissionDeniedNotice}, v.Notices)
	assert.Equal(t, []string{"old.html"}, v.Redirects)
	assert.Nil(t, f.nav.Current(), "nothing was rendered")
}

func TestLogin_OpensFirstDashboard(t *testing.T) {
	f := newFixture(t, nil, nil, true)
	ctx := context.Background()

	res, v, err := f.nav.Login(ctx, "jjparkerlee", "123456")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotNil(t, v)
	assert.Equal(t, "dashboard2.html", v.Page.ID)
	assert.Equal(t, "jjparkerlee", v.Nav.Username)
	assert.Equal(t, theme.Dark, v.Theme.Effective)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixture(t, nil, nil, false)

	res, v, err := f.nav.Login(context.Background(), "jjparkerlee", "nope")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, guard.InvalidCredentialsMessage, res.Message)
	assert.Nil(t, v)
}

func TestEndToEnd_DeniedDashboardRedirectsWithNotice(t *testing.T) {
	f := newFixture(t, nil, nil, false)
	ctx := context.Background()

	_, _, err := f.nav.Login(ctx, "jjparkerlee", "123456")
	require.NoError(t, err)

	v, err := f.nav.Open(ctx, "dashboard1.html")
	require.NoError(t, err)
	assert.Equal(t, "dashboard2.html", v.Page.ID)
	assert.Equal(t, []string{"dashboard2.html"}, v.Redirects)
	assert.Equal(t, []string{guard.PermissionDeniedNotice}, v.Notices)

	v, err = f.nav.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "login.html", v.Page.ID)

	v, err = f.nav.Open(ctx, "profile.html")
	require.NoError(t, err)
	assert.Equal(t, "login.html", v.Page.ID)
}

func TestOpen_DeniedWithoutDashboardsGoesToLogin(t *testing.T) {
	dir := directory.New([]directory.Identity{{Username: "viewer", Password: "v", Role: directory.RoleUser}})
	f := newFixture(t, dir, nil, false)
	ctx := context.Background()

	res, v, err := f.nav.Login(ctx, "viewer", "v")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, guard.DefaultDashboard, res.RedirectTo)

	// dashboard1 is the default landing page but not granted.
	assert.Equal(t, "login.html", v.Page.ID)
	assert.Equal(t, []string{guard.PermissionDeniedNotice}, v.Notices)
}

func TestOpen_RedirectLimit(t *testing.T) {
	// A login page that itself needs an admin bounces anonymous visitors
	// back to itself.
	catalog := site.NewCatalog(
		site.Page{ID: "login.html", Access: site.AdminOnly},
		site.Page{ID: "dashboard1.html", Access: site.Dashboard},
	)
	f := newFixture(t, nil, catalog, false)

	_, err := f.nav.Open(context.Background(), "dashboard1.html")
	require.True(t, errors.Is(err, common.ErrTooManyRedirects))
}

func TestToggleAndSetTheme(t *testing.T) {
	f := newFixture(t, nil, nil, true)
	ctx := context.Background()

	_, _, err := f.nav.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	res, err := f.nav.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Light, res.Logical)
	assert.Equal(t, theme.Light, f.nav.Document().Theme)
	assert.Equal(t, res, f.nav.Current().Theme)

	res, err = f.nav.SetTheme(ctx, theme.System)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, res.Effective)

	// Preference survives logout/login for the same user.
	_, err = f.nav.Logout(ctx)
	require.NoError(t, err)
	_, v, err := f.nav.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, theme.System, v.Theme.Logical)
}

func TestThemeFallbackFollowsLastEffective(t *testing.T) {
	f := newFixture(t, nil, nil, false)
	ctx := context.Background()

	_, _, err := f.nav.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	_, err = f.nav.SetTheme(ctx, theme.Dark)
	require.NoError(t, err)

	_, err = f.nav.Logout(ctx)
	require.NoError(t, err)

	// Anonymous load now picks up the global fallback left by admin.
	v, err := f.nav.Open(ctx, "index.html")
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, v.Theme.Logical)
}
