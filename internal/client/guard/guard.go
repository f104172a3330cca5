// Package guard decides, for each page load, whether the current session may
// view the page and where to send the visitor otherwise. It also produces
// sessions (Login) and destroys them (Logout).
//
// None of this is security: the identity table and the stored session are
// both visible to anyone holding the client. The guard only steers
// navigation.
package guard

import (
	"context"

	"github.com/dmitrijs2005/sitegate/internal/client/directory"
	"github.com/dmitrijs2005/sitegate/internal/client/session"
	"github.com/dmitrijs2005/sitegate/internal/client/site"
	"github.com/dmitrijs2005/sitegate/internal/logging"
)

const (
	LoginPage        = "login.html"
	AdminPage        = "admin.html"
	DefaultDashboard = "dashboard1.html"

	InvalidCredentialsMessage = "Invalid username or password."
	PermissionDeniedNotice    = "You do not have permission to access this dashboard."
)

// Identities is the lookup capability of the user directory.
type Identities interface {
	Lookup(username, password string) (directory.Identity, bool)
}

// Sessions is the part of the session store the guard needs.
type Sessions interface {
	ReadSession(ctx context.Context) (*session.Session, error)
	WriteSession(ctx context.Context, sess session.Session) error
	ClearSession(ctx context.Context) error
}

type Guard struct {
	users    Identities
	sessions Sessions
	logger   logging.Logger
}

func New(users Identities, sessions Sessions, logger logging.Logger) *Guard {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Guard{users: users, sessions: sessions, logger: logger}
}

// Current returns the active session, or nil. A storage failure is logged
// and treated as logged out.
func (g *Guard) Current(ctx context.Context) *session.Session {
	sess, err := g.sessions.ReadSession(ctx)
	if err != nil {
		g.logger.Warn(ctx, "session unavailable, treating as logged out", "error", err)
		return nil
	}
	return sess
}

// Login checks the credentials against the directory and, on success,
// stores a password-free session. The error is non-nil only when the
// session could not be written.
func (g *Guard) Login(ctx context.Context, username, password string) (LoginResult, error) {
	id, ok := g.users.Lookup(username, password)
	if !ok {
		g.logger.Info(ctx, "login rejected", "username", username)
		return LoginResult{Success: false, Message: InvalidCredentialsMessage}, nil
	}

	sess := session.FromIdentity(id)
	if err := g.sessions.WriteSession(ctx, sess); err != nil {
		return LoginResult{}, err
	}

	target := DefaultDashboard
	if len(sess.Dashboards) > 0 {
		target = sess.Dashboards[0]
	}

	g.logger.Info(ctx, "login succeeded", "username", sess.Username, "role", sess.Role, "redirect", target)
	return LoginResult{Success: true, RedirectTo: target}, nil
}

// Logout clears the session unconditionally and sends the visitor to the
// login page.
func (g *Guard) Logout(ctx context.Context) (Decision, error) {
	if err := g.sessions.ClearSession(ctx); err != nil {
		return Decision{}, err
	}
	g.logger.Info(ctx, "logged out")
	return redirect(LoginPage, ""), nil
}

// RequireLogin allows any session.
func (g *Guard) RequireLogin(ctx context.Context) Decision {
	if g.Current(ctx) == nil {
		return redirect(LoginPage, "")
	}
	return allow()
}

// RequireAdmin allows only admin sessions. A logged-in non-admin is also
// sent to the login page, not to a forbidden page.
func (g *Guard) RequireAdmin(ctx context.Context) Decision {
	sess := g.Current(ctx)
	if sess == nil || !sess.IsAdmin() {
		return redirect(LoginPage, "")
	}
	return allow()
}

// RequireDashboardAccess allows the page only if it is on the session's
// allow-list. A denied visitor is told so and sent to their first granted
// dashboard, or to the login page when they have none.
func (g *Guard) RequireDashboardAccess(ctx context.Context, pageID string) Decision {
	sess := g.Current(ctx)
	if sess == nil {
		return redirect(LoginPage, "")
	}
	if sess.Allows(pageID) {
		return allow()
	}

	fallback := LoginPage
	if len(sess.Dashboards) > 0 {
		fallback = sess.Dashboards[0]
	}
	g.logger.Info(ctx, "dashboard denied", "username", sess.Username, "page", pageID, "redirect", fallback)
	return redirect(fallback, PermissionDeniedNotice)
}

// Check runs the guard the page's access rule calls for.
func (g *Guard) Check(ctx context.Context, page site.Page) Decision {
	switch page.Access {
	case site.Public:
		return allow()
	case site.LoginRequired:
		return g.RequireLogin(ctx)
	case site.AdminOnly:
		return g.RequireAdmin(ctx)
	case site.Dashboard:
		return g.RequireDashboardAccess(ctx, page.ID)
	default:
		return redirect(LoginPage, "")
	}
}

// Nav computes navigation visibility for the current session. The
// anonymous-only block is hidden once somebody is logged in.
func (g *Guard) Nav(ctx context.Context, dashboardLinks []string) NavState {
	sess := g.Current(ctx)

	nav := NavState{
		LoggedIn:   sess != nil,
		LoggedOut:  sess == nil,
		Dashboards: make(map[string]bool, len(dashboardLinks)),
	}
	if sess != nil {
		nav.Username = sess.Username
		nav.Admin = sess.IsAdmin()
	}
	for _, link := range dashboardLinks {
		nav.Dashboards[link] = sess != nil && sess.Allows(link)
	}
	return nav
}
