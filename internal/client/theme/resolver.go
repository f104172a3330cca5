// Package theme picks the light/dark rendering for a page load.
//
// Resolution is recomputed from persisted inputs on every load, highest
// precedence first: an explicit override, the session user's stored
// preference, the global fallback, then "system". The logical result is
// reduced to light or dark with the OS preference, applied to the page
// root, and written back as the new global fallback.
package theme

import (
	"context"

	"github.com/dmitrijs2005/sitegate/internal/client/session"
	"github.com/dmitrijs2005/sitegate/internal/logging"
)

// SessionFunc returns the current session, or nil when logged out.
type SessionFunc func(ctx context.Context) *session.Session

// Preferences is the part of the session store the resolver needs.
type Preferences interface {
	ReadPreference(ctx context.Context, username string) (*session.Preference, error)
	WritePreference(ctx context.Context, username string, p session.Preference) error
	ReadGlobalTheme(ctx context.Context) (string, error)
	WriteGlobalTheme(ctx context.Context, value string) error
}

// Root receives the effective theme, like the data-theme attribute on a
// document root.
type Root interface {
	SetTheme(effective Mode)
}

// Resolution is the outcome of one resolve pass.
type Resolution struct {
	Logical   Mode
	Effective Mode
}

// Label is the toggle control text for r.
func (r Resolution) Label() string { return Label(r.Logical, r.Effective) }

type Resolver struct {
	prefs   Preferences
	current SessionFunc
	scheme  SchemeSource
	logger  logging.Logger
}

func NewResolver(prefs Preferences, current SessionFunc, scheme SchemeSource, logger logging.Logger) *Resolver {
	if current == nil {
		current = func(context.Context) *session.Session { return nil }
	}
	if scheme == nil {
		scheme = StaticScheme(false)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Resolver{prefs: prefs, current: current, scheme: scheme, logger: logger}
}

// Resolve computes the theme for root. Pass "" as override for a normal
// page load. The returned error reports a failed write of the global
// fallback; the theme has been applied regardless.
func (r *Resolver) Resolve(ctx context.Context, root Root, override Mode) (Resolution, error) {
	logical := override

	if logical == "" {
		logical = r.userTheme(ctx)
	}

	if logical == "" {
		global, err := r.prefs.ReadGlobalTheme(ctx)
		if err != nil {
			r.logger.Warn(ctx, "global theme unavailable", "error", err)
		}
		logical = Mode(global)
	}

	if logical == "" {
		logical = System
	}

	res := Resolution{Logical: logical, Effective: Effective(logical, r.scheme.PrefersDark())}
	if root != nil {
		root.SetTheme(res.Effective)
	}
	r.logger.Debug(ctx, "theme resolved", "logical", res.Logical, "effective", res.Effective)

	return res, r.prefs.WriteGlobalTheme(ctx, string(res.Effective))
}

// Cycle advances the session user's stored theme one step (from system when
// none is stored), saves it if somebody is logged in, and resolves with the
// new value as override.
func (r *Resolver) Cycle(ctx context.Context, root Root) (Resolution, error) {
	current := r.userTheme(ctx)
	if current == "" {
		current = System
	}
	return r.SetPreference(ctx, root, Next(current))
}

// SetPreference saves mode as the session user's theme, if logged in, and
// resolves with it as override.
func (r *Resolver) SetPreference(ctx context.Context, root Root, mode Mode) (Resolution, error) {
	if sess := r.current(ctx); sess != nil && sess.Username != "" {
		if err := r.savePreference(ctx, sess.Username, mode); err != nil {
			return Resolution{}, err
		}
	}
	return r.Resolve(ctx, root, mode)
}

func (r *Resolver) savePreference(ctx context.Context, username string, mode Mode) error {
	p, err := r.prefs.ReadPreference(ctx, username)
	if err != nil {
		return err
	}
	if p == nil {
		p = &session.Preference{}
	}
	p.Theme = string(mode)
	return r.prefs.WritePreference(ctx, username, *p)
}

// userTheme is the stored theme of the session user, or "".
func (r *Resolver) userTheme(ctx context.Context) Mode {
	sess := r.current(ctx)
	if sess == nil || sess.Username == "" {
		return ""
	}
	p, err := r.prefs.ReadPreference(ctx, sess.Username)
	if err != nil {
		r.logger.Warn(ctx, "preference unavailable", "username", sess.Username, "error", err)
		return ""
	}
	if p == nil {
		return ""
	}
	return Mode(p.Theme)
}
