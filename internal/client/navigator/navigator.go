// Package navigator plays the part of the browser: it opens pages, runs the
// page's guard, follows redirects and resolves the theme on every load.
package navigator

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sitegate/internal/client/guard"
	"github.com/dmitrijs2005/sitegate/internal/client/site"
	"github.com/dmitrijs2005/sitegate/internal/client/theme"
	"github.com/dmitrijs2005/sitegate/internal/common"
	"github.com/dmitrijs2005/sitegate/internal/logging"
)

// MaxRedirects bounds how many guard redirects one Open follows.
const MaxRedirects = 5

// Document is the rendered page root. Its theme is set by the resolver.
type Document struct {
	Theme theme.Mode
}

func (d *Document) SetTheme(m theme.Mode) { d.Theme = m }

// Visit describes a completed page load.
type Visit struct {
	Page      site.Page
	Notices   []string
	Redirects []string
	Theme     theme.Resolution
	Nav       guard.NavState
}

type Navigator struct {
	catalog  *site.Catalog
	guard    *guard.Guard
	resolver *theme.Resolver
	logger   logging.Logger

	doc     Document
	current *Visit
}

func New(catalog *site.Catalog, g *guard.Guard, r *theme.Resolver, logger logging.Logger) *Navigator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Navigator{catalog: catalog, guard: g, resolver: r, logger: logger}
}

// Current is the last successful visit, or nil before the first Open.
func (n *Navigator) Current() *Visit { return n.current }

// Document is the page root as last rendered.
func (n *Navigator) Document() Document { return n.doc }

// Open loads pageID. Guard redirects are followed, each carrying its notice
// into the visit; the theme is resolved for the page that finally renders.
//
// When a redirect points at a page the catalog does not have, the error is
// returned together with the unrendered visit so its notices and redirect
// trail are not lost.
func (n *Navigator) Open(ctx context.Context, pageID string) (*Visit, error) {
	visit := &Visit{}
	target := pageID

	for hop := 0; ; hop++ {
		page, err := n.catalog.Find(target)
		if err != nil {
			if hop == 0 {
				return nil, err
			}
			return visit, err
		}

		d := n.guard.Check(ctx, page)
		if d.Allowed() {
			visit.Page = page
			break
		}

		if hop == MaxRedirects {
			return nil, fmt.Errorf("%w: stopped at %q", common.ErrTooManyRedirects, target)
		}
		if d.Notice != "" {
			visit.Notices = append(visit.Notices, d.Notice)
		}
		n.logger.Debug(ctx, "redirect", "from", target, "to", d.Target)
		visit.Redirects = append(visit.Redirects, d.Target)
		target = d.Target
	}

	return n.render(ctx, visit), nil
}

// Login authenticates and, on success, opens the page login chose.
// Invalid credentials return the result with a nil visit.
func (n *Navigator) Login(ctx context.Context, username, password string) (guard.LoginResult, *Visit, error) {
	res, err := n.guard.Login(ctx, username, password)
	if err != nil || !res.Success {
		return res, nil, err
	}
	visit, err := n.Open(ctx, res.RedirectTo)
	return res, visit, err
}

// Logout clears the session and opens the login page.
func (n *Navigator) Logout(ctx context.Context) (*Visit, error) {
	d, err := n.guard.Logout(ctx)
	if err != nil {
		return nil, err
	}
	return n.Open(ctx, d.Target)
}

// Toggle advances the theme on the current page.
func (n *Navigator) Toggle(ctx context.Context) (theme.Resolution, error) {
	res, err := n.resolver.Cycle(ctx, &n.doc)
	n.remember(res)
	return res, err
}

// SetTheme stores mode as the user's theme and applies it to the current page.
func (n *Navigator) SetTheme(ctx context.Context, mode theme.Mode) (theme.Resolution, error) {
	res, err := n.resolver.SetPreference(ctx, &n.doc, mode)
	n.remember(res)
	return res, err
}

func (n *Navigator) render(ctx context.Context, visit *Visit) *Visit {
	res, err := n.resolver.Resolve(ctx, &n.doc, "")
	if err != nil {
		// the page still renders with the resolved theme
		n.logger.Warn(ctx, "theme fallback not saved", "error", err)
	}
	visit.Theme = res
	visit.Nav = n.guard.Nav(ctx, n.catalog.DashboardLinks())
	n.current = visit
	return visit
}

func (n *Navigator) remember(res theme.Resolution) {
	if n.current != nil && res.Effective != "" {
		n.current.Theme = res
	}
}
