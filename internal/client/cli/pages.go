package cli

import (
	"context"
	"fmt"
	"strings"
)

// Open loads page and renders the result.
func (a *App) Open(ctx context.Context, page string) error {
	visit, err := a.nav.Open(ctx, page)
	if err != nil {
		if visit != nil {
			renderTrail(a.out, visit)
		}
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	renderVisit(a.out, visit, a.catalog.DashboardLinks())
	return nil
}

// Pages lists every page with its access rule.
func (a *App) Pages(ctx context.Context) error {
	for _, p := range a.catalog.Pages() {
		fmt.Fprintf(a.out, "%-16s %-12s %s\n", p.ID, p.Access, p.Title)
	}
	return nil
}

// Nav prints the navigation visible to the current session.
func (a *App) Nav(ctx context.Context) error {
	nav := a.guard.Nav(ctx, a.catalog.DashboardLinks())
	fmt.Fprintln(a.out, strings.Join(navLinks(nav, a.catalog.DashboardLinks()), " | "))
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.guard.Current(ctx)
	if sess == nil {
		fmt.Fprintln(a.out, "anonymous")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s) dashboards: %s\n", sess.Username, sess.Role, strings.Join(sess.Dashboards, ", "))
	return nil
}
