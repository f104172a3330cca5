package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/sitegate/internal/client/guard"
	"github.com/dmitrijs2005/sitegate/internal/client/navigator"
)

// getStatus is the prompt body: who is logged in, the effective theme and
// the page on screen.
func (a *App) getStatus(ctx context.Context) string {
	user := "anonymous"
	if sess := a.guard.Current(ctx); sess != nil {
		user = sess.Username
	}

	v := a.nav.Current()
	if v == nil {
		return user
	}
	return fmt.Sprintf("%s [%s] %s", user, v.Theme.Effective, v.Page.ID)
}

// renderVisit prints a page load: redirect trail, notices, then the page
// header with its theme and navigation.
func renderVisit(w io.Writer, v *navigator.Visit, links []string) {
	renderTrail(w, v)
	fmt.Fprintf(w, "== %s (%s) ==\n", v.Page.Title, v.Page.ID)
	fmt.Fprintf(w, "theme: %s\n", v.Theme.Label())
	fmt.Fprintf(w, "nav: %s\n", strings.Join(navLinks(v.Nav, links), " | "))
}

// renderTrail prints the redirects followed and the notices collected on
// the way.
func renderTrail(w io.Writer, v *navigator.Visit) {
	for _, target := range v.Redirects {
		fmt.Fprintf(w, "-> redirected to %s\n", target)
	}
	for _, n := range v.Notices {
		fmt.Fprintf(w, "! %s\n", n)
	}
}

// navLinks lists the navigation entries visible for nav, in display order.
func navLinks(nav guard.NavState, links []string) []string {
	out := []string{"index.html"}
	if nav.LoggedOut {
		out = append(out, guard.LoginPage)
	}
	for _, l := range links {
		if nav.Dashboards[l] {
			out = append(out, l)
		}
	}
	if nav.Admin {
		out = append(out, guard.AdminPage)
	}
	if nav.LoggedIn {
		out = append(out, "profile.html", "logout ("+nav.Username+")")
	}
	return out
}
