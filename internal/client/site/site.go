// Package site is the catalog of pages the client can open and the access
// rule each one is guarded by. Page ids are opaque tokens compared by exact
// string equality.
package site

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/sitegate/internal/common"
)

// Access is the guard a page requires on load.
type Access int

const (
	// Public pages need nothing, including the login entry point.
	Public Access = iota
	// LoginRequired pages need any session.
	LoginRequired
	// AdminOnly pages need a session with the admin role.
	AdminOnly
	// Dashboard pages need a session whose allow-list names the page.
	Dashboard
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case LoginRequired:
		return "login"
	case AdminOnly:
		return "admin"
	case Dashboard:
		return "dashboard"
	default:
		return fmt.Sprintf("access(%d)", int(a))
	}
}

type Page struct {
	ID     string
	Title  string
	Access Access
}

// Catalog is an ordered, read-only set of pages.
type Catalog struct {
	pages []Page
}

func NewCatalog(pages ...Page) *Catalog {
	return &Catalog{pages: slices.Clone(pages)}
}

// Default is the demo site: a home page, the login page, a profile page,
// the admin console and four dashboards.
func Default() *Catalog {
	return NewCatalog(
		Page{ID: "index.html", Title: "Home", Access: Public},
		Page{ID: "login.html", Title: "Sign in", Access: Public},
		Page{ID: "profile.html", Title: "Profile", Access: LoginRequired},
		Page{ID: "admin.html", Title: "Admin", Access: AdminOnly},
		Page{ID: "dashboard1.html", Title: "Dashboard 1", Access: Dashboard},
		Page{ID: "dashboard2.html", Title: "Dashboard 2", Access: Dashboard},
		Page{ID: "dashboard3.html", Title: "Dashboard 3", Access: Dashboard},
		Page{ID: "dashboard4.html", Title: "Dashboard 4", Access: Dashboard},
	)
}

// Find returns the page with the given id, or common.ErrPageNotFound.
func (c *Catalog) Find(id string) (Page, error) {
	for _, p := range c.pages {
		if p.ID == id {
			return p, nil
		}
	}
	return Page{}, fmt.Errorf("%w: %q", common.ErrPageNotFound, id)
}

// Pages returns all pages in catalog order.
func (c *Catalog) Pages() []Page {
	return slices.Clone(c.pages)
}

// DashboardLinks returns the ids of every dashboard page, in catalog order.
// These are the nav links whose visibility depends on the session allow-list.
func (c *Catalog) DashboardLinks() []string {
	var ids []string
	for _, p := range c.pages {
		if p.Access == Dashboard {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
