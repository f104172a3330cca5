// Package cli provides the interactive site client.
//
// It wires configuration, the local store, the user directory, the access
// guard, the theme resolver and a navigator, then runs a REPL in which each
// "open <page>" is a page load: the page's guard runs, redirects are
// followed and the theme is resolved.
//
// Key features:
//   - Login / Logout against the built-in or a YAML user directory
//   - Open pages with per-page access rules and dashboard allow-lists
//   - Theme show / save / toggle, per user and globally remembered
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
