package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sitegate/internal/client/theme"
)

// Theme shows the current page's theme, or, given a mode, saves it as the
// user's theme and applies it.
func (a *App) Theme(ctx context.Context, mode string) error {
	if mode == "" {
		if v := a.nav.Current(); v != nil {
			fmt.Fprintln(a.out, "theme:", v.Theme.Label())
		}
		return nil
	}

	m, err := theme.ParseMode(mode)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	res, err := a.nav.SetTheme(ctx, m)
	if err != nil {
		fmt.Fprintln(a.out, "Theme not saved:", err)
		return err
	}
	fmt.Fprintln(a.out, "theme:", res.Label())
	return nil
}

// Toggle cycles the theme light, dark, system.
func (a *App) Toggle(ctx context.Context) error {
	res, err := a.nav.Toggle(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Theme not saved:", err)
		return err
	}
	fmt.Fprintln(a.out, "theme:", res.Label())
	return nil
}
