package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sitegate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a username and password and signs in. On success the
// page chosen by login is opened and rendered. Rejected credentials print
// the login message and return common.ErrInvalidCredential.
//
// The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, visit, err := a.nav.Login(ctx, userName, string(password))
	if err != nil {
		if visit != nil {
			renderTrail(a.out, visit)
		}
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return common.ErrInvalidCredential
	}

	renderVisit(a.out, visit, a.catalog.DashboardLinks())
	return nil
}

// Logout ends the session and renders the login page.
func (a *App) Logout(ctx context.Context) error {
	visit, err := a.nav.Logout(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	renderVisit(a.out, visit, a.catalog.DashboardLinks())
	return nil
}
