package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
)

// Storage prints every key in the local store with its raw value, sorted
// by key.
func (a *App) Storage(ctx context.Context) error {
	entries, err := a.repo.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "(local storage is empty)")
		return nil
	}
	for _, key := range slices.Sorted(maps.Keys(entries)) {
		fmt.Fprintf(a.out, "%s = %s\n", key, entries[key])
	}
	return nil
}

// ClearStorage wipes the local store: the session, every user's
// preferences and the global theme.
func (a *App) ClearStorage(ctx context.Context) error {
	if err := a.repo.Clear(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	a.logger.Info(ctx, "local storage cleared")
	fmt.Fprintln(a.out, "Local storage cleared.")
	return nil
}
