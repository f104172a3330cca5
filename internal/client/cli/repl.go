package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Open(ctx context.Context, page string) error
	Pages(ctx context.Context) error
	Nav(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Theme(ctx context.Context, mode string) error
	Toggle(ctx context.Context) error
	Storage(ctx context.Context) error
	ClearStorage(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the site CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits at end of input or when the
// user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	help                        show available commands
//	login                       sign in (username and password prompts)
//	logout                      sign out
//	open <page>                 load a page, following guard redirects
//	pages                       list the site's pages
//	nav                         show the navigation for the current session
//	whoami                      show the current session
//	theme [light|dark|system]   show or save the theme
//	toggle                      cycle the theme
//	storage                     list the local store's keys and values
//	clear-storage               wipe the local store
//	exit | quit                 leave the program
//
// Command handlers report failures to the user themselves; their errors are
// not acted on here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("site %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: open, pages, nav, whoami, theme, toggle, storage, clear-storage, logout, exit")
			} else {
				printlnFn("Available commands: open, pages, nav, whoami, theme, toggle, storage, clear-storage, login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <page>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "pages":
			_ = a.Pages(ctx)

		case "nav":
			_ = a.Nav(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "theme":
			mode := ""
			if len(args) > 0 {
				mode = args[0]
			}
			_ = a.Theme(ctx, mode)

		case "toggle":
			_ = a.Toggle(ctx)

		case "storage":
			_ = a.Storage(ctx)

		case "clear-storage":
			_ = a.ClearStorage(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
