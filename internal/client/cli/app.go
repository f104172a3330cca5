package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/sitegate/internal/client/config"
	"github.com/dmitrijs2005/sitegate/internal/client/directory"
	"github.com/dmitrijs2005/sitegate/internal/client/guard"
	"github.com/dmitrijs2005/sitegate/internal/client/navigator"
	"github.com/dmitrijs2005/sitegate/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/sitegate/internal/client/session"
	"github.com/dmitrijs2005/sitegate/internal/client/site"
	"github.com/dmitrijs2005/sitegate/internal/client/storage"
	"github.com/dmitrijs2005/sitegate/internal/client/theme"
	"github.com/dmitrijs2005/sitegate/internal/logging"
	"github.com/google/uuid"
)

// StartPage is opened when the App starts.
const StartPage = "index.html"

type App struct {
	config  *config.Config
	db      *sql.DB
	catalog *site.Catalog
	repo    localstorage.Repository
	guard   *guard.Guard
	nav     *navigator.Navigator
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local store named by c and wires the directory, guard,
// theme resolver and navigator over it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	base, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := base.With("instance", uuid.NewString())

	users, err := loadDirectory(c.DirectoryFile)
	if err != nil {
		return nil, err
	}

	scheme, err := schemeSource(c.ColorScheme)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, c.StorePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.StorePath, "error", err)
		return nil, err
	}

	a := newApp(localstorage.NewSQLiteRepository(db), users, scheme, logger)
	a.config = c
	a.db = db
	return a, nil
}

func newApp(repo localstorage.Repository, users *directory.Directory, scheme theme.SchemeSource, logger logging.Logger) *App {
	store := session.NewStore(repo, logger)
	g := guard.New(users, store, logger)
	r := theme.NewResolver(store, g.Current, scheme, logger)
	catalog := site.Default()

	return &App{
		catalog: catalog,
		repo:    repo,
		guard:   g,
		nav:     navigator.New(catalog, g, r, logger),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

func loadDirectory(path string) (*directory.Directory, error) {
	if path == "" {
		return directory.Default()
	}
	return directory.LoadFile(path)
}

// schemeSource maps the configured color scheme to a SchemeSource. An empty
// value, or "auto", detects it from the environment.
func schemeSource(value string) (theme.SchemeSource, error) {
	switch value {
	case "", "auto":
		return theme.NewEnvScheme(), nil
	case string(theme.Light):
		return theme.StaticScheme(false), nil
	case string(theme.Dark):
		return theme.StaticScheme(true), nil
	default:
		return nil, fmt.Errorf("unknown color scheme %q (want light, dark or auto)", value)
	}
}

// Run opens the start page and runs the REPL until the user exits or input
// ends. The local store is closed on return.
func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}

	printlnFn("Welcome to the site CLI (type 'help' for commands)")
	_ = a.Open(ctx, StartPage)

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.guard.Current(ctx) != nil
}
