package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/hydroforum/internal/client/config"
	"github.com/dmitrijs2005/hydroforum/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/hydroforum/internal/client/session"
	"github.com/dmitrijs2005/hydroforum/internal/client/storage"
	"github.com/dmitrijs2005/hydroforum/internal/client/store"
	"github.com/dmitrijs2005/hydroforum/internal/client/view"
	"github.com/dmitrijs2005/hydroforum/internal/filex"
	"github.com/dmitrijs2005/hydroforum/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// App is one running forum client: storage, store, session and controller
// wired from a Config, plus the terminal it talks to.
type App struct {
	config  *config.Config
	ctrl    *Controller
	store   *store.Store
	session *session.Manager
	repo    metadata.Repository
	log     logging.Logger

	db        *sql.DB
	logCloser io.Closer

	reader *bufio.Reader
	out    io.Writer
	ttyFd  int
}

// NewApp opens the configured repository, loads the store and restores the
// last session. The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (_ *App, err error) {
	log, logCloser, err := logging.New(c.LoggingOptions())
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	log = log.With("session_id", uuid.NewString())

	a := &App{
		config:    c,
		log:       log,
		logCloser: logCloser,
		reader:    bufio.NewReader(in),
		out:       out,
		ttyFd:     -1,
	}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		a.ttyFd = int(f.Fd())
	}

	if a.repo, err = a.openRepository(ctx); err != nil {
		return nil, err
	}
	if err := a.load(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// load builds the store, session and controller on top of a.repo.
func (a *App) load(ctx context.Context) error {
	st, err := store.New(ctx, a.repo, store.WithLogger(a.log))
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	sm := session.NewManager(a.repo)
	if err := sm.Restore(ctx, st); err != nil {
		return err
	}
	if u, ok := sm.Current(); ok {
		a.log.Info(ctx, "session restored", "user_id", u.ID, "username", u.Username)
	}

	c := a.config
	opts := view.Options{Preview: c.ContentPreview}
	var r view.Renderer = view.NewTableRenderer(opts)
	if c.RenderFormat == config.RenderHTML {
		r = view.NewHTMLRenderer(opts)
	}

	a.store, a.session = st, sm
	a.ctrl = NewController(st, sm, ControllerOptions{
		Renderer:   r,
		View:       opts,
		Logger:     a.log,
		Out:        a.out,
		Clock:      time.Now,
		NoticeTTL:  c.NoticeTTL,
		SuccessTTL: c.SuccessTTL,
	})
	return nil
}

// Reset deletes every stored key and starts over with a freshly seeded
// forum and no session.
func (a *App) Reset(ctx context.Context) error {
	keys, err := a.repo.List(ctx)
	if err != nil {
		return err
	}
	if err := a.repo.Clear(ctx); err != nil {
		return err
	}
	a.log.Warn(ctx, "local data cleared", "keys", len(keys))

	if err := a.load(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %d keys\n", len(keys))
	return nil
}

func (a *App) openRepository(ctx context.Context) (metadata.Repository, error) {
	if a.config.Ephemeral {
		a.log.Debug(ctx, "using in-memory repository")
		return metadata.NewMemoryRepository(), nil
	}

	if err := filex.EnsureDir(a.config.DataDir); err != nil {
		return nil, err
	}
	db, err := storage.InitDatabase(ctx, a.config.DSN())
	if err != nil {
		return nil, fmt.Errorf("init database %s: %w", a.config.DSN(), err)
	}
	a.db = db
	a.log.Debug(ctx, "database ready", "dsn", a.config.DSN())
	return metadata.NewSQLiteRepository(db), nil
}

// Close releases the database and the log file.
func (a *App) Close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
		a.db = nil
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
		a.logCloser = nil
	}
	return errors.Join(errs...)
}

// Run starts the interactive loop and blocks until the user exits, input
// ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "HydroHelper forum. Type \"help\" for commands.")
	if err := a.ctrl.Render(); err != nil {
		return err
	}
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.ctrl.CurrentUser()
	return ok
}

func (a *App) getStatus() string {
	status := "guest"
	if u, ok := a.ctrl.CurrentUser(); ok {
		status = u.Username
	}
	if f := a.ctrl.Filter(); f != "" {
		status += " [" + f + "]"
	}
	return status
}
