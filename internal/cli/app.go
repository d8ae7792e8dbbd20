package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/tourmate-app/tourmate-cli/internal/admin"
	"github.com/tourmate-app/tourmate-cli/internal/api"
	"github.com/tourmate-app/tourmate-cli/internal/auth"
	"github.com/tourmate-app/tourmate-cli/internal/config"
	"github.com/tourmate-app/tourmate-cli/internal/logging"
	"github.com/tourmate-app/tourmate-cli/internal/models"
	"github.com/tourmate-app/tourmate-cli/internal/session"
	"github.com/tourmate-app/tourmate-cli/internal/store"
)

// App wires the interactive shell together: the API client, the injected
// session store, the auth flow, and the admin panel.
type App struct {
	config *config.Config
	log    logging.Logger

	db      *sql.DB
	session session.Store
	api     *api.Client
	flow    *auth.Flow
	panel   *admin.Panel

	current *models.Session
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Error(ctx, "opening local store failed", "path", cfg.SessionDBPath, "error", err)
		return nil, err
	}

	sessStore := session.NewSQLStore(db)
	apiClient := api.New(cfg.APIBaseURL, sessStore, log)

	return &App{
		config:  cfg,
		log:     log,
		db:      db,
		session: sessStore,
		api:     apiClient,
		flow:    auth.NewFlow(apiClient, sessStore, log),
		panel:   admin.NewPanel(apiClient, log),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the local store.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) isAdmin() bool {
	return a.current != nil && a.current.User.Role == models.RoleAdmin
}

func (a *App) isGuide() bool {
	return a.current != nil && a.current.User.Role == models.RoleGuide
}

// restoreSession reads the persisted session at startup, the equivalent of
// reading local storage when the page loads.
func (a *App) restoreSession(ctx context.Context) {
	sess, err := a.session.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
		return
	}
	if sess != nil {
		a.current = sess
		printlnFn("Welcome back, " + sess.User.Name + "!")
	}
}
