package cmd

import (
	"fmt"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/lumera-core/lumera-cli/internal/api"
	"github.com/lumera-core/lumera-cli/internal/auth"
	"github.com/lumera-core/lumera-cli/internal/config"
	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/errors"
	"github.com/lumera-core/lumera-cli/internal/log"
	"github.com/lumera-core/lumera-cli/internal/nav"
	"github.com/lumera-core/lumera-cli/internal/session"
	"github.com/lumera-core/lumera-cli/internal/tui"
)

// App bundles the wired layers every command works against.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Store  *session.Store
	Router *nav.Router
	API    *api.Client
	Auth   *auth.Context
}

var (
	appOnce sync.Once
	appInst *App
	appErr  error
)

// getApp builds the application graph once per process: config, logger,
// file-backed session store, router, API client, and the session context
// hydrated from disk.
func getApp(cmd *cobra.Command) (*App, error) {
	appOnce.Do(func() {
		appInst, appErr = buildApp(cmd)
	})
	return appInst, appErr
}

func buildApp(cmd *cobra.Command) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		cfg.APIURL = v
	}
	if v, _ := cmd.Flags().GetBool("no-input"); v {
		cfg.NoInput = true
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = log.ParseLevel(cfg.LogLevel)
	logCfg.Format = log.ParseFormat(cfg.LogFormat)
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	store := session.NewStore(session.NewFileStorage(filepath.Join(dir, "session")), logger)

	router := nav.NewRouter(logger)

	client := api.NewClient(cfg.APIURL, store, router,
		api.WithLogger(logger),
		api.WithHTTPClient(&http.Client{Timeout: cfg.Timeout()}),
	)

	authCtx := auth.NewContext(client, store, logger)
	authCtx.Bootstrap()

	return &App{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Router: router,
		API:    client,
		Auth:   authCtx,
	}, nil
}

// requireAuthenticated fails fast before any request when no session is
// persisted, mirroring what the platform would answer anyway. The check
// runs through the router's guard table, so the recorded location follows
// the same redirects the interactive shell would.
func (a *App) requireAuthenticated() error {
	if landed := a.Router.Resolve(auth.RouteApp, a.Auth.Snapshot()); landed != auth.RouteApp {
		return errors.NewNotLoggedInError()
	}
	return nil
}

// requireCompany additionally demands an active company selection for
// tenant-scoped commands.
func (a *App) requireCompany() error {
	if err := a.requireAuthenticated(); err != nil {
		return err
	}
	if a.Auth.Snapshot().ActiveCompany == nil {
		return errors.NewNoActiveCompanyError()
	}
	return nil
}

// canPrompt reports whether the command may fall back to interactive
// prompts for missing flags.
func (a *App) canPrompt() bool {
	return !a.Config.NoInput && tui.ShouldPrompt()
}

// confirmDeactivation asks before deactivating a record when running
// interactively. Activations and non-interactive runs proceed without
// asking.
func (a *App) confirmDeactivation(what string, status erp.Status) (bool, error) {
	if status != erp.StatusInactive || !a.canPrompt() {
		return true, nil
	}
	return tui.PromptForConfirmation(fmt.Sprintf("Deactivate %s?", what), false)
}
