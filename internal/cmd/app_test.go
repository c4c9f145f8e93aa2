package cmd

import (
	"testing"

	"github.com/lumera-core/lumera-cli/internal/auth"
	"github.com/lumera-core/lumera-cli/internal/config"
	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/errors"
	"github.com/lumera-core/lumera-cli/internal/nav"
	"github.com/lumera-core/lumera-cli/internal/session"
)

func newGuardTestApp(t *testing.T) (*App, *session.Store) {
	t.Helper()

	store := session.NewStore(session.NewMemoryStorage(), nil)
	authCtx := auth.NewContext(nil, store, nil)
	authCtx.Bootstrap()

	return &App{
		Config: &config.Config{},
		Store:  store,
		Router: nav.NewRouter(nil),
		Auth:   authCtx,
	}, store
}

func TestRequireAuthenticated_AnonymousRedirectsToLogin(t *testing.T) {
	app, _ := newGuardTestApp(t)

	err := app.requireAuthenticated()
	if err == nil {
		t.Fatal("expected an error for an anonymous session")
	}

	le, ok := err.(*errors.LumeraError)
	if !ok || le.Code != errors.ErrCodeAuthNotLoggedIn {
		t.Fatalf("expected %s, got %v", errors.ErrCodeAuthNotLoggedIn, err)
	}

	if got := app.Router.Location(); got != auth.RouteLogin {
		t.Errorf("router location = %q, want %q", got, auth.RouteLogin)
	}
}

func TestRequireAuthenticated_AllowsPersistedSession(t *testing.T) {
	app, store := newGuardTestApp(t)

	if err := store.SaveSession("tok-123", erp.User{ID: "u1", Email: "ada@example.com"}); err != nil {
		t.Fatal(err)
	}
	app.Auth.Bootstrap()

	if err := app.requireAuthenticated(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := app.Router.Location(); got != auth.RouteApp {
		t.Errorf("router location = %q, want %q", got, auth.RouteApp)
	}
}

func TestConfirmDeactivation_SkipsPromptWhenNotNeeded(t *testing.T) {
	app, _ := newGuardTestApp(t)
	app.Config.NoInput = true

	// Activation never asks.
	ok, err := app.confirmDeactivation("employee e1", erp.StatusActive)
	if err != nil || !ok {
		t.Fatalf("activation should proceed, got ok=%v err=%v", ok, err)
	}

	// Deactivation proceeds without asking when prompts are disabled.
	ok, err = app.confirmDeactivation("employee e1", erp.StatusInactive)
	if err != nil || !ok {
		t.Fatalf("non-interactive deactivation should proceed, got ok=%v err=%v", ok, err)
	}
}

func TestRequireCompany_DemandsSelection(t *testing.T) {
	app, store := newGuardTestApp(t)

	if err := store.SaveSession("tok-123", erp.User{ID: "u1", Email: "ada@example.com"}); err != nil {
		t.Fatal(err)
	}
	app.Auth.Bootstrap()

	err := app.requireCompany()
	le, ok := err.(*errors.LumeraError)
	if !ok || le.Code != errors.ErrCodeNoActiveCompany {
		t.Fatalf("expected %s, got %v", errors.ErrCodeNoActiveCompany, err)
	}

	if err := store.SaveActiveCompany(erp.CompanyContext{CompanyID: "c1", CompanyName: "Acme"}); err != nil {
		t.Fatal(err)
	}
	app.Auth.Bootstrap()

	if err := app.requireCompany(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
