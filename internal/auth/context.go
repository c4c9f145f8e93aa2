// Package auth holds the client-side session authority: who is logged in,
// to which company, with what role. Commands and guards consume it through
// immutable snapshots; state changes notify subscribers.
package auth

import (
	"context"
	"sync"

	"github.com/lumera-core/lumera-cli/internal/api"
	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/errors"
	"github.com/lumera-core/lumera-cli/internal/log"
	"github.com/lumera-core/lumera-cli/internal/session"
)

// Application routes. The guards and the HTTP client's expiry redirect all
// agree on these.
const (
	RouteLanding    = "/"
	RouteLogin      = "/login"
	RouteRegister   = "/register"
	RouteApp        = "/app"
	RouteOnboarding = "/onboarding/company"
)

// Snapshot is an immutable view of the session state.
// IsAuthenticated is derived: true iff both token and user are present.
type Snapshot struct {
	User            *erp.User
	Token           string
	IsAuthenticated bool

	HasCompany    bool
	Companies     []erp.CompanyContext
	ActiveCompany *erp.CompanyContext
}

// Context is the process-wide session state holder. All mutation goes
// through its methods; consumers read snapshots or subscribe for changes.
type Context struct {
	mu     sync.Mutex
	api    *api.Client
	store  *session.Store
	logger *log.Logger

	token         string
	user          *erp.User
	hasCompany    bool
	companies     []erp.CompanyContext
	activeCompany *erp.CompanyContext

	subscribers  map[int]func(Snapshot)
	nextSubID    int
	lastNotified Snapshot
}

// NewContext creates a session context over the given API client and store.
func NewContext(apiClient *api.Client, store *session.Store, logger *log.Logger) *Context {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Context{
		api:         apiClient,
		store:       store,
		logger:      logger,
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Bootstrap hydrates in-memory state from the persisted store. Company
// membership flags stay unset until the next context fetch; only the
// persisted active company selection is restored.
func (c *Context) Bootstrap() {
	c.mu.Lock()
	c.token = c.store.Token()
	c.user = c.store.User()
	c.activeCompany = c.store.ActiveCompany()
	c.mu.Unlock()

	c.notify()
}

// Snapshot returns the current state.
func (c *Context) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Context) snapshotLocked() Snapshot {
	return Snapshot{
		User:            c.user,
		Token:           c.token,
		IsAuthenticated: c.token != "" && c.user != nil,
		HasCompany:      c.hasCompany,
		Companies:       c.companies,
		ActiveCompany:   c.activeCompany,
	}
}

// Subscribe registers fn to be called with every new snapshot. The returned
// function unsubscribes. Subscribers are not called when a mutation leaves
// the snapshot unchanged.
func (c *Context) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// notify delivers the current snapshot to all subscribers, suppressing
// duplicates so consumers keying off the snapshot don't re-render spuriously.
func (c *Context) notify() {
	c.mu.Lock()
	snap := c.snapshotLocked()
	if snapshotEqual(snap, c.lastNotified) {
		c.mu.Unlock()
		return
	}
	c.lastNotified = snap

	fns := make([]func(Snapshot), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func snapshotEqual(a, b Snapshot) bool {
	if a.Token != b.Token ||
		a.IsAuthenticated != b.IsAuthenticated ||
		a.HasCompany != b.HasCompany {
		return false
	}

	if (a.User == nil) != (b.User == nil) {
		return false
	}
	if a.User != nil && *a.User != *b.User {
		return false
	}

	if (a.ActiveCompany == nil) != (b.ActiveCompany == nil) {
		return false
	}
	if a.ActiveCompany != nil && *a.ActiveCompany != *b.ActiveCompany {
		return false
	}

	if len(a.Companies) != len(b.Companies) {
		return false
	}
	for i := range a.Companies {
		if a.Companies[i] != b.Companies[i] {
			return false
		}
	}
	return true
}

// Login authenticates and establishes the session. Errors from the platform
// (invalid credentials, network failure) propagate to the caller, who maps
// them to a display message.
func (c *Context) Login(ctx context.Context, email, password string) error {
	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return c.SetSession(ctx, resp.Token, resp.User)
}

// Register creates an account and continues straight into session
// establishment with the returned token.
func (c *Context) Register(ctx context.Context, name, email, password string) error {
	resp, err := c.api.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	return c.SetSession(ctx, resp.Token, resp.User)
}

// SetSession establishes a session from a fresh token and user.
//
// The persistence write happens strictly before the context fetch: the HTTP
// client reads the store per request, so the fetch below authenticates with
// the token being established. If the fetch fails, the persisted token and
// user remain valid; the caller can retry with RefreshContext without
// re-authenticating.
func (c *Context) SetSession(ctx context.Context, token string, user erp.User) error {
	if err := c.store.SaveSession(token, user); err != nil {
		return err
	}

	authCtx, err := c.api.AuthContext(ctx)
	if err != nil {
		return err
	}

	c.applyContext(token, &user, authCtx)
	return nil
}

// RefreshContext re-fetches company memberships for the already persisted
// session. Used to recover from a partial session establishment and after
// company creation.
func (c *Context) RefreshContext(ctx context.Context) error {
	token := c.store.Token()
	user := c.store.User()

	authCtx, err := c.api.AuthContext(ctx)
	if err != nil {
		return err
	}

	c.applyContext(token, user, authCtx)
	return nil
}

// applyContext updates in-memory state from a context response and persists
// the resolved active company. The slot is always overwritten — cleared when
// the fresh context carries none — so a stale selection from an earlier
// session can never leak into this one.
func (c *Context) applyContext(token string, user *erp.User, authCtx *api.AuthContextResponse) {
	if authCtx.ActiveCompany != nil {
		if err := c.store.SaveActiveCompany(*authCtx.ActiveCompany); err != nil {
			c.logger.WithError(err).Warn("failed to persist active company")
		}
	} else {
		if err := c.store.ClearActiveCompany(); err != nil {
			c.logger.WithError(err).Warn("failed to clear active company")
		}
	}

	c.mu.Lock()
	c.token = token
	c.user = user
	c.hasCompany = authCtx.HasCompany
	c.companies = authCtx.Companies
	c.activeCompany = authCtx.ActiveCompany
	c.mu.Unlock()

	c.notify()
}

// Logout clears both the session and the active company selection and
// resets in-memory state. Local-only: token revocation is the platform's
// concern.
func (c *Context) Logout() {
	if err := c.store.ClearSession(); err != nil {
		c.logger.WithError(err).Warn("failed to clear session")
	}
	if err := c.store.ClearActiveCompany(); err != nil {
		c.logger.WithError(err).Warn("failed to clear active company")
	}

	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.hasCompany = false
	c.companies = nil
	c.activeCompany = nil
	c.mu.Unlock()

	c.notify()
}

// SwitchCompany selects another of the user's companies as the active one.
// The selection is persisted, so the next request carries the new tenant
// header.
func (c *Context) SwitchCompany(companyID string) error {
	c.mu.Lock()
	var target *erp.CompanyContext
	for i := range c.companies {
		if c.companies[i].CompanyID == companyID {
			target = &c.companies[i]
			break
		}
	}
	c.mu.Unlock()

	if target == nil {
		return errors.NewNotMemberError(companyID)
	}

	if err := c.store.SaveActiveCompany(*target); err != nil {
		return err
	}

	c.mu.Lock()
	c.activeCompany = target
	c.hasCompany = true
	c.mu.Unlock()

	c.notify()
	return nil
}
