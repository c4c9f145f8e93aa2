package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumera-core/lumera-cli/internal/api"
	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/errors"
	"github.com/lumera-core/lumera-cli/internal/session"
)

// backendFixture is a fake platform that records the Authorization header
// seen on each path.
type backendFixture struct {
	mu          sync.Mutex
	authHeaders map[string][]string

	loginToken  string
	loginUser   erp.User
	contextResp api.AuthContextResponse
	contextFail bool
}

func newBackendFixture() *backendFixture {
	return &backendFixture{
		authHeaders: make(map[string][]string),
		loginToken:  "tok-fresh",
		loginUser:   erp.User{ID: "1", Name: "A", Email: "a@x.com"},
		contextResp: api.AuthContextResponse{OK: true},
	}
}

func (b *backendFixture) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.authHeaders[r.URL.Path] = append(b.authHeaders[r.URL.Path], r.Header.Get("Authorization"))
		contextFail := b.contextFail
		b.mu.Unlock()

		switch r.URL.Path {
		case "/auth/login", "/auth/register":
			json.NewEncoder(w).Encode(api.AuthResponse{OK: true, Token: b.loginToken, User: b.loginUser})
		case "/auth/context":
			if contextFail {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"ok":false,"message":"CONTEXT_UNAVAILABLE"}`))
				return
			}
			json.NewEncoder(w).Encode(b.contextResp)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (b *backendFixture) headersSeen(path string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.authHeaders[path]...)
}

func newTestContext(t *testing.T, backend *backendFixture) (*Context, *session.Store) {
	t.Helper()

	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	store := session.NewStore(session.NewMemoryStorage(), nil)
	client := api.NewClient(server.URL, store, nil)
	return NewContext(client, store, nil), store
}

func TestContext_LoginWithoutCompany(t *testing.T) {
	backend := newBackendFixture()
	authCtx, store := newTestContext(t, backend)

	require.NoError(t, authCtx.Login(context.Background(), "a@x.com", "pw"))

	snap := authCtx.Snapshot()
	assert.True(t, snap.IsAuthenticated)
	assert.Equal(t, "tok-fresh", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, "a@x.com", snap.User.Email)
	assert.False(t, snap.HasCompany)
	assert.Empty(t, snap.Companies)
	assert.Nil(t, snap.ActiveCompany)

	// The caller-level redirect decision points at onboarding.
	d := RequireAnonymous(snap)
	assert.Equal(t, RouteOnboarding, d.RedirectTo)

	assert.Equal(t, "tok-fresh", store.Token())
}

func TestContext_LoginWithCompanies(t *testing.T) {
	backend := newBackendFixture()
	active := erp.CompanyContext{CompanyID: "co1", CompanyName: "Acme", RoleID: "r1", RoleName: "owner", Status: "active"}
	backend.contextResp = api.AuthContextResponse{
		OK:            true,
		HasCompany:    true,
		Companies:     []erp.CompanyContext{active},
		ActiveCompany: &active,
	}

	authCtx, store := newTestContext(t, backend)
	require.NoError(t, authCtx.Login(context.Background(), "a@x.com", "pw"))

	snap := authCtx.Snapshot()
	assert.True(t, snap.HasCompany)
	require.NotNil(t, snap.ActiveCompany)
	assert.Equal(t, "co1", snap.ActiveCompany.CompanyID)

	persisted := store.ActiveCompany()
	require.NotNil(t, persisted)
	assert.Equal(t, "co1", persisted.CompanyID)
}

func TestContext_SetSessionPersistsBeforeContextFetch(t *testing.T) {
	backend := newBackendFixture()
	authCtx, _ := newTestContext(t, backend)

	user := erp.User{ID: "9", Name: "Fresh", Email: "f@x.com"}
	require.NoError(t, authCtx.SetSession(context.Background(), "tok-ordered", user))

	// The context fetch must already carry the token being established.
	headers := backend.headersSeen("/auth/context")
	require.Len(t, headers, 1)
	assert.Equal(t, "Bearer tok-ordered", headers[0])
}

func TestContext_SetSessionOverwritesStaleCompany(t *testing.T) {
	backend := newBackendFixture()
	authCtx, store := newTestContext(t, backend)

	// Leftover selection from an earlier session, possibly another user's.
	require.NoError(t, store.SaveActiveCompany(erp.CompanyContext{CompanyID: "stale"}))

	require.NoError(t, authCtx.SetSession(context.Background(), "tok", erp.User{ID: "1"}))

	assert.Nil(t, store.ActiveCompany(), "fresh context without a company must clear the slot")
}

func TestContext_PartialEstablishmentIsRetryable(t *testing.T) {
	backend := newBackendFixture()
	backend.contextFail = true
	authCtx, store := newTestContext(t, backend)

	err := authCtx.Login(context.Background(), "a@x.com", "pw")
	require.Error(t, err)
	assert.Equal(t, "errors.CONTEXT_UNAVAILABLE", errors.MessageKey(err))

	// Token and user stayed persisted, so the fetch can be retried without
	// re-authenticating.
	assert.Equal(t, "tok-fresh", store.Token())
	require.NotNil(t, store.User())

	backend.mu.Lock()
	backend.contextFail = false
	backend.mu.Unlock()

	require.NoError(t, authCtx.RefreshContext(context.Background()))
	assert.True(t, authCtx.Snapshot().IsAuthenticated)
}

func TestContext_IsAuthenticatedDerivation(t *testing.T) {
	backend := newBackendFixture()
	authCtx, _ := newTestContext(t, backend)

	// Token without user: not authenticated.
	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Set(session.TokenKey, "tok-only"))
	orphan := NewContext(nil, session.NewStore(storage, nil), nil)
	orphan.Bootstrap()
	assert.False(t, orphan.Snapshot().IsAuthenticated)

	// Both present: authenticated.
	require.NoError(t, authCtx.Login(context.Background(), "a@x.com", "pw"))
	assert.True(t, authCtx.Snapshot().IsAuthenticated)
}

func TestContext_Logout(t *testing.T) {
	backend := newBackendFixture()
	active := erp.CompanyContext{CompanyID: "co1"}
	backend.contextResp = api.AuthContextResponse{OK: true, HasCompany: true, Companies: []erp.CompanyContext{active}, ActiveCompany: &active}

	authCtx, store := newTestContext(t, backend)
	require.NoError(t, authCtx.Login(context.Background(), "a@x.com", "pw"))

	authCtx.Logout()

	snap := authCtx.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Token)
	assert.False(t, snap.HasCompany)
	assert.Empty(t, snap.Companies)
	assert.Nil(t, snap.ActiveCompany)

	// Unlike the expiry path, logout clears every persisted slot.
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
	assert.Nil(t, store.ActiveCompany())
}

func TestContext_SubscribeAndNotify(t *testing.T) {
	backend := newBackendFixture()
	authCtx, _ := newTestContext(t, backend)

	var snapshots []Snapshot
	unsubscribe := authCtx.Subscribe(func(s Snapshot) {
		snapshots = append(snapshots, s)
	})

	require.NoError(t, authCtx.Login(context.Background(), "a@x.com", "pw"))
	require.Len(t, snapshots, 1)
	assert.True(t, snapshots[0].IsAuthenticated)

	authCtx.Logout()
	require.Len(t, snapshots, 2)
	assert.False(t, snapshots[1].IsAuthenticated)

	// Logging out again changes nothing, so no notification fires.
	authCtx.Logout()
	assert.Len(t, snapshots, 2)

	unsubscribe()
	require.NoError(t, authCtx.Login(context.Background(), "a@x.com", "pw"))
	assert.Len(t, snapshots, 2)
}

func TestContext_SwitchCompany(t *testing.T) {
	backend := newBackendFixture()
	co1 := erp.CompanyContext{CompanyID: "co1", CompanyName: "Acme"}
	co2 := erp.CompanyContext{CompanyID: "co2", CompanyName: "Globex"}
	backend.contextResp = api.AuthContextResponse{
		OK:            true,
		HasCompany:    true,
		Companies:     []erp.CompanyContext{co1, co2},
		ActiveCompany: &co1,
	}

	authCtx, store := newTestContext(t, backend)
	require.NoError(t, authCtx.Login(context.Background(), "a@x.com", "pw"))

	require.NoError(t, authCtx.SwitchCompany("co2"))

	snap := authCtx.Snapshot()
	require.NotNil(t, snap.ActiveCompany)
	assert.Equal(t, "co2", snap.ActiveCompany.CompanyID)

	persisted := store.ActiveCompany()
	require.NotNil(t, persisted)
	assert.Equal(t, "co2", persisted.CompanyID)
}

func TestContext_SwitchCompanyRejectsNonMember(t *testing.T) {
	backend := newBackendFixture()
	co1 := erp.CompanyContext{CompanyID: "co1"}
	backend.contextResp = api.AuthContextResponse{OK: true, HasCompany: true, Companies: []erp.CompanyContext{co1}, ActiveCompany: &co1}

	authCtx, _ := newTestContext(t, backend)
	require.NoError(t, authCtx.Login(context.Background(), "a@x.com", "pw"))

	err := authCtx.SwitchCompany("intruder")
	require.Error(t, err)

	var le *errors.LumeraError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, errors.ErrCodeAuthNotMember, le.Code)
}

func TestContext_Bootstrap(t *testing.T) {
	storage := session.NewMemoryStorage()
	store := session.NewStore(storage, nil)
	require.NoError(t, store.SaveSession("tok", erp.User{ID: "u1", Name: "Ada", Email: "a@x.com"}))
	require.NoError(t, store.SaveActiveCompany(erp.CompanyContext{CompanyID: "co1"}))

	authCtx := NewContext(nil, store, nil)
	authCtx.Bootstrap()

	snap := authCtx.Snapshot()
	assert.True(t, snap.IsAuthenticated)
	require.NotNil(t, snap.ActiveCompany)
	assert.Equal(t, "co1", snap.ActiveCompany.CompanyID)
	// Membership flags come from the next context fetch, not the store.
	assert.False(t, snap.HasCompany)
}

func TestContext_RegisterContinuesIntoSession(t *testing.T) {
	backend := newBackendFixture()
	authCtx, store := newTestContext(t, backend)

	require.NoError(t, authCtx.Register(context.Background(), "Ada", "a@x.com", "pw"))

	assert.True(t, authCtx.Snapshot().IsAuthenticated)
	assert.Equal(t, "tok-fresh", store.Token())

	// Registration establishes the session exactly like login does.
	headers := backend.headersSeen("/auth/context")
	require.Len(t, headers, 1)
	assert.Equal(t, "Bearer tok-fresh", headers[0])
}
