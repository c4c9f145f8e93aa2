package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/errors"
	"github.com/lumera-core/lumera-cli/internal/session"
)

// fakeNavigator records navigation side effects.
type fakeNavigator struct {
	mu       sync.Mutex
	location string
	visited  []string
}

func (n *fakeNavigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

func (n *fakeNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.location = route
	n.visited = append(n.visited, route)
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store, *fakeNavigator, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewStore(session.NewMemoryStorage(), nil)
	nav := &fakeNavigator{location: "/app"}
	client := NewClient(server.URL, store, nav)

	return client, store, nav, server
}

func TestClient_AttachesAuthHeaders(t *testing.T) {
	var gotAuth, gotCompany, gotRequestID string
	client, store, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCompany = r.Header.Get("x-company-id")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"ok":true,"data":[]}`))
	}))

	require.NoError(t, store.SaveSession("tok-1", erp.User{ID: "u1"}))
	require.NoError(t, store.SaveActiveCompany(erp.CompanyContext{CompanyID: "co1"}))

	_, err := client.ListEmployees(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "co1", gotCompany)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoHeadersWithoutSession(t *testing.T) {
	var gotAuth, gotCompany string
	client, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCompany = r.Header.Get("x-company-id")
		w.Write([]byte(`{"ok":true,"data":[]}`))
	}))

	_, err := client.ListProducts(context.Background())
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
	assert.Empty(t, gotCompany)
}

func TestClient_SessionExpiryClearsSessionAndRedirects(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client, store, nav, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		require.NoError(t, store.SaveSession("tok", erp.User{ID: "u1"}))
		require.NoError(t, store.SaveActiveCompany(erp.CompanyContext{CompanyID: "co1"}))

		_, err := client.ListClients(context.Background())
		require.Error(t, err)

		var le *errors.LumeraError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, errors.ErrCodeSessionExpired, le.Code)
		assert.Equal(t, status, le.HTTPStatus)

		// Token and user are cleared; the company slot is untouched.
		assert.Empty(t, store.Token())
		assert.Nil(t, store.User())
		require.NotNil(t, store.ActiveCompany())
		assert.Equal(t, "co1", store.ActiveCompany().CompanyID)

		assert.Equal(t, "/login", nav.Location())
	}
}

func TestClient_SessionExpiryNoRedirectWhenAlreadyOnLogin(t *testing.T) {
	client, store, nav, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	nav.location = "/login"

	require.NoError(t, store.SaveSession("tok", erp.User{ID: "u1"}))

	_, err := client.Login(context.Background(), "a@x.com", "bad")
	require.Error(t, err)

	// No navigation was recorded, preventing a redirect loop.
	assert.Empty(t, nav.visited)
}

func TestClient_NetworkFailure(t *testing.T) {
	store := session.NewStore(session.NewMemoryStorage(), nil)
	nav := &fakeNavigator{location: "/app"}

	// Nothing is listening on this address.
	client := NewClient("http://127.0.0.1:1", store, nav)

	require.NoError(t, store.SaveSession("tok", erp.User{ID: "u1"}))

	_, err := client.ListEmployees(context.Background())
	require.Error(t, err)

	var le *errors.LumeraError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, errors.ErrCodeAPINetwork, le.Code)
	assert.Equal(t, errors.KeyNetwork, errors.MessageKey(err))

	// A transport failure is not an expiry: the session survives and no
	// navigation happens.
	assert.Equal(t, "tok", store.Token())
	assert.Empty(t, nav.visited)
}

func TestClient_BusinessErrorExposesBackendMessage(t *testing.T) {
	client, _, nav, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"ok":false,"message":"EMAIL_TAKEN"}`))
	}))

	_, err := client.Register(context.Background(), "Ada", "a@x.com", "pw")
	require.Error(t, err)

	var le *errors.LumeraError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, errors.ErrCodeAPIRequest, le.Code)
	assert.Equal(t, 409, le.HTTPStatus)
	assert.Equal(t, "errors.EMAIL_TAKEN", errors.MessageKey(err))

	// Non-auth failures trigger no navigation.
	assert.Empty(t, nav.visited)
}

func TestClient_BusinessErrorWithoutMessageField(t *testing.T) {
	client, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	}))

	_, err := client.ListRoles(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.KeyGeneric, errors.MessageKey(err))
}

func TestClient_ListUsersFailsFastWithoutCompany(t *testing.T) {
	requested := false
	client, store, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
		w.Write([]byte(`{"users":[]}`))
	}))

	require.NoError(t, store.SaveSession("tok", erp.User{ID: "u1"}))

	_, err := client.ListUsers(context.Background())
	require.Error(t, err)

	var le *errors.LumeraError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, errors.ErrCodeNoActiveCompany, le.Code)
	assert.False(t, requested, "no request must be made without an active company")
}

func TestClient_ListUsersScopesByCompany(t *testing.T) {
	var gotPath string
	client, store, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"users":[{"company_user_id":"cu1","user_id":"u2","name":"Bo","email":"bo@x.com","status":"active"}]}`))
	}))

	require.NoError(t, store.SaveSession("tok", erp.User{ID: "u1"}))
	require.NoError(t, store.SaveActiveCompany(erp.CompanyContext{CompanyID: "co9"}))

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/company-users/co9", gotPath)
	require.Len(t, users, 1)
	assert.Equal(t, "cu1", users[0].CompanyUserID)
}

func TestClient_CustomTransformRuns(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Trace")
		w.Write([]byte(`{"ok":true,"data":[]}`))
	}))
	defer server.Close()

	store := session.NewStore(session.NewMemoryStorage(), nil)
	client := NewClient(server.URL, store, nil, WithRequestTransform(func(req *http.Request) error {
		req.Header.Set("X-Trace", "t1")
		return nil
	}))

	_, err := client.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t1", gotHeader)
}

func TestClient_CustomFieldsQuery(t *testing.T) {
	var gotEntity string
	client, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEntity = r.URL.Query().Get("entity")
		w.Write([]byte(`{"ok":true,"data":[]}`))
	}))

	_, err := client.ListCustomFields(context.Background(), "employees")
	require.NoError(t, err)
	assert.Equal(t, "employees", gotEntity)
}

func TestClient_NilNavigatorTolerated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	store := session.NewStore(session.NewMemoryStorage(), nil)
	client := NewClient(server.URL, store, nil)

	assert.NotPanics(t, func() {
		_, err := client.ListEmployees(context.Background())
		assert.Error(t, err)
	})
}
