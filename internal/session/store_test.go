package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumera-core/lumera-cli/internal/erp"
)

func newTestStore() (*Store, *MemoryStorage) {
	storage := NewMemoryStorage()
	return NewStore(storage, nil), storage
}

func TestStore_SaveSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore()

	user := erp.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, store.SaveSession("tok-abc", user))

	assert.Equal(t, "tok-abc", store.Token())

	got := store.User()
	require.NotNil(t, got)
	assert.Equal(t, user, *got)
}

func TestStore_ClearSessionLeavesCompany(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.SaveSession("tok", erp.User{ID: "u1"}))
	require.NoError(t, store.SaveActiveCompany(erp.CompanyContext{
		CompanyID:   "co1",
		CompanyName: "Acme",
	}))

	require.NoError(t, store.ClearSession())

	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())

	// Company slot has its own lifecycle and survives a session clear.
	company := store.ActiveCompany()
	require.NotNil(t, company)
	assert.Equal(t, "co1", company.CompanyID)
}

func TestStore_ClearSessionIdempotent(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.SaveSession("tok", erp.User{ID: "u1"}))
	require.NoError(t, store.ClearSession())
	require.NoError(t, store.ClearSession())

	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}

func TestStore_CorruptUserReturnsNil(t *testing.T) {
	store, storage := newTestStore()

	require.NoError(t, storage.Set(UserKey, "{not json"))

	assert.NotPanics(t, func() {
		assert.Nil(t, store.User())
	})
}

func TestStore_CorruptCompanyReturnsNil(t *testing.T) {
	store, storage := newTestStore()

	require.NoError(t, storage.Set(CompanyKey, "]["))

	assert.Nil(t, store.ActiveCompany())
}

func TestStore_NullCompanyTreatedAsAbsent(t *testing.T) {
	store, storage := newTestStore()

	require.NoError(t, storage.Set(CompanyKey, "null"))

	assert.Nil(t, store.ActiveCompany())
}

func TestStore_ClearActiveCompany(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.SaveActiveCompany(erp.CompanyContext{CompanyID: "co1"}))
	require.NoError(t, store.ClearActiveCompany())

	assert.Nil(t, store.ActiveCompany())
}

func TestStore_EmptySlotsYieldZeroValues(t *testing.T) {
	store, _ := newTestStore()

	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
	assert.Nil(t, store.ActiveCompany())
}

func TestFileStorage_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	storage := NewFileStorage(dir)

	require.NoError(t, storage.Set(TokenKey, "tok"))

	got, ok := storage.Get(TokenKey)
	require.True(t, ok)
	assert.Equal(t, "tok", got)

	require.NoError(t, storage.Remove(TokenKey))
	_, ok = storage.Get(TokenKey)
	assert.False(t, ok)
}

func TestFileStorage_RemoveAbsentKey(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	assert.NoError(t, storage.Remove("missing"))
}

func TestFileStorage_StoreIntegration(t *testing.T) {
	store := NewStore(NewFileStorage(t.TempDir()), nil)

	user := erp.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, store.SaveSession("tok", user))
	require.NoError(t, store.SaveActiveCompany(erp.CompanyContext{CompanyID: "co1"}))

	got := store.User()
	require.NotNil(t, got)
	assert.Equal(t, user, *got)

	company := store.ActiveCompany()
	require.NotNil(t, company)
	assert.Equal(t, "co1", company.CompanyID)
}
