package session

import (
	"encoding/json"

	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/errors"
	"github.com/lumera-core/lumera-cli/internal/log"
)

// Persisted slot keys. Token and user form the session and are written and
// cleared together; the company slot has its own lifecycle.
const (
	TokenKey   = "lumera_token"
	UserKey    = "lumera_user"
	CompanyKey = "lumera_company"
)

// Store is the durable session state: token, user, and active company.
// It is the source of truth at process start and is read by the HTTP
// client on every outgoing request.
type Store struct {
	storage Storage
	logger  *log.Logger
}

// NewStore creates a session store over the given storage backend.
func NewStore(storage Storage, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{storage: storage, logger: logger}
}

// SaveSession persists the token and user slots. Both are written so the
// session invariant (user set iff token set) holds durably.
func (s *Store) SaveSession(token string, user erp.User) error {
	if err := s.storage.Set(TokenKey, token); err != nil {
		return err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionStorage, "failed to encode user", err)
	}
	return s.storage.Set(UserKey, string(data))
}

// ClearSession removes the token and user slots. The active company slot is
// deliberately untouched; see ClearActiveCompany.
func (s *Store) ClearSession() error {
	if err := s.storage.Remove(TokenKey); err != nil {
		return err
	}
	return s.storage.Remove(UserKey)
}

// Token returns the persisted token, or "" when absent.
func (s *Store) Token() string {
	token, _ := s.storage.Get(TokenKey)
	return token
}

// User returns the persisted user snapshot. A corrupt record is logged and
// treated as absent rather than crashing the caller.
func (s *Store) User() *erp.User {
	raw, ok := s.storage.Get(UserKey)
	if !ok || raw == "" || raw == "null" {
		return nil
	}

	var user erp.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.WithError(errors.NewCorruptRecordError(UserKey, err)).
			Warn("discarding unreadable session user")
		return nil
	}
	return &user
}

// SaveActiveCompany persists the active company selection.
func (s *Store) SaveActiveCompany(company erp.CompanyContext) error {
	data, err := json.Marshal(company)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionStorage, "failed to encode company", err)
	}
	return s.storage.Set(CompanyKey, string(data))
}

// ActiveCompany returns the persisted active company, or nil when absent or
// unreadable.
func (s *Store) ActiveCompany() *erp.CompanyContext {
	raw, ok := s.storage.Get(CompanyKey)
	if !ok || raw == "" || raw == "null" {
		return nil
	}

	var company erp.CompanyContext
	if err := json.Unmarshal([]byte(raw), &company); err != nil {
		s.logger.WithError(errors.NewCorruptRecordError(CompanyKey, err)).
			Warn("discarding unreadable active company")
		return nil
	}
	return &company
}

// ClearActiveCompany removes the active company slot.
func (s *Store) ClearActiveCompany() error {
	return s.storage.Remove(CompanyKey)
}
