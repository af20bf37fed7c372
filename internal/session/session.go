// Package session implements the mock session state machine: a single
// current-user identity persisted in the durable key-value store, with
// simulated remote round trips standing in for a real auth backend.
//
// The manager is either Anonymous (no session) or Authenticated. Every
// mutating operation is serialized and either fully transitions the state
// or leaves it unchanged.
package session

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/beautyfind/beautyfind/internal/domain"
	"github.com/beautyfind/beautyfind/internal/errs"
	"github.com/beautyfind/beautyfind/internal/flakiness"
	"github.com/beautyfind/beautyfind/internal/kvstore"
	"github.com/beautyfind/beautyfind/pkg/common"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TopicSessionChanged is published on the event bus after every state
// transition, with the new state name ("authenticated" or "anonymous").
const TopicSessionChanged = "session.changed"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Manager tracks the current session and mediates all reads/writes of
// session data to the key-value store.
type Manager struct {
	store  kvstore.Store
	policy *flakiness.Policy
	bus    EventBus.Bus

	mu      sync.Mutex
	current *domain.User
}

// NewManager wires a session manager. The bus may be nil.
func NewManager(store kvstore.Store, policy *flakiness.Policy, bus EventBus.Bus) *Manager {
	return &Manager{store: store, policy: policy, bus: bus}
}

// Restore probes the store for a saved session. A session is live only when
// both the user record and the token exist and the record parses; a corrupt
// record discards both keys and leaves the manager Anonymous.
func (m *Manager) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()

	rawUser, okUser, err := m.store.Get(kvstore.KeyUser)
	if err != nil {
		zap.L().Error("session restore: user read failed", zap.Error(err))
		return
	}
	_, okToken, err := m.store.Get(kvstore.KeyToken)
	if err != nil {
		zap.L().Error("session restore: token read failed", zap.Error(err))
		return
	}
	if !okUser || !okToken {
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		zap.L().Warn("session restore: discarding unparseable session record", zap.Error(err))
		_ = m.store.Remove(kvstore.KeyUser)
		_ = m.store.Remove(kvstore.KeyToken)
		return
	}

	m.current = &user
	zap.L().Info("session restored", zap.String("user", user.ID), zap.String("provider", user.Provider))
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil
}

// CurrentUser returns a copy of the active session record, or nil.
func (m *Manager) CurrentUser() *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}

// Preferences returns the active user's preference bag, or the zero value
// when Anonymous.
func (m *Manager) Preferences() domain.Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return domain.Preferences{}
	}
	return m.current.Preferences
}

// persistSession writes the user record and a fresh token. If the token
// write fails, the user key is rolled back so the storage invariant
// (session iff both keys present) holds.
func (m *Manager) persistSession(user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errs.Wrap(err, errs.KindTransient, "failed to encode session record")
	}
	if err := m.store.Set(kvstore.KeyUser, string(raw)); err != nil {
		return errs.Wrap(err, errs.KindTransient, "failed to save session")
	}
	if err := m.store.Set(kvstore.KeyToken, common.NextToken()); err != nil {
		_ = m.store.Remove(kvstore.KeyUser)
		return errs.Wrap(err, errs.KindTransient, "failed to save session token")
	}
	return nil
}

// persistRecord rewrites the user record only, keeping the current token.
func (m *Manager) persistRecord(user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errs.Wrap(err, errs.KindTransient, "failed to encode session record")
	}
	if err := m.store.Set(kvstore.KeyUser, string(raw)); err != nil {
		return errs.Wrap(err, errs.KindTransient, "failed to save session")
	}
	return nil
}

func (m *Manager) publishState() {
	if m.bus == nil {
		return
	}
	state := "anonymous"
	if m.current != nil {
		state = "authenticated"
	}
	m.bus.Publish(TopicSessionChanged, state)
}

func (m *Manager) readIDList(key string) []string {
	raw, ok, err := m.store.Get(key)
	if err != nil || !ok {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}
	}
	return ids
}

func newUser(email, name, provider string) *domain.User {
	return &domain.User{
		ID:          "user_" + uuid.NewString(),
		Email:       email,
		Name:        name,
		Provider:    provider,
		CreatedAt:   time.Now(),
		Preferences: domain.DefaultPreferences(),
	}
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errs.Validation("Please enter a valid email address")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return errs.Validation("Password must be at least 6 characters")
	}
	return nil
}

func validateName(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return errs.Validation("Name must be at least 2 characters")
	}
	return nil
}

// Guest actions that nudge unauthenticated users towards sign-up.
var promptWorthyActions = map[string]bool{
	"add_to_wishlist": true,
	"mark_as_owned":   true,
	"set_price_alert": true,
}

// OnGuestAction counts unauthenticated interactions and reports whether the
// sign-up prompt should be shown (every fifth interaction from the third).
func (m *Manager) OnGuestAction(action string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil || !promptWorthyActions[action] {
		return false
	}

	count := 0
	if raw, ok, err := m.store.Get(kvstore.KeyGuestCount); err == nil && ok {
		count, _ = strconv.Atoi(raw)
	}
	count++
	if err := m.store.Set(kvstore.KeyGuestCount, strconv.Itoa(count)); err != nil {
		zap.L().Warn("guest interaction counter write failed", zap.Error(err))
	}
	return count >= 3 && count%5 == 0
}
