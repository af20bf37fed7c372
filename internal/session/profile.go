package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/beautyfind/beautyfind/internal/domain"
	"github.com/beautyfind/beautyfind/internal/errs"
	"github.com/beautyfind/beautyfind/internal/kvstore"
)

var errNotSignedIn = errs.Authorization("Must be signed in")

// UpdateProfile merges the supplied profile fields into the session record
// and re-persists it. Email and name updates are re-validated.
func (m *Manager) UpdateProfile(ctx context.Context, updates domain.ProfileUpdate) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, errNotSignedIn
	}
	if updates.Email != nil {
		if err := validateEmail(*updates.Email); err != nil {
			return nil, err
		}
	}
	if updates.Name != nil {
		if err := validateName(*updates.Name); err != nil {
			return nil, err
		}
	}

	if err := m.policy.Request(ctx); err != nil {
		return nil, err
	}

	merged := *m.current
	if updates.Email != nil {
		merged.Email = *updates.Email
	}
	if updates.Name != nil {
		merged.Name = *updates.Name
	}
	if err := m.persistRecord(&merged); err != nil {
		return nil, err
	}

	m.current = &merged
	u := merged
	return &u, nil
}

// UpdatePreferences field-merges a partial preference change and
// re-persists the record. No simulated round trip; preference edits are
// local.
func (m *Manager) UpdatePreferences(updates domain.PreferencesUpdate) (domain.Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return domain.Preferences{}, errNotSignedIn
	}

	merged := *m.current
	if updates.EmailAlerts != nil {
		merged.Preferences.EmailAlerts = *updates.EmailAlerts
	}
	if updates.WeeklyRoundup != nil {
		merged.Preferences.WeeklyRoundup = *updates.WeeklyRoundup
	}
	if updates.Categories != nil {
		merged.Preferences.Categories = *updates.Categories
	}
	if updates.Brands != nil {
		merged.Preferences.Brands = *updates.Brands
	}
	if err := m.persistRecord(&merged); err != nil {
		return domain.Preferences{}, err
	}

	m.current = &merged
	return merged.Preferences, nil
}

// DeleteAccount clears the session and all session-scoped generated data
// (wishlist and owned-product lists) and returns to Anonymous.
func (m *Manager) DeleteAccount() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return errNotSignedIn
	}

	for _, key := range []string{kvstore.KeyUser, kvstore.KeyToken, kvstore.KeyWishlist, kvstore.KeyOwned} {
		if err := m.store.Remove(key); err != nil {
			return errs.Wrap(err, errs.KindTransient, "failed to delete account data")
		}
	}

	zap.L().Info("account deleted", zap.String("user", m.current.ID))
	m.current = nil
	m.publishState()
	return nil
}

// ExportUserData assembles the downloadable snapshot of everything stored
// for the current user. Read-only; no state transition.
func (m *Manager) ExportUserData() (*domain.DataExport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, errNotSignedIn
	}

	return &domain.DataExport{
		Profile:       *m.current,
		Wishlist:      m.readIDList(kvstore.KeyWishlist),
		OwnedProducts: m.readIDList(kvstore.KeyOwned),
		ExportDate:    time.Now(),
	}, nil
}

// SyncUserData merges the locally stored wishlist and owned-product lists
// into the session record via the simulated round trip. A silent no-op when
// Anonymous.
func (m *Manager) SyncUserData(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil
	}

	wishlist := m.readIDList(kvstore.KeyWishlist)
	owned := m.readIDList(kvstore.KeyOwned)

	if err := m.policy.Request(ctx); err != nil {
		return err
	}

	merged := *m.current
	merged.Wishlist = wishlist
	merged.OwnedProducts = owned
	if err := m.persistRecord(&merged); err != nil {
		return err
	}

	m.current = &merged
	return nil
}
