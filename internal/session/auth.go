package session

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/beautyfind/beautyfind/internal/domain"
	"github.com/beautyfind/beautyfind/internal/errs"
	"github.com/beautyfind/beautyfind/internal/kvstore"
)

// SignInWithEmail validates the credentials, runs the simulated round trip
// and on success transitions Anonymous -> Authenticated with a synthesized
// identity (display name derived from the email local-part). Validation
// failures happen before any storage or simulated I/O.
func (m *Manager) SignInWithEmail(ctx context.Context, email, password string) (*domain.User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.policy.Request(ctx); err != nil {
		return nil, err
	}

	localPart := email[:strings.Index(email, "@")]
	user := newUser(email, localPart, domain.ProviderEmail)
	if err := m.persistSession(user); err != nil {
		return nil, err
	}

	m.current = user
	m.publishState()
	zap.L().Info("signed in", zap.String("user", user.ID), zap.String("provider", user.Provider))
	u := *user
	return &u, nil
}

// SignUpWithEmail behaves like sign-in with the additional name requirement
// and a duplicate-account guard on the per-email record.
func (m *Manager) SignUpWithEmail(ctx context.Context, email, password, name string) (*domain.User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists, err := m.store.Get(kvstore.AccountKey(email)); err != nil {
		return nil, errs.Wrap(err, errs.KindTransient, "failed to check existing account")
	} else if exists {
		return nil, errs.Conflict("An account with this email already exists")
	}

	if err := m.policy.Request(ctx); err != nil {
		return nil, err
	}

	user := newUser(email, strings.TrimSpace(name), domain.ProviderEmail)
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, errs.Wrap(err, errs.KindTransient, "failed to encode account record")
	}
	if err := m.store.Set(kvstore.AccountKey(email), string(raw)); err != nil {
		return nil, errs.Wrap(err, errs.KindTransient, "failed to save account")
	}
	if err := m.persistSession(user); err != nil {
		return nil, err
	}

	m.current = user
	m.publishState()
	zap.L().Info("account created", zap.String("user", user.ID), zap.String("email", email))
	u := *user
	return &u, nil
}

// SignInWithProvider simulates the OAuth consent flow for a social
// provider, which carries its own chance of user cancellation, and signs in
// a placeholder identity tagged with that provider.
func (m *Manager) SignInWithProvider(ctx context.Context, provider string) (*domain.User, error) {
	supported := false
	for _, p := range domain.AuthProviders {
		if p == provider {
			supported = true
			break
		}
	}
	if !supported {
		return nil, errs.Unsupported("%s authentication not supported", provider)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.policy.OAuth(ctx, provider); err != nil {
		return nil, err
	}

	user := newUser(
		fmt.Sprintf("user@%s.com", provider),
		fmt.Sprintf("%s User", provider),
		provider,
	)
	if err := m.persistSession(user); err != nil {
		return nil, err
	}

	m.current = user
	m.publishState()
	zap.L().Info("signed in", zap.String("user", user.ID), zap.String("provider", provider))
	u := *user
	return &u, nil
}

// SignOut clears the session keys and returns to Anonymous. Calling it
// while already Anonymous still clears the keys and is not an error.
func (m *Manager) SignOut() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Remove(kvstore.KeyUser); err != nil {
		return errs.Wrap(err, errs.KindTransient, "failed to clear session")
	}
	if err := m.store.Remove(kvstore.KeyToken); err != nil {
		return errs.Wrap(err, errs.KindTransient, "failed to clear session token")
	}

	wasAuthenticated := m.current != nil
	m.current = nil
	if wasAuthenticated {
		m.publishState()
		zap.L().Info("signed out")
	}
	return nil
}

// ResetPassword simulates sending a password-reset email. No state change.
func (m *Manager) ResetPassword(ctx context.Context, email string) (string, error) {
	if err := validateEmail(email); err != nil {
		return "", err
	}
	if err := m.policy.Request(ctx); err != nil {
		return "", err
	}
	return "Password reset email sent. Please check your inbox.", nil
}
