package domain

import "time"

// Supported authentication providers.
const (
	ProviderEmail    = "email"
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// AuthProviders lists the providers accepted by the session manager.
var AuthProviders = []string{ProviderEmail, ProviderGoogle, ProviderFacebook}

// Preferences is the per-user preference bag.
type Preferences struct {
	EmailAlerts   bool     `json:"emailAlerts"`
	WeeklyRoundup bool     `json:"weeklyRoundup"`
	Categories    []string `json:"categories"`
	Brands        []string `json:"brands"`
}

// DefaultPreferences returns the preference bag assigned to new accounts.
func DefaultPreferences() Preferences {
	return Preferences{
		EmailAlerts:   true,
		WeeklyRoundup: false,
		Categories:    []string{},
		Brands:        []string{},
	}
}

// User is the current session identity persisted under the
// beautyFindUser storage key.
type User struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	Name          string      `json:"name"`
	Provider      string      `json:"provider"`
	CreatedAt     time.Time   `json:"createdAt"`
	Preferences   Preferences `json:"preferences"`
	Wishlist      []string    `json:"wishlist,omitempty"`
	OwnedProducts []string    `json:"ownedProducts,omitempty"`
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
}

// PreferencesUpdate carries a partial preference change.
type PreferencesUpdate struct {
	EmailAlerts   *bool     `json:"emailAlerts,omitempty"`
	WeeklyRoundup *bool     `json:"weeklyRoundup,omitempty"`
	Categories    *[]string `json:"categories,omitempty"`
	Brands        *[]string `json:"brands,omitempty"`
}

// DataExport is the downloadable snapshot assembled by exportUserData.
type DataExport struct {
	Profile       User      `json:"profile"`
	Wishlist      []string  `json:"wishlist"`
	OwnedProducts []string  `json:"ownedProducts"`
	ExportDate    time.Time `json:"exportDate"`
}
