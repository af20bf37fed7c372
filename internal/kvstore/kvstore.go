// Package kvstore abstracts the durable string key-value storage used for
// session state and user-generated data. The session manager is the only
// writer of its keys; implementations only need single-writer ordering.
package kvstore

// Well-known storage keys. The layout is part of the persisted-state
// contract and must stay stable across versions.
const (
	KeyUser        = "beautyFindUser"
	KeyToken       = "beautyFindToken"
	KeyAccountPref = "beautyFindUser_" // + email
	KeyWishlist    = "beautyFindWishlist"
	KeyOwned       = "beautyFindOwned"
	KeyGuestCount  = "guestInteractions"
)

// AccountKey returns the per-email account record key.
func AccountKey(email string) string {
	return KeyAccountPref + email
}

// Store is a persistent string map. Get returns ok=false for a missing key;
// Remove of a missing key is not an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
