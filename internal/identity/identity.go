// Package identity carries the caller identity supplied by the external
// identity provider. Only the guest flag matters here: guests never write to
// the remote vault, only to the local cache.
package identity

// Identity describes who issued a translation request.
type Identity struct {
	UserID  string
	IsGuest bool
}

// Guest returns the anonymous identity.
func Guest() Identity {
	return Identity{IsGuest: true}
}
