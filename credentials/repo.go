package credentials

// Repo is the durable key/value storage the credential store is persisted in.
// Implementations must treat Delete of a missing key as a no-op.
type Repo interface {
	// Get returns the stored value, or nil when the key is absent
	Get(key string) (*string, error)

	// Set stores value under key, replacing any previous value
	Set(key, value string) error

	// Delete removes the given keys
	Delete(keys ...string) error
}
