// Package storage provides the opaque key-value blob store the repository
// persists through. All habit data is serialized as a single JSON document
// under one key; the store never interprets values.
package storage

// Provider is the blob storage contract: get returns the stored value and
// whether it was present, set replaces the whole value for a key.
type Provider interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
