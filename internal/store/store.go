// Package store is the record store underneath every Foodipy collection.
//
// It is a string-keyed key-value store holding JSON-encoded documents,
// the moral equivalent of the browser local storage the storefront was
// designed around. Several drivers are available:
//
//   - "memory"   — in-process map (tests, throwaway runs)
//   - "file"     — one JSON file per key (default)
//   - "database" — key/value table via GORM (sqlite, postgres, mysql, sqlserver)
//   - "redis"    — one string value per key
//   - "mongo"    — one document per key
//   - "s3"       — one object per key (S3, MinIO, R2)
//
// Collections are read and written whole: a read of an absent or
// corrupted key yields an empty collection rather than an error, so the
// app stays usable after data loss.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoRecord is returned by Driver.Get when the key has never been written.
var ErrNoRecord = errors.New("store: no record")

// Driver is the persistence backend interface. Values are opaque bytes;
// all encoding happens in the helpers below.
type Driver interface {
	// Get returns the raw value stored under key, or ErrNoRecord.
	Get(key string) ([]byte, error)

	// Put overwrites the value stored under key in a single call.
	Put(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Closer is implemented by drivers holding external connections.
type Closer interface {
	Close() error
}

// LoadCollection reads the collection stored under key. An absent key,
// a backend read failure, or malformed JSON all yield an empty slice:
// corruption is downgraded, never surfaced as an error.
func LoadCollection[T any](d Driver, key string) []T {
	raw, err := d.Get(key)
	if err != nil {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

// SaveCollection overwrites the whole collection stored under key.
// A nil slice is stored as an empty JSON array.
func SaveCollection[T any](d Driver, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := d.Put(key, raw); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// LoadRecord reads a single document stored under key.
// Returns ok=false when the key is absent or the data is malformed.
func LoadRecord[T any](d Driver, key string) (T, bool) {
	var record T
	raw, err := d.Get(key)
	if err != nil {
		return record, false
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		var zero T
		return zero, false
	}
	return record, true
}

// SaveRecord overwrites the single document stored under key.
func SaveRecord[T any](d Driver, key string, record T) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := d.Put(key, raw); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}
