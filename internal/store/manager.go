package store

import (
	"fmt"
	"sync"

	"github.com/foodipy/foodipy/config"
)

// Factory builds a ready-to-use driver.
type Factory func() (Driver, error)

var (
	factoriesMu sync.RWMutex
	factories   = map[string]Factory{
		"memory":   func() (Driver, error) { return NewMemory(), nil },
		"file":     func() (Driver, error) { return newFileDriver(config.StoreRoot()) },
		"database": newDatabaseDriver,
		"redis":    newRedisDriver,
		"mongo":    newMongoDriver,
		"s3":       newS3Driver,
	}
)

// RegisterDriver plugs in a custom driver factory at boot time.
func RegisterDriver(name string, f Factory) {
	factoriesMu.Lock()
	factories[name] = f
	factoriesMu.Unlock()
}

// Open builds the driver selected by STORE_DRIVER (default "file").
func Open() (Driver, error) {
	return OpenNamed(config.StoreDriver())
}

// OpenNamed builds the named driver. The caller owns the driver and is
// responsible for closing it if it implements Closer.
func OpenNamed(name string) (Driver, error) {
	factoriesMu.RLock()
	f, ok := factories[name]
	factoriesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("store: driver %q is not registered", name)
	}
	d, err := f()
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", name, err)
	}
	return d, nil
}
