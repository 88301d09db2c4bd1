// Package application resolves the entry point of the web application this
// gateway fronts.
//
// The application itself lives outside this module. It installs its
// request-handling entry point by calling Register, typically from its own
// package init, the same way database drivers register themselves with
// database/sql.
package application

import (
	"errors"
	"net/http"
	"sync"
)

var (
	mu         sync.RWMutex
	entrypoint http.Handler
)

// ErrNotRegistered is returned when no entry point has been installed.
var ErrNotRegistered = errors.New("application: no entry point registered")

// Register installs the application's request-handling entry point. A later
// call replaces the previous handler.
func Register(h http.Handler) {
	if h == nil {
		panic("application: Register called with nil handler")
	}
	mu.Lock()
	defer mu.Unlock()
	entrypoint = h
}

// Entrypoint returns the registered entry point.
func Entrypoint() (http.Handler, error) {
	mu.RLock()
	defer mu.RUnlock()
	if entrypoint == nil {
		return nil, ErrNotRegistered
	}
	return entrypoint, nil
}
