// Package env abstracts the process environment so configuration
// resolution can be exercised in tests without mutating real variables.
package env

import (
	"fmt"
	"os"
	"slices"
	"sync"
)

// Env is a read/write view of the environment.
type Env interface {
	Get(key string) string
	Set(key, value string)
	Env() []string
}

// New returns an Env backed by the process environment.
func New() Env {
	return osEnv{}
}

type osEnv struct{}

func (osEnv) Get(key string) string { return os.Getenv(key) }
func (osEnv) Set(key, value string) { _ = os.Setenv(key, value) }
func (osEnv) Env() []string         { return os.Environ() }

// NewFromMap returns an in-memory Env seeded with the given variables.
func NewFromMap(m map[string]string) Env {
	e := &mapEnv{vars: make(map[string]string, len(m))}
	for k, v := range m {
		e.vars[k] = v
	}
	return e
}

type mapEnv struct {
	mu   sync.RWMutex
	vars map[string]string
}

func (e *mapEnv) Get(key string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.vars[key]
}

func (e *mapEnv) Set(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vars[key] = value
}

func (e *mapEnv) Env() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.vars))
	for k, v := range e.vars {
		out = append(out, fmt.Sprintf("%s=%s", k, v))
	}
	slices.Sort(out)
	return out
}
