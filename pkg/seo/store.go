package seo

import (
	"sync"
	"sync/atomic"
)

// Store holds the configuration shared by every Generate call that uses it.
// Reads are lock-free; Configure calls are serialized.
type Store struct {
	mu  sync.Mutex
	cfg atomic.Pointer[Config]
}

// NewStore returns a store initialized with cfg.
func NewStore(cfg Config) *Store {
	s := &Store{}
	c := cfg.Clone()
	s.cfg.Store(&c)
	return s
}

// Configure shallow-merges p into the stored configuration. No validation
// is performed.
func (s *Store) Configure(p Partial) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cfg.Load().Merge(p)
	s.cfg.Store(&next)
}

// Replace swaps in cfg wholesale.
func (s *Store) Replace(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := cfg.Clone()
	s.cfg.Store(&c)
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Config {
	return s.cfg.Load().Clone()
}

// snapshot returns the stored value without copying; callers must not modify it.
func (s *Store) snapshot() *Config {
	return s.cfg.Load()
}

var defaultStore = NewStore(DefaultConfig())

// DefaultStore returns the process-wide store used by the package-level helpers.
func DefaultStore() *Store {
	return defaultStore
}

// Configure merges p into the process-wide configuration. Call it once at
// startup, before pages are generated concurrently.
func Configure(p Partial) {
	defaultStore.Configure(p)
}

// CurrentConfig returns a copy of the process-wide configuration.
func CurrentConfig() Config {
	return defaultStore.Config()
}
