// Package singleton implements the singleton teaching example with Go's
// native tool for it: sync.Once guarding lazy initialization.
//
// Two singletons are provided: the application config (backed by
// pkg/config) and an in-memory journal. Both accessors return the same
// instance on every call within a process.
package singleton

import (
	"sync"

	"patternbook/pkg/config"
)

// AppConfig is the process-wide configuration instance.
type AppConfig struct {
	mu  sync.Mutex
	cfg config.Config
}

var (
	configOnce sync.Once
	configInst *AppConfig
)

// Shared returns the process-wide AppConfig, creating it on first use.
// Every call returns the identical instance.
func Shared() *AppConfig {
	configOnce.Do(func() {
		cfg, err := config.LoadDefault()
		if err != nil {
			cfg = config.Default()
		}
		configInst = &AppConfig{cfg: cfg}
	})
	return configInst
}

// Environment returns the active environment name.
func (a *AppConfig) Environment() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.Environment
}

// SetEnvironment switches the active environment. State changes through
// one accessor are visible through every other, since there is only one
// instance.
func (a *AppConfig) SetEnvironment(env string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg.Environment = env
}

// ProfilePath returns the profile file for the active environment.
func (a *AppConfig) ProfilePath() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return config.ProfilePath(a.cfg.Environment)
}

// Snapshot returns a copy of the full configuration.
func (a *AppConfig) Snapshot() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// ResetForTesting discards the shared instance so the next Shared call
// rebuilds it. Only tests should call this.
func ResetForTesting() {
	configOnce = sync.Once{}
	configInst = nil
	journalOnce = sync.Once{}
	journalInst = nil
}
