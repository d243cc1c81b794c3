// Package appconfig demonstrates stubbing parameterless functions: tests
// replace the loaded configuration with fixed values instead of touching the
// real sources.
package appconfig

import (
	"github.com/jakob-rzeppa/fnmock/double"
	"github.com/jakob-rzeppa/fnmock/double/registry"
)

const (
	getConfigFuncName = "appconfig.getConfig"
	getPortFuncName   = "appconfig.getPort"
)

// Loader resolves application configuration through swappable call paths.
type Loader struct {
	getConfig func() string
	getPort   func() int
}

// NewLoader wires the loader's stubbable functions against the doubles of the
// given execution context.
func NewLoader(mode double.Mode, store *registry.Store) (*Loader, error) {
	configStub, err := registry.StubFor[string](store, getConfigFuncName)
	if err != nil {
		return nil, err
	}

	portStub, err := registry.StubFor[int](store, getPortFuncName)
	if err != nil {
		return nil, err
	}

	return &Loader{
		getConfig: double.WireStub(mode, configStub, getConfig),
		getPort:   double.WireStub(mode, portStub, getPort),
	}, nil
}

// Config returns the active configuration name.
func (l *Loader) Config() string {
	return l.getConfig()
}

// Port returns the port the application listens on.
func (l *Loader) Port() int {
	return l.getPort()
}

// getConfig is the real implementation; a real project would read its config
// file here.
func getConfig() string {
	return "production_config"
}

// getPort is the real implementation.
func getPort() int {
	return 8080
}
