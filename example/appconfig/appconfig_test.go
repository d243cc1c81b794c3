package appconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakob-rzeppa/fnmock/double"
	"github.com/jakob-rzeppa/fnmock/double/registry"
	"github.com/jakob-rzeppa/fnmock/example/appconfig"
	"github.com/jakob-rzeppa/fnmock/testutil/helper"
)

func Test_Loader_Config_WithStub(t *testing.T) {
	reg := registry.NewRegistry()
	store := reg.Context(helper.GivenContextKey(t))

	loader, err := appconfig.NewLoader(double.ModeTest, store)
	require.NoError(t, err)

	configStub := helper.GivenStubFromStore[string](t, store, "appconfig.getConfig")
	configStub.Setup("test_config")

	// repeated retrieval yields the same value
	assert.Equal(t, "test_config", loader.Config())
	assert.Equal(t, "test_config", loader.Config())

	configStub.Clear()

	// cleared stub falls back to the real implementation
	assert.Equal(t, "production_config", loader.Config())

	_, retrieveErr := configStub.GetReturnValue()
	assert.ErrorIs(t, retrieveErr, double.ErrNotConfigured)
}

func Test_Loader_Port_WithStub(t *testing.T) {
	reg := registry.NewRegistry()
	store := reg.Context(helper.GivenContextKey(t))

	loader, err := appconfig.NewLoader(double.ModeTest, store)
	require.NoError(t, err)

	portStub := helper.GivenStubFromStore[int](t, store, "appconfig.getPort")
	portStub.Setup(3000)

	assert.Equal(t, 3000, loader.Port())
}

func Test_Loader_ProductionMode_IgnoresConfiguredStubs(t *testing.T) {
	reg := registry.NewRegistry()
	store := reg.Context(helper.GivenContextKey(t))

	loader, err := appconfig.NewLoader(double.ModeProduction, store)
	require.NoError(t, err)

	configStub := helper.GivenStubFromStore[string](t, store, "appconfig.getConfig")
	configStub.Setup("test_config")

	assert.Equal(t, "production_config", loader.Config())
	assert.Equal(t, 8080, loader.Port())
}
