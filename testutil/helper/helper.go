// Package helper provides arrangement helpers for tests that drive doubles:
// unique context keys and constructors that fail the test instead of
// returning errors.
package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jakob-rzeppa/fnmock/double"
	"github.com/jakob-rzeppa/fnmock/double/registry"
)

// GivenContextKey returns a unique execution-context key for one test.
func GivenContextKey(t testing.TB) string {
	key, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return key.String()
}

// GivenMock constructs a FunctionMock, failing the test on constructor errors.
func GivenMock[P any, R any](t testing.TB, functionName string, options ...double.Option) *double.FunctionMock[P, R] {
	mock, err := double.NewFunctionMock[P, R](functionName, options...)
	assert.NoError(t, err, "error in arranging test data")

	return mock
}

// GivenFake constructs a FunctionFake, failing the test on constructor errors.
func GivenFake[F any](t testing.TB, functionName string, options ...double.Option) *double.FunctionFake[F] {
	fake, err := double.NewFunctionFake[F](functionName, options...)
	assert.NoError(t, err, "error in arranging test data")

	return fake
}

// GivenStub constructs a FunctionStub, failing the test on constructor errors.
func GivenStub[R any](t testing.TB, functionName string, options ...double.Option) *double.FunctionStub[R] {
	stub, err := double.NewFunctionStub[R](functionName, options...)
	assert.NoError(t, err, "error in arranging test data")

	return stub
}

// GivenMockFromStore looks a FunctionMock up in a store, failing the test on errors.
func GivenMockFromStore[P any, R any](t testing.TB, store *registry.Store, functionName string, options ...double.Option) *double.FunctionMock[P, R] {
	mock, err := registry.MockFor[P, R](store, functionName, options...)
	assert.NoError(t, err, "error in arranging test data")

	return mock
}

// GivenFakeFromStore looks a FunctionFake up in a store, failing the test on errors.
func GivenFakeFromStore[F any](t testing.TB, store *registry.Store, functionName string, options ...double.Option) *double.FunctionFake[F] {
	fake, err := registry.FakeFor[F](store, functionName, options...)
	assert.NoError(t, err, "error in arranging test data")

	return fake
}

// GivenStubFromStore looks a FunctionStub up in a store, failing the test on errors.
func GivenStubFromStore[R any](t testing.TB, store *registry.Store, functionName string, options ...double.Option) *double.FunctionStub[R] {
	stub, err := registry.StubFor[R](store, functionName, options...)
	assert.NoError(t, err, "error in arranging test data")

	return stub
}
