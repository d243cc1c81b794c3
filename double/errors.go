package double

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFunctionName is returned when a double is constructed without a function name.
	ErrEmptyFunctionName = errors.New("empty function name supplied")

	// ErrNotConfigured is the sentinel wrapped by every NotConfiguredError.
	ErrNotConfigured = errors.New("no implementation configured")

	// ErrAssertionFailed is the sentinel wrapped by every AssertionError.
	ErrAssertionFailed = errors.New("assertion failed")

	// ErrValueNotCloneable is returned when a stubbed return value cannot be duplicated.
	ErrValueNotCloneable = errors.New("stored return value cannot be duplicated")

	// ErrInvalidIgnoreIndex is returned when a negative parameter index is supplied to WithIgnoredParams.
	ErrInvalidIgnoreIndex = errors.New("ignored parameter index must not be negative")

	// ErrIgnoredParamsNotSupported is returned when WithIgnoredParams is used on a fake or a stub.
	ErrIgnoredParamsNotSupported = errors.New("ignored parameters are only supported for mocks")

	// ErrNilLogger is returned when a nil logger is supplied to WithLogger.
	ErrNilLogger = errors.New("nil logger supplied")

	// ErrNilCloneFunc is returned when a nil clone function is supplied to NewFunctionStubWithClone.
	ErrNilCloneFunc = errors.New("nil clone function supplied")

	// ErrUnknownMode is returned when a dispatch mode name cannot be parsed.
	ErrUnknownMode = errors.New("unknown dispatch mode")
)

// NotConfiguredError reports a dispatch operation on an unconfigured double.
// It is fatal to the calling test; the runtime offers no recovery path.
type NotConfiguredError struct {
	FunctionName string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s: %s", e.FunctionName, ErrNotConfigured)
}

func (e *NotConfiguredError) Unwrap() error {
	return ErrNotConfigured
}

// AssertionError reports a failed AssertTimes or AssertWith check.
// Expected and Actual are pre-rendered so a failure can be diagnosed
// without re-running the test.
type AssertionError struct {
	FunctionName string
	Expected     string
	Actual       string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: %s: expected %s, actual %s", e.FunctionName, ErrAssertionFailed, e.Expected, e.Actual)
}

func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}
