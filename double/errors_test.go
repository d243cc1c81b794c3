package double_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakob-rzeppa/fnmock/double"
)

func Test_NotConfiguredError_Message(t *testing.T) {
	err := &double.NotConfiguredError{FunctionName: "FetchUserName"}

	assert.Equal(t, "FetchUserName: no implementation configured", err.Error())
	assert.ErrorIs(t, err, double.ErrNotConfigured)
}

func Test_AssertionError_Message(t *testing.T) {
	err := &double.AssertionError{
		FunctionName: "FetchUserName",
		Expected:     "2 calls",
		Actual:       "3 calls",
	}

	assert.Equal(t, "FetchUserName: assertion failed: expected 2 calls, actual 3 calls", err.Error())
	assert.ErrorIs(t, err, double.ErrAssertionFailed)
}

// spyLogger records every message a double emits so tests can verify the
// logging contract without a real backend.
type spyLogger struct {
	debugMessages []string
}

func (l *spyLogger) Debug(msg string, _ ...any) { l.debugMessages = append(l.debugMessages, msg) }
func (l *spyLogger) Info(string, ...any)        {}
func (l *spyLogger) Warn(string, ...any)        {}
func (l *spyLogger) Error(string, ...any)       {}

func Test_Doubles_LogLifecycleAtDebugLevel(t *testing.T) {
	logger := &spyLogger{}

	mock, err := double.NewFunctionMock[int, int]("Tracked", double.WithLogger(logger))
	require.NoError(t, err)

	mock.Setup(func(x int) int { return x })
	_, callErr := mock.Call(1)
	require.NoError(t, callErr)
	mock.Clear()

	assert.Equal(t, []string{
		"implementation configured",
		"call dispatched to configured implementation",
		"double cleared",
	}, logger.debugMessages)
}

func Test_Doubles_SilentWithoutLogger(t *testing.T) {
	mock, err := double.NewFunctionMock[int, int]("Quiet")
	require.NoError(t, err)

	// must not panic without a configured logger
	mock.Setup(func(x int) int { return x })
	_, callErr := mock.Call(1)
	require.NoError(t, callErr)
	mock.Clear()
}
