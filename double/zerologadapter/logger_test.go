package zerologadapter_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakob-rzeppa/fnmock/double"
	"github.com/jakob-rzeppa/fnmock/double/zerologadapter"
)

func Test_Logger_WritesStructuredFields(t *testing.T) {
	var out bytes.Buffer
	logger := zerologadapter.NewLogger(zerolog.New(&out).Level(zerolog.DebugLevel))

	logger.Debug("implementation configured", "function", "FetchUserName", "call_count", 2)

	logged := out.String()
	assert.Contains(t, logged, `"message":"implementation configured"`)
	assert.Contains(t, logged, `"function":"FetchUserName"`)
	assert.Contains(t, logged, `"call_count":2`)
	assert.Contains(t, logged, `"level":"debug"`)
}

func Test_Logger_AllLevels(t *testing.T) {
	var out bytes.Buffer
	logger := zerologadapter.NewLogger(zerolog.New(&out).Level(zerolog.DebugLevel))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	logged := out.String()
	assert.Contains(t, logged, `"level":"debug"`)
	assert.Contains(t, logged, `"level":"info"`)
	assert.Contains(t, logged, `"level":"warn"`)
	assert.Contains(t, logged, `"level":"error"`)
}

func Test_Logger_ToleratesOddArgs(t *testing.T) {
	var out bytes.Buffer
	logger := zerologadapter.NewLogger(zerolog.New(&out).Level(zerolog.DebugLevel))

	logger.Debug("odd args", "function", "FetchUserName", "dangling")

	logged := out.String()
	assert.Contains(t, logged, `"function":"FetchUserName"`)
	assert.Contains(t, logged, `"!BADKEY":"dangling"`)
}

func Test_Logger_AttachesToDoubles(t *testing.T) {
	var out bytes.Buffer
	logger := zerologadapter.NewLogger(zerolog.New(&out).Level(zerolog.DebugLevel))

	mock, err := double.NewFunctionMock[int, int]("Tracked", double.WithLogger(logger))
	require.NoError(t, err)

	mock.Setup(func(x int) int { return x })

	assert.Contains(t, out.String(), `"function":"Tracked"`)
	assert.Contains(t, out.String(), `"message":"implementation configured"`)
}
