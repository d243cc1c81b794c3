package double

import (
	"fmt"
	"slices"
)

// FunctionMock intercepts calls to one function: it records every invocation
// in an ordered call log, dispatches to a configurable implementation, and
// answers assertions about how the function was called.
//
// P is the parameter value handed to Call: the parameter itself for
// single-parameter functions, a parameter struct (exported fields, in
// declaration order) or an array for multi-parameter functions. P must be
// comparable by value for AssertWith; positions that are not (connections,
// contexts, channels) can be excluded with WithIgnoredParams.
//
// An instance belongs to exactly one execution context and must only be
// mutated sequentially; see the package documentation.
type FunctionMock[P any, R any] struct {
	functionName string
	impl         func(P) R
	callLog      []recordedParams
	ignored      []int
	logger       Logger
}

// NewFunctionMock creates a FunctionMock in its unconfigured state, with an
// empty call log. The function name is only used in diagnostic messages.
func NewFunctionMock[P any, R any](functionName string, options ...Option) (*FunctionMock[P, R], error) {
	if functionName == "" {
		return nil, ErrEmptyFunctionName
	}

	s, err := applyOptions(options)
	if err != nil {
		return nil, err
	}

	return &FunctionMock[P, R]{
		functionName: functionName,
		ignored:      s.ignored,
		logger:       s.logger,
	}, nil
}

// FunctionName returns the name of the mocked function.
func (m *FunctionMock[P, R]) FunctionName() string {
	return m.functionName
}

// Setup stores impl as the active implementation, replacing any previous one.
// A nil impl leaves the mock unconfigured, as if Setup had not been called.
func (m *FunctionMock[P, R]) Setup(impl func(P) R) {
	m.impl = impl
	if impl == nil {
		return
	}
	m.logDebug(logMsgImplementationConfigured)
}

// Call appends params to the call log and dispatches to the configured
// implementation. Without one it fails with a NotConfiguredError - but the
// log has grown either way, so the failed call still counts for AssertTimes.
func (m *FunctionMock[P, R]) Call(params P) (R, error) {
	m.callLog = append(m.callLog, projectParams(params, m.ignored))

	if m.impl == nil {
		var zero R
		m.logDebug(logMsgCallNotConfigured, logAttrCallCount, len(m.callLog))

		return zero, &NotConfiguredError{FunctionName: m.functionName}
	}

	m.logDebug(logMsgCallDispatched, logAttrCallCount, len(m.callLog))

	return m.impl(params), nil
}

// Clear discards the configured implementation and empties the call log,
// returning the mock to its freshly constructed state.
func (m *FunctionMock[P, R]) Clear() {
	m.impl = nil
	m.callLog = nil
	m.logDebug(logMsgDoubleCleared)
}

// IsSet reports whether an implementation is currently configured.
func (m *FunctionMock[P, R]) IsSet() bool {
	return m.impl != nil
}

// CallCount returns the current length of the call log.
func (m *FunctionMock[P, R]) CallCount() int {
	return len(m.callLog)
}

// Calls returns the recorded parameter projections, one entry per call in
// call order, with ignored positions omitted. The entries are copies; the
// caller may keep or mutate them without touching the log.
func (m *FunctionMock[P, R]) Calls() [][]any {
	calls := make([][]any, 0, len(m.callLog))
	for _, logged := range m.callLog {
		calls = append(calls, []any(slices.Clone(logged)))
	}

	return calls
}

// AssertTimes fails with an AssertionError unless the function was called
// exactly expected times. It never mutates state and can be called repeatedly.
func (m *FunctionMock[P, R]) AssertTimes(expected int) error {
	if len(m.callLog) == expected {
		return nil
	}

	assertionErr := &AssertionError{
		FunctionName: m.functionName,
		Expected:     fmt.Sprintf("%d calls", expected),
		Actual:       fmt.Sprintf("%d calls", len(m.callLog)),
	}
	m.logDebug(logMsgAssertionFailed, logAttrExpected, assertionErr.Expected, logAttrActual, assertionErr.Actual)

	return assertionErr
}

// AssertWith fails with an AssertionError unless at least one logged call
// equals params by value. Ignored positions are stripped from both sides
// before comparing; the first match, in call order, succeeds.
func (m *FunctionMock[P, R]) AssertWith(params P) error {
	want := projectParams(params, m.ignored)

	for _, logged := range m.callLog {
		if logged.equal(want) {
			return nil
		}
	}

	assertionErr := &AssertionError{
		FunctionName: m.functionName,
		Expected:     "a call with parameters " + want.String(),
		Actual:       renderCallLog(m.callLog),
	}
	m.logDebug(logMsgAssertionFailed, logAttrExpected, assertionErr.Expected, logAttrActual, assertionErr.Actual)

	return assertionErr
}

func (m *FunctionMock[P, R]) logDebug(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, append([]any{logAttrFunction, m.functionName}, args...)...)
	}
}
