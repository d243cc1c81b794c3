package double

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// FunctionStub holds one fixed return value for a function without parameters
// or recording. Every retrieval yields an independent duplicate, so callers
// may mutate what they get without affecting the stored value or each other.
//
// The default duplication is a JSON round-trip, which covers plain values,
// slices, maps, and JSON-serializable structs. For anything JSON cannot
// carry, construct the stub with NewFunctionStubWithClone.
type FunctionStub[R any] struct {
	functionName string
	value        R
	configured   bool
	clone        func(R) R
	logger       Logger
}

// NewFunctionStub creates a FunctionStub in its unconfigured state.
// The function name is only used in diagnostic messages.
func NewFunctionStub[R any](functionName string, options ...Option) (*FunctionStub[R], error) {
	if functionName == "" {
		return nil, ErrEmptyFunctionName
	}

	s, err := applyOptions(options)
	if err != nil {
		return nil, err
	}

	if s.ignored != nil {
		return nil, ErrIgnoredParamsNotSupported
	}

	return &FunctionStub[R]{
		functionName: functionName,
		logger:       s.logger,
	}, nil
}

// NewFunctionStubWithClone creates a FunctionStub that duplicates the stored
// value with the supplied clone function instead of the JSON round-trip.
func NewFunctionStubWithClone[R any](functionName string, clone func(R) R, options ...Option) (*FunctionStub[R], error) {
	if clone == nil {
		return nil, ErrNilCloneFunc
	}

	stub, err := NewFunctionStub[R](functionName, options...)
	if err != nil {
		return nil, err
	}

	stub.clone = clone

	return stub, nil
}

// FunctionName returns the name of the stubbed function.
func (s *FunctionStub[R]) FunctionName() string {
	return s.functionName
}

// Setup stores value as the return value, replacing any previous one.
func (s *FunctionStub[R]) Setup(value R) {
	s.value = value
	s.configured = true
	s.logDebug(logMsgReturnValueConfigured)
}

// Clear discards the stored return value, returning the stub to its freshly
// constructed state.
func (s *FunctionStub[R]) Clear() {
	var zero R
	s.value = zero
	s.configured = false
	s.logDebug(logMsgDoubleCleared)
}

// IsSet reports whether a return value is currently configured.
func (s *FunctionStub[R]) IsSet() bool {
	return s.configured
}

// GetReturnValue returns an independent duplicate of the stored value, or
// fails with a NotConfiguredError if none is set. The stored value is never
// consumed or mutated by retrieval.
func (s *FunctionStub[R]) GetReturnValue() (R, error) {
	if !s.configured {
		var zero R
		return zero, &NotConfiguredError{FunctionName: s.functionName}
	}

	s.logDebug(logMsgReturnValueRetrieved)

	if s.clone != nil {
		return s.clone(s.value), nil
	}

	return duplicateValue(s.value)
}

// duplicateValue deep-copies a value through a JSON round-trip.
func duplicateValue[R any](value R) (R, error) {
	var duplicate R

	data, marshalErr := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(value)
	if marshalErr != nil {
		return duplicate, fmt.Errorf("%w: %w", ErrValueNotCloneable, marshalErr)
	}

	if unmarshalErr := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &duplicate); unmarshalErr != nil {
		return duplicate, fmt.Errorf("%w: %w", ErrValueNotCloneable, unmarshalErr)
	}

	return duplicate, nil
}

func (s *FunctionStub[R]) logDebug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, append([]any{logAttrFunction, s.functionName}, args...)...)
	}
}
