package double

// FunctionFake swaps the implementation of one function without recording
// anything. Because no parameter values are ever stored, F can be any
// function signature, including ones taking references, channels, or other
// values that do not support equality.
//
// The caller dispatches the fake itself: GetImplementation returns the
// configured function and the call site invokes it.
type FunctionFake[F any] struct {
	functionName string
	impl         F
	configured   bool
	logger       Logger
}

// NewFunctionFake creates a FunctionFake in its unconfigured state.
// The function name is only used in diagnostic messages.
func NewFunctionFake[F any](functionName string, options ...Option) (*FunctionFake[F], error) {
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

	return &FunctionFake[F]{
		functionName: functionName,
		logger:       s.logger,
	}, nil
}

// FunctionName returns the name of the faked function.
func (f *FunctionFake[F]) FunctionName() string {
	return f.functionName
}

// Setup stores impl as the active implementation, replacing any previous one.
func (f *FunctionFake[F]) Setup(impl F) {
	f.impl = impl
	f.configured = true
	f.logDebug(logMsgImplementationConfigured)
}

// Clear discards the configured implementation, returning the fake to its
// freshly constructed state.
func (f *FunctionFake[F]) Clear() {
	var zero F
	f.impl = zero
	f.configured = false
	f.logDebug(logMsgDoubleCleared)
}

// IsSet reports whether an implementation is currently configured.
func (f *FunctionFake[F]) IsSet() bool {
	return f.configured
}

// GetImplementation returns the configured implementation, or fails with a
// NotConfiguredError if none is set.
func (f *FunctionFake[F]) GetImplementation() (F, error) {
	if !f.configured {
		var zero F
		return zero, &NotConfiguredError{FunctionName: f.functionName}
	}

	f.logDebug(logMsgCallDispatched)

	return f.impl, nil
}

func (f *FunctionFake[F]) logDebug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, append([]any{logAttrFunction, f.functionName}, args...)...)
	}
}
