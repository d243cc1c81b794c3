package double

// The wiring helpers embody the contract a generated call path must satisfy:
// in production mode the original implementation runs unconditionally; in
// test mode the call site checks IsSet and dispatches to the double, falling
// back to the original implementation otherwise.
//
// They cover the common func(P) R shape; call sites with other signatures can
// implement the same contract directly against the double's operations.

// WireMock returns the call path for a mocked call site.
func WireMock[P any, R any](mode Mode, mock *FunctionMock[P, R], original func(P) R) func(P) R {
	if mode != ModeTest {
		return original
	}

	return func(params P) R {
		if !mock.IsSet() {
			return original(params)
		}

		// IsSet was checked right before, Call cannot fail on this path.
		result, _ := mock.Call(params)

		return result
	}
}

// WireFake returns the call path provider for a faked call site. The provider
// is invoked per call and yields either the configured implementation or the
// original one.
func WireFake[F any](mode Mode, fake *FunctionFake[F], original F) func() F {
	if mode != ModeTest {
		return func() F {
			return original
		}
	}

	return func() F {
		impl, err := fake.GetImplementation()
		if err != nil {
			return original
		}

		return impl
	}
}

// WireStub returns the call path for a stubbed call site.
func WireStub[R any](mode Mode, stub *FunctionStub[R], original func() R) func() R {
	if mode != ModeTest {
		return original
	}

	return func() R {
		if !stub.IsSet() {
			return original()
		}

		value, err := stub.GetReturnValue()
		if err != nil {
			// The stored value could not be duplicated; the original
			// implementation is the only remaining way to produce an R.
			return original()
		}

		return value
	}
}
