// Package double provides the runtime behind function-level test doubles:
// mocks, fakes, and stubs that substitute a function's behavior in test runs.
//
// Three kinds share the same lifecycle (Unconfigured -> Setup -> Configured
// -> Clear -> Unconfigured) and differ in what they add on top:
//
//   - FunctionMock: pluggable implementation, ordered call log, and
//     assertions (AssertTimes, AssertWith)
//   - FunctionFake: pluggable implementation only, no recording
//   - FunctionStub: fixed return value, duplicated on every retrieval
//
// Every dispatch operation (Call, GetImplementation, GetReturnValue) fails
// with a NotConfiguredError while the double is unconfigured; failures are
// returned immediately and are meant to be fatal to the calling test.
//
// Multi-parameter functions hand their parameters to a mock as a parameter
// struct (exported fields, in declaration order) or an array; parameter
// positions that do not support value equality are excluded from recording
// and assertion with WithIgnoredParams. Multi-result functions pack their
// results into a result struct the same way.
//
// Common usage pattern:
//
//	mock, err := double.NewFunctionMock[int, string]("FetchUserName")
//	if err != nil {
//		// handle error
//	}
//
//	mock.Setup(func(id int) string {
//		return fmt.Sprintf("user_%d", id)
//	})
//
//	name, err := mock.Call(42) // "user_42"
//
//	err = mock.AssertTimes(1)
//	err = mock.AssertWith(42)
//
//	mock.Clear()
//
// A double instance belongs to exactly one execution context (one test
// worker, one goroutine driving a test case) and must only be operated on
// sequentially within it; the registry subpackage keeps per-context stores
// apart so no cross-context locking is ever needed. Concurrent mutation of
// one instance from multiple goroutines is unsupported and may produce
// inconsistent call logs.
//
// Which call path runs - the real function or the double - is decided by a
// Mode value injected at startup (see ModeFromEnv and the Wire helpers)
// rather than by conditional compilation, so the runtime stays usable purely
// through its direct operation API.
package double
