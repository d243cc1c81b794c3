package double

// Logger interface for double lifecycle logging, dispatch tracing, and misuse reporting.
//
// It is dependency-free so any structured logging backend can be plugged in;
// the zerologadapter subpackage provides a ready-made implementation.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

const (
	logMsgImplementationConfigured = "implementation configured"
	logMsgReturnValueConfigured    = "return value configured"
	logMsgDoubleCleared            = "double cleared"
	logMsgCallDispatched           = "call dispatched to configured implementation"
	logMsgCallNotConfigured        = "call recorded without configured implementation"
	logMsgReturnValueRetrieved     = "return value retrieved"
	logMsgAssertionFailed          = "assertion failed"
	logAttrFunction                = "function"
	logAttrCallCount               = "call_count"
	logAttrExpected                = "expected"
	logAttrActual                  = "actual"
)
