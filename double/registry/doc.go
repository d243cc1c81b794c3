// Package registry provides per-execution-context storage for test doubles.
//
// The original thread-local model - one double instance per thread, invisible
// to every other thread - is expressed here as an explicit registry: a
// Registry maps context keys to Stores, and a Store holds the doubles of one
// context, keyed by function name and created lazily on first access.
//
// Common usage pattern:
//
//	reg := registry.NewRegistry()
//
//	// inside one test worker
//	store := reg.Context(t.Name())
//	mock, err := registry.MockFor[int, string](store, "FetchUserName")
//	if err != nil {
//		// handle error
//	}
//
//	// between test cases
//	store.Clear()
package registry
