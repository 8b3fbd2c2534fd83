// Package kvbridge is a typed adapter core for a Redis-compatible
// key/value store. It layers exclusive connection leasing, typed
// primitive operations (strings, hashes, sets), ordered command
// pipelines, optimistic transactions, and a named server-side script
// registry over a single store endpoint.
//
// The entry point is pkg/adapter:
//
//	db, err := adapter.New(ctx, &adapter.Config{URL: "redis://localhost:6379/0"})
//	if err != nil {
//		// InvalidArgument (bad URL) or ConnectFailed (unreachable)
//	}
//	defer db.Close()
//
//	err = db.Strings().Set(ctx, "greeting", "hello")
//	val, ok, err := db.Strings().Get(ctx, "greeting")
//
// Every failure carries a code from pkg/errors (PoolExhausted,
// ConnectionLost, Aborted, ...) so callers can branch on the class of
// failure instead of matching message text. Absent keys are reported
// as typed absence, never as errors.
package kvbridge
