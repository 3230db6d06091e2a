// Package bridge adapts a category based, leveled host logging interface
// onto a structured logfile backend.
//
// A host asks a Provider for a Logger per category. Each Logger maps host
// levels onto backend levels, answers IsEnabled from the backend's level
// filter rules when the backend exposes them, and turns every Log call into
// an Entry carrying the formatted message, the exception, an event id
// chain and the backend's hierarchy.
//
// Logging never fails the caller: mapping, formatting and submission
// failures, including panics, are dropped at a single point in
// Adapter.Log and only reported to the optional OnError hook. The one
// error that does reach callers is ErrDisposed, returned when a closed
// Provider is asked for a new Logger.
//
//	lf, _ := logfile.New(cfg)
//	provider, _ := bridge.NewStandardProvider(lf)
//	defer provider.Close()
//
//	log, _ := provider.CreateLogger("Orders")
//	log.Log(bridge.Information, bridge.EventID{ID: 7, Name: "Started"},
//	    "order placed", nil, bridge.DefaultFormatter)
//
// The same Provider feeds the log/slog front-end (NewSlogHandler) and the
// logr front-end (NewLogr).
//
// Scopes are not supported: BeginScope returns a no-op io.Closer.
package bridge
