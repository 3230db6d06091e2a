// Package handler provides the Handler interface implemented by every
// logfile router, together with the overflow policy and statistics
// shared by the built-in routers.
//
// Routers that write asynchronously send entries to a bounded channel
// processed by a background goroutine, which keeps the caller's hot path
// fast even under slow I/O. When the queue is full each router applies a
// per-level OverflowPolicy: DropNewest (default for Trace..Warn),
// DropOldest, or Block with a configurable timeout (default for Error
// and Critical), so low-priority logs never stall the application while
// critical errors are not silently dropped.
//
// Built-in routers live in sub-packages:
//
//   - consolehandler writes formatted entries to any io.Writer (default: stdout).
//   - filehandler writes to a rotating file managed by lumberjack.
//   - multihandler fans out a single entry to multiple child routers.
//   - zaphandler, zerologhandler and logrushandler forward entries into
//     an existing zap, zerolog or logrus logger.
//
// Routers track dropped, blocked, processed and failed counts via the
// Stats type, which can be queried at runtime for monitoring.
package handler
