// Package consolehandler provides the console router, which writes
// formatted log entries to any io.Writer (default: os.Stdout).
//
// In synchronous mode the entry is formatted and written on the caller's
// goroutine under a mutex. With Async set, entries are queued and written
// by a background goroutine that applies the per-level OverflowPolicy of
// package handler when the queue is full; Close drains the queue.
package consolehandler
