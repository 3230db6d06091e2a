// Package core defines the shared types used across logfile.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event on its way to the routers, the Field type
// for structured key-value pairs, and the metadata an entry may carry:
// an EventID chain, the Hierarchy of the logfile that produced it and the
// exception that caused it.
//
// FilterRule is the allow/block predicate evaluated both by the logfile
// before fan-out and by the host bridge when it answers "is this level
// enabled?". It is generic over the level type so that backends with
// their own loglevel enumeration can reuse it.
//
// Field encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// never escape to the heap. The Any field exists as a fallback for
// arbitrary types but will cause an allocation.
package core
