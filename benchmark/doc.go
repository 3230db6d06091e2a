// Package benchmark compares logging through the bridge and the logfile
// backend with logging straight into zap, zerolog, logrus and slog. All
// sinks discard their output.
//
//	go test -bench . -benchmem ./benchmark
package benchmark
