package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/logfile/core"
	"github.com/philipp01105/logfile/formatter"
	"github.com/philipp01105/logfile/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Async enables asynchronous logging
	Async bool
	// Queue configures the async queue; ignored when Async is false
	handler.AsyncConfig
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// ConsoleHandler writes formatted entries to an io.Writer.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex // serializes writes to writer
	stats           *handler.Stats
	async           *handler.Async
}

// NewConsoleHandler creates a new console handler. With Async set, entries
// are written by a background goroutine and Close drains the queue.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	if cfg.Async {
		h.async = handler.NewAsync(h.write, h.stats, cfg.AsyncConfig)
	}
	return h
}

// Handle processes a log entry
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.async != nil {
		return h.async.Handle(entry)
	}
	err := h.write(entry)
	if err != nil {
		h.stats.IncrementFailed()
	} else {
		h.stats.IncrementProcessed()
	}
	return err
}

// write formats and writes an entry
func (h *ConsoleHandler) write(entry *core.Entry) error {
	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(entry, h.writer)
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, err = h.writer.Write(data)
	h.mu.Unlock()
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close drains the async queue, if any. The writer is not closed.
func (h *ConsoleHandler) Close() error {
	if h.async != nil {
		return h.async.Close()
	}
	return nil
}
