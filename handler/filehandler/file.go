package filehandler

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/logfile/core"
	"github.com/philipp01105/logfile/formatter"
	"github.com/philipp01105/logfile/handler"
)

const megabyte = 1024 * 1024

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MaxSize is the maximum size in bytes before rotation. Rotation works
	// in whole megabytes, so the value is rounded up (0 = 100 MiB).
	MaxSize int64
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
	// MaxAgeDays removes backups older than this many days (0 = keep all)
	MaxAgeDays int
	// Compress gzips rotated backups
	Compress bool
	// LocalTime uses local time in backup file names instead of UTC
	LocalTime bool
	// Async enables asynchronous logging
	Async bool
	// AsyncConfig configures the async queue; ignored when Async is false
	handler.AsyncConfig
}

// ErrNoFilename is returned by NewFileHandler when FileConfig.Filename is empty.
var ErrNoFilename = errors.New("filehandler: filename is required")

// FileHandler writes formatted entries to a size-rotated file.
type FileHandler struct {
	out             *lumberjack.Logger
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex // serializes writes and rotation
	stats           *handler.Stats
	async           *handler.Async
}

// NewFileHandler creates a new file handler. The file and its directory
// are created lazily on the first write.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, ErrNoFilename
	}
	if cfg.MaxSize < 0 || cfg.MaxBackups < 0 || cfg.MaxAgeDays < 0 {
		return nil, fmt.Errorf("filehandler: negative limits in config for %s", cfg.Filename)
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &FileHandler{
		out: &lumberjack.Logger{
			Filename:   filepath.Clean(cfg.Filename),
			MaxSize:    int((cfg.MaxSize + megabyte - 1) / megabyte),
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		},
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	if cfg.Async {
		h.async = handler.NewAsync(h.write, h.stats, cfg.AsyncConfig)
	}
	return h, nil
}

// Filename returns the path of the active log file.
func (h *FileHandler) Filename() string {
	return h.out.Filename
}

// Handle processes a log entry
func (h *FileHandler) Handle(entry *core.Entry) error {
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

func (h *FileHandler) write(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(entry, h.out)
	}
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.out.Write(data)
	return err
}

// Rotate closes the current file, moves it aside with a timestamp and
// opens a new one.
func (h *FileHandler) Rotate() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.out.Rotate()
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close drains the async queue, if any, and closes the file.
func (h *FileHandler) Close() error {
	var err error
	if h.async != nil {
		err = h.async.Close()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return errors.Join(err, h.out.Close())
}
