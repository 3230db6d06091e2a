package handler

import (
	"sync"
	"time"

	"github.com/philipp01105/logfile/core"
)

// WriteFunc writes a single entry synchronously.
type WriteFunc func(entry *core.Entry) error

// AsyncConfig holds the queue settings shared by asynchronous routers.
type AsyncConfig struct {
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: uses DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining queue on Close (default: 5s)
	DrainTimeout time.Duration
}

func (cfg *AsyncConfig) applyDefaults() {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// Async queues entries and writes them from a single background goroutine.
// Entries are never mutated, so queuing the pointer is safe.
type Async struct {
	write          WriteFunc
	stats          *Stats
	queue          chan *core.Entry
	wg             sync.WaitGroup
	closed         chan struct{}
	closeOnce      sync.Once
	overflowPolicy map[core.Level]OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
}

// NewAsync starts the background writer. write must be safe to call from
// the background goroutine concurrently with callers that fall back to
// synchronous writes.
func NewAsync(write WriteFunc, stats *Stats, cfg AsyncConfig) *Async {
	cfg.applyDefaults()
	if stats == nil {
		stats = NewStats()
	}
	a := &Async{
		write:          write,
		stats:          stats,
		queue:          make(chan *core.Entry, cfg.BufferSize),
		closed:         make(chan struct{}),
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
	}
	a.wg.Add(1)
	go a.process()
	return a
}

// Handle sends a log entry to the queue with overflow policy handling.
func (a *Async) Handle(entry *core.Entry) error {
	select {
	case <-a.closed:
		// Closing or closed, nobody drains the queue any more
		return a.writeNow(entry)
	default:
	}

	policy, ok := a.overflowPolicy[entry.Level]
	if !ok {
		policy = DropNewest
	}

	switch policy {
	case Block:
		select {
		case a.queue <- entry:
			return nil
		default:
		}
		timer := time.NewTimer(a.blockTimeout)
		defer timer.Stop()
		select {
		case a.queue <- entry:
			return nil
		case <-timer.C:
			// Timeout - fall back to synchronous write
			a.stats.IncrementBlocked()
			return a.writeNow(entry)
		case <-a.closed:
			return a.writeNow(entry)
		}

	case DropOldest:
		select {
		case a.queue <- entry:
			return nil
		default:
		}
		select {
		case old := <-a.queue:
			a.stats.IncrementDropped(old.Level)
		default:
		}
		select {
		case a.queue <- entry:
		default:
			a.stats.IncrementDropped(entry.Level)
		}
		return nil

	default:
		select {
		case a.queue <- entry:
		default:
			a.stats.IncrementDropped(entry.Level)
		}
		return nil
	}
}

func (a *Async) writeNow(entry *core.Entry) error {
	err := a.write(entry)
	if err != nil {
		a.stats.IncrementFailed()
	} else {
		a.stats.IncrementProcessed()
	}
	return err
}

// process handles async log processing
func (a *Async) process() {
	defer a.wg.Done()

	for {
		select {
		case entry := <-a.queue:
			_ = a.writeNow(entry)
		case <-a.closed:
			deadline := time.NewTimer(a.drainTimeout)
			defer deadline.Stop()
			for {
				select {
				case entry := <-a.queue:
					_ = a.writeNow(entry)
				case <-deadline.C:
					return
				default:
					return
				}
			}
		}
	}
}

// Close drains the queue, bounded by the drain timeout, and stops the
// background goroutine. It is safe to call more than once.
func (a *Async) Close() error {
	a.closeOnce.Do(func() {
		close(a.closed)
	})
	a.wg.Wait()
	return nil
}
