// Package journal persists branch insertions in an embedded BadgerDB so that a
// network can be restored after a restart.
//
// Every accepted insertion is one entry keyed by its sequence number:
//
//	branch/00000000000000000000 → {"seq":0,"name":"Colombo","lat":6.9271,...}
//
// Keys sort in insertion order, so Replay walks the log with a plain prefix
// iterator. Sequence numbers must be contiguous from zero; a gap means the log was
// tampered with or partially copied, and Replay refuses it.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v4"
)

// Sentinel errors for journal operations.
var (
	// ErrClosed indicates an operation on a closed journal.
	ErrClosed = errors.New("journal: closed")

	// ErrSequenceGap indicates a non-contiguous sequence number.
	ErrSequenceGap = errors.New("journal: sequence gap")

	// ErrNoPath indicates a persistent journal without a directory.
	ErrNoPath = errors.New("journal: path is required for a persistent journal")
)

// keyPrefix is the key namespace for branch entries.
const keyPrefix = "branch/"

// Entry is one recorded insertion.
type Entry struct {
	Seq  uint64    `json:"seq"`
	Name string    `json:"name"`
	Lat  float64   `json:"lat"`
	Lon  float64   `json:"lon"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	At   time.Time `json:"at"`
}

// Config holds configuration for a journal.
type Config struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps the journal in RAM only. Useful for tests.
	InMemory bool

	// SyncWrites fsyncs every append.
	SyncWrites bool

	// Logger receives Badger's internal messages. Nil disables them.
	Logger *log.Logger
}

// DefaultConfig returns a durable on-disk configuration at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts charm log to Badger's Logger interface.
// Badger is chatty at Info, so its Info messages go to Debug.
type badgerLogger struct {
	logger *log.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{})   { l.logger.Errorf(format, args...) }
func (l *badgerLogger) Warningf(format string, args ...interface{}) { l.logger.Warnf(format, args...) }
func (l *badgerLogger) Infof(format string, args ...interface{})    { l.logger.Debugf(format, args...) }
func (l *badgerLogger) Debugf(format string, args ...interface{})   { l.logger.Debugf(format, args...) }

// Journal is an append-only, Badger-backed insertion log. Safe for concurrent use.
type Journal struct {
	db *badger.DB

	mu     sync.Mutex
	next   uint64
	closed bool
}

// Open opens (or creates) a journal and positions it after the last entry.
//
// Errors: ErrNoPath, ErrSequenceGap if the stored log is not contiguous, Badger errors.
func Open(cfg Config) (*Journal, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrNoPath
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("journal: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger.WithPrefix("badger")})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("journal: open badger: %w", err)
	}

	j := &Journal{db: db}
	n, err := j.scan(context.Background(), nil)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	j.next = n

	return j, nil
}

// Append stores e. e.Seq must equal Len().
//
// Errors: ErrClosed, ErrSequenceGap, context errors, Badger errors.
func (j *Journal) Append(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return ErrClosed
	}
	if e.Seq != j.next {
		return fmt.Errorf("%w: append seq %d, expected %d", ErrSequenceGap, e.Seq, j.next)
	}
	val, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("journal: encode entry %d: %w", e.Seq, err)
	}
	if err := j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(e.Seq), val)
	}); err != nil {
		return fmt.Errorf("journal: write entry %d: %w", e.Seq, err)
	}
	j.next++

	return nil
}

// Replay calls fn for every entry in sequence order. It stops at the first
// error from fn, a gap in the sequence, or ctx cancellation.
func (j *Journal) Replay(ctx context.Context, fn func(Entry) error) error {
	j.mu.Lock()
	closed := j.closed
	j.mu.Unlock()
	if closed {
		return ErrClosed
	}

	_, err := j.scan(ctx, fn)

	return err
}

// scan iterates all entries, checks contiguity, and returns the entry count.
func (j *Journal) scan(ctx context.Context, fn func(Entry) error) (uint64, error) {
	var expected uint64
	err := j.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(keyPrefix), PrefetchValues: true, PrefetchSize: 64})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var e Entry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			}); err != nil {
				return fmt.Errorf("journal: decode %s: %w", it.Item().Key(), err)
			}
			if e.Seq != expected {
				return fmt.Errorf("%w: found seq %d, expected %d", ErrSequenceGap, e.Seq, expected)
			}
			if fn != nil {
				if err := fn(e); err != nil {
					return err
				}
			}
			expected++
		}

		return nil
	})

	return expected, err
}

// Len returns the number of stored entries.
func (j *Journal) Len() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.next
}

// Close closes the underlying database. Further calls return ErrClosed.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return ErrClosed
	}
	j.closed = true

	return j.db.Close()
}

// key renders the zero-padded entry key.
func key(seq uint64) []byte {
	k := make([]byte, 0, len(keyPrefix)+20)
	k = append(k, keyPrefix...)
	s := strconv.FormatUint(seq, 10)
	for i := len(s); i < 20; i++ {
		k = append(k, '0')
	}

	return append(k, s...)
}
