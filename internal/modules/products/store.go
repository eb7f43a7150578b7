package products

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Lister is the slice of the repo the mirror needs.
type Lister interface {
	List(ctx context.Context) ([]Product, error)
}

// Store keeps a live in-memory mirror of the product collection. Every
// reload rebuilds the whole list from the latest snapshot rather than
// applying diffs, so readers always see a consistent state. On reload
// failure the mirror stays stale and the connection status flips; the next
// successful reload recovers transparently.
type Store struct {
	repo   Lister
	logger *slog.Logger

	mu        sync.RWMutex
	records   []Record
	connected bool

	subMu sync.Mutex
	subs  []func()
}

func NewStore(repo Lister, logger *slog.Logger) *Store {
	return &Store{repo: repo, logger: logger}
}

// Reload rebuilds the mirror from the repository and notifies subscribers.
func (s *Store) Reload(ctx context.Context) error {
	rows, err := s.repo.List(ctx)
	if err != nil {
		s.mu.Lock()
		s.connected = false
		s.mu.Unlock()
		s.logger.LogAttrs(ctx, slog.LevelError, "product_mirror_reload_failed",
			slog.Any("err", err),
		)
		return err
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Decode())
	}

	s.mu.Lock()
	s.records = records
	s.connected = true
	s.mu.Unlock()

	s.notify()
	return nil
}

// Records returns a copy of the current mirror.
func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Find returns the mirrored record with the given id.
func (s *Store) Find(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Connected reports whether the last reload succeeded.
func (s *Store) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// Subscribe registers a callback fired after every successful reload.
// Callbacks run synchronously on the reloading goroutine.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	s.subMu.Unlock()
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Run reloads the mirror on a fixed interval until ctx is done, picking up
// writes that did not go through this process.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Reload(ctx)
		}
	}
}
