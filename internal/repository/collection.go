package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/stpnv0/SlotBooker/internal/kvstore"
	"github.com/wb-go/wbf/logger"
)

// Clock is injected wherever "now" matters.
type Clock func() time.Time

// Storage keys, kept identical to the browser build so exported data lines up.
const (
	KeyBookings    = "bookingSystem_bookings"
	KeyUsers       = "bookingSystem_users"
	KeyServices    = "bookingSystem_services"
	KeyCurrentUser = "bookingSystem_currentUser"
	KeyTasks       = "taskManagerTasks"
)

// collection is one JSON array stored under a single key. Every mutation
// decodes the whole array, changes it in memory and writes it back.
type collection[K comparable, T any] struct {
	store kvstore.Store
	key   string
	idOf  func(*T) K
	log   logger.Logger

	mu sync.Mutex
}

// snapshot is a decoded collection plus an id index over it.
type snapshot[K comparable, T any] struct {
	items []*T
	index map[K]int
	idOf  func(*T) K
}

func (s *snapshot[K, T]) get(id K) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

func (s *snapshot[K, T]) append(item *T, id K) {
	if _, dup := s.index[id]; !dup {
		s.index[id] = len(s.items)
	}
	s.items = append(s.items, item)
}

func (s *snapshot[K, T]) remove(id K) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	kept := s.items[:0]
	for _, it := range s.items {
		if s.idOf(it) != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.reindex()
	return true
}

func (s *snapshot[K, T]) reindex() {
	s.index = make(map[K]int, len(s.items))
	for i, it := range s.items {
		id := s.idOf(it)
		// first occurrence wins, matching a linear find
		if _, dup := s.index[id]; !dup {
			s.index[id] = i
		}
	}
}

func newCollection[K comparable, T any](store kvstore.Store, key string, idOf func(*T) K, log logger.Logger) *collection[K, T] {
	return &collection[K, T]{store: store, key: key, idOf: idOf, log: log}
}

func (c *collection[K, T]) load(ctx context.Context) (*snapshot[K, T], error) {
	s := &snapshot[K, T]{idOf: c.idOf}

	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			s.reindex()
			return s, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}

	var items []*T
	if err = json.Unmarshal(raw, &items); err != nil {
		c.log.Warn("unreadable collection treated as empty",
			logger.String("key", c.key),
			logger.String("error", err.Error()),
		)
		items = nil
	}

	for _, it := range items {
		if it != nil {
			s.items = append(s.items, it)
		}
	}
	s.reindex()

	return s, nil
}

func (c *collection[K, T]) save(ctx context.Context, s *snapshot[K, T]) error {
	items := s.items
	if items == nil {
		items = []*T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}

	if err = c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}

	return nil
}

func (c *collection[K, T]) list(ctx context.Context) ([]*T, error) {
	s, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.items, nil
}

func (c *collection[K, T]) get(ctx context.Context, id K) (*T, bool, error) {
	s, err := c.load(ctx)
	if err != nil {
		return nil, false, err
	}
	it, ok := s.get(id)
	return it, ok, nil
}

// mutate runs fn over a fresh snapshot under the collection lock and writes
// the result back when fn reports a change.
func (c *collection[K, T]) mutate(ctx context.Context, fn func(s *snapshot[K, T]) (bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.load(ctx)
	if err != nil {
		return err
	}

	changed, err := fn(s)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	return c.save(ctx, s)
}

// pendingWrite is one collection already encoded and waiting to be stored.
type pendingWrite struct {
	key string
	raw []byte
	mu  *sync.Mutex
}

// encode prepares items to overwrite the stored array wholesale.
func (c *collection[K, T]) encode(items []*T) (pendingWrite, error) {
	if items == nil {
		items = []*T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return pendingWrite{}, fmt.Errorf("encode %s: %w", c.key, err)
	}

	return pendingWrite{key: c.key, raw: raw, mu: &c.mu}, nil
}

// writeAll stores every write under its collection lock. When one fails the
// keys already written are put back the way they were.
func writeAll(ctx context.Context, store kvstore.Store, writes []pendingWrite) error {
	for _, w := range writes {
		w.mu.Lock()
		defer w.mu.Unlock()
	}

	prior := make([][]byte, len(writes))
	for i, w := range writes {
		raw, err := store.Get(ctx, w.key)
		if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
			return fmt.Errorf("read %s: %w", w.key, err)
		}
		prior[i] = raw
	}

	for i, w := range writes {
		if err := store.Set(ctx, w.key, w.raw); err != nil {
			err = fmt.Errorf("write %s: %w", w.key, err)
			return errors.Join(err, restore(ctx, store, writes[:i], prior))
		}
	}

	return nil
}

// restore puts back prior values; a nil value means the key was absent.
func restore(ctx context.Context, store kvstore.Store, writes []pendingWrite, prior [][]byte) error {
	ctx = context.WithoutCancel(ctx)

	var errs []error
	for i, w := range writes {
		var err error
		if prior[i] == nil {
			err = store.Remove(ctx, w.key)
		} else {
			err = store.Set(ctx, w.key, prior[i])
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", w.key, err))
		}
	}
	return errors.Join(errs...)
}

func (c *collection[K, T]) clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Remove(ctx, c.key); err != nil {
		return fmt.Errorf("remove %s: %w", c.key, err)
	}
	return nil
}

// idSource hands out millisecond timestamps, bumped past the last id issued
// and past the largest id already stored, so ids stay strictly increasing.
type idSource struct {
	mu   sync.Mutex
	now  Clock
	last int64
}

func (g *idSource) next(floor int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	if id <= floor {
		id = floor + 1
	}
	g.last = id
	return id
}

func maxID[T any](items []*T, idOf func(*T) int64) int64 {
	var m int64
	for _, it := range items {
		if id := idOf(it); id > m {
			m = id
		}
	}
	return m
}
