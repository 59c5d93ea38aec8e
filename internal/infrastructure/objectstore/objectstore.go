package objectstore

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ObjectStore is a concurrent, in-memory KV indexed by string IDs, with
// optional per-entry expiry.
//
// Iteration is deterministic (ascending IDs). Reads use shared locks; writes
// use exclusive locks. Expired entries are invisible to readers and are
// removed by Sweep.
//
// Values are stored as provided, without deep copying.
type ObjectStore[V any] struct {
	log *zap.Logger
	now func() time.Time

	mu sync.RWMutex // guards st
	st storeState[V]
}

type entry[V any] struct {
	val     V
	expires time.Time // zero: never
}

type storeState[V any] struct {
	byID map[string]entry[V]
	ids  []string // ascending
}

// New constructs a ready-to-use ObjectStore.
func New[V any](log *zap.Logger) *ObjectStore[V] {
	if log == nil {
		log = zap.NewNop()
	}
	return &ObjectStore[V]{
		log: log,
		now: time.Now,
		st: storeState[V]{
			byID: make(map[string]entry[V]),
		},
	}
}

// Upsert inserts or overwrites value at id. A ttl <= 0 never expires.
//
// Time: O(1) overwrite or append past the current max; O(n) mid-slice insert.
func (s *ObjectStore[V]) Upsert(id string, value V, ttl time.Duration) {
	e := entry[V]{val: value}
	if ttl > 0 {
		e.expires = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.st.byID[id]; exists {
		s.st.byID[id] = e
		return
	}
	s.st.byID[id] = e

	// Append fast path: id sorts after the current maximum.
	if n := len(s.st.ids); n == 0 || id > s.st.ids[n-1] {
		s.st.ids = append(s.st.ids, id)
		return
	}

	i := sort.SearchStrings(s.st.ids, id)
	s.st.ids = append(s.st.ids, "")
	copy(s.st.ids[i+1:], s.st.ids[i:])
	s.st.ids[i] = id
}

// Delete removes id and reports whether a live entry was present.
func (s *ObjectStore[V]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.st.byID[id]
	if !ok {
		return false
	}
	s.remove(id)
	return !s.expired(e, s.now())
}

// GetOne returns the live value at id.
func (s *ObjectStore[V]) GetOne(id string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.st.byID[id]
	if !ok || s.expired(e, s.now()) {
		var zero V
		return zero, false
	}
	return e.val, true
}

// GetList returns live values in ascending ID order.
func (s *ObjectStore[V]) GetList() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	out := make([]V, 0, len(s.st.ids))
	for _, id := range s.st.ids {
		if e := s.st.byID[id]; !s.expired(e, now) {
			out = append(out, e.val)
		}
	}
	return out
}

// Len returns the number of live entries.
func (s *ObjectStore[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	n := 0
	for _, e := range s.st.byID {
		if !s.expired(e, now) {
			n++
		}
	}
	return n
}

// Sweep removes expired entries and returns how many were dropped.
func (s *ObjectStore[V]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var dropped []string
	for id, e := range s.st.byID {
		if s.expired(e, now) {
			dropped = append(dropped, id)
		}
	}
	for _, id := range dropped {
		s.remove(id)
	}
	if len(dropped) > 0 {
		s.log.Debug("swept expired entries", zap.Int("count", len(dropped)))
	}
	return len(dropped)
}

// remove deletes id from both indexes. Caller holds the write lock.
func (s *ObjectStore[V]) remove(id string) {
	delete(s.st.byID, id)
	if i := sort.SearchStrings(s.st.ids, id); i < len(s.st.ids) && s.st.ids[i] == id {
		s.st.ids = append(s.st.ids[:i], s.st.ids[i+1:]...)
	}
}

func (s *ObjectStore[V]) expired(e entry[V], now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}
