// Package memo memoizes stats.Analyze behind a bounded LRU keyed by
// (SHA-256 of the sequence, window). A cached *stats.Metrics is the very
// value a fresh computation returned, so hits are bit-identical to misses.
package memo

import (
	"container/list"
	"crypto/sha256"
	"sync"

	"seqstats/internal/stats"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 256

// Key identifies one analysis.
type Key struct {
	Sum    [sha256.Size]byte
	Window int
}

// KeyOf builds the cache key for (seq, window).
func KeyOf(seq string, window int) Key {
	return Key{Sum: sha256.Sum256([]byte(seq)), Window: window}
}

type entry struct {
	k Key
	m *stats.Metrics
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits, Misses int64
	Size, Cap    int
}

// Analyzer computes metrics, consulting the cache first. Safe for
// concurrent use. A nil *Analyzer computes without caching.
type Analyzer struct {
	mu     sync.Mutex
	cap    int
	ll     *list.List
	m      map[Key]*list.Element
	hits   int64
	misses int64
}

// New returns an Analyzer holding at most capacity results.
func New(capacity int) *Analyzer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Analyzer{cap: capacity, ll: list.New(), m: make(map[Key]*list.Element, capacity)}
}

// Disabled returns the pass-through analyzer.
func Disabled() *Analyzer { return nil }

// Analyze returns stats.Analyze(seq, window), from cache when possible.
// The returned value is shared and must not be modified.
func (a *Analyzer) Analyze(seq string, window int) *stats.Metrics {
	if a == nil {
		return stats.Analyze(seq, window)
	}
	k := KeyOf(seq, window)
	if m, ok := a.get(k); ok {
		return m
	}
	// computed outside the lock; concurrent misses on one key both compute
	m := stats.Analyze(seq, window)
	a.put(k, m)
	return m
}

func (a *Analyzer) get(k Key) (*stats.Metrics, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if e, ok := a.m[k]; ok {
		a.ll.MoveToFront(e)
		a.hits++
		return e.Value.(*entry).m, true
	}
	a.misses++
	return nil, false
}

func (a *Analyzer) put(k Key, m *stats.Metrics) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if e, ok := a.m[k]; ok {
		a.ll.MoveToFront(e)
		return
	}
	a.m[k] = a.ll.PushFront(&entry{k: k, m: m})
	if a.ll.Len() > a.cap {
		if tail := a.ll.Back(); tail != nil {
			a.ll.Remove(tail)
			delete(a.m, tail.Value.(*entry).k)
		}
	}
}

// Stats reports hit/miss counters and occupancy. Zero for a nil Analyzer.
func (a *Analyzer) Stats() Stats {
	if a == nil {
		return Stats{}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return Stats{Hits: a.hits, Misses: a.misses, Size: a.ll.Len(), Cap: a.cap}
}
