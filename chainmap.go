package chainmap

import (
	"go.uber.org/zap"

	"github.com/theflywheel/chainmap/list"
)

const (
	// DefaultCapacity is the bucket count allocated on first insertion
	// when no explicit capacity is configured.
	DefaultCapacity = 8
	// DefaultLoadFactor is the size/capacity ratio above which the
	// bucket array is doubled.
	DefaultLoadFactor = 0.75
)

// Entry is a key-value pair stored in a map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// HashFn computes a hash of a key. It must be pure: equal keys must hash
// equally for the whole lifetime of a map. The hash package provides
// ready-made functions for common key types.
type HashFn[K comparable] func(K) uint64

// Map is a hash map using separate chaining: an array of buckets, each
// holding a linked chain of the entries whose hashed keys fall into it.
// The bucket array doubles whenever the entry count reaches
// capacity times the load factor, relocating every entry to its new
// bucket. A Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	buckets []list.List[Entry[K, V]]
	hasher  HashFn[K]
	size    int

	initialCapacity int
	loadFactor      float64
	threshold       int

	logger *zap.Logger
}

type config struct {
	capacity   int
	loadFactor float64
	logger     *zap.Logger
}

// Option configures a map at construction.
type Option func(*config)

// WithCapacity sets the initial bucket count. Allocation still happens on
// first insertion. Panics if n is not positive.
func WithCapacity(n int) Option {
	if n <= 0 {
		panic("chainmap: initial capacity must be positive")
	}
	return func(c *config) {
		c.capacity = n
	}
}

// WithLoadFactor sets the growth trigger fraction. Panics if f is outside
// (0, 1].
func WithLoadFactor(f float64) Option {
	if f <= 0 || f > 1 {
		panic("chainmap: load factor must be in (0, 1]")
	}
	return func(c *config) {
		c.loadFactor = f
	}
}

// WithLogger sets a logger for resize and allocation events, which are
// reported at debug level. The default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty map using the given hash function. The bucket
// array is allocated lazily by the first Put. Panics if hasher is nil.
func New[K comparable, V any](hasher HashFn[K], opts ...Option) *Map[K, V] {
	if hasher == nil {
		panic("chainmap: nil hasher")
	}
	c := config{
		capacity:   DefaultCapacity,
		loadFactor: DefaultLoadFactor,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &Map[K, V]{
		hasher:          hasher,
		initialCapacity: c.capacity,
		loadFactor:      c.loadFactor,
		threshold:       int(float64(c.capacity) * c.loadFactor),
		logger:          c.logger,
	}
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Cap returns the current bucket count. It is zero until the first
// insertion allocates the bucket array.
func (m *Map[K, V]) Cap() int {
	return len(m.buckets)
}

// Put associates value with key. If the key was already present, its
// value is replaced in place and the displaced value is returned with
// replaced set to true; otherwise a new entry is pushed to the front of
// its bucket chain and the entry count grows by one.
//
// Growth is checked before the bucket index is computed, so a key that
// triggers a resize is indexed against the post-resize capacity.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool) {
	if len(m.buckets) == 0 || m.size >= m.threshold {
		m.resize()
	}

	idx := m.indexFor(key)
	for it := m.buckets[idx].Iterator(); it.HasElem(); it.Next() {
		e := it.ElemRef()
		if e.Key == key {
			old = e.Value
			e.Value = value
			return old, true
		}
	}

	m.buckets[idx].Push(Entry[K, V]{Key: key, Value: value})
	m.size++
	return old, false
}

// Get removes the entry for key and returns its value. This lookup is
// destructive: a hit takes the entry out of the map, and an immediately
// repeated Get for the same key misses. Use Lookup for a non-destructive
// read.
//
// The bucket chain is rebuilt while the entry is filtered out, so the
// relative order of the remaining entries in that bucket reverses.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var res V
	if len(m.buckets) == 0 {
		return res, false
	}

	idx := m.indexFor(key)
	found := false
	var kept list.List[Entry[K, V]]
	d := m.buckets[idx].Drain()
	for {
		e, ok := d.Next()
		if !ok {
			break
		}
		if !found && e.Key == key {
			found = true
			res = e.Value
			m.size--
		} else {
			kept.Push(e)
		}
	}
	m.buckets[idx] = kept
	return res, found
}

// Lookup returns the value for key without removing it. The second
// return is false if the key is absent.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	var zero V
	if len(m.buckets) == 0 {
		return zero, false
	}
	idx := m.indexFor(key)
	for it := m.buckets[idx].Iterator(); it.HasElem(); it.Next() {
		if e := it.Elem(); e.Key == key {
			return e.Value, true
		}
	}
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Lookup(key)
	return ok
}

func (m *Map[K, V]) indexFor(key K) int {
	return int(m.hasher(key) % uint64(len(m.buckets)))
}

// resize allocates the bucket array on first use, and afterwards doubles
// it and rehashes every entry. The threshold is recomputed against the
// new capacity before reinsertion starts, so relocating entries cannot
// retrigger growth.
func (m *Map[K, V]) resize() {
	if len(m.buckets) == 0 {
		m.buckets = make([]list.List[Entry[K, V]], m.initialCapacity)
		m.logger.Debug("allocated bucket array",
			zap.Int("capacity", m.initialCapacity),
			zap.Int("threshold", m.threshold))
		return
	}

	newCap := len(m.buckets) * 2
	m.threshold = int(float64(newCap) * m.loadFactor)

	old := m.buckets
	m.buckets = make([]list.List[Entry[K, V]], newCap)
	for i := range old {
		d := old[i].Drain()
		for {
			e, ok := d.Next()
			if !ok {
				break
			}
			// Put counts the relocated entry as new; undo that.
			m.Put(e.Key, e.Value)
			m.size--
		}
	}

	m.logger.Debug("resized bucket array",
		zap.Int("capacity", newCap),
		zap.Int("size", m.size),
		zap.Int("threshold", m.threshold))
}

// Iterator returns an iterator over all entries, visiting buckets in
// index order and each bucket chain from its front. It can be used like
// this:
//
//	for it := m.Iterator(); it.HasElem(); it.Next() {
//	    key, value := it.Elem()
//	    // do something with the entry...
//	}
//
// The order is neither insertion order nor stable across a resize.
// Calling Iterator again starts a fresh traversal.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{buckets: m.buckets}
	if len(m.buckets) > 0 {
		it.cur = m.buckets[0].Iterator()
		it.settle()
	}
	return it
}

// Drain returns a consuming iterator. Every entry it yields is removed
// from the map; after the iterator is exhausted the map is empty. It is
// not restartable.
func (m *Map[K, V]) Drain() *Drain[K, V] {
	return &Drain[K, V]{m: m}
}

// Iterator is an iterator over map entries.
type Iterator[K comparable, V any] struct {
	buckets []list.List[Entry[K, V]]
	idx     int
	cur     *list.Iterator[Entry[K, V]]
}

// HasElem returns whether the iterator is pointing to an entry.
func (it *Iterator[K, V]) HasElem() bool {
	return it.cur != nil
}

// Elem returns the current key and value.
func (it *Iterator[K, V]) Elem() (K, V) {
	e := it.cur.Elem()
	return e.Key, e.Value
}

// Next moves the iterator to the next entry.
func (it *Iterator[K, V]) Next() {
	it.cur.Next()
	it.settle()
}

// settle advances past exhausted buckets, clearing cur at the end of the
// bucket array.
func (it *Iterator[K, V]) settle() {
	for it.cur != nil && !it.cur.HasElem() {
		it.idx++
		if it.idx >= len(it.buckets) {
			it.cur = nil
			return
		}
		it.cur = it.buckets[it.idx].Iterator()
	}
}

// Drain is a consuming iterator over map entries.
type Drain[K comparable, V any] struct {
	m   *Map[K, V]
	idx int
}

// Next removes and returns the next entry. The third return is false
// once the map has been emptied.
func (d *Drain[K, V]) Next() (K, V, bool) {
	for d.idx < len(d.m.buckets) {
		if e, ok := d.m.buckets[d.idx].Pop(); ok {
			d.m.size--
			return e.Key, e.Value, true
		}
		d.idx++
	}
	var k K
	var v V
	return k, v, false
}
