package minprof

import (
	"sync"

	"github.com/segmentio/fasthash/fnv1a"
)

// initShards is the number of striped locks serializing first-time
// initialization. Entries are never removed, so a fixed stripe array
// is enough; no per-key mutex bookkeeping or cleanup is needed.
const initShards = 64

// entry is one registry slot: a display name, its position in
// registration order, optional metadata, and a reference to the
// counter. The registry never owns counter storage; Counter allocates
// it, Register records storage that lives elsewhere.
type entry struct {
	name string
	idx  int
	meta CounterMeta
	c    *Counter
}

// Registry is a directory of named counters. Each distinct name
// resolves to exactly one Counter for the life of the registry; two
// resolutions of the same name anywhere in the program yield the same
// pointer, and different names always yield different instances.
// Entries are appended in first-use order and are never removed,
// reordered or reset.
//
// Resolution of an existing name is a single lock-free map load.
// First-time initialization for a name is serialized by a striped lock
// chosen by the name's fnv1a hash, with a re-check under the lock, so
// a name is registered exactly once even under concurrent first use.
// The ordered entry list is guarded separately. The natural place to
// resolve a name is a package variable, which registers it before main
// runs:
//
//	var nParsed = minprof.GetCounter("parse|C")
//
// Registries are safe for concurrent use.
type Registry struct {
	cfg    *registryConfig
	logger Logger

	byName  sync.Map // map[string]*entry
	inits   [initShards]sync.Mutex
	mu      sync.RWMutex // guards entries
	entries []*entry
}

// New constructs an empty Registry. Most programs use the process-wide
// Default instead; New exists so tests and embedding libraries can
// isolate their own instances.
func New(opts ...Option) *Registry {
	cfg := &registryConfig{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	l := cfg.logger
	if l == nil {
		l = newNoopLogger()
	}
	return &Registry{cfg: cfg, logger: l}
}

// Counter returns the counter registered under name, creating and
// registering it on first use. Options apply only on the call that
// creates the entry; later calls for the same name ignore them.
func (r *Registry) Counter(name string, opts ...CounterOption) *Counter {
	// fast read path: a single lock-free map load
	if v, ok := r.byName.Load(name); ok {
		return v.(*entry).c
	}
	return r.register(name, nil, opts).c
}

// Timer returns the counter registered under name viewed as a Timer.
// Timer("x") and Counter("x") share one slot.
func (r *Registry) Timer(name string, opts ...CounterOption) Timer {
	return AsTimer(r.Counter(name, opts...))
}

// Register records an existing counter under name and returns its
// registration index. It is the manual analog of Counter for storage
// that lives outside the registry. Registering a name twice does not
// replace the first instance: the existing index is returned and the
// collision is logged.
func (r *Registry) Register(name string, c *Counter, opts ...CounterOption) int {
	return r.register(name, c, opts).idx
}

// register is the slow path of Counter and the body of Register.
// Metadata is computed off-lock; the name's stripe is then held across
// the re-check and the append so concurrent first uses of one name
// produce a single entry. A nil c allocates fresh storage.
func (r *Registry) register(name string, c *Counter, opts []CounterOption) *entry {
	meta := applyCounterOptions(opts)

	shard := &r.inits[fnv1a.HashString64(name)%initShards]
	shard.Lock()
	defer shard.Unlock()

	// re-check after acquiring the stripe
	if v, ok := r.byName.Load(name); ok {
		e := v.(*entry)
		if c != nil && c != e.c {
			r.logger.Warnf("minprof: %q already registered at index %d; keeping the first instance", name, e.idx)
		}
		return e
	}

	if c == nil {
		c = &Counter{}
	}
	r.mu.Lock()
	e := &entry{name: name, idx: len(r.entries), meta: meta, c: c}
	r.entries = append(r.entries, e)
	r.mu.Unlock()

	r.byName.Store(name, e)
	r.logger.Debugf("minprof: registered %q at index %d", name, e.idx)
	return e
}

// Count returns the number of distinct names registered so far.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Name returns the name registered at index i, or ("", false) when i
// is out of range.
func (r *Registry) Name(i int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.entries) {
		return "", false
	}
	return r.entries[i].name, true
}

// At returns the counter registered at index i, or nil when i is out
// of range.
func (r *Registry) At(i int) *Counter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.entries) {
		return nil
	}
	return r.entries[i].c
}

// Meta returns a copy of the metadata recorded at index i, or
// (CounterMeta{}, false) when i is out of range.
func (r *Registry) Meta(i int) (CounterMeta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.entries) {
		return CounterMeta{}, false
	}
	return r.entries[i].meta, true
}

// Find looks a name up at runtime and reports its registration index.
// The match is exact and case-sensitive. Meant for occasional
// introspection, not hot loops; hot paths should hold on to the
// *Counter returned by Counter instead.
func (r *Registry) Find(name string) (int, bool) {
	v, ok := r.byName.Load(name)
	if !ok {
		return 0, false
	}
	return v.(*entry).idx, true
}

// Each calls fn for every registered counter in registration order
// until fn returns false. Values read while other goroutines keep
// incrementing are individually atomic but form no cross-counter
// snapshot.
func (r *Registry) Each(fn func(name string, c *Counter) bool) {
	for _, e := range r.snapshot() {
		if !fn(e.name, e.c) {
			return
		}
	}
}

// snapshot returns the ordered entry list as of now. Entries are
// append-only, so the returned slice is safe to iterate without a
// lock.
func (r *Registry) snapshot() []*entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[:len(r.entries):len(r.entries)]
}
