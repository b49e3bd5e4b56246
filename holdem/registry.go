package holdem

import (
	"log"
	"sync"
)

// Registry owns every table, keyed by id. Tables are created on first
// reference and never deleted; an empty table just idles in waiting phase.
// The registry is injected where needed rather than being a package global.
type Registry struct {
	mu     sync.Mutex
	cfg    Config
	tables map[string]*Table
	ledger LedgerSink
	notify func(tableID string, snap Snapshot)
}

func NewRegistry(cfg Config, sink LedgerSink) (*Registry, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Registry{
		cfg:    cfg,
		tables: make(map[string]*Table),
		ledger: sink,
	}, nil
}

// SetNotify installs the callback invoked when a table mutates itself
// outside a client request (the delayed post-hand restart). Set once during
// wiring, before traffic arrives.
func (r *Registry) SetNotify(fn func(tableID string, snap Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notify = fn
}

// GetOrCreate returns the table for id, creating it in waiting phase on
// first reference.
func (r *Registry) GetOrCreate(id string) *Table {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tables[id]; ok {
		return t
	}
	t := newTable(id, r.cfg, r.ledger, func(snap Snapshot) {
		r.dispatch(id, snap)
	})
	r.tables[id] = t
	log.Printf("[Registry] created table %s", id)
	return t
}

// Get returns an existing table or nil. Events addressing an unknown table
// are tolerated as stale and ignored by callers.
func (r *Registry) Get(id string) *Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tables[id]
}

func (r *Registry) dispatch(tableID string, snap Snapshot) {
	r.mu.Lock()
	fn := r.notify
	r.mu.Unlock()
	if fn != nil {
		fn(tableID, snap)
	}
}
