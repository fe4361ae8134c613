package algo

import "sync"

// Scratch is the pair of backing matrices a single V2 call needs. It is
// reused across calls on whichever goroutine happens to pull it from the
// pool, the idiomatic Go stand-in for a per-caller thread-local cache: Go
// has no cheap per-OS-thread storage, and sync.Pool (sharded per-P, drained
// by the GC when the owning matcher becomes unreachable) is the standard
// library's equivalent, the same role kk-code-lab/rdir's pooled rune
// buffers play for its own fuzzy matcher.
type Scratch struct {
	M ScoreMatrix
	P ScoreMatrix
}

// ScratchPool owns a sync.Pool of *Scratch. A zero ScratchPool is ready to
// use. Capacity grows monotonically across calls that return a Scratch to
// the pool; calls that don't (UseCache == false) let the GC reclaim it.
type ScratchPool struct {
	pool sync.Pool
}

// Get returns a Scratch ready to be resized by the caller, allocating one
// if the pool is empty.
func (sp *ScratchPool) Get() *Scratch {
	if v := sp.pool.Get(); v != nil {
		return v.(*Scratch)
	}
	return &Scratch{}
}

// Put returns s to the pool so a later call on any goroutine can reuse its
// backing capacity.
func (sp *ScratchPool) Put(s *Scratch) {
	sp.pool.Put(s)
}
