package retrieval

import (
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// SliceBuffer accumulates fetched rows for one request, keyed by slot
// index. A row, once inserted, is never overwritten or removed; late
// duplicates from slow tasks are dropped. The buffer is owned by the
// orchestrator and is not safe for concurrent use.
type SliceBuffer struct {
	rows map[uint32][]byte
}

// NewSliceBuffer returns an empty buffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{rows: make(map[uint32][]byte)}
}

// Put stores data under row if the slot is still empty. It reports whether
// the insert took place.
func (b *SliceBuffer) Put(row uint32, data []byte) bool {
	if _, ok := b.rows[row]; ok {
		return false
	}
	b.rows[row] = data
	return true
}

// Get returns the payload stored for row, if any.
func (b *SliceBuffer) Get(row uint32) ([]byte, bool) {
	data, ok := b.rows[row]
	return data, ok
}

// Len returns the number of distinct rows collected so far.
func (b *SliceBuffer) Len() int {
	return len(b.rows)
}

// Ascending returns every collected slice sorted by slot index, the order
// the recovery primitive expects.
func (b *SliceBuffer) Ascending() []IndexedSlice {
	keys := make([]uint32, 0, len(b.rows))
	for k := range b.rows {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]IndexedSlice, 0, len(keys))
	for _, k := range keys {
		out = append(out, IndexedSlice{Row: k, Data: b.rows[k]})
	}
	return out
}

// InvalidSigners records the signers that failed during one request. The
// set only grows. It is shared by the fetch goroutines of a request, so
// access is guarded.
type InvalidSigners struct {
	lock  sync.Mutex
	addrs map[common.Address]bool
}

// NewInvalidSigners returns an empty failure set.
func NewInvalidSigners() *InvalidSigners {
	return &InvalidSigners{addrs: make(map[common.Address]bool)}
}

// Add marks addr as failed for the rest of the request.
func (s *InvalidSigners) Add(addr common.Address) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.addrs[addr] = true
}

// Contains reports whether addr failed earlier in the request.
func (s *InvalidSigners) Contains(addr common.Address) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.addrs[addr]
}
