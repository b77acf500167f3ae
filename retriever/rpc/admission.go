package rpc

import (
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// requestPool bounds the number of blob retrievals in flight across the
// whole process. The comparison is a strict greater-than, so steady state
// admits ceiling+1 requests; callers depend on that admission pattern.
type requestPool struct {
	lock    sync.Mutex
	ongoing uint64
	ceiling uint64
}

func newRequestPool(ceiling uint64) *requestPool {
	return &requestPool{ceiling: ceiling}
}

// admit reserves a slot for one request. Every successful admit must be
// paired with exactly one release, on every exit path.
func (p *requestPool) admit() error {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.ongoing > p.ceiling {
		return status.Error(codes.ResourceExhausted, "request pool is full")
	}
	p.ongoing++
	return nil
}

// release frees the slot taken by admit.
func (p *requestPool) release() {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.ongoing--
}

// size returns the number of requests currently admitted.
func (p *requestPool) size() uint64 {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.ongoing
}
