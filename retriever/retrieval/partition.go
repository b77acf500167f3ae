package retrieval

import (
	"github.com/0glabs/0g-da-retriever/shared/params"
	"github.com/ethereum/go-ethereum/common"
)

// SignerSlots groups quorum slot indexes by the signer that owns them,
// preserving the order in which signers first appear in the membership
// walk. Within a signer, slot indexes stay ascending.
type SignerSlots struct {
	order []common.Address
	slots map[common.Address][]uint32
}

func newSignerSlots() *SignerSlots {
	return &SignerSlots{slots: make(map[common.Address][]uint32)}
}

func (s *SignerSlots) add(addr common.Address, row uint32) {
	if _, ok := s.slots[addr]; !ok {
		s.order = append(s.order, addr)
	}
	s.slots[addr] = append(s.slots[addr], row)
}

// Len returns the number of signers holding at least one slot.
func (s *SignerSlots) Len() int {
	return len(s.order)
}

// Rows returns the slot indexes owned by addr, ascending.
func (s *SignerSlots) Rows(addr common.Address) []uint32 {
	return s.slots[addr]
}

// Iterator walks the signers in insertion order.
func (s *SignerSlots) Iterator() *SlotIterator {
	return &SlotIterator{slots: s}
}

// SlotIterator yields one (signer, rows) pair per call to Next. It is a
// single-pass cursor; entries are never revisited.
type SlotIterator struct {
	slots *SignerSlots
	pos   int
}

// Next returns the next signer and its slot indexes. ok is false once the
// iterator is drained.
func (it *SlotIterator) Next() (common.Address, []uint32, bool) {
	if it.pos >= len(it.slots.order) {
		return common.Address{}, nil, false
	}
	addr := it.slots.order[it.pos]
	it.pos++
	return addr, it.slots.slots[addr], true
}

// Partition splits the quorum membership into priority and fill slot
// groups. Slots below MinRequiredRows form the systematic portion of the
// encoding and are fetched first; the rest only make up for priority
// losses. The membership order is authoritative and never reordered here.
func Partition(members []common.Address) (*SignerSlots, *SignerSlots) {
	minRequired := params.RetrieverNodeConfig().MinRequiredRows
	priority := newSignerSlots()
	fill := newSignerSlots()
	for i, addr := range members {
		row := uint32(i)
		if row < minRequired {
			priority.add(addr, row)
		} else {
			fill.add(addr, row)
		}
	}
	return priority, fill
}
