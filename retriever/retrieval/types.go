// Package retrieval implements the two-phase slice retrieval pipeline used
// to rebuild a data blob from the signers of a quorum.
package retrieval

import (
	"context"

	"github.com/0glabs/0g-da-retriever/contracts/dasigners"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ErrUnknownSigner is returned when a quorum member has no record in the
// signer directory.
var ErrUnknownSigner = errors.New("signer doesn't exist")

// Fingerprint identifies one blob and is carried unchanged from the client
// request through recovery.
type Fingerprint struct {
	Epoch       uint64
	QuorumId    uint64
	StorageRoot []byte
}

// Snapshot is a point-in-time view of a quorum: its ordered membership and
// the directory record for every distinct member. Members keeps the
// on-chain slot order, duplicates included.
type Snapshot struct {
	Members []common.Address
	Details map[common.Address]*dasigners.IDASignersSignerDetail
}

// IndexedSlice pairs an encoded row with its slot index in the quorum.
type IndexedSlice struct {
	Row  uint32
	Data []byte
}

// SliceFetcher requests a batch of encoded rows from a single signer
// socket. Implementations return exactly one payload per requested row, in
// request order, or an error.
type SliceFetcher interface {
	RetrieveSlices(ctx context.Context, socket string, fp Fingerprint, rowIndexes []uint32) ([][]byte, error)
}

// Recoverer reconstructs the original blob from a sufficient subset of
// indexed slices. Slices are handed over in ascending row order.
type Recoverer interface {
	Recover(ctx context.Context, slices []IndexedSlice) ([]byte, error)
}
