// Package recovery holds the default blob reconstruction primitive handed
// to the retrieval orchestrator.
package recovery

import (
	"context"

	"github.com/pkg/errors"

	"github.com/0glabs/0g-da-retriever/retriever/retrieval"
	"github.com/0glabs/0g-da-retriever/shared/params"
)

// Systematic rebuilds a blob by concatenating the systematic rows of the
// erasure code. It needs every row below MinRequiredRows to be present;
// parity rows are accepted in the input but unused.
//
// TODO(0g-da): swap in the full erasure decoder so that any
// MinRequiredRows-sized subset reconstructs the blob.
type Systematic struct{}

// NewSystematic returns the systematic reconstruction primitive.
func NewSystematic() *Systematic {
	return &Systematic{}
}

// Recover expects slices in ascending row order and returns the
// concatenation of rows 0..MinRequiredRows-1.
func (s *Systematic) Recover(_ context.Context, slices []retrieval.IndexedSlice) ([]byte, error) {
	minRequired := params.RetrieverNodeConfig().MinRequiredRows

	have := uint32(0)
	size := 0
	for _, sl := range slices {
		if sl.Row != have {
			break
		}
		size += len(sl.Data)
		have++
		if have == minRequired {
			break
		}
	}
	if have < minRequired {
		return nil, errors.Errorf("insufficient systematic rows: have %d, need %d", have, minRequired)
	}

	data := make([]byte, 0, size)
	for i := uint32(0); i < minRequired; i++ {
		data = append(data, slices[i].Data...)
	}
	return data, nil
}
