package retrieval

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/0glabs/0g-da-retriever/shared/params"
)

var log = logrus.WithField("prefix", "retrieval")

// Orchestrator drives the two-phase fan-out for one blob: priority rows
// first, then bounded fill batches until the threshold is met or the
// signer pool runs dry, and finally recovery.
type Orchestrator struct {
	fetcher   SliceFetcher
	recoverer Recoverer
}

// NewOrchestrator wires a fetcher and a recovery primitive together.
func NewOrchestrator(fetcher SliceFetcher, recoverer Recoverer) *Orchestrator {
	return &Orchestrator{
		fetcher:   fetcher,
		recoverer: recoverer,
	}
}

type fetchResult struct {
	rows     []uint32
	payloads [][]byte
	ok       bool
}

// Retrieve collects distinct rows of the blob identified by fp from the
// signers in snapshot until MinRequiredRows are buffered or no eligible
// signer is left, then hands whatever was collected to recovery. Fetch
// failures are recovered locally by blacklisting the signer; only
// structural failures surface to the caller.
func (o *Orchestrator) Retrieve(ctx context.Context, fp Fingerprint, snapshot *Snapshot) ([]byte, error) {
	ctx, span := trace.StartSpan(ctx, "retrieval.Retrieve")
	defer span.End()

	blobRetrievalAttempts.Inc()

	priority, fill := Partition(snapshot.Members)
	buf := NewSliceBuffer()
	invalid := NewInvalidSigners()

	if err := o.runPriorityPhase(ctx, fp, snapshot, priority, buf, invalid); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"epoch":     fp.Epoch,
		"quorumId":  fp.QuorumId,
		"collected": buf.Len(),
	}).Info("Priority phase complete")

	o.runFillPhase(ctx, fp, snapshot, fill, buf, invalid)

	minRequired := int(params.RetrieverNodeConfig().MinRequiredRows)
	if buf.Len() < minRequired {
		log.WithFields(logrus.Fields{
			"collected":   buf.Len(),
			"minRequired": minRequired,
		}).Warn("no eligible signers available")
	}

	data, err := o.recoverBlob(ctx, buf)
	if err != nil {
		return nil, errors.Wrap(err, "could not recover blob from slices")
	}
	blobsRecovered.Inc()
	return data, nil
}

// runPriorityPhase spawns one fetch per signer owning systematic rows and
// waits for all of them. A quorum member without a directory record is a
// structural failure.
func (o *Orchestrator) runPriorityPhase(
	ctx context.Context,
	fp Fingerprint,
	snapshot *Snapshot,
	priority *SignerSlots,
	buf *SliceBuffer,
	invalid *InvalidSigners,
) error {
	ctx, span := trace.StartSpan(ctx, "retrieval.priorityPhase")
	defer span.End()

	results := make(chan *fetchResult, priority.Len())
	spawned := 0
	for it := priority.Iterator(); ; {
		addr, rows, ok := it.Next()
		if !ok {
			break
		}
		detail, exists := snapshot.Details[addr]
		if !exists {
			return ErrUnknownSigner
		}
		go o.fetch(ctx, fp, addr, detail.Socket, rows, invalid, results)
		spawned++
	}
	o.awaitBatch(spawned, results, buf)
	return nil
}

// runFillPhase issues additional batches of parity rows until the buffer
// reaches the threshold or the fill iterator is drained. Each batch stops
// growing once the rows already buffered plus the rows in flight cover the
// threshold, and is fully awaited before the next batch starts.
func (o *Orchestrator) runFillPhase(
	ctx context.Context,
	fp Fingerprint,
	snapshot *Snapshot,
	fill *SignerSlots,
	buf *SliceBuffer,
	invalid *InvalidSigners,
) {
	ctx, span := trace.StartSpan(ctx, "retrieval.fillPhase")
	defer span.End()

	minRequired := int(params.RetrieverNodeConfig().MinRequiredRows)
	it := fill.Iterator()
	for buf.Len() < minRequired {
		results := make(chan *fetchResult, fill.Len())
		requested := 0
		spawned := 0
		for {
			addr, rows, ok := it.Next()
			if !ok {
				break
			}
			if invalid.Contains(addr) {
				continue
			}
			detail, exists := snapshot.Details[addr]
			if !exists {
				log.WithField("signer", addr.Hex()).Warn("Skipping fill signer without directory record")
				invalid.Add(addr)
				continue
			}
			go o.fetch(ctx, fp, addr, detail.Socket, rows, invalid, results)
			spawned++
			requested += len(rows)
			if buf.Len()+requested >= minRequired {
				break
			}
		}
		if spawned == 0 {
			return
		}
		o.awaitBatch(spawned, results, buf)
		log.WithFields(logrus.Fields{
			"epoch":     fp.Epoch,
			"quorumId":  fp.QuorumId,
			"collected": buf.Len(),
		}).Info("Fill batch complete")
	}
}

// fetch runs as its own goroutine and reports back through results. Any
// failure blacklists the signer for the rest of the request; the rows it
// owned simply stay absent from the buffer.
func (o *Orchestrator) fetch(
	ctx context.Context,
	fp Fingerprint,
	addr common.Address,
	socket string,
	rows []uint32,
	invalid *InvalidSigners,
	results chan<- *fetchResult,
) {
	payloads, err := o.fetcher.RetrieveSlices(ctx, socket, fp, rows)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"signer": addr.Hex(),
			"socket": socket,
			"rows":   len(rows),
		}).Error("Failed to fetch slices from signer")
		sliceFetchFailures.Inc()
		invalid.Add(addr)
		results <- &fetchResult{}
		return
	}
	if len(payloads) != len(rows) {
		log.WithFields(logrus.Fields{
			"signer": addr.Hex(),
			"want":   len(rows),
			"got":    len(payloads),
		}).Error("Signer returned wrong number of slices")
		sliceFetchFailures.Inc()
		invalid.Add(addr)
		results <- &fetchResult{}
		return
	}
	results <- &fetchResult{rows: rows, payloads: payloads, ok: true}
}

// awaitBatch drains exactly spawned results, inserting successes into the
// buffer. Duplicate rows keep their first payload.
func (o *Orchestrator) awaitBatch(spawned int, results <-chan *fetchResult, buf *SliceBuffer) {
	for i := 0; i < spawned; i++ {
		res := <-results
		if !res.ok {
			continue
		}
		for j, row := range res.rows {
			buf.Put(row, res.payloads[j])
		}
	}
}

// recoverBlob hands the collected rows to the recovery primitive in
// ascending slot order. The primitive may be CPU heavy, so the call is
// only awaited, never inlined into the fetch path.
func (o *Orchestrator) recoverBlob(ctx context.Context, buf *SliceBuffer) ([]byte, error) {
	ctx, span := trace.StartSpan(ctx, "retrieval.recoverBlob")
	defer span.End()
	return o.recoverer.Recover(ctx, buf.Ascending())
}
