package retrieval

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"reflect"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logTest "github.com/sirupsen/logrus/hooks/test"

	"github.com/0glabs/0g-da-retriever/contracts/dasigners"
	"github.com/0glabs/0g-da-retriever/shared/testutil"
)

func init() {
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetOutput(ioutil.Discard)
}

func rowPayload(row uint32) []byte {
	return []byte{byte(row), byte(row >> 8)}
}

type mockFetcher struct {
	lock    sync.Mutex
	calls   map[string]int
	failing map[string]bool
}

func newMockFetcher(failing ...string) *mockFetcher {
	f := &mockFetcher{
		calls:   make(map[string]int),
		failing: make(map[string]bool),
	}
	for _, socket := range failing {
		f.failing[socket] = true
	}
	return f
}

func (m *mockFetcher) RetrieveSlices(_ context.Context, socket string, _ Fingerprint, rows []uint32) ([][]byte, error) {
	m.lock.Lock()
	m.calls[socket]++
	fail := m.failing[socket]
	m.lock.Unlock()

	if fail {
		return nil, errors.New("connection refused")
	}
	payloads := make([][]byte, len(rows))
	for i, row := range rows {
		payloads[i] = rowPayload(row)
	}
	return payloads, nil
}

func (m *mockFetcher) callCount(socket string) int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.calls[socket]
}

func (m *mockFetcher) totalCalls() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

type mockRecoverer struct {
	got []IndexedSlice
	out []byte
	err error
}

func (m *mockRecoverer) Recover(_ context.Context, slices []IndexedSlice) ([]byte, error) {
	m.got = slices
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

func socketFor(a common.Address) string {
	return fmt.Sprintf("signer-%x:7000", a[0])
}

func makeSnapshot(members []common.Address) *Snapshot {
	details := make(map[common.Address]*dasigners.IDASignersSignerDetail)
	for _, a := range members {
		if _, ok := details[a]; ok {
			continue
		}
		details[a] = &dasigners.IDASignersSignerDetail{
			Signer: a,
			Socket: socketFor(a),
		}
	}
	return &Snapshot{Members: members, Details: details}
}

func collectedRows(slices []IndexedSlice) []uint32 {
	rows := make([]uint32, 0, len(slices))
	for _, s := range slices {
		rows = append(rows, s.Row)
	}
	return rows
}

func TestRetrieve_AllPriorityRows(t *testing.T) {
	setMinRequired(t, 4)
	members := []common.Address{addr(1), addr(2), addr(3), addr(4)}
	fetcher := newMockFetcher()
	recoverer := &mockRecoverer{out: []byte("blob")}
	o := NewOrchestrator(fetcher, recoverer)

	data, err := o.Retrieve(context.Background(), Fingerprint{Epoch: 38}, makeSnapshot(members))
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if !bytes.Equal(data, []byte("blob")) {
		t.Errorf("expected recoverer output, got %q", data)
	}
	if got := collectedRows(recoverer.got); !reflect.DeepEqual(got, []uint32{0, 1, 2, 3}) {
		t.Errorf("unexpected rows handed to recovery: %v", got)
	}
	if fetcher.totalCalls() != 4 {
		t.Errorf("expected one fetch per signer, got %d", fetcher.totalCalls())
	}
}

func TestRetrieve_NoFillWhenThresholdMet(t *testing.T) {
	setMinRequired(t, 4)
	a, b, c, d := addr(1), addr(2), addr(3), addr(4)
	members := []common.Address{a, a, b, b, c, c, d, d}
	fetcher := newMockFetcher()
	recoverer := &mockRecoverer{out: []byte("blob")}
	o := NewOrchestrator(fetcher, recoverer)

	if _, err := o.Retrieve(context.Background(), Fingerprint{}, makeSnapshot(members)); err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if got := collectedRows(recoverer.got); !reflect.DeepEqual(got, []uint32{0, 1, 2, 3}) {
		t.Errorf("expected exactly the systematic rows, got %v", got)
	}
	if fetcher.callCount(socketFor(c)) != 0 || fetcher.callCount(socketFor(d)) != 0 {
		t.Error("fill signers were contacted although the priority phase met the threshold")
	}
}

func TestRetrieve_FillBatchCutoff(t *testing.T) {
	setMinRequired(t, 4)
	a, b, c, d := addr(1), addr(2), addr(3), addr(4)
	members := []common.Address{a, a, b, b, c, c, d, d}
	fetcher := newMockFetcher(socketFor(b))
	recoverer := &mockRecoverer{out: []byte("blob")}
	o := NewOrchestrator(fetcher, recoverer)

	if _, err := o.Retrieve(context.Background(), Fingerprint{}, makeSnapshot(members)); err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	// Priority collects rows 0,1. The first fill task covers the deficit
	// (2 buffered + 2 requested >= 4), so the batch is cut off before the
	// second fill signer is drawn.
	if fetcher.callCount(socketFor(c)) != 1 {
		t.Errorf("expected exactly one fill fetch for first fill signer, got %d", fetcher.callCount(socketFor(c)))
	}
	if fetcher.callCount(socketFor(d)) != 0 {
		t.Errorf("fill batch over-fetched: %d calls past the cutoff", fetcher.callCount(socketFor(d)))
	}
	if got := collectedRows(recoverer.got); !reflect.DeepEqual(got, []uint32{0, 1, 4, 5}) {
		t.Errorf("unexpected rows handed to recovery: %v", got)
	}
}

func TestRetrieve_BlacklistHonoredAcrossPhases(t *testing.T) {
	setMinRequired(t, 4)
	hook := logTest.NewGlobal()
	a, b := addr(1), addr(2)
	// Signer a owns priority rows 0,1 and fill rows 4,5; it fails in the
	// priority phase and must never be contacted again.
	members := []common.Address{a, a, b, b, a, a}
	fetcher := newMockFetcher(socketFor(a))
	recoverer := &mockRecoverer{out: []byte("blob")}
	o := NewOrchestrator(fetcher, recoverer)

	if _, err := o.Retrieve(context.Background(), Fingerprint{}, makeSnapshot(members)); err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if fetcher.callCount(socketFor(a)) != 1 {
		t.Errorf("blacklisted signer fetched %d times, want 1", fetcher.callCount(socketFor(a)))
	}
	if got := collectedRows(recoverer.got); !reflect.DeepEqual(got, []uint32{2, 3}) {
		t.Errorf("unexpected rows handed to recovery: %v", got)
	}
	testutil.AssertLogsContain(t, hook, "no eligible signers available")
}

func TestRetrieve_UnknownPrioritySigner(t *testing.T) {
	setMinRequired(t, 2)
	a, b := addr(1), addr(2)
	snapshot := makeSnapshot([]common.Address{a, b})
	delete(snapshot.Details, b)
	o := NewOrchestrator(newMockFetcher(), &mockRecoverer{})

	_, err := o.Retrieve(context.Background(), Fingerprint{}, snapshot)
	if err != ErrUnknownSigner {
		t.Fatalf("expected ErrUnknownSigner, got %v", err)
	}
}

func TestRetrieve_SlotOrderInvariance(t *testing.T) {
	setMinRequired(t, 4)
	a, b, c, d := addr(1), addr(2), addr(3), addr(4)
	fetcher := newMockFetcher()

	first := &mockRecoverer{out: []byte("blob")}
	o := NewOrchestrator(fetcher, first)
	if _, err := o.Retrieve(context.Background(), Fingerprint{}, makeSnapshot([]common.Address{a, b, c, d})); err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}

	second := &mockRecoverer{out: []byte("blob")}
	o = NewOrchestrator(fetcher, second)
	if _, err := o.Retrieve(context.Background(), Fingerprint{}, makeSnapshot([]common.Address{b, a, c, d})); err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}

	if !reflect.DeepEqual(first.got, second.got) {
		t.Errorf("swapping signers within a partition class changed the recovery input: %v vs %v", first.got, second.got)
	}
}

func TestRetrieve_RecoverFailureSurfaces(t *testing.T) {
	setMinRequired(t, 2)
	members := []common.Address{addr(1), addr(2)}
	recoverer := &mockRecoverer{err: errors.New("decode failed")}
	o := NewOrchestrator(newMockFetcher(), recoverer)

	_, err := o.Retrieve(context.Background(), Fingerprint{}, makeSnapshot(members))
	if err == nil {
		t.Fatal("expected recovery failure to surface")
	}
	if !bytes.Contains([]byte(err.Error()), []byte("could not recover blob")) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRetrieve_PartialPriorityFailureStillRecovers(t *testing.T) {
	setMinRequired(t, 4)
	a, b, c, d := addr(1), addr(2), addr(3), addr(4)
	members := []common.Address{a, b, c, d}
	fetcher := newMockFetcher(socketFor(c))
	recoverer := &mockRecoverer{out: []byte("blob")}
	o := NewOrchestrator(fetcher, recoverer)

	data, err := o.Retrieve(context.Background(), Fingerprint{}, makeSnapshot(members))
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if !bytes.Equal(data, []byte("blob")) {
		t.Errorf("expected recoverer output, got %q", data)
	}
	if got := collectedRows(recoverer.got); !reflect.DeepEqual(got, []uint32{0, 1, 3}) {
		t.Errorf("expected row 2 to stay absent, got %v", got)
	}
}
