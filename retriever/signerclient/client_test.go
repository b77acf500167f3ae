package signerclient

import (
	"bytes"
	"context"
	"io/ioutil"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	signerpb "github.com/0glabs/0g-da-retriever/proto/signer/v1"
	"github.com/0glabs/0g-da-retriever/retriever/retrieval"
)

func init() {
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetOutput(ioutil.Discard)
}

type fakeSigner struct {
	resp   *signerpb.BatchRetrieveResponse
	gotReq *signerpb.BatchRetrieveRequest
}

func (f *fakeSigner) BatchRetrieve(_ context.Context, req *signerpb.BatchRetrieveRequest) (*signerpb.BatchRetrieveResponse, error) {
	f.gotReq = req
	return f.resp, nil
}

func startFakeSigner(t *testing.T, f *fakeSigner) string {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("could not listen: %v", err)
	}
	srv := grpc.NewServer()
	signerpb.RegisterSignerServer(srv, f)
	go func() {
		if err := srv.Serve(lis); err != nil {
			logrus.WithError(err).Debug("fake signer stopped")
		}
	}()
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func prefixed(payload []byte) []byte {
	return append(make([]byte, lengthPrefixSize), payload...)
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRetrieveSlices_StripsLengthPrefix(t *testing.T) {
	fake := &fakeSigner{
		resp: &signerpb.BatchRetrieveResponse{
			EncodedSlice: []*signerpb.EncodedSlices{
				{EncodedSlice: [][]byte{prefixed([]byte("row0")), prefixed([]byte("row1"))}},
			},
		},
	}
	socket := startFakeSigner(t, fake)

	fp := retrieval.Fingerprint{Epoch: 38, QuorumId: 0, StorageRoot: bytes.Repeat([]byte{0x11}, 32)}
	payloads, err := NewClient().RetrieveSlices(testContext(t), socket, fp, []uint32{0, 1})
	if err != nil {
		t.Fatalf("RetrieveSlices failed: %v", err)
	}
	if len(payloads) != 2 {
		t.Fatalf("expected 2 payloads, got %d", len(payloads))
	}
	if !bytes.Equal(payloads[0], []byte("row0")) || !bytes.Equal(payloads[1], []byte("row1")) {
		t.Errorf("length prefix not stripped: %q %q", payloads[0], payloads[1])
	}

	req := fake.gotReq.GetRequests()
	if len(req) != 1 {
		t.Fatalf("expected a single batched request, got %d", len(req))
	}
	if req[0].GetEpoch() != 38 || len(req[0].GetRowIndexes()) != 2 {
		t.Errorf("unexpected request: %+v", req[0])
	}
}

func TestRetrieveSlices_ShortSliceFails(t *testing.T) {
	fake := &fakeSigner{
		resp: &signerpb.BatchRetrieveResponse{
			EncodedSlice: []*signerpb.EncodedSlices{
				{EncodedSlice: [][]byte{{0x01, 0x02, 0x03}}},
			},
		},
	}
	socket := startFakeSigner(t, fake)

	_, err := NewClient().RetrieveSlices(testContext(t), socket, retrieval.Fingerprint{}, []uint32{0})
	if err == nil {
		t.Fatal("expected an error for a slice shorter than its length prefix")
	}
	if !strings.Contains(err.Error(), "length prefix") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRetrieveSlices_EmptyResponseFails(t *testing.T) {
	fake := &fakeSigner{resp: &signerpb.BatchRetrieveResponse{}}
	socket := startFakeSigner(t, fake)

	_, err := NewClient().RetrieveSlices(testContext(t), socket, retrieval.Fingerprint{}, []uint32{0})
	if err == nil {
		t.Fatal("expected an error for an empty response")
	}
	if !strings.Contains(err.Error(), "empty batch retrieve response") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRetrieveSlices_CountMismatchFails(t *testing.T) {
	fake := &fakeSigner{
		resp: &signerpb.BatchRetrieveResponse{
			EncodedSlice: []*signerpb.EncodedSlices{
				{EncodedSlice: [][]byte{prefixed([]byte("only"))}},
			},
		},
	}
	socket := startFakeSigner(t, fake)

	_, err := NewClient().RetrieveSlices(testContext(t), socket, retrieval.Fingerprint{}, []uint32{0, 1})
	if err == nil {
		t.Fatal("expected an error for a short slice count")
	}
	if !strings.Contains(err.Error(), "slices for") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRetrieveSlices_UnreachableSigner(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	_, err := NewClient().RetrieveSlices(ctx, "127.0.0.1:1", retrieval.Fingerprint{}, []uint32{0})
	if err == nil {
		t.Fatal("expected an error for an unreachable signer")
	}
}
