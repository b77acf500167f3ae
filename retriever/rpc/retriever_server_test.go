package rpc

import (
	"bytes"
	"context"
	"io/ioutil"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/0glabs/0g-da-retriever/proto/retriever/v1"
	"github.com/0glabs/0g-da-retriever/retriever/retrieval"
)

func init() {
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetOutput(ioutil.Discard)
}

type mockDirectory struct {
	snap *retrieval.Snapshot
	err  error
}

func (m *mockDirectory) Snapshot(_ context.Context, _, _ uint64) (*retrieval.Snapshot, error) {
	return m.snap, m.err
}

type mockRetriever struct {
	data  []byte
	err   error
	block chan struct{}
}

func (m *mockRetriever) Retrieve(_ context.Context, _ retrieval.Fingerprint, _ *retrieval.Snapshot) ([]byte, error) {
	if m.block != nil {
		<-m.block
	}
	return m.data, m.err
}

func TestRetrieveBlob_OK(t *testing.T) {
	server := &Server{
		directory: &mockDirectory{snap: &retrieval.Snapshot{}},
		retriever: &mockRetriever{data: []byte("blob")},
		pool:      newRequestPool(10),
	}

	reply, err := server.RetrieveBlob(context.Background(), &pb.BlobRequest{Epoch: 38})
	if err != nil {
		t.Fatalf("RetrieveBlob failed: %v", err)
	}
	if !bytes.Equal(reply.Data, []byte("blob")) {
		t.Errorf("unexpected reply data: %q", reply.Data)
	}
	if server.pool.size() != 0 {
		t.Errorf("pool size %d after completion, want 0", server.pool.size())
	}
}

func TestRetrieveBlob_EmptyQuorum(t *testing.T) {
	server := &Server{
		directory: &mockDirectory{err: errors.New("quorum is empty")},
		retriever: &mockRetriever{},
		pool:      newRequestPool(10),
	}

	_, err := server.RetrieveBlob(context.Background(), &pb.BlobRequest{})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
	msg := status.Convert(err).Message()
	if !strings.Contains(msg, "failed get signers from block chain") || !strings.Contains(msg, "quorum is empty") {
		t.Errorf("unexpected message: %q", msg)
	}
	if server.pool.size() != 0 {
		t.Errorf("pool size %d after failure, want 0", server.pool.size())
	}
}

func TestRetrieveBlob_UnknownSigner(t *testing.T) {
	server := &Server{
		directory: &mockDirectory{snap: &retrieval.Snapshot{}},
		retriever: &mockRetriever{err: retrieval.ErrUnknownSigner},
		pool:      newRequestPool(10),
	}

	_, err := server.RetrieveBlob(context.Background(), &pb.BlobRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
	if got := status.Convert(err).Message(); got != "signer doesn't exist" {
		t.Errorf("unexpected message: %q", got)
	}
	if server.pool.size() != 0 {
		t.Errorf("pool size %d after failure, want 0", server.pool.size())
	}
}

func TestRetrieveBlob_RetrievalFailure(t *testing.T) {
	server := &Server{
		directory: &mockDirectory{snap: &retrieval.Snapshot{}},
		retriever: &mockRetriever{err: errors.New("supply exhausted")},
		pool:      newRequestPool(10),
	}

	_, err := server.RetrieveBlob(context.Background(), &pb.BlobRequest{})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
	if !strings.Contains(status.Convert(err).Message(), "fail to get blob") {
		t.Errorf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestRetrieveBlob_AdmissionFull(t *testing.T) {
	block := make(chan struct{})
	server := &Server{
		directory: &mockDirectory{snap: &retrieval.Snapshot{}},
		retriever: &mockRetriever{data: []byte("blob"), block: block},
		pool:      newRequestPool(0),
	}

	firstDone := make(chan error, 1)
	go func() {
		_, err := server.RetrieveBlob(context.Background(), &pb.BlobRequest{})
		firstDone <- err
	}()

	// Wait until the first request holds its slot.
	deadline := time.Now().Add(2 * time.Second)
	for server.pool.size() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("first request never admitted")
		}
		time.Sleep(time.Millisecond)
	}

	_, err := server.RetrieveBlob(context.Background(), &pb.BlobRequest{})
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("expected ResourceExhausted while the pool is full, got %v", err)
	}

	close(block)
	if err := <-firstDone; err != nil {
		t.Fatalf("first request failed: %v", err)
	}

	server.retriever = &mockRetriever{data: []byte("blob")}
	if _, err := server.RetrieveBlob(context.Background(), &pb.BlobRequest{}); err != nil {
		t.Fatalf("request after drain failed: %v", err)
	}
	if server.pool.size() != 0 {
		t.Errorf("pool size %d after drain, want 0", server.pool.size())
	}
}
