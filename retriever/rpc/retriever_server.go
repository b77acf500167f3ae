package rpc

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	pb "github.com/0glabs/0g-da-retriever/proto/retriever/v1"
	"github.com/0glabs/0g-da-retriever/retriever/retrieval"
)

// snapshotProvider resolves quorum membership for an epoch. Implemented by
// the directory service.
type snapshotProvider interface {
	Snapshot(ctx context.Context, epoch, quorumID uint64) (*retrieval.Snapshot, error)
}

// blobRetriever runs the retrieval pipeline for one fingerprint.
// Implemented by the retrieval orchestrator.
type blobRetriever interface {
	Retrieve(ctx context.Context, fp retrieval.Fingerprint, snapshot *retrieval.Snapshot) ([]byte, error)
}

// Server defines a server implementation of the gRPC Retriever service,
// handing client blob requests to the retrieval orchestrator.
type Server struct {
	directory snapshotProvider
	retriever blobRetriever
	pool      *requestPool
}

// RetrieveBlob reconstructs the blob identified by the request fingerprint
// from the signers of its quorum.
func (s *Server) RetrieveBlob(ctx context.Context, req *pb.BlobRequest) (*pb.BlobReply, error) {
	if err := s.pool.admit(); err != nil {
		return nil, err
	}
	defer s.pool.release()

	remoteAddr := "unknown"
	if p, ok := peer.FromContext(ctx); ok {
		remoteAddr = p.Addr.String()
	}
	log.WithField("remoteAddr", remoteAddr).Info("Received blob retrieval request")
	start := time.Now()

	snapshot, err := s.directory.Snapshot(ctx, req.Epoch, req.QuorumId)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "failed get signers from block chain: %v", err)
	}

	fp := retrieval.Fingerprint{
		Epoch:       req.Epoch,
		QuorumId:    req.QuorumId,
		StorageRoot: req.StorageRoot,
	}
	data, err := s.retriever.Retrieve(ctx, fp, snapshot)
	if err == retrieval.ErrUnknownSigner {
		return nil, status.Error(codes.InvalidArgument, "signer doesn't exist")
	}
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "fail to get blob: %v", err)
	}

	log.WithFields(logrus.Fields{
		"epoch":    req.Epoch,
		"quorumId": req.QuorumId,
		"bytes":    len(data),
	}).Infof("response in %d ms", time.Since(start).Milliseconds())
	return &pb.BlobReply{Data: data}, nil
}
