// Package signerclient dials signer nodes and fetches batches of encoded
// blob rows over gRPC.
package signerclient

import (
	"context"

	middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_opentracing "github.com/grpc-ecosystem/go-grpc-middleware/tracing/opentracing"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/plugin/ocgrpc"
	"google.golang.org/grpc"

	signerpb "github.com/0glabs/0g-da-retriever/proto/signer/v1"
	"github.com/0glabs/0g-da-retriever/retriever/retrieval"
	"github.com/0glabs/0g-da-retriever/shared/grpcutils"
	"github.com/0glabs/0g-da-retriever/shared/params"
)

var log = logrus.WithField("prefix", "signerclient")

// lengthPrefixSize is the number of bytes every returned slice spends on
// its length header. The header is stripped before the payload is used.
const lengthPrefixSize = 8

// Client issues BatchRetrieve calls against signer sockets. Connections
// are dialed per call; signers come and go with quorum membership, so
// nothing is pooled.
type Client struct {
	dialOpts []grpc.DialOption
}

// NewClient builds a signer client with the node's standard dial options.
func NewClient() *Client {
	maxSize := params.RetrieverNodeConfig().MaxMessageSize
	return &Client{
		dialOpts: []grpc.DialOption{
			grpc.WithInsecure(),
			grpc.WithStatsHandler(&ocgrpc.ClientHandler{}),
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(maxSize),
				grpc.MaxCallSendMsgSize(maxSize),
			),
			grpc.WithStreamInterceptor(middleware.ChainStreamClient(
				grpc_opentracing.StreamClientInterceptor(),
				grpc_prometheus.StreamClientInterceptor,
			)),
			grpc.WithUnaryInterceptor(middleware.ChainUnaryClient(
				grpc_opentracing.UnaryClientInterceptor(),
				grpc_prometheus.UnaryClientInterceptor,
				grpcutils.LogGRPCRequests,
			)),
		},
	}
}

// RetrieveSlices fetches the given rows of one blob from a signer. It
// returns exactly one payload per requested row, already stripped of the
// length prefix, or an error.
func (c *Client) RetrieveSlices(ctx context.Context, socket string, fp retrieval.Fingerprint, rowIndexes []uint32) ([][]byte, error) {
	target := DialTarget(socket)
	log.WithFields(logrus.Fields{
		"socket": target,
		"rows":   len(rowIndexes),
	}).Debug("Requesting slices from signer")

	conn, err := grpc.DialContext(ctx, target, c.dialOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "could not dial signer %s", target)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Error("Failed to close signer connection")
		}
	}()

	res, err := signerpb.NewSignerClient(conn).BatchRetrieve(ctx, &signerpb.BatchRetrieveRequest{
		Requests: []*signerpb.RetrieveRequest{
			{
				Epoch:       fp.Epoch,
				QuorumId:    fp.QuorumId,
				StorageRoot: fp.StorageRoot,
				RowIndexes:  rowIndexes,
			},
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "batch retrieve from %s failed", target)
	}

	groups := res.GetEncodedSlice()
	if len(groups) == 0 {
		return nil, errors.Errorf("empty batch retrieve response from %s", target)
	}
	slices := groups[0].GetEncodedSlice()
	if len(slices) != len(rowIndexes) {
		return nil, errors.Errorf("signer %s returned %d slices for %d rows", target, len(slices), len(rowIndexes))
	}

	payloads := make([][]byte, 0, len(slices))
	for _, slice := range slices {
		if len(slice) < lengthPrefixSize {
			return nil, errors.Errorf("slice from %s shorter than its length prefix: %d bytes", target, len(slice))
		}
		payloads = append(payloads, slice[lengthPrefixSize:])
	}
	return payloads, nil
}
