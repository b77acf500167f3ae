// Package main implements a simple utility for requesting one blob from a
// running retriever node.
package main

import (
	"context"
	"encoding/hex"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"

	pb "github.com/0glabs/0g-da-retriever/proto/retriever/v1"
	"github.com/0glabs/0g-da-retriever/shared/params"
)

var log = logrus.WithField("prefix", "blob-client")

func main() {
	app := cli.App{}
	app.Name = "blob-client"
	app.Usage = "issues a single RetrieveBlob request against a retriever node"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "host:port of the retriever gRPC service",
			Value: "0.0.0.0:34000",
		},
		&cli.Uint64Flag{
			Name:  "epoch",
			Usage: "Epoch the blob was stored in",
			Value: 38,
		},
		&cli.Uint64Flag{
			Name:  "quorum-id",
			Usage: "Quorum holding the blob",
			Value: 0,
		},
		&cli.StringFlag{
			Name:  "storage-root",
			Usage: "Hex encoded 32 byte storage root of the blob",
			Value: "1111111111111111111111111111111111111111111111111111111111111111",
		},
	}
	app.Action = retrieveBlob

	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func retrieveBlob(ctx *cli.Context) error {
	storageRoot, err := hex.DecodeString(ctx.String("storage-root"))
	if err != nil {
		return err
	}

	maxSize := params.RetrieverNodeConfig().MaxMessageSize
	conn, err := grpc.DialContext(ctx.Context, ctx.String("endpoint"),
		grpc.WithInsecure(),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxSize),
			grpc.MaxCallSendMsgSize(maxSize),
		),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Error("Failed to close connection")
		}
	}()

	reply, err := pb.NewRetrieverClient(conn).RetrieveBlob(context.Background(), &pb.BlobRequest{
		Epoch:       ctx.Uint64("epoch"),
		QuorumId:    ctx.Uint64("quorum-id"),
		StorageRoot: storageRoot,
	})
	if err != nil {
		return err
	}
	log.WithField("bytes", len(reply.Data)).Info("Blob retrieved")
	return nil
}
