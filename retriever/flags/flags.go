// Package flags defines the command line flags of the retriever binary.
// Flag names double as the keys of the yaml config file.
package flags

import (
	"github.com/urfave/cli/v2"
)

var (
	// LogLevelFlag defines the minimum log severity.
	LogLevelFlag = &cli.StringFlag{
		Name:  "log_level",
		Usage: "Minimum log severity (trace, debug, info, warn, error, fatal, panic)",
		Value: "info",
	}
	// EthRPCEndpointFlag defines the JSON-RPC URL used for contract view calls.
	EthRPCEndpointFlag = &cli.StringFlag{
		Name:  "eth_rpc_endpoint",
		Usage: "HTTP JSON-RPC endpoint used to query the DASigners contract",
		Value: "http://localhost:8545",
	}
	// GRPCListenAddressFlag defines the host:port the public service binds to.
	GRPCListenAddressFlag = &cli.StringFlag{
		Name:  "grpc_listen_address",
		Usage: "host:port served by the public Retriever gRPC service",
		Value: "0.0.0.0:34000",
	}
	// MaxOngoingRetrieveRequestFlag sets the admission ceiling for
	// concurrent retrievals. A new request is rejected only while more than
	// this many are in flight, so up to ceiling+1 are served at once.
	MaxOngoingRetrieveRequestFlag = &cli.Uint64Flag{
		Name:  "max_ongoing_retrieve_request",
		Usage: "Admission ceiling for retrieve requests; new requests are rejected while more than this many are in flight",
		Value: 10,
	}
	// CertFlag defines a flag for the node's TLS certificate.
	CertFlag = &cli.StringFlag{
		Name:  "tls-cert",
		Usage: "Certificate for secure gRPC. Pass this and the tls-key flag in order to use gRPC securely.",
	}
	// KeyFlag defines a flag for the node's TLS key.
	KeyFlag = &cli.StringFlag{
		Name:  "tls-key",
		Usage: "Key for secure gRPC. Pass this and the tls-cert flag in order to use gRPC securely.",
	}
)
