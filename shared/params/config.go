// Package params defines important configuration options to be used by the
// retriever node.
package params

import (
	"github.com/ethereum/go-ethereum/common"
)

// RetrieverConfig contains constant configs for the retrieval pipeline.
type RetrieverConfig struct {
	// MinRequiredRows is the number of distinct encoded rows needed before
	// blob reconstruction may proceed. Rows below this index are the
	// systematic portion of the erasure code.
	MinRequiredRows uint32

	// DASignersAddress is the precompiled contract holding quorum
	// membership and signer records.
	DASignersAddress common.Address

	// MaxMessageSize bounds gRPC encoding and decoding in both
	// directions, raised to accommodate whole blobs.
	MaxMessageSize int

	// DefaultMaxOngoingRetrieveRequest is the admission ceiling applied
	// when the config file does not set one.
	DefaultMaxOngoingRetrieveRequest uint64

	// ContractCallRetries is the maximum number of attempts for a single
	// view call against the chain.
	ContractCallRetries int

	// ContractCallBackoffMillis is the initial backoff between view call
	// attempts. The backoff doubles on every failure.
	ContractCallBackoffMillis int

	// ShutdownGraceSeconds is how long the node drains in-flight requests
	// on interrupt before exiting.
	ShutdownGraceSeconds int
}

var defaultRetrieverConfig = &RetrieverConfig{
	MinRequiredRows:                  1024,
	DASignersAddress:                 common.HexToAddress("0x0000000000000000000000000000000000001000"),
	MaxMessageSize:                   1024 * 1024 * 1024, // 1 GiB
	DefaultMaxOngoingRetrieveRequest: 10,
	ContractCallRetries:              100,
	ContractCallBackoffMillis:        500,
	ShutdownGraceSeconds:             15,
}

var retrieverConfig = defaultRetrieverConfig

// RetrieverNodeConfig retrieves the retriever node config.
func RetrieverNodeConfig() *RetrieverConfig {
	return retrieverConfig
}

// OverrideRetrieverConfig overrides the config in this package, used
// only by tests exercising small quorums.
func OverrideRetrieverConfig(c *RetrieverConfig) {
	retrieverConfig = c
}

// ResetRetrieverConfig restores the package defaults.
func ResetRetrieverConfig() {
	retrieverConfig = defaultRetrieverConfig
}
