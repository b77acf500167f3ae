package retrieval

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blobRetrievalAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "retriever_blob_retrieval_attempts_total",
		Help: "Total number of blob retrievals started.",
	})
	blobsRecovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "retriever_blobs_recovered_total",
		Help: "Total number of blobs successfully reconstructed.",
	})
	sliceFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "retriever_slice_fetch_failures_total",
		Help: "Total number of failed slice fetches across all signers.",
	})
)
