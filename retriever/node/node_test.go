package node

import (
	"flag"
	"testing"

	logTest "github.com/sirupsen/logrus/hooks/test"
	"github.com/urfave/cli/v2"

	"github.com/0glabs/0g-da-retriever/shared/testutil"
)

// Test that the retriever node can register its services and close.
func TestNodeClose_OK(t *testing.T) {
	hook := logTest.NewGlobal()

	app := cli.NewApp()
	set := flag.NewFlagSet("test", 0)
	set.Bool("disable-monitoring", true, "disable monitoring")
	set.String("eth_rpc_endpoint", "http://localhost:8545", "chain JSON-RPC endpoint")
	set.String("grpc_listen_address", "127.0.0.1:0", "gRPC listen address")

	ctx := cli.NewContext(app, set, nil)

	node, err := New(ctx)
	if err != nil {
		t.Fatalf("Failed to create retriever node: %v", err)
	}

	node.Close()

	testutil.AssertLogsContain(t, hook, "Stopping retriever node")
}
