// Package node defines the retriever node: it handles the lifecycle of
// the entire system and registers every required service.
package node

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/0glabs/0g-da-retriever/retriever/directory"
	"github.com/0glabs/0g-da-retriever/retriever/flags"
	"github.com/0glabs/0g-da-retriever/retriever/recovery"
	"github.com/0glabs/0g-da-retriever/retriever/rpc"
	"github.com/0glabs/0g-da-retriever/retriever/signerclient"
	"github.com/0glabs/0g-da-retriever/shared"
	"github.com/0glabs/0g-da-retriever/shared/cmd"
	"github.com/0glabs/0g-da-retriever/shared/prometheus"
)

var log = logrus.WithField("prefix", "node")

// RetrieverNode defines a struct that handles the services running the
// blob retrieval coordinator. It handles the lifecycle of the entire
// system and registers services to a service registry.
type RetrieverNode struct {
	cliCtx   *cli.Context
	lock     sync.RWMutex
	services *shared.ServiceRegistry
	stop     chan struct{} // Channel to wait for termination notifications.
}

// New creates a new node instance, sets up configuration options,
// and registers every required service.
func New(cliCtx *cli.Context) (*RetrieverNode, error) {
	registry := shared.NewServiceRegistry()

	node := &RetrieverNode{
		cliCtx:   cliCtx,
		services: registry,
		stop:     make(chan struct{}),
	}

	if !cliCtx.Bool(cmd.DisableMonitoringFlag.Name) {
		if err := node.registerPrometheusService(cliCtx); err != nil {
			return nil, err
		}
	}

	if err := node.registerDirectoryService(cliCtx); err != nil {
		return nil, err
	}

	if err := node.registerRPCService(cliCtx); err != nil {
		return nil, err
	}

	return node, nil
}

// Start the retriever node and kick off every registered service.
func (n *RetrieverNode) Start() {
	n.lock.Lock()
	n.services.StartAll()
	n.lock.Unlock()

	stop := n.stop
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		<-sigc
		log.Info("Got interrupt, shutting down...")
		go n.Close()
		for i := 10; i > 0; i-- {
			<-sigc
			if i > 1 {
				log.Info("Already shutting down, interrupt more to panic", "times", i-1)
			}
		}
		panic("Panic closing the retriever node")
	}()

	// Wait for stop channel to be closed.
	<-stop
}

// Close handles graceful shutdown of the system.
func (n *RetrieverNode) Close() {
	n.lock.Lock()
	defer n.lock.Unlock()

	log.Info("Stopping retriever node")
	n.services.StopAll()
	close(n.stop)
}

func (n *RetrieverNode) registerPrometheusService(cliCtx *cli.Context) error {
	service := prometheus.NewPrometheusService(
		fmt.Sprintf(":%d", cliCtx.Int64(cmd.MonitoringPortFlag.Name)),
		n.services,
	)
	logrus.AddHook(prometheus.NewLogrusCollector())
	return n.services.RegisterService(service)
}

func (n *RetrieverNode) registerDirectoryService(cliCtx *cli.Context) error {
	ds, err := directory.NewService(context.Background(), &directory.Config{
		Endpoint: cliCtx.String(flags.EthRPCEndpointFlag.Name),
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize signer directory")
	}
	return n.services.RegisterService(ds)
}

func (n *RetrieverNode) registerRPCService(cliCtx *cli.Context) error {
	var ds *directory.Service
	if err := n.services.FetchService(&ds); err != nil {
		return err
	}

	rpcService := rpc.NewService(context.Background(), &rpc.Config{
		ListenAddr:                cliCtx.String(flags.GRPCListenAddressFlag.Name),
		CertFlag:                  cliCtx.String(flags.CertFlag.Name),
		KeyFlag:                   cliCtx.String(flags.KeyFlag.Name),
		Directory:                 ds,
		Fetcher:                   signerclient.NewClient(),
		Recoverer:                 recovery.NewSystematic(),
		MaxOngoingRetrieveRequest: cliCtx.Uint64(flags.MaxOngoingRetrieveRequestFlag.Name),
	})
	return n.services.RegisterService(rpcService)
}
