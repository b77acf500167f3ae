// Package rpc defines the retriever's public gRPC surface, wiring client
// blob requests through admission control into the retrieval pipeline.
package rpc

import (
	"context"
	"net"
	"time"

	middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/plugin/ocgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	pb "github.com/0glabs/0g-da-retriever/proto/retriever/v1"
	"github.com/0glabs/0g-da-retriever/retriever/retrieval"
	"github.com/0glabs/0g-da-retriever/shared/params"
)

var log = logrus.WithField("prefix", "rpc")

// Service defining an RPC server for the retriever node.
type Service struct {
	ctx             context.Context
	cancel          context.CancelFunc
	listenAddr      string
	withCert        string
	withKey         string
	directory       snapshotProvider
	fetcher         retrieval.SliceFetcher
	recoverer       retrieval.Recoverer
	maxOngoing      uint64
	listener        net.Listener
	grpcServer      *grpc.Server
	credentialError error
	startFailure    error
}

// Config options for the retriever RPC server.
type Config struct {
	ListenAddr                string
	CertFlag                  string
	KeyFlag                   string
	Directory                 snapshotProvider
	Fetcher                   retrieval.SliceFetcher
	Recoverer                 retrieval.Recoverer
	MaxOngoingRetrieveRequest uint64
}

// NewService creates a new RPC service instance for the registry.
func NewService(ctx context.Context, cfg *Config) *Service {
	ctx, cancel := context.WithCancel(ctx)
	maxOngoing := cfg.MaxOngoingRetrieveRequest
	if maxOngoing == 0 {
		maxOngoing = params.RetrieverNodeConfig().DefaultMaxOngoingRetrieveRequest
	}
	return &Service{
		ctx:        ctx,
		cancel:     cancel,
		listenAddr: cfg.ListenAddr,
		withCert:   cfg.CertFlag,
		withKey:    cfg.KeyFlag,
		directory:  cfg.Directory,
		fetcher:    cfg.Fetcher,
		recoverer:  cfg.Recoverer,
		maxOngoing: maxOngoing,
	}
}

// Start the gRPC server.
func (s *Service) Start() {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		log.WithError(err).Errorf("Could not listen on %s", s.listenAddr)
		s.startFailure = err
		return
	}
	s.listener = lis
	log.WithField("address", s.listenAddr).Info("Listening for blob requests")

	maxSize := params.RetrieverNodeConfig().MaxMessageSize
	opts := []grpc.ServerOption{
		grpc.StatsHandler(&ocgrpc.ServerHandler{}),
		grpc.MaxRecvMsgSize(maxSize),
		grpc.MaxSendMsgSize(maxSize),
		grpc.StreamInterceptor(middleware.ChainStreamServer(
			recovery.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
		)),
		grpc.UnaryInterceptor(middleware.ChainUnaryServer(
			recovery.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,
		)),
	}
	if s.withCert != "" && s.withKey != "" {
		creds, err := credentials.NewServerTLSFromFile(s.withCert, s.withKey)
		if err != nil {
			log.Errorf("Could not load TLS keys: %s", err)
			s.credentialError = err
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		log.Warn("You are using an insecure gRPC connection! Provide a certificate and key to connect securely")
	}
	s.grpcServer = grpc.NewServer(opts...)

	retrieverServer := &Server{
		directory: s.directory,
		retriever: retrieval.NewOrchestrator(s.fetcher, s.recoverer),
		pool:      newRequestPool(s.maxOngoing),
	}
	pb.RegisterRetrieverServer(s.grpcServer, retrieverServer)

	// Register reflection service on gRPC server.
	reflection.Register(s.grpcServer)

	go func() {
		if s.listener != nil {
			if err := s.grpcServer.Serve(s.listener); err != nil {
				log.Errorf("Could not serve gRPC: %v", err)
			}
		}
	}()
}

// Stop the service, draining in-flight requests for the configured grace
// period before forcing termination.
func (s *Service) Stop() error {
	s.cancel()
	log.Info("Stopping service")
	if s.listener != nil {
		stopped := make(chan struct{})
		go func() {
			s.grpcServer.GracefulStop()
			close(stopped)
		}()
		grace := time.Duration(params.RetrieverNodeConfig().ShutdownGraceSeconds) * time.Second
		select {
		case <-stopped:
			log.Debug("Initiated graceful stop of gRPC server")
		case <-time.After(grace):
			s.grpcServer.Stop()
			log.Warn("Grace period expired, forcing gRPC server stop")
		}
	}
	return nil
}

// Status returns nil or a credential/listen error if the service is
// unhealthy.
func (s *Service) Status() error {
	if s.credentialError != nil {
		return s.credentialError
	}
	if s.startFailure != nil {
		return s.startFailure
	}
	return nil
}
