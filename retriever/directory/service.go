// Package directory resolves quorum membership and signer records from
// the on-chain DASigners contract.
package directory

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/0glabs/0g-da-retriever/contracts/dasigners"
	"github.com/0glabs/0g-da-retriever/retriever/retrieval"
	"github.com/0glabs/0g-da-retriever/shared/params"
)

var log = logrus.WithField("prefix", "directory")

// maxCallBackoff caps the exponential backoff between view call retries.
const maxCallBackoff = 30 * time.Second

// quorumCaller is the slice of the generated DASigners binding the
// directory needs.
type quorumCaller interface {
	GetQuorum(opts *bind.CallOpts, epoch *big.Int, quorumID *big.Int) ([]common.Address, error)
	GetSigner(opts *bind.CallOpts, accounts []common.Address) ([]dasigners.IDASignersSignerDetail, error)
}

// Service maintains the connection to an eth1 JSON-RPC endpoint and
// answers quorum snapshot queries against the DASigners contract.
type Service struct {
	ctx      context.Context
	cancel   context.CancelFunc
	endpoint string
	client   *ethclient.Client
	caller   quorumCaller
	dialErr  error
}

// Config options for the directory service.
type Config struct {
	// Endpoint is the HTTP JSON-RPC URL used for contract view calls.
	Endpoint string
}

// NewService creates a directory service for the service registry.
func NewService(ctx context.Context, cfg *Config) (*Service, error) {
	ctx, cancel := context.WithCancel(ctx)
	return &Service{
		ctx:      ctx,
		cancel:   cancel,
		endpoint: cfg.Endpoint,
	}, nil
}

// Start dials the configured endpoint and binds the DASigners caller.
func (s *Service) Start() {
	client, err := ethclient.DialContext(s.ctx, s.endpoint)
	if err != nil {
		log.WithError(err).Errorf("Could not connect to JSON-RPC endpoint: %s", s.endpoint)
		s.dialErr = err
		return
	}
	caller, err := dasigners.NewDASignersCaller(params.RetrieverNodeConfig().DASignersAddress, client)
	if err != nil {
		log.WithError(err).Error("Could not bind DASigners contract")
		s.dialErr = err
		return
	}
	s.client = client
	s.caller = caller
	log.WithField("endpoint", s.endpoint).Info("Connected to chain")
}

// Stop the service.
func (s *Service) Stop() error {
	s.cancel()
	log.Info("Stopping service")
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

// Status returns an error if the chain connection could not be
// established.
func (s *Service) Status() error {
	if s.dialErr != nil {
		return s.dialErr
	}
	if s.client == nil {
		return errors.New("no connection to eth1 node")
	}
	return nil
}

// Snapshot resolves the ordered membership of (epoch, quorumID) and the
// directory record of every distinct member. Duplicates in the membership
// are preserved; an empty quorum is a terminal error for the request.
func (s *Service) Snapshot(ctx context.Context, epoch, quorumID uint64) (*retrieval.Snapshot, error) {
	ctx, span := trace.StartSpan(ctx, "directory.Snapshot")
	defer span.End()

	if s.caller == nil {
		return nil, errors.New("directory not connected to chain")
	}
	log.WithFields(logrus.Fields{
		"epoch":    epoch,
		"quorumId": quorumID,
	}).Debug("Resolving quorum membership")

	opts := &bind.CallOpts{Context: ctx}
	var members []common.Address
	err := s.withRetry(ctx, func() error {
		var callErr error
		members, callErr = s.caller.GetQuorum(opts, new(big.Int).SetUint64(epoch), new(big.Int).SetUint64(quorumID))
		return callErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not get quorum")
	}
	if len(members) == 0 {
		return nil, errors.New("quorum is empty")
	}
	log.WithField("quorumSize", len(members)).Debug("Resolved quorum membership")

	distinct := make([]common.Address, 0, len(members))
	seen := make(map[common.Address]bool, len(members))
	for _, addr := range members {
		if seen[addr] {
			continue
		}
		seen[addr] = true
		distinct = append(distinct, addr)
	}

	var details []dasigners.IDASignersSignerDetail
	err = s.withRetry(ctx, func() error {
		var callErr error
		details, callErr = s.caller.GetSigner(opts, distinct)
		return callErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not get signer details")
	}
	log.WithField("signerCount", len(details)).Debug("Resolved signer records")

	byAddr := make(map[common.Address]*dasigners.IDASignersSignerDetail, len(details))
	for i := range details {
		detail := details[i]
		byAddr[detail.Signer] = &detail
	}

	return &retrieval.Snapshot{
		Members: members,
		Details: byAddr,
	}, nil
}

// withRetry runs a view call until it succeeds, the attempt budget is
// spent, or the context ends. Backoff starts at the configured initial
// value and doubles per failure.
func (s *Service) withRetry(ctx context.Context, call func() error) error {
	cfg := params.RetrieverNodeConfig()
	backoff := time.Duration(cfg.ContractCallBackoffMillis) * time.Millisecond

	var err error
	for attempt := 0; attempt < cfg.ContractCallRetries; attempt++ {
		if err = call(); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.WithError(err).WithField("attempt", attempt+1).Debug("View call failed, backing off")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		if backoff *= 2; backoff > maxCallBackoff {
			backoff = maxCallBackoff
		}
	}
	return err
}
