package directory

import (
	"context"
	"io/ioutil"
	"math/big"
	"reflect"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/0glabs/0g-da-retriever/contracts/dasigners"
	"github.com/0glabs/0g-da-retriever/shared/params"
)

func init() {
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetOutput(ioutil.Discard)
}

func fastRetries(t *testing.T, attempts int) {
	cfg := *params.RetrieverNodeConfig()
	cfg.ContractCallRetries = attempts
	cfg.ContractCallBackoffMillis = 1
	params.OverrideRetrieverConfig(&cfg)
	t.Cleanup(params.ResetRetrieverConfig)
}

type fakeCaller struct {
	quorum         []common.Address
	quorumFailures int
	signers        []dasigners.IDASignersSignerDetail
	gotAccounts    []common.Address
	quorumCalls    int
}

func (f *fakeCaller) GetQuorum(_ *bind.CallOpts, _ *big.Int, _ *big.Int) ([]common.Address, error) {
	f.quorumCalls++
	if f.quorumCalls <= f.quorumFailures {
		return nil, errors.New("502 bad gateway")
	}
	return f.quorum, nil
}

func (f *fakeCaller) GetSigner(_ *bind.CallOpts, accounts []common.Address) ([]dasigners.IDASignersSignerDetail, error) {
	f.gotAccounts = accounts
	return f.signers, nil
}

func testAddr(b byte) common.Address {
	var a common.Address
	a[0] = b
	return a
}

func TestSnapshot_EmptyQuorum(t *testing.T) {
	fastRetries(t, 1)
	s := &Service{caller: &fakeCaller{}}

	_, err := s.Snapshot(context.Background(), 38, 0)
	if err == nil {
		t.Fatal("expected an error for an empty quorum")
	}
	if !strings.Contains(err.Error(), "quorum is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSnapshot_PreservesOrderAndDuplicates(t *testing.T) {
	fastRetries(t, 1)
	a, b := testAddr(1), testAddr(2)
	caller := &fakeCaller{
		quorum: []common.Address{a, b, a},
		signers: []dasigners.IDASignersSignerDetail{
			{Signer: a, Socket: "1.2.3.4:7000"},
			{Signer: b, Socket: "5.6.7.8:7000"},
		},
	}
	s := &Service{caller: caller}

	snap, err := s.Snapshot(context.Background(), 38, 0)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if !reflect.DeepEqual(snap.Members, []common.Address{a, b, a}) {
		t.Errorf("membership order or duplicates lost: %v", snap.Members)
	}
	if !reflect.DeepEqual(caller.gotAccounts, []common.Address{a, b}) {
		t.Errorf("expected one batched lookup of distinct signers, got %v", caller.gotAccounts)
	}
	if snap.Details[a].Socket != "1.2.3.4:7000" || snap.Details[b].Socket != "5.6.7.8:7000" {
		t.Errorf("details map miswired: %+v", snap.Details)
	}
}

func TestSnapshot_RetriesViewCalls(t *testing.T) {
	fastRetries(t, 5)
	a := testAddr(1)
	caller := &fakeCaller{
		quorum:         []common.Address{a},
		quorumFailures: 3,
		signers:        []dasigners.IDASignersSignerDetail{{Signer: a}},
	}
	s := &Service{caller: caller}

	if _, err := s.Snapshot(context.Background(), 38, 0); err != nil {
		t.Fatalf("Snapshot failed despite retry budget: %v", err)
	}
	if caller.quorumCalls != 4 {
		t.Errorf("expected 4 quorum calls (3 failures + success), got %d", caller.quorumCalls)
	}
}

func TestSnapshot_RetryBudgetExhausted(t *testing.T) {
	fastRetries(t, 2)
	caller := &fakeCaller{quorumFailures: 10}
	s := &Service{caller: caller}

	_, err := s.Snapshot(context.Background(), 38, 0)
	if err == nil {
		t.Fatal("expected an error once the retry budget is spent")
	}
	if !strings.Contains(err.Error(), "could not get quorum") {
		t.Errorf("unexpected error: %v", err)
	}
	if caller.quorumCalls != 2 {
		t.Errorf("expected 2 quorum calls, got %d", caller.quorumCalls)
	}
}

func TestSnapshot_NotConnected(t *testing.T) {
	s := &Service{}
	if _, err := s.Snapshot(context.Background(), 38, 0); err == nil {
		t.Fatal("expected an error while disconnected")
	}
}
