package rpc

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	logTest "github.com/sirupsen/logrus/hooks/test"

	"github.com/0glabs/0g-da-retriever/shared/testutil"
)

func TestLifecycle_OK(t *testing.T) {
	hook := logTest.NewGlobal()
	service := NewService(context.Background(), &Config{
		ListenAddr: "127.0.0.1:0",
		Directory:  &mockDirectory{},
	})

	service.Start()
	testutil.AssertLogsContain(t, hook, "Listening for blob requests")

	if err := service.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	testutil.AssertLogsContain(t, hook, "Stopping service")
}

func TestStart_BadEndpoint(t *testing.T) {
	hook := logTest.NewGlobal()
	service := NewService(context.Background(), &Config{
		ListenAddr: "ralph merkle!!!",
	})

	service.Start()
	testutil.AssertLogsContain(t, hook, "Could not listen")

	if service.Status() == nil {
		t.Error("expected a failed status after a bad listen address")
	}
	if err := service.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
}

func TestStatus_CredentialError(t *testing.T) {
	credentialErr := errors.New("credentialError")
	s := &Service{credentialError: credentialErr}

	if err := s.Status(); err != credentialErr {
		t.Errorf("expected credential error, got %v", err)
	}
}

func TestNewService_DefaultsAdmissionCeiling(t *testing.T) {
	s := NewService(context.Background(), &Config{ListenAddr: "127.0.0.1:0"})
	if s.maxOngoing != 10 {
		t.Errorf("expected default admission ceiling 10, got %d", s.maxOngoing)
	}
}
