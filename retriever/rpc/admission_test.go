package rpc

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRequestPool_StrictGreaterThanCeiling(t *testing.T) {
	pool := newRequestPool(2)

	// The strict > comparison admits ceiling+1 requests.
	for i := 0; i < 3; i++ {
		if err := pool.admit(); err != nil {
			t.Fatalf("admit %d failed: %v", i+1, err)
		}
	}
	err := pool.admit()
	if err == nil {
		t.Fatal("4th concurrent admit succeeded")
	}
	if status.Code(err) != codes.ResourceExhausted {
		t.Errorf("expected ResourceExhausted, got %v", status.Code(err))
	}
	if got := status.Convert(err).Message(); got != "request pool is full" {
		t.Errorf("unexpected rejection message: %q", got)
	}

	pool.release()
	if err := pool.admit(); err != nil {
		t.Errorf("admit after release failed: %v", err)
	}
}

func TestRequestPool_ReleaseRestoresCount(t *testing.T) {
	pool := newRequestPool(5)
	for i := 0; i < 4; i++ {
		if err := pool.admit(); err != nil {
			t.Fatalf("admit failed: %v", err)
		}
	}
	for i := 0; i < 4; i++ {
		pool.release()
	}
	if pool.size() != 0 {
		t.Errorf("pool size %d after full release, want 0", pool.size())
	}
}
