package retrieval

import (
	"bytes"
	"sync"
	"testing"
)

func TestSliceBuffer_FirstWriterWins(t *testing.T) {
	buf := NewSliceBuffer()
	if !buf.Put(5, []byte("first")) {
		t.Fatal("initial insert rejected")
	}
	if buf.Put(5, []byte("second")) {
		t.Fatal("duplicate insert accepted")
	}
	data, ok := buf.Get(5)
	if !ok || !bytes.Equal(data, []byte("first")) {
		t.Errorf("expected first payload to be kept, got %q", data)
	}
	if buf.Len() != 1 {
		t.Errorf("expected 1 row, got %d", buf.Len())
	}
}

func TestSliceBuffer_AscendingOrder(t *testing.T) {
	buf := NewSliceBuffer()
	for _, row := range []uint32{9, 0, 1030, 3, 512} {
		buf.Put(row, []byte{byte(row)})
	}

	slices := buf.Ascending()
	if len(slices) != 5 {
		t.Fatalf("expected 5 slices, got %d", len(slices))
	}
	for i := 1; i < len(slices); i++ {
		if slices[i-1].Row >= slices[i].Row {
			t.Fatalf("slices not ascending: %d before %d", slices[i-1].Row, slices[i].Row)
		}
	}
}

func TestInvalidSigners_MonotonicGrowth(t *testing.T) {
	set := NewInvalidSigners()
	a, b := addr(1), addr(2)
	if set.Contains(a) {
		t.Fatal("empty set claims membership")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set.Add(a)
		}()
	}
	wg.Wait()

	if !set.Contains(a) {
		t.Error("added signer not found")
	}
	if set.Contains(b) {
		t.Error("unrelated signer reported invalid")
	}
}
