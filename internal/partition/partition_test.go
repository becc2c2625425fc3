package partition

import "testing"

func TestChunks_CoverageAndDisjointness(t *testing.T) {
	for _, tc := range []struct {
		n       uint64
		workers int
	}{
		{10, 3},
		{100, 7},
		{64, 64},
		{1, 8},
		{1000, 1},
	} {
		chunks := Chunks(tc.n, tc.workers)

		var total uint64
		var next uint64
		for i, c := range chunks {
			if c.Start != next {
				t.Errorf("n=%d workers=%d: chunk %d starts at %d, want %d", tc.n, tc.workers, i, c.Start, next)
			}
			if c.Len() == 0 {
				t.Errorf("n=%d workers=%d: chunk %d is empty", tc.n, tc.workers, i)
			}
			total += c.Len()
			next = c.End
		}
		if total != tc.n {
			t.Errorf("n=%d workers=%d: chunks cover %d iterations", tc.n, tc.workers, total)
		}
		if next != tc.n {
			t.Errorf("n=%d workers=%d: chunks end at %d", tc.n, tc.workers, next)
		}
	}
}

func TestChunks_Balance(t *testing.T) {
	chunks := Chunks(10, 3)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	// 10 = 4 + 3 + 3, remainder on the leading chunk.
	want := []uint64{4, 3, 3}
	for i, c := range chunks {
		if c.Len() != want[i] {
			t.Errorf("chunk %d: len %d, want %d", i, c.Len(), want[i])
		}
	}
}

func TestChunks_MoreWorkersThanItems(t *testing.T) {
	chunks := Chunks(3, 8)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
}

func TestChunks_Empty(t *testing.T) {
	if chunks := Chunks(0, 4); chunks != nil {
		t.Errorf("expected nil for n=0, got %v", chunks)
	}
}

func TestChunks_NonPositiveWorkers(t *testing.T) {
	chunks := Chunks(5, 0)
	if len(chunks) != 1 || chunks[0].Len() != 5 {
		t.Errorf("expected a single full chunk, got %v", chunks)
	}
}
