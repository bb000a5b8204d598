package epoch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvenSlices(t *testing.T) {
	tests := []struct {
		name string
		n, k int
		want []Span
	}{
		{"exact division", 6, 3, []Span{{0, 2}, {2, 4}, {4, 6}}},
		{"remainder goes to leading slices", 7, 3, []Span{{0, 3}, {3, 5}, {5, 7}}},
		{"single slice", 4, 1, []Span{{0, 4}}},
		{"more slices than items", 2, 5, []Span{{0, 1}, {1, 2}}},
		{"one each", 3, 3, []Span{{0, 1}, {1, 2}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvenSlices(tt.n, tt.k))
		})
	}
}

// TestEvenSlices_CoversAllIndices verifies the spans are contiguous, cover
// [0,n) exactly once, and differ in size by at most one.
func TestEvenSlices_CoversAllIndices(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for k := 1; k <= 8; k++ {
			spans := EvenSlices(n, k)

			next := 0
			minLen, maxLen := n+1, 0
			for _, s := range spans {
				assert.Equal(t, next, s.Lo, "n=%d k=%d", n, k)
				assert.Greater(t, s.Len(), 0, "n=%d k=%d", n, k)
				if s.Len() < minLen {
					minLen = s.Len()
				}
				if s.Len() > maxLen {
					maxLen = s.Len()
				}
				next = s.Hi
			}
			assert.Equal(t, n, next, "n=%d k=%d", n, k)
			assert.LessOrEqual(t, maxLen-minLen, 1, "n=%d k=%d", n, k)
		}
	}
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, 4, Workers(4))
	assert.Equal(t, 1, Workers(1))
	assert.Greater(t, Workers(AllCPUs), 0)
}
