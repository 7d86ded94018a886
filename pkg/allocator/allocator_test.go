package allocator

import (
	"errors"
	"testing"
)

func sumInt64(xs []int64) int64 {
	var total int64
	for _, x := range xs {
		total += x
	}
	return total
}

func TestAllocate_SeedScenarios(t *testing.T) {
	cases := []struct {
		name      string
		total     int64
		minimums  []int64
		weights   []float64
		want      []int64
		wantError bool
	}{
		{
			name:     "five children mixed weights",
			total:    37,
			minimums: []int64{5, 0, 4, 0, 2},
			weights:  []float64{1.0, 2.5, 0.5, 3.0, 1.0},
			want:     []int64{5, 11, 4, 13, 4},
		},
		{
			name:     "minimum dominates",
			total:    10,
			minimums: []int64{9, 0},
			weights:  []float64{1.0, 1.0},
			want:     []int64{9, 1},
		},
		{
			name:      "infeasible minima",
			total:     10,
			minimums:  []int64{10, 1},
			weights:   []float64{1.0, 1.0},
			wantError: true,
		},
		{
			name:     "all zero weights even spread",
			total:    10,
			minimums: []int64{1, 2, 0, 0},
			weights:  []float64{0, 0, 0, 0},
			want:     []int64{3, 3, 2, 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Allocate(tc.total, tc.minimums, tc.weights)
			if tc.wantError {
				if err == nil {
					t.Fatalf("expected error, got result %v", got)
				}
				var infeasible InfeasibleError
				if !errors.As(err, &infeasible) {
					t.Fatalf("expected InfeasibleError, got %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sumInt64(got) != tc.total {
				t.Errorf("sum(%v) = %d, want %d", got, sumInt64(got), tc.total)
			}
			for i, m := range tc.minimums {
				if got[i] < m {
					t.Errorf("x[%d] = %d below minimum %d", i, got[i], m)
				}
			}
			if !equalInt64(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAllocate_InfeasibleReportsRequiredAndAvailable(t *testing.T) {
	_, err := Allocate(10, []int64{10, 1}, []float64{1.0, 1.0})
	var infeasible InfeasibleError
	if !errors.As(err, &infeasible) {
		t.Fatalf("expected InfeasibleError, got %T: %v", err, err)
	}
	if infeasible.Required != 11 || infeasible.Available != 10 {
		t.Errorf("got required=%d available=%d, want required=11 available=10", infeasible.Required, infeasible.Available)
	}
}

func TestAllocate_LengthMismatch(t *testing.T) {
	_, err := Allocate(10, []int64{1, 2}, []float64{1.0})
	var mismatch LengthMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected LengthMismatchError, got %T: %v", err, err)
	}
}

func TestAllocate_NegativeTotal(t *testing.T) {
	_, err := Allocate(-1, []int64{0}, []float64{1.0})
	var negTotal NegativeTotalError
	if !errors.As(err, &negTotal) {
		t.Fatalf("expected NegativeTotalError, got %T: %v", err, err)
	}
}

func TestAllocate_NegativeMinima(t *testing.T) {
	_, err := Allocate(10, []int64{-1}, []float64{1.0})
	var negMin NegativeMinimaError
	if !errors.As(err, &negMin) {
		t.Fatalf("expected NegativeMinimaError, got %T: %v", err, err)
	}
}

func TestAllocate_NaNWeight(t *testing.T) {
	nan := func() float64 { var z float64; return z / z }()
	_, err := Allocate(10, []int64{0}, []float64{nan})
	var badWeight NaNOrNegativeWeightError
	if !errors.As(err, &badWeight) {
		t.Fatalf("expected NaNOrNegativeWeightError, got %T: %v", err, err)
	}
}

func TestAllocate_NegativeWeight(t *testing.T) {
	_, err := Allocate(10, []int64{0, 0}, []float64{1.0, -1.0})
	var badWeight NaNOrNegativeWeightError
	if !errors.As(err, &badWeight) {
		t.Fatalf("expected NaNOrNegativeWeightError, got %T: %v", err, err)
	}
}

func TestAllocate_ZeroTotalPaused(t *testing.T) {
	got, err := Allocate(0, []int64{0, 0}, []float64{1.0, 2.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{0, 0}
	if !equalInt64(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAllocate_Determinism(t *testing.T) {
	total := int64(37)
	minimums := []int64{5, 0, 4, 0, 2}
	weights := []float64{1.0, 2.5, 0.5, 3.0, 1.0}

	first, err := Allocate(total, minimums, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 50; i++ {
		got, err := Allocate(total, minimums, weights)
		if err != nil {
			t.Fatalf("unexpected error on iteration %d: %v", i, err)
		}
		if !equalInt64(got, first) {
			t.Fatalf("non-deterministic result on iteration %d: got %v, want %v", i, got, first)
		}
	}
}

func TestAllocate_ScaleInvarianceOfWeights(t *testing.T) {
	total := int64(37)
	minimums := []int64{5, 0, 4, 0, 2}
	weights := []float64{1.0, 2.5, 0.5, 3.0, 1.0}
	scaled := make([]float64, len(weights))
	for i, w := range weights {
		scaled[i] = w * 10
	}

	base, err := Allocate(total, minimums, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := Allocate(total, minimums, scaled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalInt64(base, got) {
		t.Errorf("scaling weights changed the allocation: %v vs %v", base, got)
	}
}

func TestAllocate_MonotonicityWeak(t *testing.T) {
	total := int64(100)
	minimums := []int64{0, 0, 0}

	low, err := Allocate(total, minimums, []float64{1.0, 1.0, 1.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	high, err := Allocate(total, minimums, []float64{1.0, 5.0, 1.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high[1] < low[1] {
		t.Errorf("increasing w[1] decreased x[1]: low=%v high=%v", low, high)
	}
}

func TestAllocate_DownAdjustRespectsMinimaAcrossManyChildren(t *testing.T) {
	n := 20
	minimums := make([]int64, n)
	weights := make([]float64, n)
	for i := range minimums {
		minimums[i] = 1
		weights[i] = float64(i + 1)
	}
	got, err := Allocate(25, minimums, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sumInt64(got) != 25 {
		t.Errorf("sum = %d, want 25", sumInt64(got))
	}
	for i, m := range minimums {
		if got[i] < m {
			t.Errorf("x[%d] = %d below minimum %d", i, got[i], m)
		}
	}
}

func equalInt64(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
