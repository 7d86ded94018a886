// Package allocator implements weighted integer apportionment with per-child
// minimums: given a total replica budget and, for each child, a floor and a
// weight, it produces an integer vector that sums to the total, never drops
// a child below its floor, and otherwise tracks the weights as closely as
// integer rounding allows.
//
// The algorithm is continuous water-filling (raise a common multiplier on
// weights until every child either reaches it or is clamped at its floor)
// followed by largest-remainder rounding with a fully deterministic
// tie-break order. Determinism is load-bearing: the controller diffs the
// result against its own prior apply, so any non-deterministic tie-break
// would cause replica churn on every reconcile.
package allocator

import (
	"math"
	"sort"
)

// epsilon is the tolerance used for weight-positivity and clamp comparisons.
const epsilon = 1e-12

// residualEpsilon is the tolerance for the post-water-filling floating-point
// drift check; drift above this is redistributed across the free set.
const residualEpsilon = 1e-7

// Allocate computes x[0..n-1] such that sum(x) == total, x[k] >= minimums[k]
// for all k, and, above the minimums, x tracks weights[k] as closely as
// integer rounding allows. minimums and weights must have equal length n >= 1.
//
// Allocate never returns a partial result: on any input-domain violation or
// infeasibility it returns a nil slice and a non-nil error, one of the
// *Error types declared in this package (use errors.As to inspect it).
func Allocate(total int64, minimums []int64, weights []float64) ([]int64, error) {
	xStar, err := waterFillContinuous(total, minimums, weights)
	if err != nil {
		return nil, err
	}
	return roundToSumWithFloors(total, xStar, minimums, weights)
}

// waterFillContinuous computes the continuous (real-valued) water-filling
// solution x*_k = max(m_k, alpha*w_k) for the alpha that makes sum(x*) == total.
func waterFillContinuous(total int64, minimums []int64, weights []float64) ([]float64, error) {
	n := len(minimums)

	if n != len(weights) {
		return nil, LengthMismatchError{MinimaLen: len(minimums), WeightsLen: len(weights)}
	}
	if total < 0 {
		return nil, NegativeTotalError{Total: total}
	}
	for _, m := range minimums {
		if m < 0 {
			return nil, NegativeMinimaError{}
		}
	}
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, NaNOrNegativeWeightError{}
		}
	}

	required := int64(0)
	for _, m := range minimums {
		required += m
	}
	if required > total {
		return nil, InfeasibleError{Required: required, Available: total}
	}

	// All-zero weights with a positive total: split evenly above the minima.
	allZero := true
	for _, w := range weights {
		if math.Abs(w) > epsilon {
			allZero = false
			break
		}
	}
	if allZero && total > 0 {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1.0
		}
	}

	clamped := make([]bool, n)
	clampedMinSum := 0.0
	freeWeightSum := 0.0
	for i := 0; i < n; i++ {
		if weights[i] <= epsilon {
			clamped[i] = true
			clampedMinSum += float64(minimums[i])
		} else {
			freeWeightSum += weights[i]
		}
	}

	for freeWeightSum > epsilon {
		alpha := (float64(total) - clampedMinSum) / freeWeightSum
		progressed := false
		for i := 0; i < n; i++ {
			if clamped[i] {
				continue
			}
			if alpha*weights[i] < float64(minimums[i])-epsilon {
				clamped[i] = true
				clampedMinSum += float64(minimums[i])
				freeWeightSum -= weights[i]
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	xStar := make([]float64, n)
	if freeWeightSum <= epsilon {
		for i := 0; i < n; i++ {
			xStar[i] = float64(minimums[i])
		}
	} else {
		alpha := (float64(total) - clampedMinSum) / freeWeightSum
		for i := 0; i < n; i++ {
			if clamped[i] {
				xStar[i] = float64(minimums[i])
			} else {
				xStar[i] = alpha * weights[i]
			}
		}
	}

	// Correct floating-point drift deterministically.
	sum := 0.0
	for _, x := range xStar {
		sum += x
	}
	delta := float64(total) - sum
	if math.Abs(delta) > residualEpsilon {
		freeCount := 0
		for _, c := range clamped {
			if !c {
				freeCount++
			}
		}
		if freeCount > 0 {
			add := delta / float64(freeCount)
			for i := 0; i < n; i++ {
				if !clamped[i] {
					xStar[i] += add
				}
			}
		} else {
			add := delta / float64(n)
			for i := range xStar {
				xStar[i] += add
			}
		}
	}

	return xStar, nil
}

// roundToSumWithFloors rounds the continuous solution to integers that sum
// exactly to total without violating any floor, using largest-remainder
// (Hamilton) apportionment with a deterministic tie-break.
func roundToSumWithFloors(total int64, xStar []float64, minimums []int64, weights []float64) ([]int64, error) {
	n := len(xStar)

	base := make([]int64, n)
	for i := 0; i < n; i++ {
		floor := int64(math.Floor(xStar[i] + epsilon))
		base[i] = maxInt64(minimums[i], floor)
	}

	baseSum := int64(0)
	for _, b := range base {
		baseSum += b
	}
	remainder := total - baseSum

	x := make([]int64, n)
	copy(x, base)
	if remainder == 0 {
		return x, nil
	}

	frac := make([]float64, n)
	for i := 0; i < n; i++ {
		f := xStar[i] - float64(base[i])
		if f < 0 {
			f = 0
		}
		frac[i] = f
	}

	if remainder > 0 {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		// Descending fractional remainder, then descending weight, then ascending index.
		sort.SliceStable(order, func(a, b int) bool {
			i, j := order[a], order[b]
			if frac[i] != frac[j] {
				return frac[i] > frac[j]
			}
			if weights[i] != weights[j] {
				return weights[i] > weights[j]
			}
			return i < j
		})

		k := 0
		for remainder > 0 && k < n {
			x[order[k]]++
			remainder--
			k++
		}
		// All fractional remainders were ~0 and n < remainder: cycle through
		// indices in order, deterministically, until exhausted.
		i := 0
		for remainder > 0 {
			x[i%n]++
			remainder--
			i++
		}
		return x, nil
	}

	need := -remainder
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Ascending fractional remainder, then ascending weight, then ascending index.
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if frac[i] != frac[j] {
			return frac[i] < frac[j]
		}
		if weights[i] != weights[j] {
			return weights[i] < weights[j]
		}
		return i < j
	})

	for need > 0 {
		progressed := false
		for _, i := range order {
			if need == 0 {
				break
			}
			if x[i] > minimums[i] {
				x[i]--
				need--
				progressed = true
			}
		}
		if !progressed {
			return nil, DownAdjustImpossibleError{}
		}
	}
	return x, nil
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
