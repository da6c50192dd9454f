/*Package analyze contains the array reductions shared by galplot's figures:
fixed-range weighted histograms, radial surface-density profiles, and the
usual sample-spacing helpers.
*/
package analyze

import (
	"math"
	"sort"
)

// Linspace returns n evenly spaced samples from lo to hi, inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = lo
		return xs
	}
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	xs[n-1] = hi
	return xs
}

// Logspace returns n samples evenly spaced in log, from 10**logLo to
// 10**logHi, inclusive.
func Logspace(logLo, logHi float64, n int) []float64 {
	xs := Linspace(logLo, logHi, n)
	for i, x := range xs {
		xs[i] = math.Pow(10, x)
	}
	return xs
}

// Histogram bins xs into bins fixed-width bins spanning [lo, hi], summing
// weights[i] into the bin of xs[i]. Values outside the range are dropped and
// x == hi lands in the last bin. It returns the per-bin sums and the bins+1
// bin edges.
func Histogram(
	xs, weights []float64, bins int, lo, hi float64,
) (sums, edges []float64) {
	sums = make([]float64, bins)
	edges = Linspace(lo, hi, bins+1)
	dx := (hi - lo) / float64(bins)

	for i, x := range xs {
		if x < lo || x > hi {
			continue
		}
		idx := int((x - lo) / dx)
		if idx == bins {
			idx--
		}
		sums[idx] += weights[i]
	}
	return sums, edges
}

// BinCenters returns the midpoints of consecutive edge pairs.
func BinCenters(edges []float64) []float64 {
	mids := make([]float64, len(edges)-1)
	for i := range mids {
		mids[i] = (edges[i] + edges[i+1]) / 2
	}
	return mids
}

// SurfaceProfile computes a projected surface-density profile: masses are
// summed in bins equal-width annuli of projected radius over [0, rMax] and
// divided by each annulus' area. With rs in kpc and masses in Msol the
// densities come out in Msol/kpc^2. Annuli containing no particles have
// density zero.
func SurfaceProfile(
	rs, masses []float64, bins int, rMax float64,
) (mids, sigmas []float64) {
	sums, edges := Histogram(rs, masses, bins, 0, rMax)

	sigmas = make([]float64, bins)
	for i := range sigmas {
		area := math.Pi * (edges[i+1]*edges[i+1] - edges[i]*edges[i])
		sigmas[i] = sums[i] / area
	}
	return BinCenters(edges), sigmas
}

// SortedCumulative sorts xs ascending (into a copy) and pairs each element
// with its rank, giving the cumulative count-below-x curve.
func SortedCumulative(xs []float64) (sorted, ranks []float64) {
	sorted = make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	ranks = make([]float64, len(xs))
	for i := range ranks {
		ranks[i] = float64(i)
	}
	return sorted, ranks
}
