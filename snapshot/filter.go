package snapshot

import (
	"math"

	"github.com/phil-mansfield/galplot/units"
)

// Disc returns a mask selecting the particles of f inside a cylinder of
// radius rMax and half-height height, both in kpc, centered on the origin
// and aligned with the z axis.
func Disc(f *Family, rMax, height float64) ([]bool, error) {
	xs, err := f.FieldIn("x", units.Kpc)
	if err != nil {
		return nil, err
	}
	ys, err := f.FieldIn("y", units.Kpc)
	if err != nil {
		return nil, err
	}
	zs, err := f.FieldIn("z", units.Kpc)
	if err != nil {
		return nil, err
	}

	r2 := rMax * rMax
	ok := make([]bool, f.Len())
	for i := range ok {
		ok[i] = xs[i]*xs[i]+ys[i]*ys[i] <= r2 && math.Abs(zs[i]) <= height
	}
	return ok, nil
}

// CylindricalRadii returns sqrt(x^2 + y^2) for every particle of f, in kpc.
func CylindricalRadii(f *Family) ([]float64, error) {
	xs, err := f.FieldIn("x", units.Kpc)
	if err != nil {
		return nil, err
	}
	ys, err := f.FieldIn("y", units.Kpc)
	if err != nil {
		return nil, err
	}

	rs := make([]float64, f.Len())
	for i := range rs {
		rs[i] = math.Sqrt(xs[i]*xs[i] + ys[i]*ys[i])
	}
	return rs, nil
}
