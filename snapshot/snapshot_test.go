package snapshot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/galplot/units"
)

func testFamily(t *testing.T) *Family {
	f := NewFamily(4)
	set := func(name string, data []float64, u units.Unit) {
		assert.Nil(t, f.SetField(name, Array{data, u}))
	}
	set("x", []float64{0, 1, 5, 30}, units.Kpc)
	set("y", []float64{0, 1, 0, 0}, units.Kpc)
	set("z", []float64{0, 0.5, 4, 0}, units.Kpc)
	set("mass", []float64{1, 2, 3, 4}, units.Msol)
	return f
}

func TestFieldLookup(t *testing.T) {
	f := testFamily(t)

	a, err := f.Field("mass")
	assert.Nil(t, err)
	assert.Equal(t, 4, len(a.Data))

	_, err = f.Field("tform")
	assert.ErrorIs(t, err, ErrFieldNotFound)

	err = f.SetField("mass", Array{[]float64{1, 2}, units.Msol})
	assert.NotNil(t, err, "length mismatch")
}

func TestFieldIn(t *testing.T) {
	f := NewFamily(2)
	f.SetField("tform", Array{[]float64{1, 2.5}, units.Gyr})

	myr, err := f.FieldIn("tform", units.Myr)
	assert.Nil(t, err)
	assert.Equal(t, []float64{1000, 2500}, myr)

	_, err = f.FieldIn("tform", units.Msol)
	assert.ErrorIs(t, err, units.ErrUnitMismatch)
}

func TestSelect(t *testing.T) {
	f := testFamily(t)
	sub := f.Select([]bool{true, false, false, true})

	assert.Equal(t, 2, sub.Len())
	ms, err := sub.FieldIn("mass", units.Msol)
	assert.Nil(t, err)
	assert.Equal(t, []float64{1, 4}, ms)

	// Selection copies: mutating the subset leaves the parent alone.
	ms[0] = -1
	orig, _ := f.FieldIn("mass", units.Msol)
	assert.Equal(t, 1.0, orig[0])
}

func TestDisc(t *testing.T) {
	f := testFamily(t)
	ok, err := Disc(f, 20, 3)
	assert.Nil(t, err)
	// Particle 2 is too high above the plane, particle 3 too far out.
	assert.Equal(t, []bool{true, true, false, false}, ok)
}

func TestCenter(t *testing.T) {
	star := NewFamily(2)
	star.SetField("x", Array{[]float64{9, 11}, units.Kpc})
	star.SetField("y", Array{[]float64{-2, -2}, units.Kpc})
	star.SetField("z", Array{[]float64{1, -1}, units.Kpc})
	star.SetField("mass", Array{[]float64{1, 1}, units.Msol})

	s := New(star, nil, units.Quantity{Value: 10, Unit: units.Gyr})
	assert.Nil(t, s.Center())

	xs, _ := star.FieldIn("x", units.Kpc)
	ys, _ := star.FieldIn("y", units.Kpc)
	zs, _ := star.FieldIn("z", units.Kpc)
	assert.InDelta(t, -1, xs[0], 1e-10)
	assert.InDelta(t, +1, xs[1], 1e-10)
	assert.InDelta(t, 0, ys[0], 1e-10)
	assert.InDelta(t, +1, zs[0], 1e-10)
}

func TestFaceOn(t *testing.T) {
	// A ring rotating in the x-z plane: angular momentum points along -y,
	// so after FaceOn the ring must lie in the new x-y plane.
	n := 8
	star := NewFamily(n)
	xs, ys, zs := make([]float64, n), make([]float64, n), make([]float64, n)
	vxs, vys, vzs := make([]float64, n), make([]float64, n), make([]float64, n)
	ms := make([]float64, n)
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n)
		xs[i], zs[i] = math.Cos(phi), math.Sin(phi)
		vxs[i], vzs[i] = -math.Sin(phi), math.Cos(phi)
		ms[i] = 1
	}
	star.SetField("x", Array{xs, units.Kpc})
	star.SetField("y", Array{ys, units.Kpc})
	star.SetField("z", Array{zs, units.Kpc})
	star.SetField("vx", Array{vxs, units.KpcGyr})
	star.SetField("vy", Array{vys, units.KpcGyr})
	star.SetField("vz", Array{vzs, units.KpcGyr})
	star.SetField("mass", Array{ms, units.Msol})

	s := New(star, nil, units.Quantity{Value: 10, Unit: units.Gyr})
	assert.Nil(t, s.FaceOn())

	newZs, _ := star.FieldIn("z", units.Kpc)
	newXs, _ := star.FieldIn("x", units.Kpc)
	newYs, _ := star.FieldIn("y", units.Kpc)
	for i := 0; i < n; i++ {
		assert.InDelta(t, 0, newZs[i], 1e-10, "ring in plane")
		r := math.Sqrt(newXs[i]*newXs[i] + newYs[i]*newYs[i])
		assert.InDelta(t, 1, r, 1e-10, "radii preserved")
	}
}

func TestFaceOnNoVelocities(t *testing.T) {
	star := NewFamily(1)
	star.SetField("x", Array{[]float64{1}, units.Kpc})
	star.SetField("y", Array{[]float64{0}, units.Kpc})
	star.SetField("z", Array{[]float64{0}, units.Kpc})
	star.SetField("mass", Array{[]float64{1}, units.Msol})

	s := New(star, nil, units.Quantity{Value: 10, Unit: units.Gyr})
	assert.ErrorIs(t, s.FaceOn(), ErrFieldNotFound)
}
