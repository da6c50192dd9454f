package snapshot

import (
	"errors"
	"math"

	"github.com/phil-mansfield/galplot/units"
)

var ErrNoParticles = errors.New("snapshot contains no particles")

// Center shifts the snapshot's coordinate frame so the mass-weighted center
// of all star and gas particles sits at the origin. The snapshot's position
// fields are rewritten in place, so this is visible to every later user of
// the snapshot.
func (s *Snapshot) Center() error {
	var cx, cy, cz, m float64
	for _, f := range s.families() {
		xs, ys, zs, err := positions(f)
		if err != nil {
			return err
		}
		ms, err := f.FieldIn("mass", units.Msol)
		if err != nil {
			return err
		}
		for i := range ms {
			cx += xs[i] * ms[i]
			cy += ys[i] * ms[i]
			cz += zs[i] * ms[i]
			m += ms[i]
		}
	}
	if m == 0 {
		return ErrNoParticles
	}
	cx, cy, cz = cx/m, cy/m, cz/m

	for _, f := range s.families() {
		xs, ys, zs, err := positions(f)
		if err != nil {
			return err
		}
		for i := range xs {
			xs[i] -= cx
			ys[i] -= cy
			zs[i] -= cz
		}
		setPositions(f, xs, ys, zs)
	}
	return nil
}

// FaceOn rotates the snapshot's coordinate frame so the total angular
// momentum of its star and gas particles points along +z, putting a rotating
// disk into the x-y plane. Positions and velocities are rewritten in place
// (in kpc and kpc/Gyr). The snapshot should already be centered.
func (s *Snapshot) FaceOn() error {
	var lx, ly, lz float64
	any := false
	for _, f := range s.families() {
		xs, ys, zs, err := positions(f)
		if err != nil {
			return err
		}
		vxs, vys, vzs, err := velocities(f)
		if err != nil {
			return err
		}
		ms, err := f.FieldIn("mass", units.Msol)
		if err != nil {
			return err
		}
		for i := range ms {
			lx += ms[i] * (ys[i]*vzs[i] - zs[i]*vys[i])
			ly += ms[i] * (zs[i]*vxs[i] - xs[i]*vzs[i])
			lz += ms[i] * (xs[i]*vys[i] - ys[i]*vxs[i])
			any = true
		}
	}
	norm := math.Sqrt(lx*lx + ly*ly + lz*lz)
	if !any || norm == 0 {
		return ErrNoParticles
	}

	// Orthonormal basis with e3 along the angular momentum.
	e3 := [3]float64{lx / norm, ly / norm, lz / norm}
	var e1 [3]float64
	if math.Abs(e3[2]) < 1-1e-12 {
		// cross(e3, z), normalized
		c := math.Sqrt(e3[0]*e3[0] + e3[1]*e3[1])
		e1 = [3]float64{e3[1] / c, -e3[0] / c, 0}
	} else {
		e1 = [3]float64{1, 0, 0}
	}
	e2 := [3]float64{
		e3[1]*e1[2] - e3[2]*e1[1],
		e3[2]*e1[0] - e3[0]*e1[2],
		e3[0]*e1[1] - e3[1]*e1[0],
	}

	for _, f := range s.families() {
		xs, ys, zs, err := positions(f)
		if err != nil {
			return err
		}
		rotate(e1, e2, e3, xs, ys, zs)
		setPositions(f, xs, ys, zs)

		vxs, vys, vzs, err := velocities(f)
		if err != nil {
			return err
		}
		rotate(e1, e2, e3, vxs, vys, vzs)
		f.SetField("vx", Array{vxs, units.KpcGyr})
		f.SetField("vy", Array{vys, units.KpcGyr})
		f.SetField("vz", Array{vzs, units.KpcGyr})
	}
	return nil
}

func rotate(e1, e2, e3 [3]float64, xs, ys, zs []float64) {
	for i := range xs {
		x, y, z := xs[i], ys[i], zs[i]
		xs[i] = x*e1[0] + y*e1[1] + z*e1[2]
		ys[i] = x*e2[0] + y*e2[1] + z*e2[2]
		zs[i] = x*e3[0] + y*e3[1] + z*e3[2]
	}
}

func positions(f *Family) (xs, ys, zs []float64, err error) {
	if xs, err = f.FieldIn("x", units.Kpc); err != nil {
		return nil, nil, nil, err
	}
	if ys, err = f.FieldIn("y", units.Kpc); err != nil {
		return nil, nil, nil, err
	}
	if zs, err = f.FieldIn("z", units.Kpc); err != nil {
		return nil, nil, nil, err
	}
	return xs, ys, zs, nil
}

func velocities(f *Family) (vxs, vys, vzs []float64, err error) {
	if vxs, err = f.FieldIn("vx", units.KpcGyr); err != nil {
		return nil, nil, nil, err
	}
	if vys, err = f.FieldIn("vy", units.KpcGyr); err != nil {
		return nil, nil, nil, err
	}
	if vzs, err = f.FieldIn("vz", units.KpcGyr); err != nil {
		return nil, nil, nil, err
	}
	return vxs, vys, vzs, nil
}

func setPositions(f *Family, xs, ys, zs []float64) {
	f.SetField("x", Array{xs, units.Kpc})
	f.SetField("y", Array{ys, units.Kpc})
	f.SetField("z", Array{zs, units.Kpc})
}
