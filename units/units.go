/*Package units implements the small set of physical units needed by galplot's
analysis routines. Internally everything is referred to a base system of
(Msol, kpc, Gyr), so all the conversion factors used here are exact powers of
ten. Conversions between units of different dimension fail with
ErrUnitMismatch instead of silently returning garbage.
*/
package units

import (
	"errors"
	"fmt"
)

var ErrUnitMismatch = errors.New("unit dimensions do not match")

// Dim is the dimension of a unit as exponents of (mass, length, time).
type Dim struct {
	M, L, T int
}

// Unit is a named unit with a fixed scale relative to the (Msol, kpc, Gyr)
// base system.
type Unit struct {
	name  string
	scale float64
	dim   Dim
}

var (
	// Dimensionless quantities (e.g. magnitudes).
	None = Unit{"", 1, Dim{0, 0, 0}}

	Msol = Unit{"Msol", 1, Dim{1, 0, 0}}

	Kpc = Unit{"kpc", 1, Dim{0, 1, 0}}
	Pc  = Unit{"pc", 1e-3, Dim{0, 1, 0}}

	Gyr = Unit{"Gyr", 1, Dim{0, 0, 1}}
	Myr = Unit{"Myr", 1e-3, Dim{0, 0, 1}}
	Yr  = Unit{"yr", 1e-9, Dim{0, 0, 1}}

	KpcGyr = Unit{"kpc Gyr^-1", 1, Dim{0, 1, -1}}

	MsolKpc2 = Unit{"Msol kpc^-2", 1, Dim{1, -2, 0}}
	MsolPc2  = Unit{"Msol pc^-2", 1e6, Dim{1, -2, 0}}

	MsolGyrKpc2 = Unit{"Msol Gyr^-1 kpc^-2", 1, Dim{1, -2, -1}}
	MsolYrKpc2  = Unit{"Msol yr^-1 kpc^-2", 1e9, Dim{1, -2, -1}}
)

func (u Unit) String() string { return u.name }

// Convert returns the multiplicative factor taking values in u to values in
// to. Units of different dimension return ErrUnitMismatch.
func (u Unit) Convert(to Unit) (float64, error) {
	if u.dim != to.dim {
		return 0, fmt.Errorf(
			"cannot convert '%s' to '%s': %w", u.name, to.name,
			ErrUnitMismatch,
		)
	}
	return u.scale / to.scale, nil
}

// Quantity is a scalar tagged with its unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// In returns the quantity's value expressed in the unit u.
func (q Quantity) In(u Unit) (float64, error) {
	fact, err := q.Unit.Convert(u)
	if err != nil {
		return 0, err
	}
	return q.Value * fact, nil
}
