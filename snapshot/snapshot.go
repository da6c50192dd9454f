/*Package snapshot represents a single simulation output as collections of
particles with named, unit-tagged fields. It is deliberately much dumber than
a full simulation-format library: fields are float64 slices, positions are
the "x", "y", "z" fields in kpc, and the package only knows how to select
subsets and change coordinate frames.
*/
package snapshot

import (
	"errors"
	"fmt"

	"github.com/phil-mansfield/galplot/units"
)

var ErrFieldNotFound = errors.New("field not found")

// Array is a per-particle field together with its unit.
type Array struct {
	Data []float64
	Unit units.Unit
}

// In returns a copy of the array's data expressed in the unit u.
func (a Array) In(u units.Unit) ([]float64, error) {
	fact, err := a.Unit.Convert(u)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a.Data))
	for i, x := range a.Data {
		out[i] = x * fact
	}
	return out, nil
}

// Family is one particle species (stars, gas) with its named fields. All
// fields of a family have the same length.
type Family struct {
	n      int
	fields map[string]Array
}

func NewFamily(n int) *Family {
	return &Family{n: n, fields: map[string]Array{}}
}

func (f *Family) Len() int { return f.n }

// SetField adds or replaces a field. The data length must match the family
// size.
func (f *Family) SetField(name string, a Array) error {
	if len(a.Data) != f.n {
		return fmt.Errorf(
			"field '%s' has %d elements, but family has %d particles",
			name, len(a.Data), f.n,
		)
	}
	f.fields[name] = a
	return nil
}

func (f *Family) Has(name string) bool {
	_, ok := f.fields[name]
	return ok
}

// Field returns the named field or a wrapped ErrFieldNotFound.
func (f *Family) Field(name string) (Array, error) {
	a, ok := f.fields[name]
	if !ok {
		return Array{}, fmt.Errorf("no field '%s': %w", name, ErrFieldNotFound)
	}
	return a, nil
}

// FieldIn returns the named field converted to the unit u. Lookup failures
// wrap ErrFieldNotFound and conversion failures wrap units.ErrUnitMismatch,
// so callers can tell the two apart.
func (f *Family) FieldIn(name string, u units.Unit) ([]float64, error) {
	a, err := f.Field(name)
	if err != nil {
		return nil, err
	}
	out, err := a.In(u)
	if err != nil {
		return nil, fmt.Errorf("field '%s': %w", name, err)
	}
	return out, nil
}

// Select returns a new family containing only the particles where ok is
// true. Field arrays are copied, not aliased.
func (f *Family) Select(ok []bool) *Family {
	n := 0
	for _, o := range ok {
		if o {
			n++
		}
	}

	sub := NewFamily(n)
	for name, a := range f.fields {
		data := make([]float64, 0, n)
		for i, o := range ok {
			if o {
				data = append(data, a.Data[i])
			}
		}
		sub.fields[name] = Array{data, a.Unit}
	}
	return sub
}

// Snapshot is one simulation output. Time is the current simulation time,
// used to pick out recently formed stars.
type Snapshot struct {
	Star, Gas *Family
	Time      units.Quantity
}

func New(star, gas *Family, time units.Quantity) *Snapshot {
	return &Snapshot{Star: star, Gas: gas, Time: time}
}

func (s *Snapshot) families() []*Family {
	fams := []*Family{}
	if s.Star != nil {
		fams = append(fams, s.Star)
	}
	if s.Gas != nil {
		fams = append(fams, s.Gas)
	}
	return fams
}
