/*Package io reads galplot's plain-text particle tables and run
configuration files. The particle formats are deliberately simple whitespace
tables (the same shape gadget-to-text dumps produce): one particle per row,
columns fixed per file type.
*/
package io

import (
	"fmt"
	"sort"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/galplot/halo"
	"github.com/phil-mansfield/galplot/snapshot"
	"github.com/phil-mansfield/galplot/units"
)

// Star file columns: x y z vx vy vz mass tform massform. Positions in kpc,
// velocities in kpc/Gyr, masses in Msol, formation times in Gyr.
var starCols = []int{0, 1, 2, 3, 4, 5, 6, 7, 8}

// Gas files share the star layout without the formation columns.
var gasCols = []int{0, 1, 2, 3, 4, 5, 6}

// ReadSnapshot reads a snapshot from a star and a gas table. gasFile may be
// empty, giving a snapshot with an empty gas family. timeGyr is the current
// simulation time.
func ReadSnapshot(
	starFile, gasFile string, timeGyr float64,
) (*snapshot.Snapshot, error) {
	cols, err := table.ReadTable(starFile, starCols, nil)
	if err != nil {
		return nil, fmt.Errorf("star file: %v", err)
	}
	star := snapshot.NewFamily(len(cols[0]))
	setKinematics(star, cols)
	star.SetField("tform", snapshot.Array{cols[7], units.Gyr})
	star.SetField("massform", snapshot.Array{cols[8], units.Msol})

	var gas *snapshot.Family
	if gasFile == "" {
		gas = emptyGas()
	} else {
		cols, err = table.ReadTable(gasFile, gasCols, nil)
		if err != nil {
			return nil, fmt.Errorf("gas file: %v", err)
		}
		gas = snapshot.NewFamily(len(cols[0]))
		setKinematics(gas, cols)
	}

	return snapshot.New(
		star, gas, units.Quantity{Value: timeGyr, Unit: units.Gyr},
	), nil
}

func setKinematics(f *snapshot.Family, cols [][]float64) {
	f.SetField("x", snapshot.Array{cols[0], units.Kpc})
	f.SetField("y", snapshot.Array{cols[1], units.Kpc})
	f.SetField("z", snapshot.Array{cols[2], units.Kpc})
	f.SetField("vx", snapshot.Array{cols[3], units.KpcGyr})
	f.SetField("vy", snapshot.Array{cols[4], units.KpcGyr})
	f.SetField("vz", snapshot.Array{cols[5], units.KpcGyr})
	f.SetField("mass", snapshot.Array{cols[6], units.Msol})
}

func emptyGas() *snapshot.Family {
	gas := snapshot.NewFamily(0)
	cols := make([][]float64, 7)
	for i := range cols {
		cols[i] = []float64{}
	}
	setKinematics(gas, cols)
	return gas
}

// ReadHalos reads a satellite star table with columns (halo id, star mass in
// Msol, absolute magnitude in band) and groups the rows into per-satellite
// halos. The returned host carries every satellite id as a child and the
// given total mass; it owns no particles of its own.
func ReadHalos(
	fname, band string, hostMass float64,
) (*halo.Halo, *halo.Catalogue, error) {
	if !halo.ValidBand(band) {
		return nil, nil, fmt.Errorf("unknown photometric band '%s'", band)
	}

	cols, err := table.ReadTable(fname, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("halo file: %v", err)
	}
	ids, masses, mags := cols[0], cols[1], cols[2]

	groups := map[int][]int{}
	for i := range ids {
		id := int(ids[i])
		groups[id] = append(groups[id], i)
	}

	cat := halo.NewCatalogue()
	children := []int{}
	for id, rows := range groups {
		star := snapshot.NewFamily(len(rows))
		ms, mg := make([]float64, len(rows)), make([]float64, len(rows))
		for j, i := range rows {
			ms[j], mg[j] = masses[i], mags[i]
		}
		star.SetField("mass", snapshot.Array{ms, units.Msol})
		star.SetField(band+"_mag", snapshot.Array{mg, units.None})
		cat.Add(id, &halo.Halo{Star: star})
		children = append(children, id)
	}
	sort.Ints(children)

	host := &halo.Halo{
		Properties: halo.Properties{
			Children: children,
			Mass:     units.Quantity{Value: hostMass, Unit: units.Msol},
		},
	}
	return host, cat, nil
}
