package io

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/galplot/halo"
	"github.com/phil-mansfield/galplot/units"
)

func writeTemp(t *testing.T, name, text string) string {
	dir := t.TempDir()
	fname := filepath.Join(dir, name)
	assert.Nil(t, ioutil.WriteFile(fname, []byte(text), 0644))
	return fname
}

func TestReadSnapshot(t *testing.T) {
	starFile := writeTemp(t, "stars.txt",
		"0 0 0 10 0 0 1.5 2 2.5\n"+
			"1 2 3 0 10 0 0.5 13 0.6\n",
	)
	gasFile := writeTemp(t, "gas.txt",
		"5 5 5 0 0 1 100\n",
	)

	sim, err := ReadSnapshot(starFile, gasFile, 13.7)
	assert.Nil(t, err)

	assert.Equal(t, 2, sim.Star.Len())
	assert.Equal(t, 1, sim.Gas.Len())

	tform, err := sim.Star.FieldIn("tform", units.Gyr)
	assert.Nil(t, err)
	assert.Equal(t, []float64{2, 13}, tform)

	massform, err := sim.Star.FieldIn("massform", units.Msol)
	assert.Nil(t, err)
	assert.Equal(t, []float64{2.5, 0.6}, massform)

	gasMass, err := sim.Gas.FieldIn("mass", units.Msol)
	assert.Nil(t, err)
	assert.Equal(t, []float64{100}, gasMass)

	now, err := sim.Time.In(units.Myr)
	assert.Nil(t, err)
	assert.InDelta(t, 13700, now, 1e-9)
}

func TestReadSnapshotNoGas(t *testing.T) {
	starFile := writeTemp(t, "stars.txt", "0 0 0 0 0 0 1 2 3\n")

	sim, err := ReadSnapshot(starFile, "", 13.7)
	assert.Nil(t, err)
	assert.Equal(t, 0, sim.Gas.Len())
	assert.True(t, sim.Gas.Has("mass"))
}

func TestReadSnapshotMissingFile(t *testing.T) {
	_, err := ReadSnapshot("does_not_exist_2e1a.txt", "", 13.7)
	assert.NotNil(t, err)
}

func TestReadHalos(t *testing.T) {
	haloFile := writeTemp(t, "sats.txt",
		"2 1e6 -10\n"+
			"3 1e6 -14\n"+
			"2 1e6 -10\n",
	)

	host, cat, err := ReadHalos(haloFile, "R", 1e12)
	assert.Nil(t, err)

	assert.Equal(t, []int{2, 3}, host.Properties.Children)
	mass, err := host.Properties.Mass.In(units.Msol)
	assert.Nil(t, err)
	assert.Equal(t, 1e12, mass)

	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, 2, cat.Get(2).Star.Len())
	assert.Equal(t, 1, cat.Get(3).Star.Len())

	m, err := halo.Mag(cat.Get(3), "R")
	assert.Nil(t, err)
	assert.InDelta(t, -14, m, 1e-10)
}

func TestReadHalosBadBand(t *testing.T) {
	_, _, err := ReadHalos("whatever.txt", "Q", 1e12)
	assert.NotNil(t, err)
}

func TestReadPlotsConfig(t *testing.T) {
	text := `[Plots]
StarFile = stars.txt
GasFile = gas.txt
TimeGyr = 13.7
SFHFile = sfh.png
SchmidtFile = schmidt.png
`
	fname := writeTemp(t, "run.config", text)

	con, err := ReadPlotsConfig(fname)
	assert.Nil(t, err)
	assert.Equal(t, "stars.txt", con.StarFile)
	assert.Equal(t, 13.7, con.TimeGyr)
	// Unset parameters keep their defaults.
	assert.Equal(t, "R", con.Band)
	assert.True(t, con.MassForm)
	assert.Equal(t, 50.0, con.PreTimeMyr)
}

func TestReadPlotsConfigInvalid(t *testing.T) {
	checks := []string{
		// No figure requested.
		"[Plots]\nStarFile = stars.txt\nTimeGyr = 1\n",
		// SFH without stars.
		"[Plots]\nSFHFile = sfh.png\nTimeGyr = 1\n",
		// Schmidt law without gas.
		"[Plots]\nStarFile = s.txt\nTimeGyr = 1\nSchmidtFile = out.png\n",
		// Satellite LF without a host mass.
		"[Plots]\nSatLFFile = lf.png\nHaloFile = h.txt\n",
		// Bad band.
		"[Plots]\nStarFile = s.txt\nTimeGyr = 1\nSFHFile = out.png\n" +
			"Band = Q\n",
		// Non-positive time.
		"[Plots]\nStarFile = s.txt\nSFHFile = out.png\n",
	}

	for i, text := range checks {
		fname := writeTemp(t, "bad.config", text)
		_, err := ReadPlotsConfig(fname)
		assert.NotNil(t, err, "config %d", i)
		os.Remove(fname)
	}
}
