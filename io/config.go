package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/galplot/halo"
)

const ExamplePlotsFile = `[Plots]

#######################
# Required Parameters #
#######################

# Star particle table: x y z vx vy vz mass tform massform, in kpc, kpc/Gyr,
# Msol and Gyr.
StarFile = path/to/stars.txt

# Current simulation time in Gyr.
TimeGyr = 13.7

#######################
# Optional Parameters #
#######################

# Gas particle table: x y z vx vy vz mass. Required for the Schmidt law.
# GasFile = path/to/gas.txt

# Satellite star table: haloid mass mag. Required for the satellite
# luminosity function, together with the host halo mass in Msol.
# HaloFile = path/to/satellites.txt
# HostMass = 1e12

# Figures to produce. Every one is skipped unless an output file is given.
# SFHFile = sfh.png
# SchmidtFile = schmidt.png
# SatLFFile = satlf.png

# Johnson band for satellite magnitudes. Default is R.
# Band = R

# Use formation masses in the star-formation history. Default is true.
# MassForm = true

# Recenter the snapshot and rotate it face-on before the Schmidt law.
# Default is true.
# Recenter = true

# Young-star window in Myr and disc selection in kpc for the Schmidt law.
# PreTimeMyr = 50
# DiskHeightKpc = 3
# RMaxKpc = 20`

// PlotsConfig is the [Plots] section of a run configuration file.
type PlotsConfig struct {
	StarFile string
	GasFile  string
	HaloFile string
	TimeGyr  float64

	SFHFile     string
	SchmidtFile string
	SatLFFile   string

	Band     string
	HostMass float64
	MassForm bool
	Recenter bool

	PreTimeMyr    float64
	DiskHeightKpc float64
	RMaxKpc       float64
}

type plotsWrapper struct {
	Plots PlotsConfig
}

// DefaultPlotsConfig holds the values used for parameters the configuration
// file leaves out.
var DefaultPlotsConfig = PlotsConfig{
	Band:          "R",
	MassForm:      true,
	Recenter:      true,
	PreTimeMyr:    50,
	DiskHeightKpc: 3,
	RMaxKpc:       20,
}

// ReadPlotsConfig reads and validates the [Plots] section of fname.
func ReadPlotsConfig(fname string) (*PlotsConfig, error) {
	wrap := plotsWrapper{DefaultPlotsConfig}
	if err := gcfg.ReadFileInto(&wrap, fname); err != nil {
		return nil, err
	}

	con := &wrap.Plots
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}

func (con *PlotsConfig) CheckInit() error {
	if con.SFHFile == "" && con.SchmidtFile == "" && con.SatLFFile == "" {
		return fmt.Errorf(
			"Need to specify at least one of SFHFile, SchmidtFile, " +
				"and SatLFFile.",
		)
	}

	if con.SFHFile != "" || con.SchmidtFile != "" {
		if con.StarFile == "" {
			return fmt.Errorf(
				"Need to specify StarFile to compute SFHFile or SchmidtFile.",
			)
		}
		if con.TimeGyr <= 0 {
			return fmt.Errorf(
				"TimeGyr must be positive, but is %g.", con.TimeGyr,
			)
		}
	}

	if con.SchmidtFile != "" && con.GasFile == "" {
		return fmt.Errorf("Need to specify GasFile to compute SchmidtFile.")
	}

	if con.SatLFFile != "" {
		if con.HaloFile == "" {
			return fmt.Errorf(
				"Need to specify HaloFile to compute SatLFFile.",
			)
		}
		if con.HostMass <= 0 {
			return fmt.Errorf(
				"HostMass must be positive, but is %g.", con.HostMass,
			)
		}
	}

	if !halo.ValidBand(con.Band) {
		return fmt.Errorf(
			"Band must be one of %v. '%s' is not recognized.",
			halo.Bands, con.Band,
		)
	}

	if con.PreTimeMyr <= 0 || con.DiskHeightKpc <= 0 || con.RMaxKpc <= 0 {
		return fmt.Errorf(
			"PreTimeMyr, DiskHeightKpc, and RMaxKpc must all be positive.",
		)
	}

	return nil
}
