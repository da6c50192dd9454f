package plot

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/galplot/analyze"
	"github.com/phil-mansfield/galplot/halo"
	"github.com/phil-mansfield/galplot/units"
)

// Absolute magnitudes of the Milky Way satellites from Tollerud et al.
// (2008), one per line, bundled so the comparison curve works out of the
// box.
//
//go:embed tollerud2008mw
var tollerudData string

// SatLFOptions configures SatLF. CompareFile overrides the bundled Milky Way
// magnitude list; a missing override file is a hard error.
type SatLFOptions struct {
	File        string
	Band        string
	Compare     bool
	CompareFile string
	Style       string
}

var DefaultSatLFOptions = SatLFOptions{Band: "R", Compare: true}

// SatLFData is the computed satellite luminosity function. Mags is sorted
// ascending and Ranks[i] = i, so (Mags, Ranks) is the cumulative
// count-brighter-than curve. Skipped lists the satellites dropped because
// they have no stars.
type SatLFData struct {
	Mags, Ranks []float64
	Skipped     []int
	CompareMags []float64
	Coeff       float64
	ModelMags   []float64
	ModelCounts []float64
}

// SatLF plots the cumulative luminosity function of host's satellites in a
// Johnson band. Satellites are looked up in cat through
// host.Properties.Children; ones missing from the catalogue are ignored and
// ones without stars are skipped and reported in the returned Skipped list.
// A host with no plottable satellites yields an empty curve, not an error.
//
// With opt.Compare set the Milky Way satellite magnitudes of Tollerud et al.
// (2008) are drawn alongside, plus the analytic expectation obtained by
// normalizing the Koposov et al. (2007) luminosity function with the
// host-mass relation of Trentham & Tully (2009).
func SatLF(
	host *halo.Halo, cat *halo.Catalogue, opt *SatLFOptions,
) (*SatLFData, error) {
	if opt == nil {
		opt = &DefaultSatLFOptions
	}
	if !halo.ValidBand(opt.Band) {
		return nil, fmt.Errorf("unknown photometric band '%s'", opt.Band)
	}

	data := &SatLFData{}
	mags := []float64{}
	for _, id := range host.Properties.Children {
		if !cat.Contains(id) {
			continue
		}
		m, err := halo.Mag(cat.Get(id), opt.Band)
		if errors.Is(err, halo.ErrNoStars) {
			data.Skipped = append(data.Skipped, id)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("satellite %d: %w", id, err)
		}
		mags = append(mags, m)
	}
	data.Mags, data.Ranks = analyze.SortedCumulative(mags)

	plt.Figure()
	if opt.Style != "" {
		plt.Plot(data.Mags, data.Ranks, opt.Style, plt.Label("Simulation"))
	} else {
		plt.Plot(data.Mags, data.Ranks, plt.Label("Simulation"))
	}
	plt.YScale("log")
	plt.XLabel("M" + opt.Band)
	plt.YLabel("Cumulative LF")

	if opt.Compare {
		cmpMags, err := compareMags(opt.CompareFile)
		if err != nil {
			return nil, err
		}
		var cmpRanks []float64
		data.CompareMags, cmpRanks = analyze.SortedCumulative(cmpMags)
		plt.Plot(data.CompareMags, cmpRanks,
			plt.Label("MW (Tollerud et al 2008)"))

		if len(data.Mags) > 0 {
			if err := koposovCurve(host, data); err != nil {
				return nil, err
			}
			plt.Plot(data.ModelMags, data.ModelCounts, "--",
				plt.Label("Koposov et al (2007) + Trentham & Tully (2009)"))
		}
	}

	plt.Legend()
	if opt.File != "" {
		plt.SaveFig(opt.File)
	}

	return data, nil
}

// koposovCurve fills in the analytic satellite count expected for the host's
// mass. Trentham & Tully (2009) eq. 6 relates host mass to the dwarf count
// in -17 < M_R < -11; matching that count to the integral of the Koposov et
// al. (2007) form N(M) ~ 10^((M+5)/10) fixes its normalization.
func koposovCurve(host *halo.Halo, data *SatLFData) error {
	mass, err := host.Properties.Mass.In(units.Msol)
	if err != nil {
		return err
	}
	logNd := 0.91*math.Log10(mass) - 10.2
	data.Coeff = math.Pow(10, logNd) /
		(math.Pow(10, -0.6) - math.Pow(10, -1.2))

	lo, hi := data.Mags[0], data.Mags[len(data.Mags)-1]
	data.ModelMags = analyze.Linspace(lo, hi, 100)
	data.ModelCounts = make([]float64, len(data.ModelMags))
	for i, m := range data.ModelMags {
		data.ModelCounts[i] = data.Coeff * math.Pow(10, (m+5)/10)
	}
	return nil
}

// compareMags loads the Milky Way comparison magnitudes: from fname when
// given, otherwise from the bundled Tollerud et al. (2008) list.
func compareMags(fname string) ([]float64, error) {
	if fname != "" {
		cols, err := table.ReadTable(fname, []int{0}, nil)
		if err != nil {
			return nil, err
		}
		return cols[0], nil
	}

	mags := []float64{}
	for _, line := range strings.Split(tollerudData, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("bundled comparison data: %w", err)
		}
		mags = append(mags, m)
	}
	return mags, nil
}
