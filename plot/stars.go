/*Package plot renders galplot's stellar figures: the star-formation history
of a snapshot, the Kennicutt-Schmidt relation of its disk, and the satellite
luminosity function of a host halo.

Every figure function opens its own pyplot figure, returns the plotted values
so callers can inspect them without a matplotlib round trip, and only queues
drawing commands: the caller decides when to run plt.Execute(). When an
output file is given the figure is saved there, otherwise it is left for
plt.Show().
*/
package plot

import (
	"errors"
	"fmt"
	"math"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/galplot/analyze"
	"github.com/phil-mansfield/galplot/snapshot"
	"github.com/phil-mansfield/galplot/units"
)

var (
	// ErrNoData means a figure had nothing to draw: no particles survived
	// selection, or the surviving values span a zero range.
	ErrNoData = errors.New("insufficient data")
	// ErrNonRadial is returned by SchmidtLaw when non-radial binning is
	// requested. Only the radial form is implemented.
	ErrNonRadial = errors.New("only the radial Schmidt law is supported")
)

// SFHOptions configures SFH. The zero File leaves the figure unsaved.
type SFHOptions struct {
	File     string
	MassForm bool
	Bins     int
	Style    string
}

var DefaultSFHOptions = SFHOptions{MassForm: true, Bins: 100, Style: "k"}

// SFHData is the computed star-formation history: bin centers in Gyr and
// rates in Msol/yr.
type SFHData struct {
	Times    []float64
	Rates    []float64
	BinWidth float64
}

// SFH plots the star-formation history of sim's stars: the formation-time
// histogram, weighted so bin heights are star-formation rates in Msol/yr.
//
// Weights come from the stars' formation mass when opt.MassForm is set; if
// that field is missing or cannot be converted to Msol the present-day mass
// is used instead. With MassForm unset the present-day mass is always used.
// Any other failure, including a snapshot with neither mass field,
// propagates to the caller.
func SFH(sim *snapshot.Snapshot, opt *SFHOptions) (*SFHData, error) {
	if opt == nil {
		opt = &DefaultSFHOptions
	}
	bins := opt.Bins
	if bins <= 0 {
		bins = DefaultSFHOptions.Bins
	}
	style := opt.Style
	if style == "" {
		style = DefaultSFHOptions.Style
	}
	if sim.Star == nil {
		return nil, fmt.Errorf("snapshot has no star family: %w", ErrNoData)
	}

	tform, err := sim.Star.FieldIn("tform", units.Gyr)
	if err != nil {
		return nil, err
	}
	if len(tform) == 0 {
		return nil, fmt.Errorf("no star particles: %w", ErrNoData)
	}

	min, max := tform[0], tform[0]
	for _, t := range tform {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}
	if min == max {
		return nil, fmt.Errorf(
			"all stars formed at t = %g Gyr: %w", min, ErrNoData,
		)
	}

	var mass []float64
	if opt.MassForm {
		mass, err = sim.Star.FieldIn("massform", units.Msol)
		if errors.Is(err, snapshot.ErrFieldNotFound) ||
			errors.Is(err, units.ErrUnitMismatch) {
			mass, err = sim.Star.FieldIn("mass", units.Msol)
		}
	} else {
		mass, err = sim.Star.FieldIn("mass", units.Msol)
	}
	if err != nil {
		return nil, err
	}

	// Scales bin heights from Msol/bin to Msol/yr.
	binNorm := 1e-9 * float64(bins) / (max - min)
	weights := make([]float64, len(mass))
	for i, m := range mass {
		weights[i] = m * binNorm
	}

	rates, edges := analyze.Histogram(tform, weights, bins, min, max)
	data := &SFHData{
		Times:    analyze.BinCenters(edges),
		Rates:    rates,
		BinWidth: (max - min) / float64(bins),
	}

	sx, sy := stepOutline(edges, rates)
	plt.Figure()
	plt.Plot(sx, sy, style)
	plt.XLabel(`Time [Gyr]`)
	plt.YLabel(`SFR [M$_\odot$ yr$^{-1}$]`)
	if opt.File != "" {
		plt.SaveFig(opt.File)
	}

	return data, nil
}

// stepOutline converts histogram bins into the x, y polyline of a step-style
// hist: each bin contributes its left and right edge at its height.
func stepOutline(edges, heights []float64) (xs, ys []float64) {
	xs = make([]float64, 0, 2*len(heights))
	ys = make([]float64, 0, 2*len(heights))
	for i, h := range heights {
		xs = append(xs, edges[i], edges[i+1])
		ys = append(ys, h, h)
	}
	return xs, ys
}

// SchmidtOptions configures SchmidtLaw. PreTime is the young-star window in
// Myr, DiskHeight and RMax the disc selection in kpc.
type SchmidtOptions struct {
	File       string
	Center     bool
	PreTime    float64
	DiskHeight float64
	RMax       float64
	Radial     bool
	Bins       int
	Style      string
}

var DefaultSchmidtOptions = SchmidtOptions{
	Center:     true,
	PreTime:    50,
	DiskHeight: 3,
	RMax:       20,
	Radial:     true,
	Bins:       100,
	Style:      "+",
}

// SchmidtData pairs gas surface densities in Msol/pc^2 with star-formation
// surface densities in Msol/yr/kpc^2, one entry per radial bin where both
// are nonzero, plus the two reference relations drawn over them.
type SchmidtData struct {
	GasSigma, SFRSigma     []float64
	KennicuttX, KennicuttY []float64
	BigielX, BigielY       []float64
}

// Kennicutt98 is the disc-averaged star-formation law of Kennicutt (1998):
// Sigma_SFR = 2.5e-4 * Sigma_gas^1.5.
func Kennicutt98(gasSigma float64) float64 {
	return 2.5e-4 * math.Pow(gasSigma, 1.5)
}

// Bigiel07 is the resolved relation of Bigiel et al. (2007):
// Sigma_SFR = 10^-2.1 * Sigma_gas.
func Bigiel07(gasSigma float64) float64 {
	return math.Pow(10, -2.1) * gasSigma
}

// SchmidtLaw plots sim's resolved star-formation law: gas surface density
// against young-star surface density in radial bins across the disc, with
// the Kennicutt (1998) and Bigiel et al. (2007) relations drawn over the
// points.
//
// Requesting non-radial binning returns ErrNonRadial before the snapshot is
// touched. With opt.Center set the snapshot is recentered and rotated
// face-on first: that rewrites its coordinate frame in place and is visible
// to the caller afterwards.
func SchmidtLaw(
	sim *snapshot.Snapshot, opt *SchmidtOptions,
) (*SchmidtData, error) {
	if opt == nil {
		opt = &DefaultSchmidtOptions
	}
	if !opt.Radial {
		return nil, ErrNonRadial
	}
	bins := opt.Bins
	if bins <= 0 {
		bins = DefaultSchmidtOptions.Bins
	}
	style := opt.Style
	if style == "" {
		style = DefaultSchmidtOptions.Style
	}
	if sim.Star == nil || sim.Gas == nil {
		return nil, fmt.Errorf(
			"snapshot lacks a star or gas family: %w", ErrNoData,
		)
	}

	if opt.Center {
		if err := sim.Center(); err != nil {
			return nil, err
		}
		if err := sim.FaceOn(); err != nil {
			return nil, err
		}
	}

	gasOK, err := snapshot.Disc(sim.Gas, opt.RMax, opt.DiskHeight)
	if err != nil {
		return nil, err
	}
	starOK, err := snapshot.Disc(sim.Star, opt.RMax, opt.DiskHeight)
	if err != nil {
		return nil, err
	}
	diskGas := sim.Gas.Select(gasOK)
	diskStars := sim.Star.Select(starOK)

	tform, err := diskStars.FieldIn("tform", units.Myr)
	if err != nil {
		return nil, err
	}
	now, err := sim.Time.In(units.Myr)
	if err != nil {
		return nil, err
	}
	young := make([]bool, len(tform))
	for i, t := range tform {
		young[i] = t > now-opt.PreTime
	}
	youngStars := diskStars.Select(young)

	if diskGas.Len() == 0 || youngStars.Len() == 0 {
		return nil, fmt.Errorf(
			"%d disk gas and %d young star particles: %w",
			diskGas.Len(), youngStars.Len(), ErrNoData,
		)
	}

	gasSigma, err := surfaceDensities(diskGas, bins, opt.RMax)
	if err != nil {
		return nil, err
	}
	starSigma, err := surfaceDensities(youngStars, bins, opt.RMax)
	if err != nil {
		return nil, err
	}

	toPc2, err := units.MsolKpc2.Convert(units.MsolPc2)
	if err != nil {
		return nil, err
	}
	// Star surface density over the formation window is a star-formation
	// rate density: Msol/kpc^2 per PreTime Myr -> Msol/yr/kpc^2.
	window, err := units.Quantity{
		Value: opt.PreTime, Unit: units.Myr,
	}.In(units.Gyr)
	if err != nil {
		return nil, err
	}
	toPerYr, err := units.MsolGyrKpc2.Convert(units.MsolYrKpc2)
	if err != nil {
		return nil, err
	}
	perYr := toPerYr / window

	data := &SchmidtData{}
	for i := range gasSigma {
		if gasSigma[i] == 0 || starSigma[i] == 0 {
			continue
		}
		data.GasSigma = append(data.GasSigma, gasSigma[i]*toPc2)
		data.SFRSigma = append(data.SFRSigma, starSigma[i]*perYr)
	}
	if len(data.GasSigma) == 0 {
		return nil, fmt.Errorf("no bins with both gas and young stars: %w",
			ErrNoData)
	}

	minGas, maxGas := data.GasSigma[0], data.GasSigma[0]
	for _, x := range data.GasSigma {
		if x < minGas {
			minGas = x
		}
		if x > maxGas {
			maxGas = x
		}
	}
	data.KennicuttX = analyze.Logspace(
		math.Log10(minGas), math.Log10(maxGas), 100,
	)
	data.KennicuttY = make([]float64, len(data.KennicuttX))
	for i, x := range data.KennicuttX {
		data.KennicuttY[i] = Kennicutt98(x)
	}
	data.BigielX = analyze.Logspace(1, 2, 10)
	data.BigielY = make([]float64, len(data.BigielX))
	for i, x := range data.BigielX {
		data.BigielY[i] = Bigiel07(x)
	}

	plt.Figure()
	plt.Plot(data.GasSigma, data.SFRSigma, style)
	plt.Plot(data.KennicuttX, data.KennicuttY,
		plt.Label("Kennicutt (1998)"))
	plt.Plot(data.BigielX, data.BigielY, "--",
		plt.Label("Bigiel et al (2007)"))
	plt.XScale("log")
	plt.YScale("log")
	plt.XLabel(`$\Sigma_{gas}$ [M$_\odot$ pc$^{-2}$]`)
	plt.YLabel(`$\Sigma_{SFR}$ [M$_\odot$ yr$^{-1}$ kpc$^{-2}$]`)
	plt.Legend()
	if opt.File != "" {
		plt.SaveFig(opt.File)
	}

	return data, nil
}

func surfaceDensities(
	f *snapshot.Family, bins int, rMax float64,
) ([]float64, error) {
	rs, err := snapshot.CylindricalRadii(f)
	if err != nil {
		return nil, err
	}
	ms, err := f.FieldIn("mass", units.Msol)
	if err != nil {
		return nil, err
	}
	_, sigmas := analyze.SurfaceProfile(rs, ms, bins, rMax)
	return sigmas, nil
}
