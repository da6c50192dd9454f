package halo

import (
	"errors"
	"fmt"
	"math"

	"github.com/phil-mansfield/galplot/units"
)

var ErrNoStars = errors.New("halo contains no stars")

// Bands lists the Johnson photometric bands that magnitudes can be computed
// in. A halo's stars carry one per-star magnitude field per available band,
// named "<band>_mag".
var Bands = []string{"U", "B", "V", "R", "I", "J", "H", "K"}

func ValidBand(band string) bool {
	for _, b := range Bands {
		if b == band {
			return true
		}
	}
	return false
}

// Mag returns the total absolute magnitude of the halo's stars in the given
// band by summing the per-star luminosities. A halo without star particles
// returns ErrNoStars.
func Mag(h *Halo, band string) (float64, error) {
	if !ValidBand(band) {
		return 0, fmt.Errorf("unknown photometric band '%s'", band)
	}
	if h.Star == nil || h.Star.Len() == 0 {
		return 0, ErrNoStars
	}

	mags, err := h.Star.FieldIn(band+"_mag", units.None)
	if err != nil {
		return 0, err
	}

	lum := 0.0
	for _, m := range mags {
		lum += math.Pow(10, -0.4*m)
	}
	return -2.5 * math.Log10(lum), nil
}
