/*Package halo represents halos from a halo-finder catalogue: each halo owns
its particle families and a small set of derived properties, and the
catalogue maps finder ids to halos. Host halos list their satellites through
Properties.Children.
*/
package halo

import (
	"github.com/phil-mansfield/galplot/snapshot"
	"github.com/phil-mansfield/galplot/units"
)

// Properties holds the catalogue-level quantities galplot needs. Children
// is the list of satellite ids of a host halo, in catalogue order.
type Properties struct {
	Children []int
	Mass     units.Quantity
	Time     units.Quantity
}

type Halo struct {
	Star, Gas  *snapshot.Family
	Properties Properties
}

// Catalogue maps halo-finder ids to halos.
type Catalogue struct {
	halos map[int]*Halo
}

func NewCatalogue() *Catalogue {
	return &Catalogue{halos: map[int]*Halo{}}
}

func (c *Catalogue) Add(id int, h *Halo) { c.halos[id] = h }

func (c *Catalogue) Contains(id int) bool {
	_, ok := c.halos[id]
	return ok
}

// Get returns the halo with the given id, or nil if the catalogue does not
// contain it.
func (c *Catalogue) Get(id int) *Halo { return c.halos[id] }

func (c *Catalogue) Len() int { return len(c.halos) }
