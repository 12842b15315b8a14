/*
Copyright © 2017 the frame authors.
This file is part of frame.

frame is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

frame is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with frame.  If not, see <http://www.gnu.org/licenses/>.
*/

package frame

// StratumLevel is a vegetation layer, totally ordered low to high.
type StratumLevel int

const (
	NearSurface StratumLevel = iota
	Elevated
	MidStorey
	Canopy
)

func (l StratumLevel) String() string {
	switch l {
	case NearSurface:
		return "near surface"
	case Elevated:
		return "elevated"
	case MidStorey:
		return "midstorey"
	case Canopy:
		return "canopy"
	default:
		return "unknown"
	}
}

// SpeciesComponent pairs a Species with its weight within a Stratum's
// composition: as supplied to NewStratum, or normalized once held in a
// Stratum's Components.
type SpeciesComponent struct {
	Species Species
	Weight  float64
}

// Stratum is one vegetation layer: a weighted composition of species plus
// the plant spacing that governs how their crowns interact.
type Stratum struct {
	Level        StratumLevel
	Components   []SpeciesComponent // weights normalized to sum to 1
	PlantSep     float64

	averageWidth, averageTop, averageBottom, averageMidHeight float64
}

// NewStratum validates and constructs a Stratum, normalizing component
// weights to sum to 1 and precomputing the weighted-average crown
// geometry.
func NewStratum(level StratumLevel, components []SpeciesComponent, plantSep float64) (Stratum, error) {
	if len(components) == 0 {
		return Stratum{}, invalidInput("Stratum", "at least one species component is required")
	}
	if plantSep < 0 {
		return Stratum{}, invalidInput("Stratum", "plant separation must be non-negative, got %v", plantSep)
	}
	var total float64
	for _, c := range components {
		if c.Weight <= 0 {
			return Stratum{}, invalidInput("Stratum", "species component weights must be positive")
		}
		total += c.Weight
	}
	normalized := make([]SpeciesComponent, len(components))
	var width, top, bottom, mid float64
	for i, c := range components {
		w := c.Weight / total
		normalized[i] = SpeciesComponent{Species: c.Species, Weight: w}
		crown := c.Species.Crown()
		width += w * crown.Width()
		top += w * crown.Top()
		bottom += w * crown.Bottom()
		mid += w * (crown.Top() + crown.Bottom()) / 2
	}
	return Stratum{
		Level:            level,
		Components:       normalized,
		PlantSep:         plantSep,
		averageWidth:     width,
		averageTop:       top,
		averageBottom:    bottom,
		averageMidHeight: mid,
	}, nil
}

func (s Stratum) AverageWidth() float64     { return s.averageWidth }
func (s Stratum) AverageTop() float64       { return s.averageTop }
func (s Stratum) AverageBottom() float64    { return s.averageBottom }
func (s Stratum) AverageMidHeight() float64 { return s.averageMidHeight }

// ModelPlantSep is max(PlantSep, AverageWidth): the spacing used for
// canopy-cover and stratum-run geometry.
func (s Stratum) ModelPlantSep() float64 {
	return maxFloat(s.PlantSep, s.averageWidth)
}

// Cover is the fractional crown cover implied by plant spacing and width.
func (s Stratum) Cover() float64 {
	m := s.ModelPlantSep()
	if almostZero(m) {
		return 0
	}
	r := s.averageWidth / m
	return r * r
}

// LeafAreaIndex is cover times the weighted sum of species leaf-area
// indices.
func (s Stratum) LeafAreaIndex() float64 {
	var sum float64
	for _, c := range s.Components {
		sum += c.Weight * c.Species.LeafAreaIndex()
	}
	return s.Cover() * sum
}
