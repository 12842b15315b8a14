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

// Package wind models wind speed attenuation at a given height inside a
// vertically layered plant community, in the Cionco (1978) style: a
// reference wind observed above the canopy is exponentially attenuated,
// layer by layer, descending through each stratum's leaf area index.
package wind

import "math"

// extinctionCoefficient is Cionco's canopy wind-extinction coefficient: the
// rate at which wind speed decays per unit leaf area index traversed. 0.5
// is a moderate-density value within the range the forestry literature
// reports (roughly 0.2 for open woodland to 3+ for dense closed canopy).
const extinctionCoefficient = 0.5

// Layer is one vegetation stratum's vertical extent and leaf area index, as
// seen by the wind model.
type Layer struct {
	Top, Bottom   float64
	LeafAreaIndex float64
	IsCanopy      bool
}

// SpeedAtHeight returns the wind speed at height h, given the reference
// wind speed observed above all vegetation, and the vegetation layers in
// any order (each layer whose top lies above h multiplies the speed by its
// own attenuation factor). When includeCanopy is false, layers marked
// IsCanopy contribute no attenuation — used by the engine's second run to
// model wind as if the canopy were transparent.
func SpeedAtHeight(h, referenceWind float64, layers []Layer, includeCanopy bool) float64 {
	speed := referenceWind
	for _, l := range layers {
		if l.IsCanopy && !includeCanopy {
			continue
		}
		depth := l.Top - l.Bottom
		if depth <= 0 {
			continue
		}
		if h >= l.Top {
			continue
		}
		// The fraction of this layer's depth that lies above h is fully
		// traversed by wind descending to h; below the layer's bottom the
		// full depth has been traversed.
		traversed := math.Min(depth, l.Top-math.Max(h, l.Bottom))
		frac := traversed / depth
		speed *= math.Exp(-extinctionCoefficient * l.LeafAreaIndex * frac)
	}
	return speed
}
