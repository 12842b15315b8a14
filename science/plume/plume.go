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

// Package plume models the decay of a flame's thermal plume with distance
// from its origin, in the spirit of (though not using the equations of)
// github.com/ctessum/atmos/plumerise's idealized along-axis decay from a
// line source.
package plume

import "math"

// Temperature returns the plume temperature at distance d (>= 0) from a
// flame of the given length and delta-temperature, above ambient. The
// decay is exponential in d/length: hottest at the origin (ambient+ΔT),
// asymptoting toward ambient as d grows, and never reaching it.
func Temperature(d, length, deltaTemperature, ambient float64) float64 {
	if length <= 0 {
		length = 1e-9
	}
	if d < 0 {
		d = 0
	}
	return ambient + deltaTemperature*math.Exp(-d/length)
}

// DistanceFor is the inverse of Temperature: the distance at which the
// plume reaches target, or false if target is unreachable (at or below
// ambient, where the exponential only asymptotes).
func DistanceFor(target, length, deltaTemperature, ambient float64) (float64, bool) {
	if target <= ambient {
		return 0, false
	}
	if length <= 0 {
		length = 1e-9
	}
	if target >= ambient+deltaTemperature {
		return 0, true
	}
	d := -length * math.Log((target-ambient)/deltaTemperature)
	return d, true
}
