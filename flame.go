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

import (
	"math"

	"github.com/mbedward/frame/science/plume"
)

// Flame is a single flame's geometry and thermal signature.
type Flame struct {
	Length           float64
	Angle            float64 // radians from horizontal
	Origin           Coord
	DepthIgnited     float64
	DeltaTemperature float64
}

// NewFlame constructs a Flame.
func NewFlame(length, angle float64, origin Coord, depthIgnited, deltaTemperature float64) Flame {
	return Flame{Length: length, Angle: angle, Origin: origin, DepthIgnited: depthIgnited, DeltaTemperature: deltaTemperature}
}

// Ray returns the flame's axis as a Ray from its origin.
func (f Flame) Ray() Ray {
	return NewRay(f.Origin, f.Angle)
}

// plumeTemperature returns the plume temperature at distance d from the
// flame's origin, given the ambient temperature.
func (f Flame) plumeTemperature(d, ambient float64) float64 {
	return plume.Temperature(d, f.Length, f.DeltaTemperature, ambient)
}

// distanceForTemperature is the inverse of plumeTemperature: the distance
// at which the plume reaches targetT, or false if unreachable.
func (f Flame) distanceForTemperature(targetT, ambient float64) (float64, bool) {
	return plume.DistanceFor(targetT, f.Length, f.DeltaTemperature, ambient)
}

// windEffectFlameAngle computes the angle a flame of the given length
// takes under the given wind speed and surface slope: flames stand more
// upright (closer to vertical + slope) as they lengthen, and lean further
// toward horizontal as wind increases. The angle never leans past the
// slope of the surface itself.
func windEffectFlameAngle(length, wind, slope float64) float64 {
	upright := math.Pi/2 + slope
	tilt := math.Atan2(wind, maxFloat(length, epsilon))
	angle := upright - tilt
	if angle < slope {
		angle = slope
	}
	return angle
}

// lateralMergedFlameLength adjusts a single plant's flame length for
// lateral merging with neighboring plants along a fire line of the given
// length: more plants along the line (a longer fire line relative to plant
// spacing) and denser plant packing (width close to spacing) both increase
// the effective merged length.
func lateralMergedFlameLength(length, fireLineLength, plantWidth, plantSep float64) float64 {
	if plantSep <= 0 {
		return length
	}
	n := fireLineLength / plantSep
	if n < 1 {
		n = 1
	}
	packing := plantWidth / plantSep
	merged := length * (1 + packing*math.Log(n))
	return maxFloat(length, merged)
}

// combineFlames fuses an upper and lower flame (e.g. a stratum's own flame
// and the incident flame it rides on) into the single flame that
// propagates further upward. Lengths combine in quadrature-of-quarts, the
// same quartic combination Species.FlameLength uses to fuse a leaf-scale
// and a clump-scale contribution, so that the combined length does not
// depend on which of the two flames is passed as upper.
func combineFlames(upper, lower Flame, weightedWind, slope, fireLineLength float64) Flame {
	length := math.Pow(math.Pow(upper.Length, 4)+math.Pow(lower.Length, 4), 0.25)
	depth := upper.DepthIgnited + lower.DepthIgnited
	deltaT := maxFloat(upper.DeltaTemperature, lower.DeltaTemperature)
	origin := lower.Origin
	angle := windEffectFlameAngle(length, weightedWind, slope)
	return NewFlame(length, angle, origin, depth, deltaT)
}

// PreHeatingFlame is a flame with an active time window [Start, End) and
// the stratum level at which it was produced.
type PreHeatingFlame struct {
	Flame      Flame
	Start, End float64
	Level      StratumLevel
}

// NewPreHeatingFlame constructs a PreHeatingFlame.
func NewPreHeatingFlame(f Flame, start, end float64, level StratumLevel) PreHeatingFlame {
	return PreHeatingFlame{Flame: f, Start: start, End: end, Level: level}
}

// Duration returns the effective exposure time up to preHeatingEndTime.
func (p PreHeatingFlame) Duration(preHeatingEndTime float64) float64 {
	end := minFloat(p.End, preHeatingEndTime)
	d := end - p.Start
	if d < 0 {
		return 0
	}
	return d
}

// flameTipX returns the horizontal position of the tip of a flame of the
// given length, angle-adjusted by wind and slope, that starts at startX.
// Used by the stratum-connection test; it takes its angle from
// windEffectFlameAngle, the same function plant-flame creation uses, so the
// two agree on a flame's angle.
func flameTipX(startX, flameLength, wind, slope float64) float64 {
	angle := windEffectFlameAngle(flameLength, wind, slope)
	return startX + flameLength*math.Cos(angle)
}
