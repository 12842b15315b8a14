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

import "math"

// SurfaceFlameSeries is the fixed flame the surface fuel bed sustains,
// computed once from the surface fuel and weather and held constant for
// the life of a run. It seeds the first stratum's incident flames and the
// initial pre-heating flame window [0, FlameResidenceTime).
type SurfaceFlameSeries struct {
	Flame              Flame
	FlameResidenceTime float64
}

// surfaceLengthCoefficient is the Byram-style fireline-intensity-to-flame-
// length proportionality constant: intensity scales with fuel load and
// dryness and is boosted by wind, and flame length scales with the square
// root of intensity.
const (
	surfaceLengthCoefficient = 0.45
	surfaceResidenceScale    = 300 // seconds per metre of mean fuel diameter
)

// ComputeSurfaceFlameSeries derives the fixed surface flame series from the
// surface fuel bed and weather.
func ComputeSurfaceFlameSeries(surface SurfaceFuelParams, weather Weather, settings Settings) SurfaceFlameSeries {
	dryness := maxFloat(0, 1-surface.DeadFuelMoisture)
	intensity := surface.FuelLoad * dryness * (1 + weather.WindSpeed/5)
	length := surfaceLengthCoefficient * math.Sqrt(maxFloat(intensity, 0))
	angle := windEffectFlameAngle(length, weather.WindSpeed, surface.Slope)
	depth := maxFloat(surface.MeanFuelDiameter*10, epsilon)
	deltaT := settings.MainFlameDeltaTemperature * dryness
	residence := maxFloat(surface.MeanFuelDiameter*surfaceResidenceScale, settings.ComputationTimeInterval)

	flame := NewFlame(length, angle, NewCoord(0, 0), depth, deltaT)
	return SurfaceFlameSeries{Flame: flame, FlameResidenceTime: residence}
}
