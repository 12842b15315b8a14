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

// StratumOutcome records one stratum's plant-run and (if it occurred)
// stratum-run ignition paths and aggregated flame series.
type StratumOutcome struct {
	Stratum       Stratum
	PlantPaths    []IgnitionPath
	PlantFlames   FlameSeries
	StratumPaths  []IgnitionPath
	StratumFlames FlameSeries
}

// HasIgnition reports whether either run produced a flame series.
func (o StratumOutcome) HasIgnition() bool {
	return !o.PlantFlames.IsEmpty() || !o.StratumFlames.IsEmpty()
}

// LargestFlameSeries returns whichever of the plant and stratum flame
// series wins under better(a, b) (true if a should be preferred over b),
// skipping whichever side is empty. It returns the empty series if neither
// run ignited.
func (o StratumOutcome) LargestFlameSeries(better func(a, b FlameSeries) bool) FlameSeries {
	switch {
	case o.StratumFlames.IsEmpty():
		return o.PlantFlames
	case o.PlantFlames.IsEmpty():
		return o.StratumFlames
	case better(o.StratumFlames, o.PlantFlames):
		return o.StratumFlames
	default:
		return o.PlantFlames
	}
}
