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

// Settings bundles the model constants that would otherwise be scattered
// package-level `const`s. Keeping them in one record, passed explicitly
// through Run, avoids any global mutable state while still letting callers
// override them (e.g. for sensitivity testing) without touching the
// algorithm itself.
type Settings struct {
	// ComputationTimeInterval is ΔT, the simulation time step, in seconds.
	ComputationTimeInterval float64

	// NumPenetrationSteps is the number of equal subdivisions of a
	// candidate ignition path tested per time step.
	NumPenetrationSteps int

	// MaxIgnitionTimeSteps bounds the number of time steps simulated
	// after the first ignition occurs.
	MaxIgnitionTimeSteps int

	// StratumBigCrownWidth is the width of the artificial rectangular
	// crown used for a stratum run.
	StratumBigCrownWidth float64

	// ReducedCanopyFlameResidenceTime replaces the species flame duration
	// when computing segment look-back distance for canopy points beyond
	// the canopy heating distance.
	ReducedCanopyFlameResidenceTime float64

	// GrassIDTReduction multiplies ignitionDelayTime for grass species.
	GrassIDTReduction float64

	// GrassFlameDeltaTemperature is the plant-flame ΔT used for grass
	// species' emitted flames.
	GrassFlameDeltaTemperature float64

	// MainFlameDeltaTemperature is the plant-flame ΔT used for
	// non-grass species' emitted flames.
	MainFlameDeltaTemperature float64

	// MinTempForCanopyHeating is the plume temperature threshold a
	// non-canopy flame series must meet at the lower canopy edge for its
	// x position to count toward the canopy heating distance.
	MinTempForCanopyHeating float64
}

// DefaultSettings returns the constants used by a standard run: ΔT = 1s,
// 10 penetration steps, 20 post-ignition time steps.
func DefaultSettings() Settings {
	return Settings{
		ComputationTimeInterval:         1.0,
		NumPenetrationSteps:             10,
		MaxIgnitionTimeSteps:            20,
		StratumBigCrownWidth:            200,
		ReducedCanopyFlameResidenceTime: 4,
		GrassIDTReduction:               0.0001,
		GrassFlameDeltaTemperature:      700,
		MainFlameDeltaTemperature:       900,
		MinTempForCanopyHeating:         100,
	}
}
