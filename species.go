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

// LeafForm is the cross-sectional shape of a species' leaves.
type LeafForm int

const (
	Round LeafForm = iota
	Flat
	Dendritic
)

func (f LeafForm) String() string {
	switch f {
	case Round:
		return "round"
	case Flat:
		return "flat"
	case Dendritic:
		return "dendritic"
	default:
		return "unknown"
	}
}

// SpeciesParams are the raw construction inputs for a Species. At least one
// of IgnitionTemperature or SilicaFreeAsh must be set; when both are,
// IgnitionTemperature is used. IgnitionTemperatureSet / SilicaFreeAshSet
// say which was supplied (an unset field left at its zero value is not
// itself an error).
type SpeciesParams struct {
	Name string
	Crown CrownPoly

	LiveLeafMoisture, DeadLeafMoisture float64
	PropDead                           float64
	LeafForm                           LeafForm
	LeafThickness, LeafWidth           float64
	LeafLength, LeafSeparation         float64
	StemOrder                          float64
	ClumpDiameter, ClumpSeparation     float64

	IgnitionTemperature    float64
	IgnitionTemperatureSet bool
	SilicaFreeAsh          float64
	SilicaFreeAshSet       bool
}

// Species is an immutable, validated plant species record together with
// its derived leaf, clump and canopy quantities.
type Species struct {
	p SpeciesParams

	propLive            float64
	leafArea            float64
	leafMoisture        float64
	ignitionTemperature float64
	leafFlameLength     float64
	leavesPerClump      float64
	leafAreaIndex       float64
}

// NewSpecies validates p and derives the species' leaf/clump/canopy
// quantities.
func NewSpecies(p SpeciesParams) (Species, error) {
	if p.Name == "" {
		return Species{}, invalidInput("Species", "name must not be blank")
	}
	if p.LiveLeafMoisture < 0 || p.DeadLeafMoisture < 0 {
		return Species{}, invalidInput("Species", "leaf moistures must be non-negative")
	}
	if p.PropDead < 0 || p.PropDead > 1 {
		return Species{}, invalidInput("Species", "proportion dead must be in [0,1], got %v", p.PropDead)
	}
	if p.LeafThickness < 0 || p.LeafWidth < 0 || p.LeafLength < 0 || p.LeafSeparation < 0 {
		return Species{}, invalidInput("Species", "leaf dimensions must be non-negative")
	}
	if p.ClumpDiameter < 0 || p.ClumpSeparation < 0 {
		return Species{}, invalidInput("Species", "clump dimensions must be non-negative")
	}
	if !p.IgnitionTemperatureSet && !p.SilicaFreeAshSet {
		return Species{}, invalidInput("Species", "one of ignition temperature or silica-free-ash proportion is required")
	}
	if p.SilicaFreeAshSet && (p.SilicaFreeAsh <= 0 || p.SilicaFreeAsh > 1) {
		return Species{}, invalidInput("Species", "silica-free-ash proportion must be in (0,1], got %v", p.SilicaFreeAsh)
	}

	s := Species{p: p}
	s.propLive = 1 - p.PropDead
	s.leafArea = p.LeafWidth * p.LeafLength / 2
	s.leafMoisture = s.propLive*p.LiveLeafMoisture + p.PropDead*p.DeadLeafMoisture

	if p.IgnitionTemperatureSet {
		s.ignitionTemperature = p.IgnitionTemperature
	} else {
		pct := 100 * p.SilicaFreeAsh
		s.ignitionTemperature = 354 - 13.9*math.Log(pct) - 2.91*math.Log(pct)*math.Log(pct)
	}

	s.leafFlameLength = leafFlameLengthForMoisture(s.leafMoisture)
	s.leavesPerClump = 0.88 * math.Pow(p.ClumpDiameter*p.StemOrder/nonZero(p.ClumpSeparation), 1.18)
	s.leafAreaIndex = s.leafArea * s.leavesPerClump / squared(p.ClumpDiameter+p.ClumpSeparation)

	return s, nil
}

func nonZero(v float64) float64 {
	if almostZero(v) {
		return epsilon
	}
	return v
}

func squared(v float64) float64 { return v * v }

// leafFlameLengthForMoisture is a piecewise-decreasing approximation of the
// wetter-burns-shorter relationship between leaf moisture and the flame
// length a single leaf sustains; see DESIGN.md for the breakpoints chosen.
func leafFlameLengthForMoisture(m float64) float64 {
	switch {
	case m < 0.5:
		return 0.5
	case m < 1.0:
		return 0.4
	case m < 1.5:
		return 0.3
	default:
		return 0.2
	}
}

func (s Species) Name() string      { return s.p.Name }
func (s Species) Crown() CrownPoly  { return s.p.Crown }
func (s Species) PropLive() float64 { return s.propLive }
func (s Species) LeafArea() float64 { return s.leafArea }
func (s Species) LeafMoisture() float64 { return s.leafMoisture }
func (s Species) IgnitionTemperature() float64 { return s.ignitionTemperature }
func (s Species) LeavesPerClump() float64      { return s.leavesPerClump }
func (s Species) LeafAreaIndex() float64       { return s.leafAreaIndex }
func (s Species) ClumpDiameter() float64       { return s.p.ClumpDiameter }
func (s Species) ClumpSeparation() float64     { return s.p.ClumpSeparation }
func (s Species) LeafThickness() float64       { return s.p.LeafThickness }

// FlameDuration is max(1.37*w*t*1e6 + 1.61*M - 0.027, ΔT), where w and t
// are leaf width and thickness (m) and M is leaf moisture (as computed by
// LeafMoisture).
func (s Species) FlameDuration(deltaT float64) float64 {
	v := 1.37*s.p.LeafWidth*s.p.LeafThickness*1e6 + 1.61*s.leafMoisture - 0.027
	return maxFloat(v, deltaT)
}

// isGrass reports whether this species qualifies as grass at the given
// stratum level: NearSurface, more than half dead by proportion, and thin
// leaves (< 3.5e-4 m).
func (s Species) isGrass(level StratumLevel) bool {
	return level == NearSurface && s.p.PropDead > 0.5 && s.p.LeafThickness < 3.5e-4
}

// leafFactor is 4 for round leaves, 2 otherwise.
func (s Species) leafFactor() float64 {
	if s.p.LeafForm == Round {
		return 4
	}
	return 2
}

// IgnitionDelayTime returns the time (seconds) a leaf at plume temperature
// T needs to be exposed before igniting. It is strictly decreasing in T.
func (s Species) IgnitionDelayTime(t float64) float64 {
	mPrime := 100 * s.leafMoisture * s.p.LeafThickness * 1000 / s.leafFactor()
	idt := 100168.23*math.Pow(t, -2.11)*mPrime + 6018087.86*math.Pow(t, -2.39)
	return idt
}

// FlameLength implements Zylstra Eq. 5.76: the flame length sustained by
// an ignited segment of length L.
func (s Species) FlameLength(l float64) float64 {
	if almostZero(l) {
		return 0
	}
	nLeaves := s.leavesPerClump * l / (s.p.ClumpDiameter + s.p.ClumpSeparation)
	term1 := math.Pow(s.leafFlameLength*math.Pow(nLeaves, 0.4)+l, 4)
	term2 := math.Pow(l, 4)
	return maxFloat(l, math.Pow(term1+term2, 0.25))
}

// withProxyCrownAndClump returns a copy of s with its crown, clump
// diameter and clump separation replaced; used by the stratum run to
// construct an artificial "pseudo-canopy" proxy species without mutating
// the original species.
func (s Species) withProxyCrownAndClump(crown CrownPoly, clumpDiameter, clumpSeparation float64) Species {
	p := s.p
	p.Crown = crown
	p.ClumpDiameter = clumpDiameter
	p.ClumpSeparation = clumpSeparation
	p.IgnitionTemperature = s.ignitionTemperature
	p.IgnitionTemperatureSet = true
	p.SilicaFreeAshSet = false
	cp, err := NewSpecies(p)
	if err != nil {
		// All inputs were already validated when s was constructed; only
		// the crown/clump fields changed and those cannot fail validation
		// given non-negative geometry, so this is an internal invariant.
		panic(err)
	}
	return cp
}
