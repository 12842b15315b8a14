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

import "strings"

// StratumOverlapType records whether two strata's crowns are taken to
// physically overlap.
type StratumOverlapType int

const (
	// Undefined means the relationship is auto-decided geometrically.
	Undefined StratumOverlapType = iota
	Overlapping
	NotOverlapping
)

// String returns the normalized, lowercase, space/hyphen-free form that
// ParseStratumOverlapType accepts back.
func (t StratumOverlapType) String() string {
	switch t {
	case Overlapping:
		return "overlapped"
	case NotOverlapping:
		return "notoverlapped"
	case Undefined:
		return "automatic"
	default:
		return "unknown"
	}
}

func normalizeOverlapName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// ParseStratumOverlapType parses an "overlapping = ..., kind" parameter
// value. Matching is case-insensitive and ignores whitespace and hyphens.
func ParseStratumOverlapType(s string) (StratumOverlapType, error) {
	switch normalizeOverlapName(s) {
	case "overlapped":
		return Overlapping, nil
	case "notoverlapped":
		return NotOverlapping, nil
	case "automatic":
		return Undefined, nil
	default:
		return 0, &InvalidOverlapTypeError{Value: s}
	}
}

// OverlapKey identifies an (lower, upper) stratum level pair.
type OverlapKey struct {
	Lower, Upper StratumLevel
}

// Weather carries the conditions that drive surface and canopy behavior.
// WindSpeed is stored in m/s; BuildSite (the factory in package frameutil)
// performs the one km/h -> m/s conversion at ingest.
type Weather struct {
	AirTemperature float64
	WindSpeed      float64
}

// SurfaceFuelParams describes the surface fuel bed and terrain.
type SurfaceFuelParams struct {
	Slope               float64 // radians
	MeanFuelDiameter    float64 // m
	MeanFinenessLeaves  float64 // m
	FuelLoad            float64 // as given in the parameter file; no unit conversion is applied
	DeadFuelMoisture    float64 // fraction
}

// Site is a vegetation description: a set of strata ordered by level, the
// overlap relationships between them, surface fuel and weather, and the
// fire-line length.
type Site struct {
	Strata        []Stratum // ordered ascending by Level
	Overlaps      map[OverlapKey]StratumOverlapType
	Surface       SurfaceFuelParams
	Weather       Weather
	FireLineLength float64
}

// NewSite validates and constructs a Site, sorting strata by level.
func NewSite(strata []Stratum, overlaps map[OverlapKey]StratumOverlapType, surface SurfaceFuelParams, weather Weather, fireLineLength float64) (Site, error) {
	if fireLineLength <= 0 {
		return Site{}, invalidInput("Site", "fire-line length must be positive, got %v", fireLineLength)
	}
	if surface.FuelLoad < 0 || surface.DeadFuelMoisture < 0 {
		return Site{}, invalidInput("Site", "surface fuel load and moisture must be non-negative")
	}
	cp := make([]Stratum, len(strata))
	copy(cp, strata)
	for i := 1; i < len(cp); i++ {
		for j := i; j > 0 && cp[j-1].Level > cp[j].Level; j-- {
			cp[j-1], cp[j] = cp[j], cp[j-1]
		}
	}
	ov := make(map[OverlapKey]StratumOverlapType, len(overlaps))
	for k, v := range overlaps {
		ov[k] = v
	}
	return Site{Strata: cp, Overlaps: ov, Surface: surface, Weather: weather, FireLineLength: fireLineLength}, nil
}

// Overlap returns the overlap relation between lower and upper, resolving
// Undefined (the default when no explicit entry exists) by a geometric
// test: the strata overlap iff the upper stratum's crown bottom is below
// the lower stratum's crown top.
func (s Site) Overlap(lower, upper Stratum) StratumOverlapType {
	if t, ok := s.Overlaps[OverlapKey{lower.Level, upper.Level}]; ok && t != Undefined {
		return t
	}
	if upper.AverageBottom() < lower.AverageTop() {
		return Overlapping
	}
	return NotOverlapping
}

// Connected reports whether fire in lower can propagate into upper: they
// must overlap.
func (s Site) Connected(lower, upper Stratum) bool {
	return s.Overlap(lower, upper) == Overlapping
}

// StratumAt returns the stratum at the given level, if the site has one.
func (s Site) StratumAt(level StratumLevel) (Stratum, bool) {
	for _, st := range s.Strata {
		if st.Level == level {
			return st, true
		}
	}
	return Stratum{}, false
}
