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
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FlameSeriesEntry is one time step of an aggregated flame series: the
// composition-weighted mean length, depth ignited, origin and temperature
// increment across every species that has a segment at that time step.
// Angle is not carried here — it depends on the wind speed at the point of
// use and is attached by the caller (windEffectFlameAngle).
type FlameSeriesEntry struct {
	TimeStep                      int
	Length, DepthIgnited          float64
	Origin                        Coord
	DeltaTemperature              float64
}

// toFlame converts an entry into a Flame, given the wind speed and slope to
// derive its angle.
func (e FlameSeriesEntry) toFlame(wind, slope float64) Flame {
	angle := windEffectFlameAngle(e.Length, wind, slope)
	return NewFlame(e.Length, angle, e.Origin, e.DepthIgnited, e.DeltaTemperature)
}

// FlameSeries is the time-indexed output of WeightedFlameAttributes (or, in
// the stratum orchestrator, of combining such series further).
type FlameSeries struct {
	Entries            []FlameSeriesEntry
	IgnitionTime       int
	TimeToLongestFlame int
}

// IsEmpty reports whether the series has no entries (no species ignited).
func (fs FlameSeries) IsEmpty() bool { return len(fs.Entries) == 0 }

// MaxFlameLength returns the longest entry's length, or 0 if empty.
func (fs FlameSeries) MaxFlameLength() float64 {
	var m float64
	for _, e := range fs.Entries {
		if e.Length > m {
			m = e.Length
		}
	}
	return m
}

// EntryAt returns the entry recorded at the given time step, if any.
func (fs FlameSeries) EntryAt(t int) (FlameSeriesEntry, bool) {
	for _, e := range fs.Entries {
		if e.TimeStep == t {
			return e, true
		}
	}
	return FlameSeriesEntry{}, false
}

// LastEntry returns the series' final (highest time step) entry, if any.
func (fs FlameSeries) LastEntry() (FlameSeriesEntry, bool) {
	if len(fs.Entries) == 0 {
		return FlameSeriesEntry{}, false
	}
	return fs.Entries[len(fs.Entries)-1], true
}

// byMaxFlameLength is the default largestFlameSeries comparator: greater
// maxFlameLength wins.
func byMaxFlameLength(a, b FlameSeries) bool {
	return a.MaxFlameLength() > b.MaxFlameLength()
}

// pathWeight pairs a species' best ignition path with its stratum
// composition weight (already normalized by NewStratum) and its species
// value, for deriving the grass/non-grass ΔT of its contribution.
type pathWeight struct {
	Path    IgnitionPath
	Weight  float64
	Species Species
}

// WeightedFlameAttributes aggregates the best per-species ignition paths in
// a stratum into a single time-indexed FlameSeries, weighting each
// species' contribution at each time step by its stratum composition
// weight. An empty input (or one where no species ignited) yields the
// empty series.
func WeightedFlameAttributes(paths []pathWeight, level StratumLevel, settings Settings) FlameSeries {
	if len(paths) == 0 {
		return FlameSeries{}
	}

	timeSteps := map[int]bool{}
	ignitionTime := 0
	for _, pw := range paths {
		if !pw.Path.HasIgnition() {
			continue
		}
		if ignitionTime == 0 || pw.Path.IgnitionTime() < ignitionTime {
			ignitionTime = pw.Path.IgnitionTime()
		}
		for _, seg := range pw.Path.Segments {
			timeSteps[seg.TimeStep] = true
		}
	}
	if len(timeSteps) == 0 {
		return FlameSeries{}
	}

	ordered := make([]int, 0, len(timeSteps))
	for t := range timeSteps {
		ordered = append(ordered, t)
	}
	sort.Ints(ordered)

	var entries []FlameSeriesEntry
	for _, t := range ordered {
		var weights, lengths, depths, xs, ys, deltaTs []float64
		for _, pw := range paths {
			seg, ok := segmentAtTime(pw.Path, t)
			if !ok {
				continue
			}
			segLen := seg.Length()
			sdeltaT := settings.MainFlameDeltaTemperature
			if pw.Species.isGrass(level) {
				sdeltaT = settings.GrassFlameDeltaTemperature
			}
			weights = append(weights, pw.Weight)
			lengths = append(lengths, pw.Species.FlameLength(segLen))
			depths = append(depths, segLen)
			xs = append(xs, seg.Start.X)
			ys = append(ys, seg.Start.Y)
			deltaTs = append(deltaTs, sdeltaT)
		}
		var totalWeight float64
		for _, w := range weights {
			totalWeight += w
		}
		if almostZero(totalWeight) {
			continue
		}
		entries = append(entries, FlameSeriesEntry{
			TimeStep:         t,
			Length:           stat.Mean(lengths, weights),
			DepthIgnited:     stat.Mean(depths, weights),
			Origin:           NewCoord(stat.Mean(xs, weights), stat.Mean(ys, weights)),
			DeltaTemperature: stat.Mean(deltaTs, weights),
		})
	}
	if len(entries) == 0 {
		return FlameSeries{}
	}

	longestIdx := 0
	for i, e := range entries {
		if e.Length > entries[longestIdx].Length {
			longestIdx = i
		}
	}
	return FlameSeries{
		Entries:            entries,
		IgnitionTime:       ignitionTime,
		TimeToLongestFlame: entries[longestIdx].TimeStep - ignitionTime,
	}
}

// segmentAtTime returns the segment of p recorded at exactly time step t.
func segmentAtTime(p IgnitionPath, t int) (IgnitedSegment, bool) {
	for _, s := range p.Segments {
		if s.TimeStep == t {
			return s, true
		}
	}
	return IgnitedSegment{}, false
}
