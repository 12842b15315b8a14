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
	"sort"

	"github.com/mbedward/frame/science/wind"
	"github.com/sirupsen/logrus"
)

// PathModel runs one ignition-path simulation. RunIgnitionPath is the
// default; callers may substitute a test double.
type PathModel func(IgnitionPathInput) (IgnitionPath, error)

// PlantFlameModel turns a stratum's raw (composition-weighted) flame
// attributes into the plant flame series actually used for propagation,
// applying lateral merging across the fire line. DefaultPlantFlameModel is
// the default.
type PlantFlameModel func(attrs FlameSeries, fireLineLength, averageWidth, modelPlantSep float64) FlameSeries

// DefaultPlantFlameModel applies lateralMergedFlameLength to every entry's
// length, leaving depth, origin and temperature increment untouched.
func DefaultPlantFlameModel(attrs FlameSeries, fireLineLength, averageWidth, modelPlantSep float64) FlameSeries {
	if attrs.IsEmpty() {
		return attrs
	}
	entries := make([]FlameSeriesEntry, len(attrs.Entries))
	for i, e := range attrs.Entries {
		e.Length = lateralMergedFlameLength(e.Length, fireLineLength, averageWidth, modelPlantSep)
		entries[i] = e
	}
	return FlameSeries{Entries: entries, IgnitionTime: attrs.IgnitionTime, TimeToLongestFlame: attrs.TimeToLongestFlame}
}

// incidentFlameSeriesLength bounds how many time steps of incident flames
// a stratum is handed: generous enough to cover any post-ignition window a
// lower run could have produced.
func incidentFlameSeriesLength(settings Settings) int {
	return settings.MaxIgnitionTimeSteps + settings.NumPenetrationSteps + 5
}

// Run is the engine's single entry point: given a site, fire-line length
// and the two injectable strategies, it runs the stratum orchestrator
// bottom to top and, if the canopy ignites, a second run with
// includeCanopy=false.
func Run(site Site, fireLineLength float64, pathModel PathModel, plantFlameModel PlantFlameModel, settings Settings) (FireModelResult, error) {
	log := logrus.WithFields(logrus.Fields{"strata": len(site.Strata), "fireLineLength": fireLineLength})
	log.Info("starting run")

	run1, err := runOnce(site, fireLineLength, pathModel, plantFlameModel, settings, true)
	if err != nil {
		log.WithError(err).Error("run failed")
		return FireModelResult{}, err
	}
	result := FireModelResult{Run1: run1}
	if run1.HasCanopyFlames() {
		log.Info("canopy ignited, starting second run with includeCanopy=false")
		run2, err := runOnce(site, fireLineLength, pathModel, plantFlameModel, settings, false)
		if err != nil {
			log.WithError(err).Error("second run failed")
			return FireModelResult{}, err
		}
		result.Run2 = run2
		result.HasSecondRun = true
	}
	log.Info("run complete")
	return result, nil
}

// connectedSeries pairs a lower stratum's winning flame series with the
// wind speed under which it was generated, for flame-weighted combination.
type connectedSeries struct {
	Series FlameSeries
	Wind   float64
}

func buildWindLayers(site Site) []wind.Layer {
	layers := make([]wind.Layer, len(site.Strata))
	for i, s := range site.Strata {
		layers[i] = wind.Layer{
			Top:           s.AverageTop(),
			Bottom:        s.AverageBottom(),
			LeafAreaIndex: s.LeafAreaIndex(),
			IsCanopy:      s.Level == Canopy,
		}
	}
	return layers
}

// runOnce performs the full bottom-to-top stratum pass.
func runOnce(site Site, fireLineLength float64, pathModel PathModel, plantFlameModel PlantFlameModel, settings Settings, includeCanopy bool) (FireModelRunResult, error) {
	surfaceSeries := ComputeSurfaceFlameSeries(site.Surface, site.Weather, settings)
	preHeatingFlames := []PreHeatingFlame{NewPreHeatingFlame(surfaceSeries.Flame, 0, surfaceSeries.FlameResidenceTime, NearSurface)}
	preHeatingEndTime := -1.0

	windLayers := buildWindLayers(site)
	windByLevel := map[StratumLevel]float64{}
	seriesByLevel := map[StratumLevel]connectedSeries{}
	flameConnections := map[StratumLevel]bool{}

	var outcomes []StratumOutcome

	for _, s := range site.Strata {
		midWind := wind.SpeedAtHeight(s.AverageMidHeight(), site.Weather.WindSpeed, windLayers, includeCanopy)
		windByLevel[s.Level] = midWind

		connected := connectedLowerSeries(site, s, seriesByLevel, flameConnections)
		incidentFlames := composeIncidentFlames(surfaceSeries, connected, site, fireLineLength, settings)

		plantPaths, err := runPlantPaths(s, site, incidentFlames, preHeatingFlames, preHeatingEndTime, midWind, settings, pathModel)
		if err != nil {
			return FireModelRunResult{}, err
		}

		anyIgnited := false
		for _, p := range plantPaths {
			if p.HasIgnition() {
				anyIgnited = true
				break
			}
		}
		if !anyIgnited {
			logrus.WithField("stratum", s.Level.String()).Debug("no species ignited")
			outcome := StratumOutcome{Stratum: s, PlantPaths: plantPaths}
			outcomes = append(outcomes, outcome)
			seriesByLevel[s.Level] = connectedSeries{Series: FlameSeries{}, Wind: midWind}
			continue
		}

		rawPlantAttrs := WeightedFlameAttributes(pairPathsWithWeights(s, plantPaths), s.Level, settings)
		plantFlames := plantFlameModel(rawPlantAttrs, fireLineLength, s.AverageWidth(), s.ModelPlantSep())

		var canopyHeatingDistance float64
		if s.Level == Canopy {
			canopyHeatingDistance = canopyHeatingDistanceFor(s, outcomes, windByLevel, site.Surface.Slope, site.Weather.AirTemperature, settings)
		}

		stratumPaths, hasStratumIgnition, err := runStratumRun(s, site, plantFlames, incidentFlames, preHeatingFlames, preHeatingEndTime, canopyHeatingDistance, midWind, settings, pathModel)
		if err != nil {
			return FireModelRunResult{}, err
		}
		var stratumFlames FlameSeries
		if hasStratumIgnition {
			stratumFlames = WeightedFlameAttributes(pairPathsWithWeights(s, stratumPaths), s.Level, settings)
		}

		outcome := StratumOutcome{Stratum: s, PlantPaths: plantPaths, PlantFlames: plantFlames, StratumPaths: stratumPaths, StratumFlames: stratumFlames}
		outcomes = append(outcomes, outcome)

		largest := outcome.LargestFlameSeries(byMaxFlameLength)
		seriesByLevel[s.Level] = connectedSeries{Series: largest, Wind: midWind}

		if !largest.IsEmpty() {
			entry, _ := largest.LastEntry()
			start := maxFloat(preHeatingEndTime, 0) + float64(largest.IgnitionTime) + float64(largest.TimeToLongestFlame)
			size := float64(len(largest.Entries))
			end := start + size*settings.ComputationTimeInterval
			flame := entry.toFlame(midWind, site.Surface.Slope)
			preHeatingFlames = append(preHeatingFlames, NewPreHeatingFlame(flame, start, end, s.Level))
			preHeatingEndTime = end
		}

		if plantTipExceedsCrown(plantPaths, midWind, site.Surface.Slope) {
			flameConnections[s.Level] = true
		}
	}

	var combinedInputs []connectedSeries
	for _, o := range outcomes {
		if o.Stratum.Level == Canopy || flameConnections[o.Stratum.Level] {
			fs := o.LargestFlameSeries(byMaxFlameLength)
			if !fs.IsEmpty() {
				combinedInputs = append(combinedInputs, connectedSeries{Series: fs, Wind: windByLevel[o.Stratum.Level]})
			}
		}
	}
	combined := combineConnectedSeries(combinedInputs, site.Surface.Slope, fireLineLength)

	result := NewFireModelRunResult(surfaceSeries, outcomes)
	result = result.WithCombinedFlames(combined)
	return result, nil
}

func pairPathsWithWeights(s Stratum, paths []IgnitionPath) []pathWeight {
	pw := make([]pathWeight, len(paths))
	for i, c := range s.Components {
		pw[i] = pathWeight{Path: paths[i], Weight: c.Weight, Species: c.Species}
	}
	return pw
}

// connectedLowerSeries returns the flame series (with the wind they were
// generated under) of every lower stratum that has ignited and is
// connected to s, either by the geometric overlap test or by a recorded
// flame connection.
func connectedLowerSeries(site Site, s Stratum, seriesByLevel map[StratumLevel]connectedSeries, flameConnections map[StratumLevel]bool) []connectedSeries {
	var out []connectedSeries
	for _, lower := range site.Strata {
		if lower.Level >= s.Level {
			continue
		}
		cs, ok := seriesByLevel[lower.Level]
		if !ok || cs.Series.IsEmpty() {
			continue
		}
		if site.Connected(lower, s) || flameConnections[lower.Level] {
			out = append(out, cs)
		}
	}
	return out
}

// windLengthPair is one already-folded contributor's own wind speed and
// resultant flame length, for flame-weighted wind averaging.
type windLengthPair struct{ Wind, Length float64 }

// flameWeightedWind averages windSpeeds weighted by flame lengths, with
// base weighted by baseLength.
func flameWeightedWind(baseWind, baseLength float64, pairs []windLengthPair) float64 {
	num := baseWind * baseLength
	den := baseLength
	for _, p := range pairs {
		num += p.Wind * p.Length
		den += p.Length
	}
	if almostZero(den) {
		return baseWind
	}
	return num / den
}

// composeIncidentFlames builds the finite per-time-step incident flame
// sequence for a stratum: the surface flame, folded with every connected
// lower stratum's flame (via combineFlames, flame-weighted wind), repeating
// each lower series' last entry once its own time steps are exhausted.
func composeIncidentFlames(surface SurfaceFlameSeries, connected []connectedSeries, site Site, fireLineLength float64, settings Settings) []Flame {
	n := incidentFlameSeriesLength(settings)
	out := make([]Flame, n)
	for t := 0; t < n; t++ {
		combined := surface.Flame
		var pairs []windLengthPair
		for _, cs := range connected {
			e, ok := cs.Series.EntryAt(t + 1)
			if !ok {
				e, ok = cs.Series.LastEntry()
			}
			if !ok {
				continue
			}
			f := e.toFlame(cs.Wind, site.Surface.Slope)
			ww := flameWeightedWind(site.Weather.WindSpeed, surface.Flame.Length, pairs)
			combined = combineFlames(f, combined, ww, site.Surface.Slope, fireLineLength)
			pairs = append(pairs, windLengthPair{cs.Wind, f.Length})
		}
		out[t] = combined
	}
	return out
}

// startPointFor returns the crown-base point at horizontal offset x,
// clamped up to the surface line when the crown base would otherwise lie
// below it.
func startPointFor(crown CrownPoly, x, slope float64) Coord {
	p := crown.pointInBase(x)
	surfaceY := x * math.Tan(slope)
	if p.Y < surfaceY {
		return NewCoord(x, surfaceY)
	}
	return p
}

// chooseBetterPath implements the per-species best-of-five selection rule,
// generalized to a pairwise reduction so it applies uniformly across all
// five candidates.
func chooseBetterPath(a, b IgnitionPath) IgnitionPath {
	switch {
	case a.HasIgnition() && !b.HasIgnition():
		return a
	case b.HasIgnition() && !a.HasIgnition():
		return b
	case a.HasIgnition() && b.HasIgnition():
		if a.MaxSegmentLength() >= b.MaxSegmentLength() {
			return a
		}
		return b
	default:
		if a.MaxDryingTemperature() >= b.MaxDryingTemperature() {
			return a
		}
		return b
	}
}

// runPlantPaths runs the plant run for every species in s, each from five
// candidate start points, and returns the best path per species.
func runPlantPaths(s Stratum, site Site, incidentFlames []Flame, preHeatingFlames []PreHeatingFlame, preHeatingEndTime, midWind float64, settings Settings, pathModel PathModel) ([]IgnitionPath, error) {
	props := []float64{-1, -0.5, 0, 0.5, 1}
	paths := make([]IgnitionPath, len(s.Components))
	for i, comp := range s.Components {
		crown := comp.Species.Crown()
		var best IgnitionPath
		for j, prop := range props {
			x := prop * crown.Width() / 2
			start := startPointFor(crown, x, site.Surface.Slope)
			in := IgnitionPathInput{
				RunType:          PlantRun,
				Site:             site,
				StratumLevel:     s.Level,
				Species:          comp.Species,
				IncidentFlames:   incidentFlames,
				PreHeatingFlames: preHeatingFlames,
				PreHeatingEndTime: preHeatingEndTime,
				StratumWindSpeed: midWind,
				InitialPoint:     start,
				Settings:         settings,
			}
			p, err := pathModel(in)
			if err != nil {
				return nil, err
			}
			if j == 0 {
				best = p
			} else {
				best = chooseBetterPath(best, p)
			}
		}
		paths[i] = best
	}
	return paths, nil
}

// runStratumRun performs the artificial wide-crown run seeded from the
// reference plant flame's intersection with a rectangular pseudo-canopy
// crown.
func runStratumRun(s Stratum, site Site, plantFlames FlameSeries, incidentFlames []Flame, preHeatingFlames []PreHeatingFlame, preHeatingEndTime, canopyHeatingDistance, midWind float64, settings Settings, pathModel PathModel) ([]IgnitionPath, bool, error) {
	if plantFlames.IsEmpty() {
		return nil, false, nil
	}
	referenceEntry := plantFlames.Entries[0]
	referenceFlame := referenceEntry.toFlame(midWind, site.Surface.Slope)

	bigCrown, err := NewCrownPoly(s.AverageBottom(), s.AverageBottom(), s.AverageTop(), s.AverageTop()+epsilon, settings.StratumBigCrownWidth)
	if err != nil {
		return nil, false, err
	}
	offset := s.ModelPlantSep() - s.AverageWidth()/2
	// bigCrown is centred on x=0, so x = offset maps to its left edge.
	shiftedRay := NewRay(NewCoord(referenceFlame.Origin.X-offset-settings.StratumBigCrownWidth/2, referenceFlame.Origin.Y), referenceFlame.Angle)
	seg, ok := bigCrown.intersection(shiftedRay)
	if !ok {
		return nil, false, nil
	}
	startPoint := seg.Start

	paths := make([]IgnitionPath, len(s.Components))
	for i, comp := range s.Components {
		proxyClumpSep := maxFloat(comp.Species.ClumpSeparation(), s.ModelPlantSep()-s.AverageWidth())
		proxy := comp.Species.withProxyCrownAndClump(bigCrown, comp.Species.Crown().Width(), proxyClumpSep)
		in := IgnitionPathInput{
			RunType:               StratumRun,
			Site:                  site,
			StratumLevel:          s.Level,
			Species:               proxy,
			IncidentFlames:        incidentFlames,
			PreHeatingFlames:      preHeatingFlames,
			PreHeatingEndTime:     preHeatingEndTime,
			CanopyHeatingDistance: canopyHeatingDistance,
			StratumWindSpeed:      midWind,
			InitialPoint:          startPoint,
			Settings:              settings,
		}
		p, err := pathModel(in)
		if err != nil {
			return nil, false, err
		}
		paths[i] = p
	}
	return paths, true, nil
}

// plantTipExceedsCrown reports whether any plant-run segment's emitted
// flame tip extends beyond the species crown's half-width.
func plantTipExceedsCrown(paths []IgnitionPath, wind, slope float64) bool {
	for _, p := range paths {
		halfWidth := p.Species.Crown().Width() / 2
		for _, seg := range p.Segments {
			flameLen := p.Species.FlameLength(seg.Length())
			if flameTipX(seg.Start.X, flameLen, wind, slope) > halfWidth {
				return true
			}
		}
	}
	return false
}

// canopyHeatingDistanceFor finds the furthest x, among non-canopy
// strata's flames projected onto the canopy's lower edge, at which the
// plume temperature still meets the canopy heating threshold.
func canopyHeatingDistanceFor(canopy Stratum, lowerOutcomes []StratumOutcome, windByLevel map[StratumLevel]float64, slope, ambient float64, settings Settings) float64 {
	edge := NewLine(NewCoord(0, canopy.AverageBottom()), slope)
	var maxX float64
	for _, o := range lowerOutcomes {
		if o.Stratum.Level == Canopy {
			continue
		}
		fs := o.LargestFlameSeries(byMaxFlameLength)
		if fs.IsEmpty() {
			continue
		}
		var longest FlameSeriesEntry
		for _, e := range fs.Entries {
			if e.Length > longest.Length {
				longest = e
			}
		}
		flame := longest.toFlame(windByLevel[o.Stratum.Level], slope)
		point, ok := edge.intersectRay(flame.Ray())
		if !ok {
			point = flame.Origin
		}
		d := distance(flame.Origin, point)
		temp := flame.plumeTemperature(d, ambient)
		if temp >= settings.MinTempForCanopyHeating && point.X > maxX {
			maxX = point.X
		}
	}
	return maxX
}

// combineConnectedSeries folds combineFlames across the flame series of
// every stratum connected to (or equal to) the canopy, producing the
// final combined flame series.
func combineConnectedSeries(inputs []connectedSeries, slope, fireLineLength float64) FlameSeries {
	if len(inputs) == 0 {
		return FlameSeries{}
	}
	timeSet := map[int]bool{}
	ignitionTime := 0
	for _, cs := range inputs {
		if ignitionTime == 0 || cs.Series.IgnitionTime < ignitionTime {
			ignitionTime = cs.Series.IgnitionTime
		}
		for _, e := range cs.Series.Entries {
			timeSet[e.TimeStep] = true
		}
	}
	ordered := make([]int, 0, len(timeSet))
	for t := range timeSet {
		ordered = append(ordered, t)
	}
	sort.Ints(ordered)

	var entries []FlameSeriesEntry
	for _, t := range ordered {
		var combined *Flame
		var pairs []windLengthPair
		for _, cs := range inputs {
			e, ok := cs.Series.EntryAt(t)
			if !ok {
				continue
			}
			f := e.toFlame(cs.Wind, slope)
			if combined == nil {
				combined = &f
				pairs = append(pairs, windLengthPair{cs.Wind, f.Length})
				continue
			}
			ww := flameWeightedWind(cs.Wind, f.Length, pairs)
			merged := combineFlames(f, *combined, ww, slope, fireLineLength)
			combined = &merged
			pairs = append(pairs, windLengthPair{cs.Wind, f.Length})
		}
		if combined == nil {
			continue
		}
		entries = append(entries, FlameSeriesEntry{
			TimeStep:         t,
			Length:           combined.Length,
			DepthIgnited:     combined.DepthIgnited,
			Origin:           combined.Origin,
			DeltaTemperature: combined.DeltaTemperature,
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
	return FlameSeries{Entries: entries, IgnitionTime: ignitionTime, TimeToLongestFlame: entries[longestIdx].TimeStep - ignitionTime}
}
