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

// IgnitionPathInput bundles the inputs to RunIgnitionPath: a run type, the
// site and stratum context, the species being simulated, the incident and
// pre-heating flame sequences it is exposed to, and the point within the
// crown where the simulation starts.
type IgnitionPathInput struct {
	RunType               IgnitionRunType
	Site                  Site
	StratumLevel          StratumLevel
	Species               Species
	IncidentFlames        []Flame // one per time step, indexed from t=1
	PreHeatingFlames      []PreHeatingFlame
	PreHeatingEndTime     float64 // -1 sentinel for "no prior stratum"; masked via max(t,0) everywhere
	CanopyHeatingDistance float64
	StratumWindSpeed      float64
	InitialPoint          Coord
	Settings              Settings
}

func effectivePreHeatingEndTime(t float64) float64 {
	return maxFloat(t, 0)
}

// RunIgnitionPath simulates ignition of in.Species's crown under in's
// incident, pre-heating and self-generated plant flames.
func RunIgnitionPath(in IgnitionPathInput) (IgnitionPath, error) {
	crown := in.Species.Crown()
	ambient := in.Site.Weather.AirTemperature
	deltaT := in.Settings.ComputationTimeInterval
	ignitionTemp := in.Species.IgnitionTemperature()
	preHeatingEndTime := effectivePreHeatingEndTime(in.PreHeatingEndTime)

	path := IgnitionPath{RunType: in.RunType, Species: in.Species, InitialPoint: in.InitialPoint}
	curPoint := in.InitialPoint
	var plantFlames []Flame

	for t := 1; ; t++ {
		if path.HasIgnition() && t-path.IgnitionTime() > in.Settings.MaxIgnitionTimeSteps {
			break
		}

		modifiedWind := in.StratumWindSpeed
		if in.RunType == StratumRun && path.HasIgnition() {
			last := path.Segments[len(path.Segments)-1]
			dx := last.End.X - last.Start.X
			modifiedWind = in.StratumWindSpeed - maxFloat(0, dx)/deltaT
		}

		var plantFlame *Flame
		if len(plantFlames) > 0 {
			f := plantFlames[len(plantFlames)-1]
			plantFlame = &f
		}
		var incidentFlame *Flame
		if t-1 < len(in.IncidentFlames) {
			f := in.IncidentFlames[t-1]
			incidentFlame = &f
		}
		if plantFlame == nil && incidentFlame == nil {
			break
		}

		var incidentOrigin Coord
		if incidentFlame != nil {
			o, err := in.incidentOriginFor(*incidentFlame, curPoint)
			if err != nil {
				return path, err
			}
			incidentOrigin = o
		}

		plantLen, plantOK := candidatePathLength(crown, curPoint, plantFlame, func(f Flame) Coord { return f.Origin }, ignitionTemp, ambient)
		incidentLen, incidentOK := candidatePathLength(crown, curPoint, incidentFlame, func(Flame) Coord { return incidentOrigin }, ignitionTemp, ambient)

		var pathLength, pathAngle float64
		switch {
		case plantOK && (!incidentOK || plantLen >= incidentLen):
			pathLength, pathAngle = plantLen, plantFlame.Angle
		case incidentOK:
			pathLength, pathAngle = incidentLen, incidentFlame.Angle
		}
		if almostZero(pathLength) {
			break
		}

		ray := NewRay(curPoint, pathAngle)
		n := in.Settings.NumPenetrationSteps
		var nextIgnitablePoint Coord
		accepted := false
		for i := 1; i <= n; i++ {
			testPoint := ray.At(pathLength * float64(i) / float64(n))

			var maxTemp float64
			if plantFlame != nil {
				if tp := plantFlame.plumeTemperature(distance(plantFlame.Origin, testPoint), ambient); tp > maxTemp {
					maxTemp = tp
				}
			}
			if incidentFlame != nil {
				if tp := incidentFlame.plumeTemperature(distance(incidentOrigin, testPoint), ambient); tp > maxTemp {
					maxTemp = tp
				}
			}

			// Assessed at curPoint rather than at each test point, and
			// recorded only on the first sub-step: within a step every test
			// point shares the same exposure history (pre-heating, incident
			// and plant flames), so recording on every sub-step would only
			// multiply PreIgnitionData entries without adding information.
			var recordInto *IgnitionPath
			if i == 1 {
				recordInto = &path
			}
			factor := in.dryingFactorAt(curPoint, t, plantFlames, incidentOrigin, preHeatingEndTime, recordInto)

			if maxTemp >= ignitionTemp && factor*effectiveIDT(in.Species, in.StratumLevel, maxTemp, in.Settings) <= deltaT {
				nextIgnitablePoint = testPoint
				accepted = true
			} else {
				break
			}
		}
		if !accepted {
			break
		}

		if !path.HasIgnition() {
			seg := IgnitedSegment{TimeStep: t, Start: curPoint, End: nextIgnitablePoint}
			path.appendSegment(seg)
			plantFlames = append(plantFlames, in.emitPlantFlame(seg, modifiedWind))
		} else {
			flameDurationSteps := in.flameDurationSteps(curPoint)
			var segStart Coord
			if len(path.Segments) < flameDurationSteps {
				segStart = path.Segments[0].Start
			} else {
				segStart = path.Segments[len(path.Segments)-flameDurationSteps].End
			}
			if coordEquals(segStart, nextIgnitablePoint) {
				break
			}
			seg := IgnitedSegment{TimeStep: t, Start: segStart, End: nextIgnitablePoint}
			path.appendSegment(seg)
			plantFlames = append(plantFlames, in.emitPlantFlame(seg, modifiedWind))
		}

		curPoint = nextIgnitablePoint
	}

	return path, nil
}

func distance(a, b Coord) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// incidentOriginFor returns the effective origin used to measure distance
// from the incident flame: the flame's own origin on a StratumRun, or that
// origin projected onto the surface line through curPoint on a PlantRun.
func (in IgnitionPathInput) incidentOriginFor(f Flame, curPoint Coord) (Coord, error) {
	if in.RunType == StratumRun {
		return f.Origin, nil
	}
	surfaceLine := NewLine(curPoint, in.Site.Surface.Slope)
	return surfaceLine.originOnLine(f.Origin, f.Angle)
}

// candidatePathLength is the shared computation behind maxPlantPathLength
// and maxIncidentPathLength: the lesser of the crown-intersection length
// along f's angle from curPoint, and the distance along that ray before
// f's plume (centered at originOf(f)) cools below the species' ignition
// temperature.
func candidatePathLength(crown CrownPoly, curPoint Coord, f *Flame, originOf func(Flame) Coord, ignitionTemp, ambient float64) (float64, bool) {
	if f == nil {
		return 0, false
	}
	ray := NewRay(curPoint, f.Angle)
	seg, ok := crown.intersection(ray)
	if !ok {
		return 0, false
	}
	crownLen := seg.Length()
	r, reach := f.distanceForTemperature(ignitionTemp, ambient)
	if !reach {
		return 0, false
	}
	diskLen := rayDiskExitDistance(ray, originOf(*f), r)
	l := minFloat(crownLen, diskLen)
	if almostZero(l) || l < 0 {
		return 0, false
	}
	return l, true
}

// rayDiskExitDistance returns the distance along r before it leaves the
// disk of the given radius centered at center, or 0 if r's origin is
// already outside that disk.
func rayDiskExitDistance(r Ray, center Coord, radius float64) float64 {
	ox, oy := r.Origin.X-center.X, r.Origin.Y-center.Y
	dx, dy := math.Cos(r.Angle), math.Sin(r.Angle)
	b := 2 * (ox*dx + oy*dy)
	c := ox*ox + oy*oy - radius*radius
	disc := b*b - 4*c
	if c > 0 {
		// Origin already outside the reachable disk.
		return 0
	}
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)
	t2 := (-b + sq) / 2
	return maxFloat(t2, 0)
}

// effectiveIDT is species.IgnitionDelayTime(t), reduced by
// Settings.GrassIDTReduction for grass species.
func effectiveIDT(sp Species, level StratumLevel, temp float64, s Settings) float64 {
	idt := sp.IgnitionDelayTime(temp)
	if sp.isGrass(level) {
		idt *= s.GrassIDTReduction
	}
	return idt
}

// flameDurationSteps is ceil(species.FlameDuration(ΔT)/ΔT), except for
// canopy points beyond the canopy heating distance on a StratumRun, which
// use the reduced canopy flame residence time instead.
func (in IgnitionPathInput) flameDurationSteps(curPoint Coord) int {
	deltaT := in.Settings.ComputationTimeInterval
	if in.RunType == StratumRun && in.StratumLevel == Canopy && curPoint.X > in.CanopyHeatingDistance {
		return ceilDiv(in.Settings.ReducedCanopyFlameResidenceTime, deltaT)
	}
	return ceilDiv(in.Species.FlameDuration(deltaT), deltaT)
}

func ceilDiv(v, deltaT float64) int {
	n := int(math.Ceil(v / deltaT))
	if n < 1 {
		n = 1
	}
	return n
}

// dryingFactorAt computes the drying factor at testPoint: the product of
// three independent terms (pre-heating flames other than the most recent,
// incident flames up to and including the current time step, and all
// previously emitted plant flames), each itself a product of per-flame
// contributions max(0, 1-exposure/IDT). An empty term contributes 1 (the
// identity). The product short-circuits to 0 as soon as any contribution
// is 0.
//
// When record is non-nil and no ignition has occurred yet, every
// finite-valued contribution is appended to record.PreIgnitionData.
func (in IgnitionPathInput) dryingFactorAt(testPoint Coord, t int, plantFlames []Flame, incidentOrigin Coord, preHeatingEndTime float64, record *IgnitionPath) float64 {
	ambient := in.Site.Weather.AirTemperature
	factor := 1.0
	recording := record != nil && !record.HasIgnition()

	// Pre-heating flames: skip the most recent (it heats directly, not via
	// residual drying), project each remaining flame's origin onto the
	// surface line through testPoint.
	if n := len(in.PreHeatingFlames); n > 1 {
		surfaceLine := NewLine(testPoint, in.Site.Surface.Slope)
		for _, phf := range in.PreHeatingFlames[:n-1] {
			origin, err := surfaceLine.originOnLine(phf.Flame.Origin, phf.Flame.Angle)
			if err != nil {
				continue
			}
			d := distance(origin, testPoint)
			temp := phf.Flame.plumeTemperature(d, ambient)
			idt := effectiveIDT(in.Species, in.StratumLevel, temp, in.Settings)
			duration := phf.Duration(preHeatingEndTime)
			contribution := maxFloat(0, 1-duration/maxFloat(idt, epsilon))
			if recording {
				record.appendPreIgnition(NewPreHeatingDrying(t, phf.Flame, d, contribution, temp, duration))
			}
			factor *= contribution
			if almostZero(factor) {
				return 0
			}
		}
	}

	// Incident flames up to and including the current time step.
	limit := t
	if limit > len(in.IncidentFlames) {
		limit = len(in.IncidentFlames)
	}
	for i := 0; i < limit; i++ {
		f := in.IncidentFlames[i]
		origin := f.Origin
		if i == limit-1 {
			// The current step's incident flame origin was already
			// resolved by the caller (it may be a projected origin on a
			// PlantRun); reuse it rather than re-deriving.
			origin = incidentOrigin
		} else if in.RunType == PlantRun {
			surfaceLine := NewLine(testPoint, in.Site.Surface.Slope)
			o, err := surfaceLine.originOnLine(f.Origin, f.Angle)
			if err != nil {
				continue
			}
			origin = o
		}
		d := distance(origin, testPoint)
		temp := f.plumeTemperature(d, ambient)
		idt := effectiveIDT(in.Species, in.StratumLevel, temp, in.Settings)
		contribution := maxFloat(0, 1-timeStepSeconds(in.Settings)/maxFloat(idt, epsilon))
		if recording {
			record.appendPreIgnition(NewIncidentDrying(t, f, d, contribution, temp, idt))
		}
		factor *= contribution
		if almostZero(factor) {
			return 0
		}
	}

	// Previously emitted plant flames, at their own (unprojected) origins.
	for _, f := range plantFlames {
		d := distance(f.Origin, testPoint)
		temp := f.plumeTemperature(d, ambient)
		idt := effectiveIDT(in.Species, in.StratumLevel, temp, in.Settings)
		contribution := maxFloat(0, 1-timeStepSeconds(in.Settings)/maxFloat(idt, epsilon))
		if recording {
			record.appendPreIgnition(NewIncidentDrying(t, f, d, contribution, temp, idt))
		}
		factor *= contribution
		if almostZero(factor) {
			return 0
		}
	}

	return factor
}

func timeStepSeconds(s Settings) float64 { return s.ComputationTimeInterval }

// emitPlantFlame builds the plant flame a newly ignited segment emits.
func (in IgnitionPathInput) emitPlantFlame(seg IgnitedSegment, modifiedWind float64) Flame {
	length := seg.Length()
	flameLength := in.Species.FlameLength(length)
	angle := windEffectFlameAngle(flameLength, modifiedWind, in.Site.Surface.Slope)
	deltaT := in.Settings.MainFlameDeltaTemperature
	if in.Species.isGrass(in.StratumLevel) {
		deltaT = in.Settings.GrassFlameDeltaTemperature
	}
	return NewFlame(flameLength, angle, seg.Start, length, deltaT)
}
