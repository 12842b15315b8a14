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

package frameutil

import (
	"fmt"
	"strings"

	"github.com/mbedward/frame"
)

func prefixed(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// BuildSpecies constructs a validated frame.Species from the parameters
// under prefix (e.g. "species.snowgum"): prefix+".name", the five
// prefix+".crown.*" crown scalars, the leaf/clump parameters, and one of
// prefix+".ignitionTemperature" or prefix+".silicaFreeAsh" (the ignition
// temperature is used when both are present).
func BuildSpecies(va ValueAssignments, prefix string) (frame.Species, error) {
	k := func(name string) string { return prefixed(prefix, name) }

	name, err := va.String(k("name"))
	if err != nil {
		return frame.Species{}, err
	}

	var crownVals [5]float64
	for i, part := range []string{"crown.hc", "crown.he", "crown.ht", "crown.hp", "crown.width"} {
		v, err := va.Float(k(part))
		if err != nil {
			return frame.Species{}, err
		}
		crownVals[i] = v
	}
	crown, err := frame.NewCrownPoly(crownVals[0], crownVals[1], crownVals[2], crownVals[3], crownVals[4])
	if err != nil {
		return frame.Species{}, err
	}

	p := frame.SpeciesParams{Name: name, Crown: crown}

	floatFields := map[string]*float64{
		"liveLeafMoisture": &p.LiveLeafMoisture,
		"deadLeafMoisture": &p.DeadLeafMoisture,
		"propDead":         &p.PropDead,
		"leafThickness":    &p.LeafThickness,
		"leafWidth":        &p.LeafWidth,
		"leafLength":       &p.LeafLength,
		"leafSeparation":   &p.LeafSeparation,
		"stemOrder":        &p.StemOrder,
		"clumpDiameter":    &p.ClumpDiameter,
		"clumpSeparation":  &p.ClumpSeparation,
	}
	for field, dst := range floatFields {
		v, err := va.Float(k(field))
		if err != nil {
			return frame.Species{}, err
		}
		*dst = v
	}

	leafForm, err := va.String(k("leafForm"))
	if err != nil {
		return frame.Species{}, err
	}
	switch strings.ToLower(leafForm) {
	case "flat":
		p.LeafForm = frame.Flat
	case "dendritic":
		p.LeafForm = frame.Dendritic
	default:
		p.LeafForm = frame.Round
	}

	if v, err := va.Float(k("ignitionTemperature")); err == nil {
		p.IgnitionTemperature = v
		p.IgnitionTemperatureSet = true
	} else if v, err2 := va.Float(k("silicaFreeAsh")); err2 == nil {
		p.SilicaFreeAsh = v
		p.SilicaFreeAshSet = true
	} else {
		return frame.Species{}, fmt.Errorf("frameutil: species %q needs ignitionTemperature or silicaFreeAsh: %w", name, err)
	}

	return frame.NewSpecies(p)
}

// BuildStratum constructs a frame.Stratum at level from the species listed
// under prefix: prefix+".plantSep", and for each name in speciesNames, the
// species at prefix+"."+name (built via BuildSpecies) with weight
// prefix+"."+name+".weight".
func BuildStratum(va ValueAssignments, level frame.StratumLevel, prefix string, speciesNames []string) (frame.Stratum, error) {
	plantSep, err := va.Float(prefixed(prefix, "plantSep"))
	if err != nil {
		return frame.Stratum{}, err
	}
	components := make([]frame.SpeciesComponent, len(speciesNames))
	for i, name := range speciesNames {
		sp, err := BuildSpecies(va, prefixed(prefix, name))
		if err != nil {
			return frame.Stratum{}, err
		}
		weight, err := va.Float(prefixed(prefix, name+".weight"))
		if err != nil {
			return frame.Stratum{}, err
		}
		components[i] = frame.SpeciesComponent{Species: sp, Weight: weight}
	}
	return frame.NewStratum(level, components, plantSep)
}

// kmhToMS converts a wind speed from km/h, the unit a parameter file
// reports wind in, to m/s.
func kmhToMS(v float64) float64 { return v / 3.6 }

// BuildSite constructs a frame.Site from strata already built by
// BuildStratum, plus the "surface.*", "weather.*", "fireLineLength" and
// repeated "overlapping = lowerLevel, upperLevel, kind" parameters.
func BuildSite(va ValueAssignments, strata []frame.Stratum) (frame.Site, error) {
	surface := frame.SurfaceFuelParams{}
	floatFields := map[string]*float64{
		"surface.slope":              &surface.Slope,
		"surface.meanFuelDiameter":   &surface.MeanFuelDiameter,
		"surface.meanFinenessLeaves": &surface.MeanFinenessLeaves,
		"surface.fuelLoad":           &surface.FuelLoad,
		"surface.deadFuelMoisture":   &surface.DeadFuelMoisture,
	}
	for field, dst := range floatFields {
		v, err := va.Float(field)
		if err != nil {
			return frame.Site{}, err
		}
		*dst = v
	}

	airTemp, err := va.Float("weather.airTemperature")
	if err != nil {
		return frame.Site{}, err
	}
	windKmh, err := va.Float("weather.windSpeed")
	if err != nil {
		return frame.Site{}, err
	}
	weather := frame.Weather{AirTemperature: airTemp, WindSpeed: kmhToMS(windKmh)}

	fireLineLength, err := va.Float("fireLineLength")
	if err != nil {
		return frame.Site{}, err
	}

	levelByName, err := stratumLevelsByName(strata)
	if err != nil {
		return frame.Site{}, err
	}
	overlaps := make(map[frame.OverlapKey]frame.StratumOverlapType)
	for _, entry := range va.All("overlapping") {
		parts := strings.Split(entry, ",")
		if len(parts) != 3 {
			return frame.Site{}, fmt.Errorf("frameutil: malformed overlapping entry %q", entry)
		}
		lowerName := strings.TrimSpace(parts[0])
		upperName := strings.TrimSpace(parts[1])
		kind, err := frame.ParseStratumOverlapType(strings.TrimSpace(parts[2]))
		if err != nil {
			return frame.Site{}, err
		}
		lower, ok := levelByName[lowerName]
		if !ok {
			return frame.Site{}, fmt.Errorf("frameutil: overlapping entry names unknown stratum %q", lowerName)
		}
		upper, ok := levelByName[upperName]
		if !ok {
			return frame.Site{}, fmt.Errorf("frameutil: overlapping entry names unknown stratum %q", upperName)
		}
		overlaps[frame.OverlapKey{Lower: lower, Upper: upper}] = kind
	}
	return frame.NewSite(strata, overlaps, surface, weather, fireLineLength)
}

// stratumLevelsByName maps each stratum's StratumLevel.String() (e.g.
// "canopy") to its level, so overlapping entries can name strata the way a
// human author would.
func stratumLevelsByName(strata []frame.Stratum) (map[string]frame.StratumLevel, error) {
	m := make(map[string]frame.StratumLevel, len(strata))
	for _, s := range strata {
		m[strings.ToLower(s.Level.String())] = s.Level
	}
	return m, nil
}
