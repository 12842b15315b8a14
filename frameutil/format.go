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
	"io"

	"github.com/mbedward/frame"
)

// FormatResult pretty-prints a frame.FireModelResult to w: the surface
// flame's length, depth and residence time; for each stratum, every entry
// of its plant and stratum flame series (length, depth, temperature
// increment and origin) and a one-line summary of each plant-run ignition
// path; the combined flames; and (iff hasSecondRun) a "Second run" section
// for the includeCanopy=false pass. Flame angles and heights are not
// printed, and ignition paths are summarized by their segment and
// pre-ignition record counts rather than listed.
func FormatResult(w io.Writer, result frame.FireModelResult) error {
	if err := formatRun(w, "Run", result.Run1); err != nil {
		return err
	}
	if result.HasSecondRun {
		fmt.Fprintln(w)
		if err := formatRun(w, "Second run (canopy wind unshielded)", result.Run2); err != nil {
			return err
		}
	}
	return nil
}

func formatRun(w io.Writer, title string, run frame.FireModelRunResult) error {
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "  surface flame: length=%.3f depth=%.3f residence=%.1fs\n",
		run.SurfaceParams.Flame.Length, run.SurfaceParams.Flame.DepthIgnited, run.SurfaceParams.FlameResidenceTime)

	for _, outcome := range run.StratumOutcomes {
		fmt.Fprintf(w, "  stratum %s:\n", outcome.Stratum.Level)
		if !outcome.HasIgnition() {
			fmt.Fprintln(w, "    no ignition")
			continue
		}
		if err := formatFlameSeries(w, "    plant flames", outcome.PlantFlames); err != nil {
			return err
		}
		if err := formatFlameSeries(w, "    stratum flames", outcome.StratumFlames); err != nil {
			return err
		}
		for _, p := range outcome.PlantPaths {
			fmt.Fprintf(w, "    %s path: ignited=%v segments=%d maxSegmentLength=%.3f preIgnitionRecords=%d\n",
				p.Species.Name(), p.HasIgnition(), len(p.Segments), p.MaxSegmentLength(), len(p.PreIgnitionData))
		}
	}

	if !run.CombinedFlames.IsEmpty() {
		if err := formatFlameSeries(w, "  combined flames", run.CombinedFlames); err != nil {
			return err
		}
	}
	return nil
}

func formatFlameSeries(w io.Writer, label string, fs frame.FlameSeries) error {
	if fs.IsEmpty() {
		return nil
	}
	fmt.Fprintf(w, "%s: ignitionTime=%d timeToLongest=%d maxLength=%.3f\n",
		label, fs.IgnitionTime, fs.TimeToLongestFlame, fs.MaxFlameLength())
	for _, e := range fs.Entries {
		fmt.Fprintf(w, "%s  t=%d length=%.3f depth=%.3f deltaT=%.1f origin=(%.3f,%.3f)\n",
			label, e.TimeStep, e.Length, e.DepthIgnited, e.DeltaTemperature, e.Origin.X, e.Origin.Y)
	}
	return nil
}
