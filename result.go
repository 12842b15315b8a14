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

// FireModelRunResult is one full pass of the orchestrator: the fixed
// surface flame series, the accumulated per-stratum outcomes, and (once
// finalized) the combined canopy-connected flame series. It is built by
// copy-on-write appends, never in-place mutation.
type FireModelRunResult struct {
	SurfaceParams   SurfaceFlameSeries
	StratumOutcomes []StratumOutcome
	CombinedFlames  FlameSeries
}

// NewFireModelRunResult builds a result from a surface series and a
// complete outcome list in one shot. It is structurally equal to folding
// WithOutcome over the same list starting from the empty result.
func NewFireModelRunResult(surface SurfaceFlameSeries, outcomes []StratumOutcome) FireModelRunResult {
	r := FireModelRunResult{SurfaceParams: surface}
	for _, o := range outcomes {
		r = r.WithOutcome(o)
	}
	return r
}

// WithOutcome returns a copy of r with o appended.
func (r FireModelRunResult) WithOutcome(o StratumOutcome) FireModelRunResult {
	out := make([]StratumOutcome, len(r.StratumOutcomes)+1)
	copy(out, r.StratumOutcomes)
	out[len(out)-1] = o
	return FireModelRunResult{SurfaceParams: r.SurfaceParams, StratumOutcomes: out, CombinedFlames: r.CombinedFlames}
}

// WithCombinedFlames returns a copy of r with its combined flame series
// set.
func (r FireModelRunResult) WithCombinedFlames(cf FlameSeries) FireModelRunResult {
	return FireModelRunResult{SurfaceParams: r.SurfaceParams, StratumOutcomes: r.StratumOutcomes, CombinedFlames: cf}
}

// StratumFlameSeries returns, for the stratum at level, the larger (by
// maxFlameLength) of its plant and stratum flame series.
func (r FireModelRunResult) StratumFlameSeries(level StratumLevel) (FlameSeries, bool) {
	for _, o := range r.StratumOutcomes {
		if o.Stratum.Level == level {
			return o.LargestFlameSeries(byMaxFlameLength), true
		}
	}
	return FlameSeries{}, false
}

// HasCanopyFlames reports whether the Canopy stratum outcome (if present)
// carries a non-empty flame series.
func (r FireModelRunResult) HasCanopyFlames() bool {
	fs, ok := r.StratumFlameSeries(Canopy)
	return ok && !fs.IsEmpty()
}

// FireModelResult is the top-level output of Run: the primary run and,
// when the canopy ignited, a second run with includeCanopy=false.
type FireModelResult struct {
	Run1         FireModelRunResult
	Run2         FireModelRunResult
	HasSecondRun bool
}
