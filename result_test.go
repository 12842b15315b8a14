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

import "testing"

func TestNewFireModelRunResultFoldsOutcomes(t *testing.T) {
	o1 := StratumOutcome{Stratum: Stratum{Level: NearSurface}}
	o2 := StratumOutcome{Stratum: Stratum{Level: Canopy}}
	r := NewFireModelRunResult(SurfaceFlameSeries{}, []StratumOutcome{o1, o2})
	if len(r.StratumOutcomes) != 2 {
		t.Fatalf("len(StratumOutcomes) = %v, want 2", len(r.StratumOutcomes))
	}
	if r.StratumOutcomes[0].Stratum.Level != NearSurface || r.StratumOutcomes[1].Stratum.Level != Canopy {
		t.Error("expected outcomes to be appended in order")
	}
}

func TestFireModelRunResultWithOutcomeDoesNotMutateReceiver(t *testing.T) {
	base := NewFireModelRunResult(SurfaceFlameSeries{}, []StratumOutcome{{Stratum: Stratum{Level: NearSurface}}})
	extended := base.WithOutcome(StratumOutcome{Stratum: Stratum{Level: Canopy}})
	if len(base.StratumOutcomes) != 1 {
		t.Errorf("WithOutcome must not mutate the receiver, base now has %v outcomes", len(base.StratumOutcomes))
	}
	if len(extended.StratumOutcomes) != 2 {
		t.Errorf("len(extended.StratumOutcomes) = %v, want 2", len(extended.StratumOutcomes))
	}
}

func TestFireModelRunResultWithCombinedFlames(t *testing.T) {
	base := FireModelRunResult{}
	cf := FlameSeries{Entries: []FlameSeriesEntry{{TimeStep: 1, Length: 3}}}
	got := base.WithCombinedFlames(cf)
	if got.CombinedFlames.MaxFlameLength() != 3 {
		t.Errorf("expected CombinedFlames to be set, got max length %v", got.CombinedFlames.MaxFlameLength())
	}
}

func TestFireModelRunResultStratumFlameSeriesNotFound(t *testing.T) {
	r := FireModelRunResult{}
	_, ok := r.StratumFlameSeries(Canopy)
	if ok {
		t.Error("expected not found for a result with no stratum outcomes")
	}
}

func TestFireModelRunResultHasCanopyFlames(t *testing.T) {
	noCanopy := NewFireModelRunResult(SurfaceFlameSeries{}, []StratumOutcome{{Stratum: Stratum{Level: NearSurface}}})
	if noCanopy.HasCanopyFlames() {
		t.Error("expected no canopy flames when there is no canopy outcome")
	}

	unignitedCanopy := NewFireModelRunResult(SurfaceFlameSeries{}, []StratumOutcome{{Stratum: Stratum{Level: Canopy}}})
	if unignitedCanopy.HasCanopyFlames() {
		t.Error("expected no canopy flames when the canopy outcome never ignited")
	}

	ignitedCanopy := NewFireModelRunResult(SurfaceFlameSeries{}, []StratumOutcome{
		{Stratum: Stratum{Level: Canopy}, PlantFlames: FlameSeries{Entries: []FlameSeriesEntry{{TimeStep: 1, Length: 4}}}},
	})
	if !ignitedCanopy.HasCanopyFlames() {
		t.Error("expected canopy flames when the canopy outcome has a non-empty plant flame series")
	}
}
