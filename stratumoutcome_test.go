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

func TestStratumOutcomeHasIgnitionFalseWhenBothEmpty(t *testing.T) {
	var o StratumOutcome
	if o.HasIgnition() {
		t.Error("expected no ignition with both flame series empty")
	}
}

func TestStratumOutcomeHasIgnitionTrueWithEitherSeries(t *testing.T) {
	withPlant := StratumOutcome{PlantFlames: FlameSeries{Entries: []FlameSeriesEntry{{TimeStep: 1, Length: 1}}}}
	if !withPlant.HasIgnition() {
		t.Error("expected ignition when PlantFlames is non-empty")
	}
	withStratum := StratumOutcome{StratumFlames: FlameSeries{Entries: []FlameSeriesEntry{{TimeStep: 1, Length: 1}}}}
	if !withStratum.HasIgnition() {
		t.Error("expected ignition when StratumFlames is non-empty")
	}
}

func TestStratumOutcomeLargestFlameSeriesPicksNonEmptySide(t *testing.T) {
	plant := FlameSeries{Entries: []FlameSeriesEntry{{TimeStep: 1, Length: 2}}}
	o := StratumOutcome{PlantFlames: plant}
	got := o.LargestFlameSeries(byMaxFlameLength)
	if got.MaxFlameLength() != 2 {
		t.Errorf("expected the only non-empty series to be returned, got length %v", got.MaxFlameLength())
	}
}

func TestStratumOutcomeLargestFlameSeriesUsesComparator(t *testing.T) {
	small := FlameSeries{Entries: []FlameSeriesEntry{{TimeStep: 1, Length: 1}}}
	big := FlameSeries{Entries: []FlameSeriesEntry{{TimeStep: 1, Length: 5}}}
	o := StratumOutcome{PlantFlames: small, StratumFlames: big}

	got := o.LargestFlameSeries(byMaxFlameLength)
	if got.MaxFlameLength() != 5 {
		t.Errorf("expected the comparator's winner (length 5), got %v", got.MaxFlameLength())
	}

	alwaysFirst := func(a, b FlameSeries) bool { return false }
	got2 := o.LargestFlameSeries(alwaysFirst)
	if got2.MaxFlameLength() != 1 {
		t.Errorf("expected the comparator's loser path (length 1) when better always picks b, got %v", got2.MaxFlameLength())
	}
}

func TestStratumOutcomeLargestFlameSeriesEmptyWhenNeitherIgnited(t *testing.T) {
	var o StratumOutcome
	got := o.LargestFlameSeries(byMaxFlameLength)
	if !got.IsEmpty() {
		t.Error("expected the empty series when neither run ignited")
	}
}
