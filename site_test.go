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

func TestParseStratumOverlapTypeRoundTrips(t *testing.T) {
	for _, want := range []StratumOverlapType{Overlapping, NotOverlapping, Undefined} {
		got, err := ParseStratumOverlapType(want.String())
		if err != nil {
			t.Fatalf("ParseStratumOverlapType(%q): %v", want.String(), err)
		}
		if got != want {
			t.Errorf("ParseStratumOverlapType(%q) = %v, want %v", want.String(), got, want)
		}
	}
}

func TestParseStratumOverlapTypeIgnoresCaseSpaceAndHyphen(t *testing.T) {
	got, err := ParseStratumOverlapType("Not - Overlapped")
	if err != nil {
		t.Fatalf("ParseStratumOverlapType: %v", err)
	}
	if got != NotOverlapping {
		t.Errorf("got %v, want NotOverlapping", got)
	}
}

func TestParseStratumOverlapTypeRejectsUnknown(t *testing.T) {
	if _, err := ParseStratumOverlapType("sideways"); err == nil {
		t.Error("expected an InvalidOverlapTypeError for an unrecognized value")
	}
}

func buildTestStratum(t *testing.T, level StratumLevel, bottom, top float64) Stratum {
	t.Helper()
	crown, err := NewCrownPoly(bottom, bottom+0.1, top-0.1, top, 2)
	if err != nil {
		t.Fatalf("NewCrownPoly: %v", err)
	}
	sp := testSpecies(t, level.String(), crown)
	s, err := NewStratum(level, []SpeciesComponent{{Species: sp, Weight: 1}}, 1)
	if err != nil {
		t.Fatalf("NewStratum: %v", err)
	}
	return s
}

func TestNewSiteSortsStrataByLevel(t *testing.T) {
	canopy := buildTestStratum(t, Canopy, 10, 15)
	surface := buildTestStratum(t, NearSurface, 0, 1)
	site, err := NewSite([]Stratum{canopy, surface}, nil, SurfaceFuelParams{}, Weather{}, 10)
	if err != nil {
		t.Fatalf("NewSite: %v", err)
	}
	if site.Strata[0].Level != NearSurface || site.Strata[1].Level != Canopy {
		t.Errorf("strata not sorted ascending by level: %v", site.Strata)
	}
}

func TestNewSiteRejectsNonPositiveFireLineLength(t *testing.T) {
	surface := buildTestStratum(t, NearSurface, 0, 1)
	if _, err := NewSite([]Stratum{surface}, nil, SurfaceFuelParams{}, Weather{}, 0); err == nil {
		t.Error("expected an error for a non-positive fire-line length")
	}
}

func TestSiteOverlapGeometricFallback(t *testing.T) {
	lower := buildTestStratum(t, NearSurface, 0, 5)
	upper := buildTestStratum(t, Elevated, 3, 8) // overlaps: upper bottom (3) < lower top (5)
	site, err := NewSite([]Stratum{lower, upper}, nil, SurfaceFuelParams{}, Weather{}, 10)
	if err != nil {
		t.Fatalf("NewSite: %v", err)
	}
	if !site.Connected(lower, upper) {
		t.Error("expected overlapping crowns to be geometrically connected")
	}
}

func TestSiteOverlapExplicitOverridesGeometry(t *testing.T) {
	lower := buildTestStratum(t, NearSurface, 0, 5)
	upper := buildTestStratum(t, Elevated, 3, 8) // would overlap geometrically
	overlaps := map[OverlapKey]StratumOverlapType{
		{Lower: NearSurface, Upper: Elevated}: NotOverlapping,
	}
	site, err := NewSite([]Stratum{lower, upper}, overlaps, SurfaceFuelParams{}, Weather{}, 10)
	if err != nil {
		t.Fatalf("NewSite: %v", err)
	}
	if site.Connected(lower, upper) {
		t.Error("expected an explicit NotOverlapping entry to override the geometric test")
	}
}

func TestSiteStratumAt(t *testing.T) {
	surface := buildTestStratum(t, NearSurface, 0, 1)
	site, err := NewSite([]Stratum{surface}, nil, SurfaceFuelParams{}, Weather{}, 10)
	if err != nil {
		t.Fatalf("NewSite: %v", err)
	}
	if _, ok := site.StratumAt(Canopy); ok {
		t.Error("expected no canopy stratum to be present")
	}
	if _, ok := site.StratumAt(NearSurface); !ok {
		t.Error("expected the near-surface stratum to be present")
	}
}
