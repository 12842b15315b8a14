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

func testCrown(t *testing.T) CrownPoly {
	t.Helper()
	c, err := NewCrownPoly(0, 1, 4, 5, 2)
	if err != nil {
		t.Fatalf("NewCrownPoly: %v", err)
	}
	return c
}

func TestNewSpeciesRequiresIgnitionSource(t *testing.T) {
	p := SpeciesParams{
		Name:          "test",
		Crown:         testCrown(t),
		LeafWidth:     0.01,
		LeafLength:    0.02,
		ClumpDiameter: 0.3,
	}
	if _, err := NewSpecies(p); err == nil {
		t.Error("expected an error when neither ignition temperature nor silica-free-ash is set")
	}
}

func TestNewSpeciesRejectsAshOutOfRange(t *testing.T) {
	p := SpeciesParams{
		Name:             "test",
		Crown:            testCrown(t),
		LeafWidth:        0.01,
		LeafLength:       0.02,
		ClumpDiameter:    0.3,
		SilicaFreeAshSet: true,
		SilicaFreeAsh:    1.5,
	}
	if _, err := NewSpecies(p); err == nil {
		t.Error("expected an error for a silica-free-ash proportion above 1")
	}
}

func TestNewSpeciesDerivesIgnitionTemperatureFromAsh(t *testing.T) {
	p := SpeciesParams{
		Name:             "test",
		Crown:            testCrown(t),
		LeafWidth:        0.01,
		LeafLength:       0.02,
		ClumpDiameter:    0.3,
		SilicaFreeAshSet: true,
		SilicaFreeAsh:    0.05,
	}
	s, err := NewSpecies(p)
	if err != nil {
		t.Fatalf("NewSpecies: %v", err)
	}
	if s.IgnitionTemperature() <= 0 {
		t.Errorf("IgnitionTemperature() = %v, want > 0", s.IgnitionTemperature())
	}
}

func TestSpeciesIsGrass(t *testing.T) {
	p := SpeciesParams{
		Name:                   "grass",
		Crown:                  testCrown(t),
		LeafWidth:              0.002,
		LeafLength:             0.05,
		LeafThickness:          1e-4,
		PropDead:               0.8,
		ClumpDiameter:          0.3,
		IgnitionTemperatureSet: true,
		IgnitionTemperature:    300,
	}
	s, err := NewSpecies(p)
	if err != nil {
		t.Fatalf("NewSpecies: %v", err)
	}
	if !s.isGrass(NearSurface) {
		t.Error("expected a thin-leaved, mostly-dead near-surface species to qualify as grass")
	}
	if s.isGrass(Elevated) {
		t.Error("grass classification should not apply above NearSurface")
	}
}

func TestSpeciesFlameLengthMonotonic(t *testing.T) {
	p := SpeciesParams{
		Name:                   "shrub",
		Crown:                  testCrown(t),
		LeafWidth:              0.02,
		LeafLength:             0.04,
		ClumpDiameter:          0.4,
		ClumpSeparation:        0.1,
		StemOrder:              2,
		IgnitionTemperatureSet: true,
		IgnitionTemperature:    300,
	}
	s, err := NewSpecies(p)
	if err != nil {
		t.Fatalf("NewSpecies: %v", err)
	}
	short := s.FlameLength(0.1)
	long := s.FlameLength(1.0)
	if long <= short {
		t.Errorf("FlameLength(1.0) = %v, want > FlameLength(0.1) = %v", long, short)
	}
	if got := s.FlameLength(0); got != 0 {
		t.Errorf("FlameLength(0) = %v, want 0", got)
	}
}

func TestSpeciesIgnitionDelayTimeDecreasesWithTemperature(t *testing.T) {
	p := SpeciesParams{
		Name:                   "shrub",
		Crown:                  testCrown(t),
		LeafWidth:              0.02,
		LeafLength:             0.04,
		LeafThickness:          3e-4,
		ClumpDiameter:          0.4,
		ClumpSeparation:        0.1,
		IgnitionTemperatureSet: true,
		IgnitionTemperature:    300,
	}
	s, err := NewSpecies(p)
	if err != nil {
		t.Fatalf("NewSpecies: %v", err)
	}
	hot := s.IgnitionDelayTime(500)
	cool := s.IgnitionDelayTime(200)
	if hot >= cool {
		t.Errorf("IgnitionDelayTime(500) = %v, want < IgnitionDelayTime(200) = %v", hot, cool)
	}
}

func TestWithProxyCrownAndClumpPreservesIgnitionTemperature(t *testing.T) {
	p := SpeciesParams{
		Name:                   "shrub",
		Crown:                  testCrown(t),
		LeafWidth:              0.02,
		LeafLength:             0.04,
		ClumpDiameter:          0.4,
		ClumpSeparation:        0.1,
		IgnitionTemperatureSet: true,
		IgnitionTemperature:    345,
	}
	s, err := NewSpecies(p)
	if err != nil {
		t.Fatalf("NewSpecies: %v", err)
	}
	proxy := s.withProxyCrownAndClump(testCrown(t), 10, 5)
	if proxy.IgnitionTemperature() != s.IgnitionTemperature() {
		t.Errorf("proxy IgnitionTemperature() = %v, want %v", proxy.IgnitionTemperature(), s.IgnitionTemperature())
	}
	if proxy.ClumpDiameter() != 10 || proxy.ClumpSeparation() != 5 {
		t.Errorf("proxy clump dims = (%v,%v), want (10,5)", proxy.ClumpDiameter(), proxy.ClumpSeparation())
	}
}
