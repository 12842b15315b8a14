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
	"testing"
)

func TestNewCrownPolyValidation(t *testing.T) {
	cases := []struct {
		name                  string
		hc, he, ht, hp, width float64
		wantErr               bool
	}{
		{"valid", 0, 1, 5, 6, 4, false},
		{"zero width", 0, 1, 5, 6, 0, true},
		{"negative width", 0, 1, 5, 6, -1, true},
		{"hp not above hc", 5, 1, 5, 5, 4, true},
		{"ht below he", 0, 5, 1, 6, 4, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewCrownPoly(c.hc, c.he, c.ht, c.hp, c.width)
			if (err != nil) != c.wantErr {
				t.Errorf("NewCrownPoly(%v,%v,%v,%v,%v) error = %v, wantErr %v",
					c.hc, c.he, c.ht, c.hp, c.width, err, c.wantErr)
			}
		})
	}
}

func TestCrownPolyDimensions(t *testing.T) {
	c, err := NewCrownPoly(0, 1, 5, 6, 4)
	if err != nil {
		t.Fatalf("NewCrownPoly: %v", err)
	}
	if got := c.Width(); got != 4 {
		t.Errorf("Width() = %v, want 4", got)
	}
	if got := c.Left(); got != -2 {
		t.Errorf("Left() = %v, want -2", got)
	}
	if got := c.Right(); got != 2 {
		t.Errorf("Right() = %v, want 2", got)
	}
	if got := c.Top(); got != 6 {
		t.Errorf("Top() = %v, want 6", got)
	}
	if got := c.Bottom(); got != 0 {
		t.Errorf("Bottom() = %v, want 0", got)
	}
}

func TestCrownPolyContains(t *testing.T) {
	c, err := NewCrownPoly(0, 1, 5, 6, 4)
	if err != nil {
		t.Fatalf("NewCrownPoly: %v", err)
	}
	if !c.contains(NewCoord(0, 3)) {
		t.Error("expected the centerline mid-height point to be inside the crown")
	}
	if c.contains(NewCoord(10, 3)) {
		t.Error("expected a far-away point to be outside the crown")
	}
}

func TestCrownPolyIntersectionFromOutside(t *testing.T) {
	c, err := NewCrownPoly(0, 1, 5, 6, 4)
	if err != nil {
		t.Fatalf("NewCrownPoly: %v", err)
	}
	r := NewRay(NewCoord(-10, 3), 0)
	seg, ok := c.intersection(r)
	if !ok {
		t.Fatal("expected the ray to cross the crown")
	}
	if seg.Start.X >= seg.End.X {
		t.Errorf("expected Start.X < End.X for a rightward ray, got %v, %v", seg.Start.X, seg.End.X)
	}
}

func TestCrownPolyIntersectionFromInside(t *testing.T) {
	c, err := NewCrownPoly(0, 1, 5, 6, 4)
	if err != nil {
		t.Fatalf("NewCrownPoly: %v", err)
	}
	origin := NewCoord(0, 3)
	r := NewRay(origin, 0)
	seg, ok := c.intersection(r)
	if !ok {
		t.Fatal("expected an intersection starting from inside the crown")
	}
	if !coordEquals(seg.Start, origin) {
		t.Errorf("Start = %v, want the ray's own origin %v", seg.Start, origin)
	}
}

func TestCrownPolyVolumeAndArea(t *testing.T) {
	// A degenerate crown with he=hc and ht=hp collapses to a cylinder of
	// radius w/2 and height ht-hc.
	c, err := NewCrownPoly(0, 0, 4, 4+1e-9, 2)
	if err != nil {
		t.Fatalf("NewCrownPoly: %v", err)
	}
	wantVol := math.Pi * 1 * 1 * 4
	if got := c.Volume(); math.Abs(got-wantVol) > 1e-3 {
		t.Errorf("Volume() = %v, want ~%v", got, wantVol)
	}
	if got := c.Area(); got <= 0 {
		t.Errorf("Area() = %v, want > 0", got)
	}
}
