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
	"strings"
	"testing"
)

func TestParseParamsSkipsBlankAndCommentLines(t *testing.T) {
	src := "# a comment\n\nname = snowgum\n  # indented comment\nweight = 2\n"
	ps, err := ParseParams(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseParams: %v", err)
	}
	if v, ok := ps.First("name"); !ok || v != "snowgum" {
		t.Errorf("name = %q, %v; want \"snowgum\", true", v, ok)
	}
	if v, ok := ps.First("weight"); !ok || v != "2" {
		t.Errorf("weight = %q, %v; want \"2\", true", v, ok)
	}
}

func TestParseParamsRepeatedKeyAccumulates(t *testing.T) {
	src := "overlapping = canopy, midstorey, overlapped\noverlapping = midstorey, elevated, notoverlapped\n"
	ps, err := ParseParams(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseParams: %v", err)
	}
	vs := ps["overlapping"]
	if len(vs) != 2 {
		t.Fatalf("len(overlapping) = %v, want 2", len(vs))
	}
	if vs[0] != "canopy, midstorey, overlapped" {
		t.Errorf("vs[0] = %q", vs[0])
	}
}

func TestParseParamsRejectsMalformedLine(t *testing.T) {
	_, err := ParseParams(strings.NewReader("this has no equals sign\n"))
	if err == nil {
		t.Error("expected an error for a line with no '='")
	}
}

func TestValueAssignmentsFallsBackWhenKeyAbsentFromSource(t *testing.T) {
	va := ValueAssignments{Source: ParamSource{}, Fallback: map[string]string{"name": "fallback-name"}}
	v, err := va.String("name")
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if v != "fallback-name" {
		t.Errorf("String() = %q, want fallback-name", v)
	}
}

func TestValueAssignmentsMissingFromBothReturnsMissingFallbackError(t *testing.T) {
	va := ValueAssignments{}
	if _, err := va.String("name"); err == nil {
		t.Error("expected an error when the key is present in neither source nor fallback")
	}
}

func TestValueAssignmentsFloatAndInt(t *testing.T) {
	va := ValueAssignments{Source: ParamSource{"x": {"3.5"}, "n": {"7"}}}
	f, err := va.Float("x")
	if err != nil || f != 3.5 {
		t.Errorf("Float() = %v, %v; want 3.5, nil", f, err)
	}
	n, err := va.Int("n")
	if err != nil || n != 7 {
		t.Errorf("Int() = %v, %v; want 7, nil", n, err)
	}
}

func TestValueAssignmentsAllPrefersSourceOverFallback(t *testing.T) {
	va := ValueAssignments{
		Source:   ParamSource{"overlapping": {"a", "b"}},
		Fallback: map[string]string{"overlapping": "c"},
	}
	got := va.All("overlapping")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("All() = %v, want [a b]", got)
	}
}

func TestValueAssignmentsAllFromFallbackOnly(t *testing.T) {
	va := ValueAssignments{Fallback: map[string]string{"overlapping": "c"}}
	got := va.All("overlapping")
	if len(got) != 1 || got[0] != "c" {
		t.Errorf("All() = %v, want [c]", got)
	}
}
