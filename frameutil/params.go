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

// Package frameutil implements the parameter ingest, factory, formatting and
// CLI glue around the frame engine itself.
package frameutil

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mbedward/frame"
	"github.com/spf13/cast"
)

// ParamSource is a parsed parameter file: a repeated key accumulates values
// in the order they were read, mirroring the "key, value" line format of
// plain-text site description files.
type ParamSource map[string][]string

// ParseParams reads "key = value" lines from r. Blank lines and lines
// starting with '#' are ignored.
func ParseParams(r io.Reader) (ParamSource, error) {
	ps := ParamSource{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("frameutil: malformed parameter line %q", line)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		ps[key] = append(ps[key], value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ps, nil
}

// First returns the first value recorded for key, if any.
func (ps ParamSource) First(key string) (string, bool) {
	vs, ok := ps[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// ValueAssignments resolves a parameter lookup against a ParamSource,
// falling back to a secondary map when the key is absent from the source.
// MissingFallback is returned (as *frame.MissingFallbackError) when the key
// appears in neither.
type ValueAssignments struct {
	Source   ParamSource
	Fallback map[string]string
}

func (va ValueAssignments) value(key string) (string, error) {
	if v, ok := va.Source.First(key); ok {
		return v, nil
	}
	if v, ok := va.Fallback[key]; ok {
		return v, nil
	}
	return "", &frame.MissingFallbackError{Key: key}
}

// String returns the resolved value for key.
func (va ValueAssignments) String(key string) (string, error) {
	return va.value(key)
}

// Float resolves key and casts it to float64.
func (va ValueAssignments) Float(key string) (float64, error) {
	v, err := va.value(key)
	if err != nil {
		return 0, err
	}
	return cast.ToFloat64E(v)
}

// Int resolves key and casts it to int.
func (va ValueAssignments) Int(key string) (int, error) {
	v, err := va.value(key)
	if err != nil {
		return 0, err
	}
	return cast.ToIntE(v)
}

// All returns every value recorded for key in the source, falling back to a
// single-element slice from Fallback, or nil if the key is absent from both.
func (va ValueAssignments) All(key string) []string {
	if vs, ok := va.Source[key]; ok {
		return vs
	}
	if v, ok := va.Fallback[key]; ok {
		return []string{v}
	}
	return nil
}
