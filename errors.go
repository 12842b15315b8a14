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

import "fmt"

// InvalidInputError is returned when a construction-time invariant on a
// Species, Stratum or CrownPoly is violated. No partially built value is
// ever returned alongside this error.
type InvalidInputError struct {
	Entity string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("frame: invalid %s: %s", e.Entity, e.Reason)
}

func invalidInput(entity, format string, args ...interface{}) error {
	return &InvalidInputError{Entity: entity, Reason: fmt.Sprintf(format, args...)}
}

// GeometryFailureError is returned when a geometric operation has no
// solution for the given inputs, e.g. Line.originOnLine with an angle
// parallel to the line.
type GeometryFailureError struct {
	Op     string
	Reason string
}

func (e *GeometryFailureError) Error() string {
	return fmt.Sprintf("frame: geometry failure in %s: %s", e.Op, e.Reason)
}

func geometryFailure(op, format string, args ...interface{}) error {
	return &GeometryFailureError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// MissingFallbackError is returned by a fallback-value lookup when a key is
// present in neither the supplied parameters nor the fallback provider.
type MissingFallbackError struct {
	Key string
}

func (e *MissingFallbackError) Error() string {
	return fmt.Sprintf("frame: no value or fallback for key %q", e.Key)
}

// InvalidOverlapTypeError is returned when a stratum-overlap parameter
// names neither "overlapped", "not overlapped" nor "automatic".
type InvalidOverlapTypeError struct {
	Value string
}

func (e *InvalidOverlapTypeError) Error() string {
	return fmt.Sprintf("frame: invalid overlap type %q", e.Value)
}
