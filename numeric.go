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

import "math"

// epsilon is the single numeric tolerance used for all near-equality
// comparisons in the package, per the centralization design note.
const epsilon = 1e-6

// almostZero reports whether v is within epsilon of zero.
func almostZero(v float64) bool {
	return math.Abs(v) < epsilon
}

// gt reports whether a is greater than b by more than epsilon.
func gt(a, b float64) bool {
	return a-b > epsilon
}

// distinctFrom reports whether a and b differ by more than epsilon.
func distinctFrom(a, b float64) bool {
	return math.Abs(a-b) > epsilon
}

// maxFloat and minFloat avoid pulling in gonum/floats for two-argument
// comparisons, which math.Max/math.Min already provide; kept as named
// wrappers purely so call sites read like plain max(...)/min(...).
func maxFloat(a, b float64) float64 { return math.Max(a, b) }
func minFloat(a, b float64) float64 { return math.Min(a, b) }
