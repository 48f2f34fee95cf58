// SPDX-License-Identifier: MIT

// Package linear defines the directed and bounded linear primitives:
// Line (infinite, unit direction), Ray (half-line, direction not normalized)
// and Segment (two endpoints).
package linear
