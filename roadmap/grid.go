// SPDX-License-Identifier: MIT
//
// grid.go - Grid(rows, cols, spacing) generator.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and spacing > 0 (else ErrBadDimensions).
//   • Intersection IDs are r*cols + c in row-major order.
//   • Intersection (r,c) sits at (c*spacing, r*spacing).
//   • Roads connect each cell to its right and bottom neighbors.
//
// Grids are the tie-heaviest maps there are: every monotone staircase between
// two corners has the same length. They exercise frontier tie-breaking.

package roadmap

import (
	"fmt"
	"math"
)

// Grid builds a rows×cols orthogonal street grid.
func Grid(rows, cols int, spacing float64, opts ...Option) (*Map[int], error) {
	// 1) Validate parameters early (no partial work).
	if rows < 1 || cols < 1 || !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d, spacing=%v", ErrBadDimensions, rows, cols, spacing)
	}

	m := New[int](opts...)

	// 2) Add intersections in row-major order.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := m.AddIntersection(r*cols+c, float64(c)*spacing, float64(r)*spacing); err != nil {
				return nil, err
			}
		}
	}

	// 3) Emit Right then Bottom roads for each cell.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				if err := m.AddRoad(u, u+1); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := m.AddRoad(u, u+cols); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}
