// Package scenario loads grid layouts from HCL so searches can be reproduced
// without interactive input.
//
// A scenario file looks like:
//
//	size  = 20
//	start = [0, 0]
//	end   = [size - 1, size - 1]
//
//	barrier "wall" {
//	  from = [2, 0]
//	  to   = [2, size - 2]
//	}
//
// `size` is decoded first and is then available as a variable to every other
// expression. A barrier block fills the inclusive rectangle spanned by `from`
// and `to`; without `to` it is a single cell. Coordinates are [row, col].
package scenario
