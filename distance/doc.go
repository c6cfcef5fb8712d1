// Package distance provides Euclidean distance calculations over numeric
// coordinate slices.
//
// Every function accumulates in float64 regardless of the coordinate type,
// so small integer widths never overflow while squaring.
//
// # Coordinate Families
//
//   - Float: plain subtraction in float64
//   - Unsigned: |a-b| is taken before squaring, so no underflow
//   - Signed: the magnitude is computed in uint64 after widening, so no overflow
//
// # Usage
//
//	d := distance.Float([]float64{1, 2}, []float64{4, 6})   // 5
//	d2 := distance.SquaredUnsigned([]uint8{0, 255}, []uint8{255, 0})
package distance
