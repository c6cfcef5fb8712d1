// Package point provides ready-made coordinate types for k-means clustering.
//
// Fixed-arity tuples cover two, three and four dimensions over float, unsigned
// and signed coordinates:
//
//	p := point.Float2[float64]{1.5, 2}
//	q := point.Uint3[uint8]{10, 20, 30}
//	r := point.Int4[int16]{-1, 0, 1, 2}
//
// Vector is a dense, arbitrary-length float64 point backed by gonum.
//
// All types use Euclidean distance. Integer means are truncated toward zero
// and narrowed back into the coordinate type; a mean that cannot be
// represented returns an error wrapping ErrOverflow instead of wrapping around.
package point
