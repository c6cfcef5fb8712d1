// Package conv provides checked integer conversion and accumulation utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when summing coordinates in a wide accumulator and narrowing the result back
// into the coordinate's own width.
//
// Use cases:
//   - Computing integer centroids without silently wrapping
//   - Converting Go's int (platform-dependent) into fixed-width member indices
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
