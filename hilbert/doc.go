// Package hilbert maps between points of a 2^p × 2^p integer grid and their
// distance along a Hilbert curve of order p.
//
// What:
//
//   - Curve is an immutable codec for one order p ≥ 1 in two dimensions.
//   - Distance / Point convert a single point or distance.
//   - Distances / Points convert batches, preserving input order.
//
// Orientation:
//
//	The curve starts at (0,0) and ends at (2^p−1, 0). X is the first
//	coordinate of the transposed form, Y the second, following Skilling's
//	"Programming the Hilbert curve" (AIP Conf. Proc. 707, 2004).
//
//	  (0,3)─(1,3)  (2,3)─(3,3)
//	    │     │      │     │
//	  (0,2) (1,2)─(2,2) (3,2)
//	    │                  │
//	  (0,1)─(1,1)  (2,1)─(3,1)
//	          │      │
//	  (0,0)─(1,0)  (2,0)─(3,0)
//	  start                end
//
// Complexity:
//
//   - Distance, Point: O(p) time, O(1) memory.
//   - Distances, Points: O(k·p) for k inputs.
//
// Errors:
//
//   - ErrInvalidOrder: order < 1 or too large for an int distance.
//   - ErrPointOutOfGrid: a coordinate lies outside [0, 2^p).
//   - ErrDistanceOutOfRange: a distance lies outside [0, 4^p).
package hilbert
