// Package train numbers the squares of a closed domino train.
//
// Every square s ≥ 0 on the train carries three derived attributes:
//
//	Domino(s)    = ⌊(s+1)/2⌋ + 1   which domino covers s (1-based)
//	Term(s)      = ⌊(s+1)/4⌋ + 1   which two-fraction product term s belongs to
//	FaceValue(s) ∈ {0..6}          the pips printed on that half of the domino
//
// The train deliberately begins mid-domino: square 0 is the trailing half of
// domino 1, so squares (1,2), (3,4), ... form whole dominoes. On a closed
// train of even length L the last square L−1 is the leading half of the same
// physical domino as square 0, which Train.Partner accounts for.
//
// Face values come from a Wallis-like alternating product. Term t yields the
// fractions n1/shared · shared/n2 with
//
//	n1     = (2t − 1) mod 7
//	shared = (2t + ⌊(t−1)/7⌋) mod 7
//	n2     = (2t + 1) mod 7
//
// and the four squares of the term take, by (s+1) mod 4 = 0,1,2,3, the values
// n1, shared, shared, n2.
//
// All functions are pure; negative squares are a precondition violation.
package train
