// SPDX-License-Identifier: MIT
// Package sets answers how many standard domino sets a tiling consumes.
//
// A standard (double-six) set holds one domino of each of the 28 unordered
// pairs 0|0 … 6|6, so every face value appears on 8 of its 56 halves.
//
// MinSets:
//
//  1. n = max over pairs of the full-domino count. Each set supplies one
//     domino per pair, so fewer sets cannot cover the full dominoes.
//  2. After covering the full dominoes, pair p has n − full[p] spare
//     dominoes. Cutting one yields a half of each of its values, so value v
//     has leftover[v] = Σ_{p ∋ v} (n − full[p]) spare halves (a double
//     counts twice).
//  3. For v = 0..6, while half[v] > leftover[v]: add a set, which adds
//     HalvesPerValue()[v] spare halves to every value.
//
// Every added set strictly raises every leftover count, so the loop ends.
//
// CutList turns a set count into a concrete list of spare dominoes to cut so
// that every required half domino is supplied. The list is valid but not
// guaranteed to minimise the number of cuts.
//
// Errors:
//
//   - ErrInvalidInput: a negative count.
//   - ErrTooFewSets: the set count cannot supply the required dominoes.
package sets
