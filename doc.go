// Package metaphysics builds a die out of dominoes.
//
// 🚀 What is metaphysics?
//
//	A small, dependency-light toolkit that:
//		• Lays one closed domino train over the six sides of a cube along a Hilbert curve
//		• Numbers every square with its domino, term and face value
//		• Extracts the full and half dominoes covering each dot and white area
//		• Computes how many double-six sets the whole die needs, plus a cut list
//
// Packages:
//
//	hilbert/  Hilbert curve distance ↔ point mapping (2D, order p)
//	train/    square numbering: domino, term, face value, partner square
//	cube/     side layout, global coordinates and the region catalog
//	domino/   full/half extraction and parallel count aggregation
//	sets/     minimum double-six sets, leftovers and cut list
//	report/   plain data summaries with JSON and YAML output
//	config/   YAML + environment configuration
//	cmd/      the metaphysics CLI
//
// Quick ASCII example, the order-1 curve on one side:
//
//	1───2
//	│   │
//	0   3
//
// Squares 1 and 2 share a domino; square 0 is the trailing half of the last
// domino of the train, which closes around the die.
//
//	go install github.com/katalvlaran/metaphysics/cmd/metaphysics@latest
package metaphysics
