// Package gardengrid is an in-memory toolkit for analyzing rectangular
// gardens of plant labels: region discovery, perimeter accounting, and
// hole-aware side counting for fence pricing.
//
// 🚀 What is gardengrid?
//
//	A small, pure-Go library that brings together:
//		• Garden: a validated, immutable grid of plant labels
//		• Regions: maximal 4-connected same-plant regions in one O(W×H) pass
//		• Pricing: area×perimeter and area×sides fence totals
//		• Side merging: distinct straight fence runs, concave shapes and
//		  enclosed holes counted correctly
//
// ✨ Why choose gardengrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – validated inputs, iterative fill, in-code docs
//   - Pure Go – no cgo, no hidden deps
//
// Everything lives under one subpackage:
//
//	garden/ — Garden, Region, edge classification, side merging, pricing
//
// Quick ASCII example:
//
//	    AAAA
//	    BBCD
//	    BBCC
//	    EEEC
//
//	partitions into five regions (A, B, C, D, E); the C region is the
//	staircase with 8 sides.
//
// Dive into the garden package docs for the full API and the examples/
// directory for a runnable scenario.
//
//	go get github.com/katalvlaran/gardengrid/garden
package gardengrid
