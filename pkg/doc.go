// Package pkg provides the core libraries for patternbook's teaching demos.
//
// # Overview
//
// Patternbook packages classic object-oriented design patterns and core
// language concepts as small, importable Go libraries. The pkg directory is
// organized into three main areas:
//
//  1. [patterns] - One package per design pattern (decorator, adapter,
//     factory, observer, strategy, singleton)
//  2. Concept packages - calc, shapes, bank: arithmetic with explicit
//     errors, interface polymorphism, and encapsulation
//  3. [demo] - The catalog and runner tying the examples together
//
// # Architecture
//
// The typical flow through patternbook:
//
//	pkg/demo catalog (one narrative demo per concept)
//	         ↓
//	pkg/demo runner (timing + structured logging)
//	         ↓
//	concept and pattern packages (the actual examples)
//	         ↓
//	pkg/graph + pkg/render (structure diagrams as DOT/SVG/PNG)
//
// Shared plumbing lives in pkg/errors (machine-readable error codes),
// pkg/config (TOML configuration) and pkg/buildinfo (version metadata).
package pkg
