// Package ink is the freehand-annotation engine behind the viewstage
// document-camera application.
//
// # Overview
//
// ink turns noisy high-frequency pointer samples into a compact vector
// representation and back into pixels. The host application owns all
// stroke data; every operation here is a pure function of its inputs.
// The pipeline for an interactive gesture is:
//
//	raw samples -> CollectPoints -> Simplify / Smooth -> CullStrokes ->
//	BatchCommands -> host renderer
//
// and, when a gesture is finalized:
//
//	stroke list (+ optional base image) -> Composite -> flattened pixmap
//
// # Quick Start
//
//	import "github.com/viewstage/ink"
//
//	cfg := ink.DefaultConfig()
//	var cur ink.Cursor
//
//	// Per pointer event: admit new samples.
//	committed, cur := ink.CollectPoints(samples, cur, now, cfg)
//
//	// On gesture end: reduce the path, then flatten.
//	points := ink.Simplify(committed, cfg.Epsilon)
//	pm := ink.Composite(nil, []ink.Stroke{stroke}, 1280, 720)
//	pm.SavePNG("annotated.png")
//
// # Coordinate System
//
// Standard computer graphics coordinates: origin (0,0) at top-left,
// X increases right, Y increases down. Times are host-defined units
// (the reference host passes milliseconds).
//
// # Concurrency
//
// Nothing in this package blocks, spawns goroutines, or keeps hidden
// state. The only state carried between calls is the explicit Cursor
// value. Calls that share host data must be serialized by the host.
package ink
