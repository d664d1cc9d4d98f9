// Package engine is the edit and read surface of an annotated text view.
//
// An Engine holds the current text snapshot and the region store. Every
// edit replaces the snapshot wholesale, re-anchors all regions against the
// previous snapshot and then notifies observers, so anything rendering from
// the engine always sees regions that match the text.
//
// # Sub-packages
//
//   - buffer: immutable text snapshots and offset/position conversion
//   - tracking: line insert/delete detection between two snapshots
//   - region: the region model and store
//
// # Usage
//
//	e := engine.New("a\nb\nc")
//	e.OnRegionsChange(func(rs []region.Region) { ... })
//
//	r, ok := e.CommitSelection(2, 3) // character region around "b"
//	e.SetText("x\ny\na\nb\nc")       // r moves to line 4
//
// The engine is meant to be driven from a single event loop. Its methods
// are safe to call from several goroutines, but observers run synchronously
// on the caller's goroutine after the engine lock is released.
package engine
