// Package tracking detects where whole lines were inserted or deleted between
// two versions of a text.
//
// Region re-anchoring only needs line-shift events: a line that merely changed
// its content keeps its position, so substitutions are not reported. The
// result of a detection is a [Delta], an ordered list of [LineEdit] values.
//
// # Detectors
//
// Two strategies implement [Detector]:
//
//   - [SingleHunkDetector] compares line counts and attributes the whole count
//     difference to the first line that differs. It cannot see several
//     disjoint edits in one update, and an update that both inserts and
//     deletes lines collapses into its net effect. This is the default and
//     matches how the annotation surface has always re-anchored.
//   - [MyersDetector] runs a line-level Myers diff and reports every hunk, so
//     multi-hunk updates such as find-and-replace shift each region by the
//     edits that actually precede it.
//
// Use [NewDetector] to select a strategy by name.
//
// # Positions
//
// Edit positions are 1-based line numbers. Edits in a Delta are applied in
// order, and each edit's position is expressed in the line numbering that
// results from applying the edits before it.
package tracking
