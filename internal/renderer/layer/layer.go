// Package layer implements the stacked layers of the text surface.
//
// Layers are painted bottom to top into a shared Frame:
//
//	Gutter      line numbers
//	Background  line region colors
//	Syntax      the text itself, colored by the highlighter
//	CharMark    character region highlights
//	Hover       the hovered word and its explanation tooltip
//	Input       selection and caret
//
// Every layer reads scroll position from the same viewport.State while
// painting. Each layer also records the scroll it was last synchronized
// to and counts how often it regenerated its content, so callers can
// verify that scrolling reached every layer and that invalidation only
// rebuilt what it had to.
package layer

import (
	"github.com/dshills/annotext/internal/engine/buffer"
	"github.com/dshills/annotext/internal/engine/region"
	"github.com/dshills/annotext/internal/renderer/viewport"
)

// Kind identifies a layer.
type Kind uint8

const (
	Gutter Kind = iota
	Background
	Syntax
	CharMark
	Hover
	Input
)

// Kinds lists every layer bottom to top.
var Kinds = []Kind{Gutter, Background, Syntax, CharMark, Hover, Input}

func (k Kind) String() string {
	switch k {
	case Gutter:
		return "gutter"
	case Background:
		return "background"
	case Syntax:
		return "syntax"
	case CharMark:
		return "charmark"
	case Hover:
		return "hover"
	case Input:
		return "input"
	default:
		return "unknown"
	}
}

// Snapshot is what layers regenerate from.
type Snapshot struct {
	Text    *buffer.Text
	Regions *region.Store
}

// Layer is one stacked layer.
type Layer interface {
	Kind() Kind

	// Regenerate rebuilds the layer's cached content.
	Regenerate(s Snapshot)

	// Paint draws the layer's visible window into f.
	Paint(f *Frame, vp *viewport.State)

	// Generation counts calls to Regenerate.
	Generation() int

	// SyncScroll records the scroll offset the layer now paints at.
	SyncScroll(sc viewport.Scroll)

	// AppliedScroll returns the last synchronized scroll offset.
	AppliedScroll() viewport.Scroll
}

type base struct {
	kind       Kind
	generation int
	scroll     viewport.Scroll
}

func (b *base) Kind() Kind { return b.kind }
func (b *base) Generation() int { return b.generation }
func (b *base) SyncScroll(sc viewport.Scroll) { b.scroll = sc }
func (b *base) AppliedScroll() viewport.Scroll { return b.scroll }
func (b *base) regenerated() { b.generation++ }
