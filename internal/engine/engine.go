package engine

import (
	"slices"
	"sync"

	"github.com/dshills/annotext/internal/engine/buffer"
	"github.com/dshills/annotext/internal/engine/region"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Engine owns the text snapshot and the regions over it.
type Engine struct {
	mu sync.RWMutex

	text     *buffer.Text
	store    *region.Store
	readOnly bool
	logger   Logger

	storeOpts []region.Option

	textObservers   []func(text string)
	regionObservers []func(regions []region.Region)
}

// New creates an engine over the given text.
func New(text string, opts ...Option) *Engine {
	e := &Engine{
		text:   buffer.New(text),
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.store = region.NewStore(e.storeOpts...)
	e.storeOpts = nil
	return e
}

// OnTextChange registers a function called with the new content after
// every accepted edit.
func (e *Engine) OnTextChange(fn func(text string)) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.textObservers = append(e.textObservers, fn)
}

// OnRegionsChange registers a function called with the region list after
// regions are created, re-anchored, removed or reset.
func (e *Engine) OnRegionsChange(fn func(regions []region.Region)) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.regionObservers = append(e.regionObservers, fn)
}

// Text returns the current content.
func (e *Engine) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text.Raw()
}

// Buffer returns the current text snapshot.
func (e *Engine) Buffer() *buffer.Text {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text
}

// Store returns the region store.
func (e *Engine) Store() *region.Store {
	return e.store
}

// ReadOnly reports whether edits are rejected.
func (e *Engine) ReadOnly() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.readOnly
}

// SetReadOnly sets whether edits are rejected.
func (e *Engine) SetReadOnly(readOnly bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.readOnly = readOnly
}

// RegionCreation reports whether selections may become regions.
func (e *Engine) RegionCreation() bool {
	return e.store.CreationAllowed()
}

// SetRegionCreation sets whether selections may become regions.
func (e *Engine) SetRegionCreation(allowed bool) {
	e.store.SetCreationAllowed(allowed)
}

// SetText replaces the content, re-anchors every region against the
// previous content and notifies observers. It returns false, leaving the
// content untouched, when the engine is read-only.
func (e *Engine) SetText(text string) bool {
	e.mu.Lock()
	if e.readOnly {
		e.mu.Unlock()
		e.logger.Debug("read-only, edit rejected")
		return false
	}
	if text == e.text.Raw() {
		e.mu.Unlock()
		return true
	}

	old := e.text
	e.text = buffer.New(text)
	regions := e.store.Reanchor(old, e.text)
	textObs, regionObs := e.observers()
	e.mu.Unlock()

	for _, fn := range textObs {
		fn(text)
	}
	for _, fn := range regionObs {
		fn(regions)
	}
	return true
}

// Insert inserts s at the given character offset.
func (e *Engine) Insert(offset int, s string) bool {
	if s == "" {
		return !e.ReadOnly()
	}
	buf := e.Buffer()
	offset = buf.ClampOffset(offset)
	return e.SetText(buf.Slice(0, offset) + s + buf.Slice(offset, buf.Len()))
}

// Delete removes the characters between two offsets.
func (e *Engine) Delete(start, end int) bool {
	buf := e.Buffer()
	span := buffer.Span{Start: buf.ClampOffset(start), End: buf.ClampOffset(end)}.Normalize()
	if span.IsEmpty() {
		return !e.ReadOnly()
	}
	return e.SetText(buf.Slice(0, span.Start) + buf.Slice(span.End, buf.Len()))
}

// CommitSelection turns the characters between two offsets into a region.
func (e *Engine) CommitSelection(start, end int) (region.Region, bool) {
	r, ok := e.store.Create(buffer.Span{Start: start, End: end}, e.Buffer())
	if ok {
		e.notifyRegions()
	}
	return r, ok
}

// RemoveRegion deletes the region with the given ID.
func (e *Engine) RemoveRegion(id string) bool {
	ok := e.store.Remove(id)
	if ok {
		e.notifyRegions()
	}
	return ok
}

// RenameRegion changes a region's display name.
func (e *Engine) RenameRegion(id, name string) bool {
	ok := e.store.Rename(id, name)
	if ok {
		e.notifyRegions()
	}
	return ok
}

// Regions returns the regions in creation order.
func (e *Engine) Regions() []region.Region {
	return e.store.List()
}

// RegionAt returns the region under a character offset.
func (e *Engine) RegionAt(offset int) (region.Region, bool) {
	return e.store.At(e.Buffer().PositionOf(offset))
}

// Reset removes every region.
func (e *Engine) Reset() {
	e.store.Reset()
	e.notifyRegions()
}

func (e *Engine) observers() ([]func(string), []func([]region.Region)) {
	return slices.Clone(e.textObservers), slices.Clone(e.regionObservers)
}

func (e *Engine) notifyRegions() {
	e.mu.RLock()
	_, regionObs := e.observers()
	e.mu.RUnlock()

	regions := e.store.List()
	for _, fn := range regionObs {
		fn(regions)
	}
}
