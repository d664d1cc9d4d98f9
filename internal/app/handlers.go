package app

import (
	"unicode/utf8"

	"github.com/dshills/annotext/internal/engine/buffer"
	"github.com/dshills/annotext/internal/lesson"
	"github.com/dshills/annotext/internal/renderer/backend"
	"github.com/dshills/annotext/internal/renderer/highlight"
	"github.com/dshills/annotext/internal/renderer/pointer"
	"github.com/dshills/annotext/internal/renderer/selection"
	"github.com/dshills/annotext/internal/renderer/statusline"
)

// Scroll step of one wheel notch.
const (
	wheelLines = 3
	wheelCols  = 4
)

func (app *Application) handleKey(ev backend.Event) error {
	c := app.compositor
	switch ev.Key {
	case backend.KeyCtrlQ, backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyCtrlR:
		app.commitSelection()
	case backend.KeyCtrlE:
		app.toggleExplain()
	case backend.KeyCtrlD:
		app.removeRegionAtCaret()
	case backend.KeyEscape:
		c.Selection().Clear()
		c.ClearHover()
		app.statusline.ClearMessage()

	case backend.KeyRune:
		app.insert(string(ev.Rune))
	case backend.KeyEnter:
		app.insert("\n")
	case backend.KeyTab:
		app.insert("\t")
	case backend.KeyBackspace:
		if caret := c.Caret(); caret > 0 && app.edit(app.engine.Delete(caret-1, caret)) {
			c.SetCaret(caret - 1)
		}
	case backend.KeyDelete:
		caret := c.Caret()
		if app.edit(app.engine.Delete(caret, caret+1)) {
			c.SetCaret(caret)
		}

	case backend.KeyLeft:
		c.MoveCaret(0, -1)
	case backend.KeyRight:
		c.MoveCaret(0, 1)
	case backend.KeyUp:
		c.MoveCaret(-1, 0)
	case backend.KeyDown:
		c.MoveCaret(1, 0)
	case backend.KeyHome:
		buf := app.engine.Buffer()
		c.SetCaret(buf.LineStartOffset(c.CaretPosition().Line))
	case backend.KeyEnd:
		buf := app.engine.Buffer()
		line := c.CaretPosition().Line
		c.SetCaret(buf.LineStartOffset(line) + buf.LineLen(line))
	case backend.KeyPageUp:
		c.ScrollBy(-max(c.Viewport().VisibleLines(), 1), 0)
	case backend.KeyPageDown:
		c.ScrollBy(max(c.Viewport().VisibleLines(), 1), 0)
	}
	return nil
}

func (app *Application) insert(s string) {
	caret := app.compositor.Caret()
	if app.edit(app.engine.Insert(caret, s)) {
		app.compositor.SetCaret(caret + utf8.RuneCountInString(s))
	}
}

// edit reports whether an edit was accepted, noting a rejection.
func (app *Application) edit(accepted bool) bool {
	if !accepted {
		app.setWarning("text is read-only")
	}
	return accepted
}

func (app *Application) commitSelection() {
	span, ok := app.compositor.TakeSelection()
	if !ok {
		app.setWarning("select some code first")
		return
	}
	r, ok := app.engine.CommitSelection(span.Start, span.End)
	if !ok {
		if !app.engine.RegionCreation() {
			app.setWarning("region creation is disabled")
		} else {
			app.setWarning("nothing to tag in that selection")
		}
		return
	}
	info := r.RegionInfo()
	app.logger.Info("created %s (%s) at %v", info.Name, info.ID, r)
	app.setStatus("created " + info.Name)
}

func (app *Application) removeRegionAtCaret() {
	r, ok := app.engine.RegionAt(app.compositor.Caret())
	if !ok {
		app.setWarning("no region under the caret")
		return
	}
	info := r.RegionInfo()
	if app.engine.RemoveRegion(info.ID) {
		app.logger.Info("removed %s (%s)", info.Name, info.ID)
		app.setStatus("removed " + info.Name)
	}
}

func (app *Application) toggleExplain() {
	on := !app.compositor.ExplainMode()
	app.compositor.SetExplainMode(on)
	if on {
		app.setStatus("explain mode: point at code")
	} else {
		app.setStatus("explain mode off")
	}
}

func (app *Application) handleMouse(ev backend.Event) {
	c := app.compositor
	switch ev.MouseButton {
	case backend.MouseWheelUp:
		c.ScrollBy(-wheelLines, 0)
	case backend.MouseWheelDown:
		c.ScrollBy(wheelLines, 0)
	case backend.MouseWheelLeft:
		c.ScrollBy(0, -wheelCols)
	case backend.MouseWheelRight:
		c.ScrollBy(0, wheelCols)

	case backend.MouseLeft:
		if app.pressed {
			if p, ok := app.clampedPixel(ev.MouseX, ev.MouseY); ok {
				c.PointerDrag(p.X, p.Y)
			}
			return
		}
		p, ok := c.CellPixel(ev.MouseX, ev.MouseY)
		if !ok {
			return
		}
		app.pressed = true
		c.ClearHover()
		c.PointerDown(p.X, p.Y)

	case backend.MouseNone:
		if app.pressed {
			app.pressed = false
			p, ok := app.clampedPixel(ev.MouseX, ev.MouseY)
			if !ok {
				return
			}
			if c.PointerUp(p.X, p.Y) == selection.SelectionReady {
				app.setStatus("Ctrl-R tags the selection as a region")
			}
			return
		}
		if c.ExplainMode() {
			if p, ok := c.CellPixel(ev.MouseX, ev.MouseY); ok {
				c.Hover(p.X, p.Y)
			} else {
				c.ClearHover()
			}
		}
	}
}

// clampedPixel maps a cell to a pixel, pulling cells outside the text area
// onto its nearest edge so a drag past the edge keeps selecting. ok is
// false when there is no text area to pull onto.
func (app *Application) clampedPixel(col, row int) (pointer.Point, bool) {
	c := app.compositor
	width, height := c.Size()
	rows := min(height, c.Viewport().VisibleLines())
	if rows <= 0 || width <= c.GutterWidth() {
		return pointer.Point{}, false
	}
	col = min(max(col, c.GutterWidth()), width-1)
	row = min(max(row, 0), rows-1)
	return c.CellPixel(col, row)
}

// reloadLesson replaces the lesson content. The source goes through the
// engine even when the text is read-only for the learner, so regions are
// re-anchored against the new source.
func (app *Application) reloadLesson(l *lesson.Lesson) {
	prev := app.lesson
	app.lesson = l

	if l.Language != prev.Language {
		app.compositor.SetHighlighter(highlight.NewChroma(l.Language, app.config.View.Style))
	}
	app.compositor.SetIndex(l.Index())
	app.warnUnanchored(l)

	readOnly := app.engine.ReadOnly()
	app.engine.SetReadOnly(false)
	app.engine.SetText(l.Source)
	app.engine.SetReadOnly(readOnly)

	app.logger.Info("reloaded lesson %q from %s", l.Title, l.Path)
	app.setStatus("reloaded " + l.Title)
}

// warnUnanchored logs lesson explanations whose code is not on their line.
// Those are only shown as the fallback for their line.
func (app *Application) warnUnanchored(l *lesson.Lesson) {
	text := buffer.New(l.Source)
	for _, e := range l.Index().Unanchored(text.Line) {
		app.logger.Warn("lesson %s: line %d does not contain %q", l.Path, e.Line, e.Code)
	}
}

func (app *Application) setStatus(msg string) {
	app.statusline.SetMessage(msg, statusline.MessageInfo)
}

func (app *Application) setWarning(msg string) {
	app.statusline.SetMessage(msg, statusline.MessageWarning)
}

func (app *Application) setError(msg string) {
	app.statusline.SetMessage(msg, statusline.MessageError)
}

// syncStatus copies the lesson, region and caret state into the status
// line.
func (app *Application) syncStatus() {
	s := app.statusline
	s.SetTitle(app.lesson.Title)
	s.SetRegions(len(app.engine.Regions()), app.lesson.MinRegions)
	s.SetExplain(app.compositor.ExplainMode())
	s.SetReadOnly(app.engine.ReadOnly())
	pos := app.compositor.CaretPosition()
	s.SetPosition(pos.Line, pos.Char)
}

// statusText is the left-hand text of the bottom row.
func (app *Application) statusText() string {
	app.syncStatus()
	return app.statusline.Text()
}
