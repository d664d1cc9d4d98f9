package app

import (
	"runtime/debug"

	"github.com/dshills/annotext/internal/lesson"
	"github.com/dshills/annotext/internal/renderer/backend"
)

// eventLoop renders, then handles one input event or lesson update at a
// time, rendering after each, until quit.
func (app *Application) eventLoop() error {
	events := make(chan backend.Event, 64)
	stop := make(chan struct{})
	defer close(stop)

	// PollEvent blocks, so input is read on its own goroutine. The
	// goroutine exits once the backend shuts down after the loop returns.
	go func() {
		for {
			ev := app.backend.PollEvent()
			select {
			case events <- ev:
			case <-stop:
				return
			}
			if ev.Type == backend.EventClosed {
				return
			}
		}
	}()

	var updates <-chan lesson.Update
	if app.watcher != nil {
		updates = app.watcher.Updates()
	}

	app.render()
	for {
		select {
		case <-app.done:
			return nil

		case ev := <-events:
			if err := app.handleEvent(ev); err != nil {
				return err
			}

		case u, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			app.applyUpdate(u)
		}
		app.render()
	}
}

// handleEvent routes one backend event. A panic in a handler is logged
// and swallowed so a bad event never takes the lesson down.
func (app *Application) handleEvent(ev backend.Event) (err error) {
	timer := StartTimer()
	defer func() {
		if r := recover(); r != nil {
			app.metrics.RecordPanic()
			app.logger.Error("%v", &RecoveredPanicError{Value: r, Stack: string(debug.Stack())})
			app.setError("internal error, see log")
			err = nil
		}
		app.metrics.RecordEvent(timer.Elapsed())
	}()

	switch ev.Type {
	case backend.EventResize:
		app.resize(ev.Width, ev.Height)
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		app.handleMouse(ev)
	case backend.EventClosed:
		return ErrQuit
	}
	return nil
}

// applyUpdate swaps in a reloaded lesson. Regions are re-anchored against
// the new source like any other edit.
func (app *Application) applyUpdate(u lesson.Update) {
	if u.Err != nil {
		app.logger.Warn("lesson reload failed: %v", u.Err)
		app.setError("reload failed: " + u.Err.Error())
		return
	}
	app.metrics.RecordReload()
	app.reloadLesson(u.Lesson)
}

// resize lays the surface out for a display of width by height cells. The
// bottom row is the status line when there is room for it.
func (app *Application) resize(width, height int) {
	if height > 1 {
		height--
	}
	app.compositor.Resize(width, height)
	if app.backend != nil {
		app.backend.Clear()
	}
}

func (app *Application) render() {
	if app.backend == nil {
		return
	}
	timer := StartTimer()
	app.drawStatus()
	app.compositor.Render(app.backend)
	app.metrics.RecordRender(timer.Elapsed())
}

func (app *Application) drawStatus() {
	width, height := app.backend.Size()
	if height < 2 {
		return
	}
	app.syncStatus()
	app.statusline.Resize(width)
	app.statusline.Render(app.backend, height-1)
}
