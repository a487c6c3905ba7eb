package chooserui

import (
	"github.com/rivo/tview"
)

// App is the part of *tview.Application the chooser view talks to.
type App interface {
	Run() error
	EnableMouse(enable bool)
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
}

type AppOption func(a *appProxy)

func NewApp(app *tview.Application, o ...AppOption) App {
	a := &appProxy{}
	if app != nil {
		a.setFocus = func(p tview.Primitive) {
			_ = app.SetFocus(p)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(enable bool) {
			_ = app.EnableMouse(enable)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, option := range o {
		option(a)
	}
	return a
}

func WithEnableMouse(enableMouse func(enable bool)) AppOption {
	return func(a *appProxy) {
		a.enableMouse = enableMouse
	}
}

func WithSetFocus(setFocus func(p tview.Primitive)) AppOption {
	return func(a *appProxy) {
		a.setFocus = setFocus
	}
}

func WithSetRoot(setRoot func(root tview.Primitive, fullscreen bool)) AppOption {
	return func(a *appProxy) {
		a.setRoot = setRoot
	}
}

func WithRun(run func() error) AppOption {
	return func(a *appProxy) {
		a.run = run
	}
}

func WithStop(stop func()) AppOption {
	return func(a *appProxy) {
		a.stop = stop
	}
}

var _ App = (*appProxy)(nil)

// appProxy calls are no-ops for any function left unset.
type appProxy struct {
	enableMouse func(bool)
	setFocus    func(tview.Primitive)
	setRoot     func(tview.Primitive, bool)
	run         func() error
	stop        func()
}

func (a *appProxy) EnableMouse(enable bool) {
	if a.enableMouse != nil {
		a.enableMouse(enable)
	}
}

func (a *appProxy) SetFocus(p tview.Primitive) {
	if a.setFocus != nil {
		a.setFocus(p)
	}
}

func (a *appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	if a.setRoot != nil {
		a.setRoot(root, fullscreen)
	}
}

func (a *appProxy) Run() error {
	if a.run == nil {
		return nil
	}
	return a.run()
}

func (a *appProxy) Stop() {
	if a.stop != nil {
		a.stop()
	}
}
