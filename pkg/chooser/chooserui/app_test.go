package chooserui

import (
	"errors"
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func TestNewApp(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		a := NewApp(nil)
		assert.NotNil(t, a)

		a.EnableMouse(true)
		a.SetFocus(nil)
		a.SetRoot(nil, true)
		a.Stop()
		assert.NoError(t, a.Run())
	})
	t.Run("not_nil", func(t *testing.T) {
		app := tview.NewApplication()
		a := NewApp(app)

		ap := a.(*appProxy)
		assert.NotNil(t, ap.enableMouse)
		assert.NotNil(t, ap.setFocus)
		assert.NotNil(t, ap.setRoot)
		assert.NotNil(t, ap.run)
		assert.NotNil(t, ap.stop)

		a.EnableMouse(true)
		root := tview.NewTextView()
		a.SetRoot(root, true)
		a.SetFocus(root)
	})
}

func TestAppProxy_Methods(t *testing.T) {
	var (
		mouseEnabled bool
		focusCalled  bool
		rootCalled   bool
		runCalled    bool
		stopCalled   bool
	)
	runErr := errors.New("run failed")

	a := NewApp(nil,
		WithEnableMouse(func(enable bool) { mouseEnabled = enable }),
		WithSetFocus(func(p tview.Primitive) { focusCalled = true }),
		WithSetRoot(func(root tview.Primitive, fullscreen bool) { rootCalled = true }),
		WithRun(func() error { runCalled = true; return runErr }),
		WithStop(func() { stopCalled = true }),
	)

	a.EnableMouse(true)
	assert.True(t, mouseEnabled)

	a.SetFocus(nil)
	assert.True(t, focusCalled)

	a.SetRoot(nil, true)
	assert.True(t, rootCalled)

	assert.ErrorIs(t, a.Run(), runErr)
	assert.True(t, runCalled)

	a.Stop()
	assert.True(t, stopCalled)
}
