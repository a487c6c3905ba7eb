package chooserui

import (
	"testing"

	"github.com/filetug/filechooser/pkg/tuitest"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func TestModal(t *testing.T) {
	screen := tuitest.NewSimScreen(t, 40, 15)

	t.Run("centered", func(t *testing.T) {
		box := tview.NewBox()
		tuitest.Draw(screen, Modal(box, 20, 5))
		x, y, width, height := box.GetRect()
		assert.Equal(t, []int{10, 5, 20, 5}, []int{x, y, width, height})
	})
	t.Run("stretched", func(t *testing.T) {
		box := tview.NewBox()
		tuitest.Draw(screen, Modal(box, 0, 0))
		x, y, width, height := box.GetRect()
		assert.Equal(t, []int{0, 0, 40, 15}, []int{x, y, width, height})
	})
}
