package chooserui

import "github.com/rivo/tview"

// Modal centres p in a box of the given size. A zero width or height
// stretches p over that axis.
func Modal(p tview.Primitive, width, height int) tview.Primitive {
	column := tview.NewFlex().SetDirection(tview.FlexRow)
	if height > 0 {
		column.AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false)
	} else {
		column.AddItem(p, 0, 1, true)
	}
	row := tview.NewFlex()
	if width > 0 {
		row.AddItem(nil, 0, 1, false).
			AddItem(column, width, 0, true).
			AddItem(nil, 0, 1, false)
	} else {
		row.AddItem(column, 0, 1, true)
	}
	return row
}
