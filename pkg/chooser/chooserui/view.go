package chooserui

import (
	"context"

	"github.com/filetug/filechooser/pkg/chooser"
	"github.com/filetug/filechooser/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	nameColIndex = 0
	sizeColIndex = 1

	selectDirectoryLabel = "Select this directory"
	noEntriesText        = "No entries"
)

// View draws a chooser dialog and forwards user actions to it.
// It holds no navigation state of its own.
type View struct {
	*tview.Flex
	ctx    context.Context
	app    App
	dialog *chooser.Dialog

	titleBar  *tview.TextView
	parentBtn *tview.Button
	location  *tview.TextView
	table     *tview.Table
	selectDir *tview.Button

	doneFunc func()
}

// NewView builds the widgets for dialog and shows the storage root.
func NewView(ctx context.Context, app App, dialog *chooser.Dialog) *View {
	v := &View{
		Flex:   tview.NewFlex().SetDirection(tview.FlexRow),
		ctx:    ctx,
		app:    app,
		dialog: dialog,
	}
	v.SetBorder(true)
	v.SetBorderColor(Style.BorderColor)
	v.SetTitle(" " + tview.Escape(dialog.Store().RootTitle()) + " ")
	v.SetTitleColor(Style.TitleColor)

	if dialog.HasTitle() {
		v.titleBar = tview.NewTextView().
			SetText(dialog.Title()).
			SetTextAlign(tview.AlignCenter).
			SetTextColor(Style.TitleColor)
		v.AddItem(v.titleBar, 1, 0, false)
	}

	parentLabel := string(dialog.PreviousDirectoryIcon())
	v.parentBtn = tview.NewButton(parentLabel).SetSelectedFunc(func() {
		v.dialog.GoToParent(v.ctx)
	})
	v.location = tview.NewTextView().SetTextColor(Style.LocationColor)
	header := tview.NewFlex().
		AddItem(v.parentBtn, tview.TaggedStringWidth(parentLabel)+2, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(v.location, 0, 1, false)
	v.AddItem(header, 1, 0, false)

	v.table = tview.NewTable().SetSelectable(true, false)
	v.table.SetSelectedFunc(func(row, _ int) {
		v.selectRow(row)
	})
	v.AddItem(v.table, 0, 1, true)

	if dialog.ShowsSelectDirectory() {
		v.selectDir = tview.NewButton(selectDirectoryLabel).SetSelectedFunc(v.dialog.SelectDirectory)
		v.AddItem(v.selectDir, 1, 0, false)
	}

	v.SetInputCapture(v.inputCapture)
	dialog.SetChangedFunc(v.render).SetDismissFunc(v.onDismiss)
	dialog.Show(ctx)
	return v
}

// SetDoneFunc sets a handler called when the dialog is dismissed.
// Without one the view stops the application.
func (v *View) SetDoneFunc(f func()) *View {
	v.doneFunc = f
	return v
}

func (v *View) Dialog() *chooser.Dialog {
	return v.dialog
}

func (v *View) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		v.dialog.Cancel()
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyLeft:
		v.dialog.GoToParent(v.ctx)
		return nil
	case tcell.KeyCtrlS:
		if !v.dialog.ShowsSelectDirectory() {
			return event
		}
		v.dialog.SelectDirectory()
		return nil
	case tcell.KeyTab:
		v.cycleFocus(1)
		return nil
	case tcell.KeyBacktab:
		v.cycleFocus(-1)
		return nil
	default:
		return event
	}
}

func (v *View) focusables() []tview.Primitive {
	items := []tview.Primitive{v.table, v.parentBtn}
	if v.selectDir != nil {
		items = append(items, v.selectDir)
	}
	return items
}

func (v *View) cycleFocus(step int) {
	items := v.focusables()
	current := 0
	for i, p := range items {
		if p.HasFocus() {
			current = i
			break
		}
	}
	next := (current + step + len(items)) % len(items)
	v.app.SetFocus(items[next])
}

func (v *View) selectRow(row int) {
	cell := v.table.GetCell(row, nameColIndex)
	if cell == nil {
		return
	}
	item, ok := cell.GetReference().(chooser.Item)
	if !ok {
		return
	}
	v.dialog.SelectItem(v.ctx, item)
}

func (v *View) render() {
	v.location.SetText(v.dialog.CurrentDirName())
	v.table.Clear()
	items := v.dialog.Items()
	if len(items) == 0 {
		v.table.SetSelectable(false, false)
		v.table.SetCell(0, nameColIndex, tview.NewTableCell(noEntriesText).
			SetTextColor(Style.EmptyColor).
			SetSelectable(false))
		return
	}
	v.table.SetSelectable(true, false)
	for row, item := range items {
		v.table.SetCell(row, nameColIndex, nameCell(item))
		v.table.SetCell(row, sizeColIndex, sizeCell(item))
	}
	v.table.Select(0, nameColIndex)
	v.table.ScrollToBeginning()
}

func nameCell(item chooser.Item) *tview.TableCell {
	color := Style.DirectoryColor
	if !item.IsDir {
		color = FileColor(item.Name())
	}
	return tview.NewTableCell(string(item.Icon) + " " + tview.Escape(item.Name())).
		SetReference(item).
		SetTextColor(color).
		SetExpansion(1)
}

func sizeCell(item chooser.Item) *tview.TableCell {
	var text string
	if !item.IsDir {
		text = fsutils.GetSizeShortText(item.Size)
	}
	return tview.NewTableCell(text).
		SetAlign(tview.AlignRight).
		SetTextColor(Style.SizeColor)
}

func (v *View) onDismiss() {
	if v.doneFunc != nil {
		v.doneFunc()
		return
	}
	v.app.Stop()
}
