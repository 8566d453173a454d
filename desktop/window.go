// Package desktop is the windowed front-end: a table of students, a toolbar,
// and dialogs for add, search, edit and delete.
package desktop

import (
	"context"

	"student-manager/grid"
	"student-manager/logger"
	"student-manager/service"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	AppID     = "com.studentmanager.desktop"
	AppName   = "Student Management System"
	aboutText = "Student Management System.\nKeeps the students table in a school database up to date."

	MinWindowWidth  = 600
	MinWindowHeight = 400
)

var columnWidths = []float32{60, 200, 140, 160}

// Notifier shows blocking messages to the operator.
type Notifier interface {
	Info(title, message string)
	Error(err error)
}

type dialogNotifier struct {
	window fyne.Window
}

func (n dialogNotifier) Info(title, message string) {
	dialog.ShowInformation(title, message, n.window)
}

func (n dialogNotifier) Error(err error) {
	dialog.ShowError(err, n.window)
}

// MainWindow owns the table widget and wires every action to the service.
type MainWindow struct {
	ctx       context.Context
	svc       *service.StudentService
	log       *logger.Logger
	window    fyne.Window
	notify    Notifier
	table     *widget.Table
	statusBar *fyne.Container
}

// Run opens the window, loads the table and blocks until it is closed.
func Run(ctx context.Context, svc *service.StudentService, log *logger.Logger) error {
	fyneApp := app.NewWithID(AppID)
	mw := NewMainWindow(ctx, fyneApp, svc, log)
	mw.window.SetMaster()
	mw.window.Show()
	mw.Reload()

	fyneApp.Run()
	return nil
}

func NewMainWindow(ctx context.Context, fyneApp fyne.App, svc *service.StudentService, log *logger.Logger) *MainWindow {
	if log == nil {
		log = logger.Nop()
	}
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(MinWindowWidth, MinWindowHeight))

	mw := &MainWindow{
		ctx:    ctx,
		svc:    svc,
		log:    log.Component("desktop"),
		window: window,
		notify: dialogNotifier{window: window},
	}

	mw.table = mw.buildTable()
	mw.statusBar = container.NewHBox(
		widget.NewButton("Edit record", mw.showEditDialog),
		widget.NewButton("Delete record", mw.showDeleteDialog),
	)
	mw.statusBar.Hide()

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentAddIcon(), mw.showInsertDialog),
		widget.NewToolbarAction(theme.SearchIcon(), mw.showSearchDialog),
	)

	window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File", fyne.NewMenuItem("Add Student", mw.showInsertDialog)),
		fyne.NewMenu("Edit", fyne.NewMenuItem("Search", mw.showSearchDialog)),
		fyne.NewMenu("Help", fyne.NewMenuItem("About", mw.showAbout)),
	))
	window.SetContent(container.NewBorder(toolbar, mw.statusBar, nil, nil, mw.table))

	return mw
}

func (mw *MainWindow) Window() fyne.Window {
	return mw.window
}

func (mw *MainWindow) grid() *grid.Grid {
	return mw.svc.Grid()
}

func (mw *MainWindow) buildTable() *widget.Table {
	g := mw.grid()

	table := widget.NewTable(
		func() (int, int) { return g.Len(), len(grid.Header) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			// выделенные поиском строки показываем жирным
			label.TextStyle = fyne.TextStyle{Bold: g.IsSelected(id.Row)}
			label.SetText(g.Cell(id.Row, id.Col))
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject { return widget.NewLabel("") }
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(grid.Header) {
			o.(*widget.Label).SetText(grid.Header[id.Col])
		}
	}
	for col, width := range columnWidths {
		table.SetColumnWidth(col, width)
	}

	table.OnSelected = func(id widget.TableCellID) {
		if g.SelectRow(id.Row) {
			mw.statusBar.Show()
			table.Refresh()
		}
	}

	return table
}

// Reload refreshes the table from the store. Errors go to the operator.
func (mw *MainWindow) Reload() {
	if err := mw.svc.Load(mw.ctx); err != nil {
		mw.log.Error("load failed", err, nil)
		mw.notify.Error(err)
	}
	mw.refresh()
}

func (mw *MainWindow) refresh() {
	mw.table.UnselectAll()
	mw.table.Refresh()
	if _, ok := mw.grid().Current(); !ok {
		mw.statusBar.Hide()
	}
}
