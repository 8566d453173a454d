package desktop

import (
	"errors"

	"student-manager/models"
	"student-manager/service"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// AddStudent inserts a student and refreshes the table.
func (mw *MainWindow) AddStudent(in models.StudentInput) {
	if _, err := mw.svc.Insert(mw.ctx, in); err != nil {
		mw.notify.Error(err)
	}
	mw.refresh()
}

// Search highlights the matching rows or tells the operator nothing matched.
func (mw *MainWindow) Search(query string) {
	_, err := mw.svc.Search(query)
	if errors.Is(err, service.ErrNotFound) {
		mw.notify.Info("Warning", service.MsgNotFound)
		return
	}
	if err != nil {
		mw.notify.Error(err)
		return
	}

	mw.table.Refresh()
	if sel := mw.grid().Selected(); len(sel) > 0 {
		mw.table.ScrollTo(widget.TableCellID{Row: sel[0], Col: 0})
		mw.statusBar.Show()
	}
}

// UpdateSelected overwrites the selected student.
func (mw *MainWindow) UpdateSelected(in models.StudentInput) {
	if _, err := mw.svc.UpdateCurrent(mw.ctx, in); err != nil {
		mw.notify.Error(err)
	}
	mw.refresh()
}

// DeleteSelected removes the selected student and confirms it.
func (mw *MainWindow) DeleteSelected() {
	res, err := mw.svc.DeleteCurrent(mw.ctx)
	mw.refresh()
	if err != nil {
		mw.notify.Error(err)
		return
	}
	mw.notify.Info("Success", res.Message)
}

func (mw *MainWindow) showInsertDialog() {
	name := widget.NewEntry()
	name.SetPlaceHolder("Name")
	course := widget.NewSelect(models.CourseNames(), nil)
	course.SetSelectedIndex(0)
	mobile := widget.NewEntry()
	mobile.SetPlaceHolder("Mobile nr")

	items := []*widget.FormItem{
		widget.NewFormItem("Name", name),
		widget.NewFormItem("Course", course),
		widget.NewFormItem("Mobile", mobile),
	}
	dialog.ShowForm("Add a student", "Submit", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		mw.AddStudent(models.StudentInput{Name: name.Text, Course: models.Course(course.Selected), Mobile: mobile.Text})
	}, mw.window)
}

func (mw *MainWindow) showSearchDialog() {
	query := widget.NewEntry()
	query.SetPlaceHolder("Name")

	items := []*widget.FormItem{widget.NewFormItem("Search", query)}
	dialog.ShowForm("Search a student", "Search", "Cancel", items, func(ok bool) {
		if ok {
			mw.Search(query.Text)
		}
	}, mw.window)
}

func (mw *MainWindow) showEditDialog() {
	row, ok := mw.grid().Current()
	if !ok {
		mw.notify.Error(service.ErrNoSelection)
		return
	}

	name := widget.NewEntry()
	name.SetText(row.Name)
	name.SetPlaceHolder("Name")
	course := widget.NewSelect(models.CourseNames(), nil)
	course.SetSelected(row.Course)
	mobile := widget.NewEntry()
	mobile.SetText(row.Mobile)
	mobile.SetPlaceHolder("Mobile nr")

	items := []*widget.FormItem{
		widget.NewFormItem("Name", name),
		widget.NewFormItem("Course", course),
		widget.NewFormItem("Mobile", mobile),
	}
	dialog.ShowForm("Edit a student", "Update", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		mw.UpdateSelected(models.StudentInput{Name: name.Text, Course: models.Course(course.Selected), Mobile: mobile.Text})
	}, mw.window)
}

func (mw *MainWindow) showDeleteDialog() {
	if _, ok := mw.grid().Current(); !ok {
		mw.notify.Error(service.ErrNoSelection)
		return
	}
	dialog.ShowConfirm("Delete a student", "Are you sure you want to delete?", func(yes bool) {
		if yes {
			mw.DeleteSelected()
		}
	}, mw.window)
}

func (mw *MainWindow) showAbout() {
	mw.notify.Info("About", aboutText)
}
