package desktop

import (
	"context"
	"testing"

	"student-manager/database/dbtest"
	"student-manager/grid"
	"student-manager/models"
	"student-manager/service"
	"student-manager/store"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedNote struct {
	title, message string
	err            error
}

type recorder struct {
	notes []recordedNote
}

func (r *recorder) Info(title, message string) {
	r.notes = append(r.notes, recordedNote{title: title, message: message})
}

func (r *recorder) Error(err error) {
	r.notes = append(r.notes, recordedNote{err: err})
}

func (r *recorder) last() recordedNote {
	if len(r.notes) == 0 {
		return recordedNote{}
	}
	return r.notes[len(r.notes)-1]
}

func newTestWindow(t *testing.T) (*MainWindow, *recorder) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	st := store.NewStudentStore(dbtest.NewProvider(t), nil)
	svc := service.NewStudentService(st, grid.New(), nil)
	mw := NewMainWindow(context.Background(), a, svc, nil)
	rec := &recorder{}
	mw.notify = rec
	mw.Reload()
	return mw, rec
}

func tableRows(mw *MainWindow) int {
	rows, _ := mw.table.Length()
	return rows
}

func TestAddSearchEditDelete(t *testing.T) {
	mw, rec := newTestWindow(t)
	require.Equal(t, 0, tableRows(mw))

	mw.AddStudent(models.StudentInput{Name: "Ann", Course: models.CourseMath, Mobile: "555"})
	mw.AddStudent(models.StudentInput{Name: "Bob", Course: models.CoursePhysics, Mobile: "556"})
	require.Empty(t, rec.notes)
	assert.Equal(t, 2, tableRows(mw))

	mw.Search("zzz")
	assert.Equal(t, recordedNote{title: "Warning", message: service.MsgNotFound}, rec.last())

	mw.Search("bob")
	row, ok := mw.grid().Current()
	require.True(t, ok)
	assert.Equal(t, "Bob", row.Name)
	assert.True(t, mw.statusBar.Visible())

	mw.UpdateSelected(models.StudentInput{Name: "Robert", Course: models.CourseAstronomy, Mobile: "556"})
	id, err := row.StudentID()
	require.NoError(t, err)
	i, ok := mw.grid().FindByID(id)
	require.True(t, ok)
	assert.Equal(t, "Robert", mw.grid().Cell(i, grid.ColName))
	assert.False(t, mw.statusBar.Visible())

	require.True(t, mw.grid().SelectRow(i))
	mw.DeleteSelected()
	assert.Equal(t, recordedNote{title: "Success", message: service.MsgDeleted}, rec.last())
	assert.Equal(t, 1, tableRows(mw))
}

func TestEditWithoutSelectionReportsError(t *testing.T) {
	mw, rec := newTestWindow(t)

	mw.UpdateSelected(models.StudentInput{Name: "x", Course: models.CourseMath})
	assert.ErrorIs(t, rec.last().err, service.ErrNoSelection)

	mw.DeleteSelected()
	assert.ErrorIs(t, rec.last().err, service.ErrNoSelection)
}

func TestHeaderMatchesGrid(t *testing.T) {
	assert.Equal(t, []string{"Id", "Name", "Course", "Mobile"}, grid.Header)
	assert.Len(t, columnWidths, len(grid.Header))
}
