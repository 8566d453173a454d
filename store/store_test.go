package store_test

import (
	"context"
	"errors"
	"testing"

	"student-manager/database"
	"student-manager/database/dbtest"
	"student-manager/models"
	"student-manager/store"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.StudentStore {
	t.Helper()
	return store.NewStudentStore(dbtest.NewProvider(t), nil)
}

func TestInsertThenList(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	id1, err := s.Insert(ctx, models.StudentInput{Name: "Alice", Course: models.CourseBiology, Mobile: "5551234"})
	require.NoError(t, err)
	id2, err := s.Insert(ctx, models.StudentInput{Name: "", Course: models.CourseMath, Mobile: ""})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	students, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)

	byID := map[int64]models.Student{}
	for _, st := range students {
		byID[st.ID] = st
	}
	assert.Equal(t, models.Student{ID: id1, Name: "Alice", Course: models.CourseBiology, Mobile: "5551234"}, byID[id1])
	assert.Equal(t, models.Student{ID: id2, Course: models.CourseMath}, byID[id2])
}

func TestUpdateOverwritesAllFields(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, models.StudentInput{Name: "n1", Course: models.CourseAstronomy, Mobile: "m1"})
	require.NoError(t, err)

	n, err := s.Update(ctx, id, models.StudentInput{Name: "n2", Course: models.CoursePhysics, Mobile: "m2"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	students, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, models.Student{ID: id, Name: "n2", Course: models.CoursePhysics, Mobile: "m2"}, students[0])
}

func TestUpdateAndDeleteMissingIDAreNoOps(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, models.StudentInput{Name: "Keep", Course: models.CourseMath, Mobile: "1"})
	require.NoError(t, err)
	before, err := s.List(ctx)
	require.NoError(t, err)

	n, err := s.Update(ctx, id+100, models.StudentInput{Name: "Ghost", Course: models.CourseMath})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.Delete(ctx, id+100)
	require.NoError(t, err)
	assert.Zero(t, n)

	after, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"a", "b", "c"} {
		id, err := s.Insert(ctx, models.StudentInput{Name: name, Course: models.CourseMath})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	n, err := s.Delete(ctx, ids[1])
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	students, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	for _, st := range students {
		assert.NotEqual(t, ids[1], st.ID)
	}
}

type brokenConnector struct{}

func (brokenConnector) Connect(context.Context) (*sqlx.DB, error) {
	return nil, &database.ConnectionError{Driver: "sqlite3", Err: errors.New("unreachable")}
}

func (brokenConnector) Driver() string { return database.DriverSQLite }

func TestConnectionErrorsPropagate(t *testing.T) {
	s := store.NewStudentStore(brokenConnector{}, nil)
	ctx := context.Background()
	var connErr *database.ConnectionError

	_, err := s.List(ctx)
	assert.ErrorAs(t, err, &connErr)
	_, err = s.Insert(ctx, models.StudentInput{Course: models.CourseMath})
	assert.ErrorAs(t, err, &connErr)
	_, err = s.Update(ctx, 1, models.StudentInput{Course: models.CourseMath})
	assert.ErrorAs(t, err, &connErr)
	_, err = s.Delete(ctx, 1)
	assert.ErrorAs(t, err, &connErr)
}

func TestMissingTableIsQueryAndWriteError(t *testing.T) {
	p := dbtest.NewProvider(t)
	ctx := context.Background()

	db, err := p.Connect(ctx)
	require.NoError(t, err)
	_, err = db.Exec(`DROP TABLE students`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s := store.NewStudentStore(p, nil)

	_, err = s.List(ctx)
	var queryErr *database.QueryError
	assert.ErrorAs(t, err, &queryErr)

	_, err = s.Insert(ctx, models.StudentInput{Course: models.CourseMath})
	var writeErr *database.WriteError
	assert.ErrorAs(t, err, &writeErr)
}
