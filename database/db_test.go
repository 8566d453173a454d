package database_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"student-manager/config"
	"student-manager/database"
	"student-manager/database/dbtest"
	"student-manager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderRejectsUnknownDriver(t *testing.T) {
	_, err := database.NewProvider(config.Credentials{Database: "school"}, database.Options{Driver: "oracle"}, nil)
	require.Error(t, err)

	_, err = database.NewProvider(config.Credentials{}, database.Options{Driver: database.DriverPostgres}, nil)
	require.Error(t, err)
}

func TestConnectMissingSQLiteFileIsConnectionError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")
	p, err := database.NewProvider(config.Credentials{Database: path}, database.Options{Driver: database.DriverSQLite}, nil)
	require.NoError(t, err)

	_, err = p.Connect(context.Background())
	require.Error(t, err)

	var connErr *database.ConnectionError
	require.True(t, errors.As(err, &connErr), "got %T", err)
	assert.Equal(t, database.DriverSQLite, connErr.Driver)
}

func TestEveryConnectIsAFreshHandle(t *testing.T) {
	p := dbtest.NewProvider(t)
	ctx := context.Background()

	first, err := p.Connect(ctx)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := p.Connect(ctx)
	require.NoError(t, err)
	defer second.Close()

	assert.NotSame(t, first, second)
	assert.NoError(t, second.PingContext(ctx))
	assert.Error(t, first.PingContext(ctx))
}

func TestMigrateIsIdempotentAndSeedsOnce(t *testing.T) {
	p := dbtest.NewProvider(t)
	ctx := context.Background()

	require.NoError(t, p.Migrate(ctx, true))
	require.NoError(t, p.Migrate(ctx, true))

	db, err := p.Connect(ctx)
	require.NoError(t, err)
	defer db.Close()

	var students []models.Student
	require.NoError(t, db.Select(&students, `SELECT id, name, course, mobile FROM students ORDER BY id`))
	require.Len(t, students, len(database.SeedStudents))
	assert.Equal(t, "Ann", students[0].Name)
	assert.Equal(t, models.CourseMath, students[0].Course)
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("boom")

	for _, err := range []error{
		&database.ConnectionError{Driver: "postgres", Err: cause},
		&database.QueryError{Op: "list students", Err: cause},
		&database.WriteError{Op: "insert student", Err: cause},
	} {
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "boom")
	}
}
