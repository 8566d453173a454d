package store

import (
	"context"
	"database/sql"

	"student-manager/database"
	"student-manager/logger"
	"student-manager/models"

	"github.com/jmoiron/sqlx"
)

const (
	selectStudentsSQL = `SELECT id, name, course, mobile FROM students`
	insertStudentSQL  = `INSERT INTO students (name, course, mobile) VALUES (?, ?, ?)`
	updateStudentSQL  = `UPDATE students SET name = ?, course = ?, mobile = ? WHERE id = ?`
	deleteStudentSQL  = `DELETE FROM students WHERE id = ?`
)

// Connector hands out a fresh connection per call. *database.Provider
// implements it.
type Connector interface {
	Connect(ctx context.Context) (*sqlx.DB, error)
	Driver() string
}

// StudentStore runs the four statements against the students table. Each
// method opens its own connection and closes it before returning.
type StudentStore struct {
	conn Connector
	log  *logger.Logger
}

func NewStudentStore(conn Connector, log *logger.Logger) *StudentStore {
	if log == nil {
		log = logger.Nop()
	}
	return &StudentStore{conn: conn, log: log.Component("store")}
}

// List returns every student in server order.
func (s *StudentStore) List(ctx context.Context) ([]models.Student, error) {
	db, err := s.conn.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var students []models.Student
	if err := db.SelectContext(ctx, &students, selectStudentsSQL); err != nil {
		s.log.Error("❌ Error fetching students", err, nil)
		return nil, &database.QueryError{Op: "list students", Err: err}
	}
	return students, nil
}

// Insert adds a student and returns the id the database assigned.
func (s *StudentStore) Insert(ctx context.Context, in models.StudentInput) (int64, error) {
	db, err := s.conn.Connect(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	s.log.Info("➕ Creating student", map[string]interface{}{
		"name": in.Name, "course": in.Course, "mobile": in.Mobile,
	})

	var id int64
	if s.conn.Driver() == database.DriverPostgres {
		// lib/pq не поддерживает LastInsertId
		query := db.Rebind(insertStudentSQL + ` RETURNING id`)
		err = db.QueryRowxContext(ctx, query, in.Name, string(in.Course), in.Mobile).Scan(&id)
	} else {
		var res sql.Result
		res, err = db.ExecContext(ctx, db.Rebind(insertStudentSQL), in.Name, string(in.Course), in.Mobile)
		if err == nil {
			id, err = res.LastInsertId()
		}
	}
	if err != nil {
		s.log.Error("❌ Database error creating student", err, nil)
		return 0, &database.WriteError{Op: "insert student", Err: err}
	}

	s.log.Info("✅ Student created successfully", map[string]interface{}{"id": id})
	return id, nil
}

// Update overwrites all editable fields of student id. A missing id is not an
// error; the returned count is zero.
func (s *StudentStore) Update(ctx context.Context, id int64, in models.StudentInput) (int64, error) {
	db, err := s.conn.Connect(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, db.Rebind(updateStudentSQL), in.Name, string(in.Course), in.Mobile, id)
	if err != nil {
		s.log.Error("❌ Error updating student in database", err, map[string]interface{}{"id": id})
		return 0, &database.WriteError{Op: "update student", Err: err}
	}
	return s.affected(res, "update student", id)
}

// Delete removes student id. A missing id is not an error.
func (s *StudentStore) Delete(ctx context.Context, id int64) (int64, error) {
	db, err := s.conn.Connect(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, db.Rebind(deleteStudentSQL), id)
	if err != nil {
		s.log.Error("❌ Error deleting student", err, map[string]interface{}{"id": id})
		return 0, &database.WriteError{Op: "delete student", Err: err}
	}
	return s.affected(res, "delete student", id)
}

func (s *StudentStore) affected(res sql.Result, op string, id int64) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &database.WriteError{Op: op, Err: err}
	}
	if n == 0 {
		s.log.Warning("no student matched, nothing changed", map[string]interface{}{"op": op, "id": id})
	} else {
		s.log.Info("✅ "+op+" done", map[string]interface{}{"id": id, "rows_affected": n})
	}
	return n, nil
}
