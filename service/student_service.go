package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"student-manager/grid"
	"student-manager/logger"
	"student-manager/models"
)

const (
	MsgNotFound = "Data not found"
	MsgDeleted  = "The record was successfully deleted"
)

var (
	// ErrNotFound is returned by Search when no cell matches.
	ErrNotFound    = errors.New(MsgNotFound)
	ErrNoSelection = errors.New("no record selected")
)

// Store is the subset of the record store the operations need.
type Store interface {
	List(ctx context.Context) ([]models.Student, error)
	Insert(ctx context.Context, in models.StudentInput) (int64, error)
	Update(ctx context.Context, id int64, in models.StudentInput) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Result describes a finished write.
type Result struct {
	ID           int64  `json:"id"`
	RowsAffected int64  `json:"rows_affected"`
	Message      string `json:"message,omitempty"`
}

// StudentService runs each operation against the store and then reloads the
// grid it was given. A write and its reload hold mu together, so a slower
// reload can never replace the grid after a newer one.
type StudentService struct {
	mu    sync.Mutex
	store Store
	grid  *grid.Grid
	log   *logger.Logger
}

func NewStudentService(store Store, g *grid.Grid, log *logger.Logger) *StudentService {
	if log == nil {
		log = logger.Nop()
	}
	return &StudentService{store: store, grid: g, log: log.Component("service")}
}

func (s *StudentService) Grid() *grid.Grid {
	return s.grid
}

// Load replaces the grid with the current table contents. On failure the
// previous grid stays as it was.
func (s *StudentService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Reload(ctx, s.grid, s.store)
}

// Reload fetches everything first and only then swaps the grid.
func Reload(ctx context.Context, g *grid.Grid, store Store) error {
	students, err := store.List(ctx)
	if err != nil {
		return err
	}
	g.Replace(students)
	return nil
}

func (s *StudentService) Insert(ctx context.Context, in models.StudentInput) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.store.Insert(ctx, in)
	if err != nil {
		return Result{}, err
	}
	return s.afterWrite(ctx, Result{ID: id, RowsAffected: 1})
}

// Update overwrites student id. Zero rows affected is reported in the
// result, not as an error.
func (s *StudentService) Update(ctx context.Context, id int64, in models.StudentInput) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.store.Update(ctx, id, in)
	if err != nil {
		return Result{}, err
	}
	return s.afterWrite(ctx, Result{ID: id, RowsAffected: n})
}

// Delete removes student id and carries the confirmation text for the
// operator. Zero rows affected is not an error.
func (s *StudentService) Delete(ctx context.Context, id int64) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return Result{}, err
	}
	return s.afterWrite(ctx, Result{ID: id, RowsAffected: n, Message: MsgDeleted})
}

// Search selects the grid rows containing query. It never touches the store.
func (s *StudentService) Search(query string) ([]grid.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.grid.Search(query)
	if len(idx) == 0 {
		s.log.Info("search found nothing", map[string]interface{}{"query": query})
		return nil, ErrNotFound
	}
	rows := make([]grid.Row, 0, len(idx))
	for _, i := range idx {
		if r, ok := s.grid.Row(i); ok {
			rows = append(rows, r)
		}
	}
	return rows, nil
}

// UpdateCurrent and DeleteCurrent act on the row the operator picked.
func (s *StudentService) UpdateCurrent(ctx context.Context, in models.StudentInput) (Result, error) {
	id, err := s.currentID()
	if err != nil {
		return Result{}, err
	}
	return s.Update(ctx, id, in)
}

func (s *StudentService) DeleteCurrent(ctx context.Context) (Result, error) {
	id, err := s.currentID()
	if err != nil {
		return Result{}, err
	}
	return s.Delete(ctx, id)
}

func (s *StudentService) currentID() (int64, error) {
	row, ok := s.grid.Current()
	if !ok {
		return 0, ErrNoSelection
	}
	id, err := row.StudentID()
	if err != nil {
		return 0, fmt.Errorf("selected row has invalid id %q: %w", row.ID, err)
	}
	return id, nil
}

// afterWrite reloads the grid; the caller holds mu. The write already
// happened, so a failed reload is returned alongside the result.
func (s *StudentService) afterWrite(ctx context.Context, res Result) (Result, error) {
	if err := Reload(ctx, s.grid, s.store); err != nil {
		s.log.Error("reload after write failed", err, map[string]interface{}{"id": res.ID})
		return res, fmt.Errorf("reload after write: %w", err)
	}
	return res, nil
}
