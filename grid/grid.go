// Package grid holds the in-memory table the operator looks at: a full
// snapshot of the students table as display strings, plus which rows are
// selected.
package grid

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"student-manager/models"

	"golang.org/x/text/cases"
)

// Header is the column order of every row.
var Header = []string{"Id", "Name", "Course", "Mobile"}

const (
	ColID = iota
	ColName
	ColCourse
	ColMobile
)

// Row is one student rendered for display.
type Row struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Course string `json:"course"`
	Mobile string `json:"mobile"`
}

func RowFromStudent(s models.Student) Row {
	return Row{
		ID:     strconv.FormatInt(s.ID, 10),
		Name:   s.Name,
		Course: string(s.Course),
		Mobile: s.Mobile,
	}
}

// Cells returns the row in Header order.
func (r Row) Cells() []string {
	return []string{r.ID, r.Name, r.Course, r.Mobile}
}

// StudentID parses the id cell back into the store id.
func (r Row) StudentID() (int64, error) {
	return strconv.ParseInt(r.ID, 10, 64)
}

// Grid is safe for concurrent use. Rows are only ever replaced wholesale.
type Grid struct {
	mu       sync.RWMutex
	rows     []Row
	selected map[int]bool
	current  int
}

func New() *Grid {
	return &Grid{selected: map[int]bool{}, current: -1}
}

// Replace swaps in a new snapshot and clears the selection.
func (g *Grid) Replace(students []models.Student) {
	rows := make([]Row, len(students))
	for i, s := range students {
		rows[i] = RowFromStudent(s)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.rows = rows
	g.selected = map[int]bool{}
	g.current = -1
}

func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rows)
}

// Rows returns a copy of the snapshot.
func (g *Grid) Rows() []Row {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Row, len(g.rows))
	copy(out, g.rows)
	return out
}

func (g *Grid) Row(i int) (Row, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.rows) {
		return Row{}, false
	}
	return g.rows[i], true
}

// Cell returns the display string at (row, col), or "" when out of range.
func (g *Grid) Cell(row, col int) string {
	r, ok := g.Row(row)
	if !ok || col < 0 || col >= len(Header) {
		return ""
	}
	return r.Cells()[col]
}

// FindByID returns the index of the row showing student id.
func (g *Grid) FindByID(id int64) (int, bool) {
	want := strconv.FormatInt(id, 10)
	g.mu.RLock()
	defer g.mu.RUnlock()
	for i, r := range g.rows {
		if r.ID == want {
			return i, true
		}
	}
	return -1, false
}

// SelectRow makes row i the current row and the only selected one.
func (g *Grid) SelectRow(i int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i < 0 || i >= len(g.rows) {
		return false
	}
	g.selected = map[int]bool{i: true}
	g.current = i
	return true
}

func (g *Grid) ClearSelection() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.selected = map[int]bool{}
	g.current = -1
}

// Current is the row the operator last picked. Edit and delete act on it.
func (g *Grid) Current() (Row, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.current < 0 || g.current >= len(g.rows) {
		return Row{}, false
	}
	return g.rows[g.current], true
}

func (g *Grid) IsSelected(i int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.selected[i]
}

// Selected returns the selected row indexes in ascending order.
func (g *Grid) Selected() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.selected))
	for i := range g.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Search marks every row with a cell containing query, ignoring case. It
// returns the matched row indexes. With no match the selection is left
// alone and nil is returned. An empty query matches nothing.
func (g *Grid) Search(query string) []int {
	if query == "" {
		return nil
	}
	fold := cases.Fold()
	needle := fold.String(query)

	g.mu.Lock()
	defer g.mu.Unlock()

	var matches []int
	for i, r := range g.rows {
		for _, cell := range r.Cells() {
			if strings.Contains(fold.String(cell), needle) {
				matches = append(matches, i)
				break
			}
		}
	}
	if len(matches) == 0 {
		return nil
	}

	g.selected = make(map[int]bool, len(matches))
	for _, i := range matches {
		g.selected[i] = true
	}
	g.current = matches[0]
	return matches
}
