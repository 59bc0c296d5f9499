// Package worksheet holds the editable list of assignments behind one
// calculation. The list always ends with exactly one add-row placeholder and
// every edit returns a new Worksheet.
package worksheet

import (
	"fmt"

	"github.com/gradereach/gradereach/pkg/assignment"
)

// Worksheet is a titled list of assignment rows.
type Worksheet struct {
	Title   string
	TableID string
	OutOf   string

	rows []assignment.Assignment // always ends with the placeholder
}

// New builds a worksheet from rows. Placeholders in rows are dropped and a
// single one is appended.
func New(title, tableID string, rows ...assignment.Assignment) Worksheet {
	out := make([]assignment.Assignment, 0, len(rows)+1)
	for _, r := range rows {
		if r.Kind() == assignment.KindAdd {
			continue
		}
		out = append(out, r)
	}
	out = append(out, assignment.NewAdd())
	return Worksheet{Title: title, TableID: tableID, rows: out}
}

// Rows returns the assignment rows without the placeholder.
func (w Worksheet) Rows() []assignment.Assignment {
	if len(w.rows) == 0 {
		return nil
	}
	cp := make([]assignment.Assignment, len(w.rows)-1)
	copy(cp, w.rows[:len(w.rows)-1])
	return cp
}

// All returns every row including the trailing placeholder.
func (w Worksheet) All() []assignment.Assignment {
	if len(w.rows) == 0 {
		return []assignment.Assignment{assignment.NewAdd()}
	}
	cp := make([]assignment.Assignment, len(w.rows))
	copy(cp, w.rows)
	return cp
}

// Len is the number of rows, not counting the placeholder.
func (w Worksheet) Len() int {
	if len(w.rows) == 0 {
		return 0
	}
	return len(w.rows) - 1
}

// Empty reports whether there is nothing worth sharing.
func (w Worksheet) Empty() bool {
	return w.Title == "" && w.Len() == 0
}

func (w Worksheet) checkIndex(i int) error {
	if i < 0 || i >= w.Len() {
		return fmt.Errorf("row %d out of range [0, %d)", i, w.Len())
	}
	return nil
}

func (w Worksheet) with(rows []assignment.Assignment) Worksheet {
	w.rows = rows
	return w
}

// Update replaces row i. It reports false and leaves the worksheet as is
// when the new row has the same content.
func (w Worksheet) Update(i int, a assignment.Assignment) (Worksheet, bool, error) {
	if err := w.checkIndex(i); err != nil {
		return w, false, err
	}
	if a.Kind() == assignment.KindAdd {
		return w, false, fmt.Errorf("row %d: cannot replace a row with the placeholder", i)
	}
	if w.rows[i].Equal(a) {
		return w, false, nil
	}
	rows := w.All()
	rows[i] = a
	return w.with(rows), true, nil
}

// Edit rebuilds row i from raw strings, keeping its id.
func (w Worksheet) Edit(i int, name, score, weight string) (Worksheet, bool, error) {
	if err := w.checkIndex(i); err != nil {
		return w, false, err
	}
	return w.Update(i, assignment.FromStrings(name, score, weight, w.rows[i].ID()))
}

// Duplicate inserts a copy of row i directly before it.
func (w Worksheet) Duplicate(i int) (Worksheet, error) {
	if err := w.checkIndex(i); err != nil {
		return w, err
	}
	rows := make([]assignment.Assignment, 0, len(w.rows)+1)
	rows = append(rows, w.rows[:i]...)
	rows = append(rows, w.rows[i].Clone())
	rows = append(rows, w.rows[i:]...)
	return w.with(rows), nil
}

// Delete removes row i.
func (w Worksheet) Delete(i int) (Worksheet, error) {
	if err := w.checkIndex(i); err != nil {
		return w, err
	}
	rows := make([]assignment.Assignment, 0, len(w.rows)-1)
	rows = append(rows, w.rows[:i]...)
	rows = append(rows, w.rows[i+1:]...)
	return w.with(rows), nil
}

// Add turns the placeholder into an empty row and appends a new placeholder.
func (w Worksheet) Add() Worksheet {
	rows := w.Rows()
	rows = append(rows, assignment.FromStrings("", "", "", ""), assignment.NewAdd())
	return w.with(rows)
}

// Append adds a row built from raw strings before the placeholder.
func (w Worksheet) Append(name, score, weight string) Worksheet {
	rows := w.Rows()
	rows = append(rows, assignment.FromStrings(name, score, weight, ""), assignment.NewAdd())
	return w.with(rows)
}
