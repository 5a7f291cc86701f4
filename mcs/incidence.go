// File: incidence.go
// Role: Incidence — a dense cut-set × event membership matrix, adapted
// from matrix.BuildDenseIncidence's vertices × edges incidence view. There
// the columns are graph edges and the rows are their endpoint vertices;
// here the rows are cut sets and the columns are the events they range
// over, with a 1 entry wherever the event belongs to the cut set. This
// gives downstream renderers a matrix view of an MCS listing without
// re-walking CutSet.Mask bit by bit.
package mcs

import (
	"errors"

	"github.com/sfta-go/sfta/core"
)

// ErrIncidenceOutOfRange is returned by Incidence.At for an out-of-bounds
// row or column, following the matrix package's policy that public
// indexers return a sentinel error rather than panic.
var ErrIncidenceOutOfRange = errors.New("mcs: incidence index out of range")

// Incidence is a dense 0/1 matrix: Rows()==len(cutSets), Cols()==event
// count. Entries are stored row-major, one byte per cell.
type Incidence struct {
	rows, cols int
	eventIDs   []string // column labels, in bit-index order
	data       []byte   // row-major, rows*cols entries, 0 or 1
}

// BuildIncidence constructs the cut-set × event incidence matrix for the
// given cut sets over tree's events. Complexity: O(rows * avg cut-set
// order), since only set bits are written.
func BuildIncidence(tree *core.FaultTree, cutSets []CutSet) *Incidence {
	cols := tree.EventCount()
	eventIDs := make([]string, cols)
	for _, ev := range tree.Events() {
		eventIDs[ev.BitIndex] = ev.ID
	}

	m := &Incidence{
		rows:     len(cutSets),
		cols:     cols,
		eventIDs: eventIDs,
		data:     make([]byte, len(cutSets)*cols),
	}
	for r, cs := range cutSets {
		for _, b := range cs.Mask.Bits() {
			m.data[r*cols+b] = 1
		}
	}
	return m
}

// Rows returns the number of cut sets (matrix rows).
func (m *Incidence) Rows() int { return m.rows }

// Cols returns the number of events (matrix columns).
func (m *Incidence) Cols() int { return m.cols }

// EventIDs returns the column labels, in bit-index order.
func (m *Incidence) EventIDs() []string { return m.eventIDs }

// At reports whether the event at column c belongs to the cut set at
// row r.
func (m *Incidence) At(r, c int) (bool, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return false, ErrIncidenceOutOfRange
	}
	return m.data[r*m.cols+c] == 1, nil
}
