package game

import (
	"errors"
	"fmt"
	"ludo/utils"
)

var (
	ErrBoardTooShort = errors.New("board needs at least two cells")
	ErrEmptyCellID   = errors.New("cell id must not be empty")
	ErrDuplicateCell = errors.New("duplicate cell id")
)

// Cell is one position on the board path.
type Cell struct {
	Index int    // Position along the path, 0 is home
	ID    string // Identifier the renderer maps to a screen position
}

// Board is the fixed path a token walks from home to goal. It is immutable
// once constructed.
type Board struct {
	cells []string
}

// NewBoard builds a board from ordered cell identifiers.
func NewBoard(ids ...string) (*Board, error) {
	if len(ids) < 2 {
		return nil, ErrBoardTooShort
	}
	cells := make([]string, 0, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("cell %d: %w", i, ErrEmptyCellID)
		}
		if utils.Contains(cells, id) {
			return nil, fmt.Errorf("cell %d %q: %w", i, id, ErrDuplicateCell)
		}
		cells = append(cells, id)
	}
	return &Board{cells: cells}, nil
}

// NewNumberedBoard builds a board of n cells named c00, c01, ...
func NewNumberedBoard(n int) (*Board, error) {
	if n < 2 {
		return nil, ErrBoardTooShort
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("c%02d", i)
	}
	return NewBoard(ids...)
}

func (b *Board) Len() int {
	return len(b.cells)
}

func (b *Board) Home() int {
	return 0
}

func (b *Board) Goal() int {
	return len(b.cells) - 1
}

// Cell returns the cell at index i. It panics if i is off the board, which
// only happens on a programming error.
func (b *Board) Cell(i int) Cell {
	return Cell{Index: i, ID: b.cells[i]}
}

// IndexOf returns the index of the cell with the given id, or -1.
func (b *Board) IndexOf(id string) int {
	return utils.FindIndex(b.cells, id)
}

// IDs returns a copy of the cell identifiers in path order.
func (b *Board) IDs() []string {
	ids := make([]string, len(b.cells))
	copy(ids, b.cells)
	return ids
}
