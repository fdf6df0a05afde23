package bingo

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Board is one populated grid. Index is 1-based and follows generation order.
type Board struct {
	Index int
	Cells [][]string
}

// Rows returns the number of rows on the board.
func (b Board) Rows() int { return len(b.Cells) }

// Cols returns the number of columns on the board.
func (b Board) Cols() int {
	if len(b.Cells) == 0 {
		return 0
	}
	return len(b.Cells[0])
}

// Name returns the stem used for per-board files, e.g. "bingo_board_3".
func (b Board) Name() string {
	return fmt.Sprintf("bingo_board_%d", b.Index)
}

// Title returns the heading printed above the board.
func (b Board) Title() string {
	return fmt.Sprintf("Board %d", b.Index)
}

// WriteBoardCSV writes the board as one CSV record per row. A row holding a
// single blank cell is written as "" since csv readers skip empty lines.
func WriteBoardCSV(w io.Writer, b Board) error {
	cw := csv.NewWriter(w)
	for _, row := range b.Cells {
		if len(row) == 1 && row[0] == "" {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return fmt.Errorf("writing board %d: %w", b.Index, err)
			}
			if _, err := io.WriteString(w, "\"\"\n"); err != nil {
				return fmt.Errorf("writing board %d: %w", b.Index, err)
			}
			continue
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing board %d: %w", b.Index, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing board %d: %w", b.Index, err)
	}
	return nil
}

// ReadBoardCSV reads a board previously written by WriteBoardCSV.
// Rows must all have the same number of cells.
func ReadBoardCSV(r io.Reader, index int) (Board, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrBoardParse, err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return Board{}, fmt.Errorf("%w: board %d is empty", ErrBoardParse, index)
	}
	return Board{Index: index, Cells: records}, nil
}
