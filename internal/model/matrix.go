package model

import (
	"encoding/json"
	"fmt"
)

// Square is one cell of a tile matrix
type Square uint8

const (
	Hole   Square = iota // not part of the tile
	Filled               // occupied by the tile
)

// Offset is a position inside a matrix, relative to its top-left corner
type Offset struct {
	Row int
	Col int
}

// Matrix is a rectangular tile footprint, Matrix[row][col]
type Matrix [][]Square

// ParseMatrix builds a matrix from rows of '#' (filled) and '.' (hole)
func ParseMatrix(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for r, line := range rows {
		m[r] = make([]Square, len(line))
		for c, ch := range line {
			if ch == '#' {
				m[r][c] = Filled
			}
		}
	}
	return m
}

// Rows returns the matrix height
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the matrix width
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// At returns the square at the given offset, Hole when outside the matrix
func (m Matrix) At(row, col int) Square {
	if row < 0 || row >= m.Rows() || col < 0 || col >= len(m[row]) {
		return Hole
	}
	return m[row][col]
}

// Occupied returns the offsets of all filled squares in row-major order
func (m Matrix) Occupied() []Offset {
	var out []Offset
	for r, row := range m {
		for c, sq := range row {
			if sq == Filled {
				out = append(out, Offset{Row: r, Col: c})
			}
		}
	}
	return out
}

// Size returns the number of filled squares
func (m Matrix) Size() int {
	return len(m.Occupied())
}

// Equal reports whether two matrices have the same shape and squares
func (m Matrix) Equal(other Matrix) bool {
	if m.Rows() != other.Rows() {
		return false
	}
	for r := range m {
		if len(m[r]) != len(other[r]) {
			return false
		}
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for r, row := range m {
		out[r] = append([]Square(nil), row...)
	}
	return out
}

// String renders the matrix in the ParseMatrix notation, rows separated by '/'
func (m Matrix) String() string {
	s := ""
	for r, row := range m {
		if r > 0 {
			s += "/"
		}
		for _, sq := range row {
			if sq == Filled {
				s += "#"
			} else {
				s += "."
			}
		}
	}
	return s
}

// MarshalJSON encodes the matrix as rows of 0/1
func (m Matrix) MarshalJSON() ([]byte, error) {
	rows := make([][]int, len(m))
	for r, row := range m {
		rows[r] = make([]int, len(row))
		for c, sq := range row {
			if sq == Filled {
				rows[r][c] = 1
			}
		}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes rows of 0/1; any other value is rejected
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	out := make(Matrix, len(rows))
	for r, row := range rows {
		out[r] = make([]Square, len(row))
		for c, v := range row {
			switch v {
			case 0:
				out[r][c] = Hole
			case 1:
				out[r][c] = Filled
			default:
				return fmt.Errorf("matrix value %d at [%d][%d]: want 0 or 1", v, r, c)
			}
		}
	}
	*m = out
	return nil
}

// Rotation is a clockwise rotation in degrees
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Valid returns true for 0, 90, 180 and 270
func (r Rotation) Valid() bool {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	}
	return false
}

// Next returns the rotation a further quarter turn clockwise
func (r Rotation) Next() Rotation {
	return (r + 90) % 360
}

// Rotate returns a new matrix equal to m turned clockwise by r.
// Each quarter turn transposes and then reverses every row, so a w×h matrix
// becomes h×w. The input is never modified.
func Rotate(m Matrix, r Rotation) Matrix {
	out := m.Clone()
	for i := 0; i < int(r)/90; i++ {
		out = rotateQuarter(out)
	}
	return out
}

func rotateQuarter(m Matrix) Matrix {
	rows, cols := m.Rows(), m.Cols()
	out := make(Matrix, cols)
	for c := 0; c < cols; c++ {
		out[c] = make([]Square, rows)
		for r := 0; r < rows; r++ {
			out[c][rows-1-r] = m[r][c]
		}
	}
	return out
}
