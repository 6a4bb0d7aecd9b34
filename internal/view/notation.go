package view

import (
	"fmt"
	"strconv"
	"strings"

	"checkers/internal/checkers"
)

const darkSquaresPerRow = checkers.Cols / 2

// CheckersNotation 深色格从左上开始按行编号 1-32。
type CheckersNotation struct {
	palette palette
}

func (v *CheckersNotation) ID() ID             { return CheckersNotationID }
func (v *CheckersNotation) Name() string       { return "checkers notation" }
func (v *CheckersNotation) MoveSyntax() string { return "m 22 18" }

func (v *CheckersNotation) Render(b checkers.Board, hints []int) string {
	var sb strings.Builder
	for r := 0; r < checkers.Rows; r++ {
		for c := 0; c < checkers.Cols; c++ {
			sq := checkers.IndexOf(r, c)
			if !checkers.IsDarkSquare(sq) {
				sb.WriteString("     ")
				continue
			}
			num := v.palette.label(fmt.Sprintf("%2d", squareNumber(sq)))
			sb.WriteString(v.palette.cell(num+v.palette.piece(b.Squares[sq]), containsIndex(hints, sq)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (v *CheckersNotation) PositionToIndex(pos string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(pos))
	if err != nil || n < 1 || n > checkers.NumSquares/2 {
		return checkers.InvalidIndex, fmt.Errorf("%w: %q", ErrInvalidPosition, pos)
	}
	return squareIndex(n), nil
}

func (v *CheckersNotation) IndexToPosition(sq int) string {
	if !checkers.IsDarkSquare(sq) {
		return "??"
	}
	return strconv.Itoa(squareNumber(sq))
}

// squareIndex 编号 -> 下标。偶数行深色格在奇数列，奇数行在偶数列。
func squareIndex(n int) int {
	row := (n - 1) / darkSquaresPerRow
	k := (n - 1) % darkSquaresPerRow
	col := 2 * k
	if row%2 == 0 {
		col++
	}
	return checkers.IndexOf(row, col)
}

func squareNumber(sq int) int {
	return checkers.RowOf(sq)*darkSquaresPerRow + checkers.ColOf(sq)/2 + 1
}
