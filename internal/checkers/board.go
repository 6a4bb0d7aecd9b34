package checkers

import (
	"strings"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols

	InvalidIndex = -1
)

func IndexOf(row, col int) int {
	if !OnBoard(row, col) {
		return InvalidIndex
	}
	return row*Cols + col
}

func RowOf(sq int) int { return sq / Cols }
func ColOf(sq int) int { return sq % Cols }

func OnBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func ValidIndex(sq int) bool { return sq >= 0 && sq < NumSquares }

// IsDarkSquare 只有 (row+col) 为奇数的格子可以放子。
func IsDarkSquare(sq int) bool {
	if !ValidIndex(sq) {
		return false
	}
	return (RowOf(sq)+ColOf(sq))%2 == 1
}

func Opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

// PromotionRow 红方到第 0 行升王，黑方到第 7 行。
func PromotionRow(side Side) int {
	if side == Red {
		return 0
	}
	if side == Black {
		return Rows - 1
	}
	return InvalidIndex
}

// PieceAt 越界返回空格。
func (b *Board) PieceAt(sq int) Piece {
	if !ValidIndex(sq) {
		return EmptyPiece
	}
	return b.Squares[sq]
}

func (b *Board) Count(side Side) int {
	n := 0
	for _, pc := range b.Squares {
		if !pc.IsEmpty() && pc.Side == side {
			n++
		}
	}
	return n
}

var glyphToPiece = map[rune]Piece{
	'r': {Type: PiecePawn, Side: Red},
	'R': {Type: PieceKing, Side: Red},
	'b': {Type: PiecePawn, Side: Black},
	'B': {Type: PieceKing, Side: Black},
}

// PieceGlyph 空格为 '.'，小写兵，大写王。
func PieceGlyph(p Piece) rune {
	for k, v := range glyphToPiece {
		if v == p {
			return k
		}
	}
	return '.'
}

const initialBoardString = `.b.b.b.b
b.b.b.b.
.b.b.b.b
........
........
r.r.r.r.
.r.r.r.r
r.r.r.r.`

func parseBoardRows(lines []string) (Board, bool) {
	var b Board
	if len(lines) != Rows {
		return b, false
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			return b, false
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pc, ok := glyphToPiece[ch]
			if !ok || !IsDarkSquare(IndexOf(r, c)) {
				return b, false
			}
			b.Squares[IndexOf(r, c)] = pc
		}
	}
	return b, true
}

func parseInitialBoard() Board {
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	b, ok := parseBoardRows(lines)
	if !ok {
		panic("initialBoardString is not a valid 8x8 checkers board")
	}
	return b
}

// InitialBoard 标准开局：黑方占 0-2 行，红方占 5-7 行。
func InitialBoard() Board {
	return parseInitialBoard()
}

// NewInitialPosition 还未开始的对局，SideToMove 为 NoSide，第一次 ToggleTurnPlayer 后红先。
func NewInitialPosition() *Position {
	pos := &Position{
		Board:      parseInitialBoard(),
		SideToMove: NoSide,
	}
	pos.Hash = pos.CalculateHash()
	return pos
}
