package view

import (
	"fmt"
	"strings"
	"unicode"

	"checkers/internal/checkers"
)

// ChessLike 列 A-H，行 8-1（第 0 行是 8）。
type ChessLike struct {
	palette palette
}

func (v *ChessLike) ID() ID             { return ChessLikeID }
func (v *ChessLike) Name() string       { return "chess-like" }
func (v *ChessLike) MoveSyntax() string { return "m c3 d4" }

func (v *ChessLike) Render(b checkers.Board, hints []int) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < checkers.Cols; c++ {
		sb.WriteString(v.palette.label(fmt.Sprintf(" %c ", 'A'+c)))
	}
	sb.WriteByte('\n')
	for r := 0; r < checkers.Rows; r++ {
		sb.WriteString(v.palette.label(fmt.Sprintf(" %d ", checkers.Rows-r)))
		for c := 0; c < checkers.Cols; c++ {
			sq := checkers.IndexOf(r, c)
			sb.WriteString(v.palette.cell(v.palette.piece(b.Squares[sq]), containsIndex(hints, sq)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (v *ChessLike) PositionToIndex(pos string) (int, error) {
	pos = strings.TrimSpace(pos)
	if len(pos) != 2 {
		return checkers.InvalidIndex, fmt.Errorf("%w: %q", ErrInvalidPosition, pos)
	}
	file := unicode.ToLower(rune(pos[0]))
	rank := rune(pos[1])
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return checkers.InvalidIndex, fmt.Errorf("%w: %q", ErrInvalidPosition, pos)
	}
	return checkers.IndexOf(checkers.Rows-int(rank-'0'), int(file-'a')), nil
}

func (v *ChessLike) IndexToPosition(sq int) string {
	if !checkers.ValidIndex(sq) {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'A'+checkers.ColOf(sq), checkers.Rows-checkers.RowOf(sq))
}
