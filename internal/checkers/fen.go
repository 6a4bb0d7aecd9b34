package checkers

import (
	"errors"
	"strings"
)

// 简单 FEN-like：8 行用“/”隔开，空位用数字压缩（也接受 '.'）；
// 空格后 r/b 表示轮到谁走，'-' 表示还没开局。
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[IndexOf(r, c)]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(PieceGlyph(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	switch p.SideToMove {
	case Red:
		sb.WriteByte('r')
	case Black:
		sb.WriteByte('b')
	default:
		sb.WriteByte('-')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 2 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidFEN
	}
	var b Board
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := glyphToPiece[ch]
			if !ok {
				return nil, ErrInvalidFEN
			}
			sq := IndexOf(r, c)
			if !IsDarkSquare(sq) {
				return nil, ErrInvalidFEN
			}
			b.Squares[sq] = pc
			c++
		}
		if c != Cols {
			return nil, ErrInvalidFEN
		}
	}
	var stm Side
	switch parts[1] {
	case "r":
		stm = Red
	case "b":
		stm = Black
	case "-":
		stm = NoSide
	default:
		return nil, ErrInvalidFEN
	}
	pos := &Position{
		Board:      b,
		SideToMove: stm,
	}
	pos.Hash = pos.CalculateHash()
	return pos, nil
}
