package checkers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeInitialPosition(t *testing.T) {
	pos := NewInitialPosition()
	require.Equal(t, "1b1b1b1b/b1b1b1b1/1b1b1b1b/8/8/r1r1r1r1/1r1r1r1r/r1r1r1r1 -", pos.Encode())
}

func TestDecodeRoundTripKeepsKingsAndSide(t *testing.T) {
	fen := "8/8/5b2/8/3B4/2R3b1/7r/8 b"
	pos, err := DecodePosition(fen)
	require.NoError(t, err)
	require.Equal(t, Black, pos.SideToMove)
	require.Equal(t, MakePiece(Black, PieceKing), pos.Board.Squares[IndexOf(4, 3)])
	require.Equal(t, MakePiece(Red, PieceKing), pos.Board.Squares[IndexOf(5, 2)])
	require.Equal(t, fen, pos.Encode())
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"missing side":  "8/8/8/8/8/8/8/8",
		"bad side":      "8/8/8/8/8/8/8/8 w",
		"short rank":    "8/8/8/8/8/8/8/7 r",
		"long rank":     "8/8/8/8/8/8/8/9 r",
		"seven ranks":   "8/8/8/8/8/8/8 r",
		"unknown glyph": "8/8/8/8/8/8/8/1x6 r",
		"light square":  "r7/8/8/8/8/8/8/8 r",
	}
	for name, fen := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodePosition(fen)
			require.ErrorIs(t, err, ErrInvalidFEN)
		})
	}
}

func TestDecodeAcceptsDotsForEmptySquares(t *testing.T) {
	pos, err := DecodePosition("......../......../......../......../......../..r...../......../........ r")
	require.NoError(t, err)
	require.Equal(t, MakePiece(Red, PiecePawn), pos.Board.Squares[IndexOf(5, 2)])
	require.Equal(t, 1, pos.Board.Count(Red))
}
