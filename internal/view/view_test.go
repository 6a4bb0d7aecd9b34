package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
)

func TestChessLikePositionToIndex(t *testing.T) {
	v := &ChessLike{}
	cases := []struct {
		in   string
		want int
	}{
		{"a8", checkers.IndexOf(0, 0)},
		{"A3", checkers.IndexOf(5, 0)},
		{"b4", checkers.IndexOf(4, 1)},
		{"h1", checkers.IndexOf(7, 7)},
		{" d5 ", checkers.IndexOf(3, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := v.PositionToIndex(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.True(t, strings.EqualFold(strings.TrimSpace(tc.in), v.IndexToPosition(got)))
		})
	}

	for _, bad := range []string{"", "a", "a9", "i1", "a0", "aa", "a10"} {
		_, err := v.PositionToIndex(bad)
		require.ErrorIs(t, err, ErrInvalidPosition, bad)
	}
}

func TestCheckersNotationCoversEveryDarkSquare(t *testing.T) {
	v := &CheckersNotation{}
	seen := map[int]bool{}
	for n := 1; n <= 32; n++ {
		sq, err := v.PositionToIndex(strings.Repeat(" ", n%2) + itoa(n))
		require.NoError(t, err)
		require.True(t, checkers.IsDarkSquare(sq), "square %d -> %d is light", n, sq)
		require.False(t, seen[sq], "square %d mapped twice", n)
		seen[sq] = true
		require.Equal(t, itoa(n), v.IndexToPosition(sq))
	}
	require.Len(t, seen, 32)

	first, _ := v.PositionToIndex("1")
	require.Equal(t, checkers.IndexOf(0, 1), first)
	fifth, _ := v.PositionToIndex("5")
	require.Equal(t, checkers.IndexOf(1, 0), fifth)

	for _, bad := range []string{"0", "33", "-1", "x", ""} {
		_, err := v.PositionToIndex(bad)
		require.ErrorIs(t, err, ErrInvalidPosition, bad)
	}
}

func TestRenderPlainBoards(t *testing.T) {
	reg := NewRegistry(false)
	b := checkers.InitialBoard()

	chess, err := reg.Get(ChessLikeID)
	require.NoError(t, err)
	out := chess.Render(b, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9)
	require.Contains(t, lines[0], "A")
	require.Contains(t, lines[0], "H")
	require.Equal(t, " 8 [ ][b][ ][b][ ][b][ ][b]", lines[1])
	require.Equal(t, " 1 [r][ ][r][ ][r][ ][r][ ]", lines[8])

	hinted := chess.Render(b, []int{checkers.IndexOf(5, 0), checkers.IndexOf(4, 1)})
	require.Contains(t, hinted, " 3 {r}[ ][r]")
	require.Contains(t, hinted, " 4 [ ]{ }[ ]")

	notation, err := reg.Get(CheckersNotationID)
	require.NoError(t, err)
	out = notation.Render(b, nil)
	require.Contains(t, out, "[ 1b]")
	require.Contains(t, out, "[32r]")
	require.Contains(t, out, "[16 ]")
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(false)
	require.Len(t, reg.List(), 2)
	require.Equal(t, "1 = chess-like, 2 = checkers notation", reg.Options())

	_, err := reg.Get(ID(7))
	require.ErrorIs(t, err, ErrUnknownView)

	for in, want := range map[string]ID{"1": ChessLikeID, "chess": ChessLikeID, "2": CheckersNotationID, "Notation": CheckersNotationID} {
		got, err := ParseID(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err = ParseID("fancy")
	require.ErrorIs(t, err, ErrUnknownView)
}

func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
