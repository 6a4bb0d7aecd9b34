package checkers

// PlayerState 一方的战利品（被吃掉的对方棋子）。
type PlayerState struct {
	side     Side
	captured []Piece
}

func NewPlayerState(side Side) *PlayerState {
	return &PlayerState{side: side}
}

func (ps *PlayerState) Side() Side { return ps.side }

func (ps *PlayerState) CapturePiece(p Piece) {
	ps.captured = append(ps.captured, p)
}

func (ps *PlayerState) CapturedPieces() []Piece {
	out := make([]Piece, len(ps.captured))
	copy(out, ps.captured)
	return out
}

// PiecesCount 棋盘上该方还活着的棋子数。
func (ps *PlayerState) PiecesCount(b *Board) int {
	return b.Count(ps.side)
}
