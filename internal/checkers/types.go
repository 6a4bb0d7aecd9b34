package checkers

import "fmt"

type Side int8

// 零值为 NoSide，这样 Piece{} 就是合法的空格。
const (
	NoSide Side = iota // 中立（空格）
	Red
	Black
)

func (s Side) String() string {
	switch s {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "Neutral"
	}
}

type PieceType int8

const (
	PieceEmpty PieceType = iota
	PiecePawn
	PieceKing
)

func (pt PieceType) String() string {
	switch pt {
	case PiecePawn:
		return "Pawn"
	case PieceKing:
		return "King"
	default:
		return "Empty"
	}
}

// Piece 按值比较：类型 + 阵营。
type Piece struct {
	Type PieceType
	Side Side
}

// MakePiece 保证空格一定是 NoSide，非空棋子一定有阵营。
func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceEmpty || side == NoSide {
		return Piece{Type: PieceEmpty, Side: NoSide}
	}
	return Piece{Type: pt, Side: side}
}

var EmptyPiece = Piece{Type: PieceEmpty, Side: NoSide}

func (p Piece) IsEmpty() bool { return p.Type == PieceEmpty }
func (p Piece) IsKing() bool  { return p.Type == PieceKing }

// Promoted 返回同色的王；空格原样返回。
func (p Piece) Promoted() Piece {
	if p.IsEmpty() {
		return p
	}
	return MakePiece(p.Side, PieceKing)
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return fmt.Sprintf("%s %s", p.Side, p.Type)
}

type Board struct {
	Squares [NumSquares]Piece
}

// Move 对应一次走子或一次跳吃（只记录起点和终点）。
type Move struct {
	From int
	To   int
}

func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}

// Position = 棋盘 + 轮到谁走
type Position struct {
	Board      Board
	SideToMove Side
	Hash       uint64
}

type WinConditionReason int8

const (
	WinNone WinConditionReason = iota
	AllEnemyPiecesCapturedWin
	NoAvailableMovesLoss
	GameStateViolationDraw
)

func (r WinConditionReason) String() string {
	switch r {
	case AllEnemyPiecesCapturedWin:
		return "AllEnemyPiecesCapturedWin"
	case NoAvailableMovesLoss:
		return "NoAvailableMovesLoss"
	case GameStateViolationDraw:
		return "GameStateViolationDraw"
	default:
		return "None"
	}
}
