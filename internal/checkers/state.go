package checkers

import (
	"go.uber.org/zap"
)

const DefaultRepetitionLimit = 3

type Options struct {
	// Position 起始局面；nil 表示标准开局。SideToMove 决定谁先走（NoSide 时红先）。
	Position        *Position
	Sink            EventSink
	Logger          *zap.SugaredLogger
	RepetitionLimit int
}

type repetitionKey struct {
	turn Side
	hash uint64
}

// GameState 唯一可以修改棋盘的地方。
// 非并发安全：同一时刻只处理一个走子请求。
type GameState struct {
	pos       Position
	firstTurn Side

	players   map[Side]*PlayerState
	discovery *MoveDiscovery

	sink EventSink
	log  *zap.SugaredLogger

	winReason       WinConditionReason
	repetitions     map[repetitionKey]int
	repetitionLimit int

	touched     Piece
	hasTouched  bool
	hintsActive bool
}

func NewGameState(opts Options) *GameState {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	pos := NewInitialPosition()
	if opts.Position != nil {
		p := *opts.Position
		pos = &p
	}
	first := pos.SideToMove
	if first == NoSide {
		first = Red
	}
	pos.SideToMove = NoSide
	pos.Hash = pos.CalculateHash()

	limit := opts.RepetitionLimit
	if limit <= 0 {
		limit = DefaultRepetitionLimit
	}

	g := &GameState{
		pos:       *pos,
		firstTurn: first,
		players: map[Side]*PlayerState{
			Red:   NewPlayerState(Red),
			Black: NewPlayerState(Black),
		},
		sink:            opts.Sink,
		log:             log,
		repetitions:     make(map[repetitionKey]int),
		repetitionLimit: limit,
	}
	g.discovery = NewMoveDiscovery(g, log)
	return g
}

// ---- BoardSource ----

func (g *GameState) PieceAt(sq int) Piece { return g.pos.Board.PieceAt(sq) }

// IsTouchedPiece 按值比较（类型 + 阵营），不是按格子。
func (g *GameState) IsTouchedPiece(sq int) bool {
	if !g.hasTouched || !ValidIndex(sq) {
		return false
	}
	return g.pos.Board.Squares[sq] == g.touched
}

func (g *GameState) HasPlayerTouchedPiece() bool { return g.hasTouched }

// ---- 只读访问 ----

func (g *GameState) Board() Board                     { return g.pos.Board }
func (g *GameState) Position() Position               { return g.pos }
func (g *GameState) Turn() Side                       { return g.pos.SideToMove }
func (g *GameState) WinCondition() WinConditionReason { return g.winReason }
func (g *GameState) IsOver() bool                     { return g.winReason != WinNone }
func (g *GameState) Discovery() *MoveDiscovery        { return g.discovery }

func (g *GameState) CapturedPieces(side Side) []Piece {
	ps, ok := g.players[side]
	if !ok {
		return nil
	}
	return ps.CapturedPieces()
}

func (g *GameState) PiecesCount(side Side) int {
	ps, ok := g.players[side]
	if !ok {
		return 0
	}
	return ps.PiecesCount(&g.pos.Board)
}

// Winner 和棋或未结束返回 NoSide。
func (g *GameState) Winner() Side {
	switch g.winReason {
	case AllEnemyPiecesCapturedWin:
		return g.pos.SideToMove
	case NoAvailableMovesLoss:
		return Opposite(g.pos.SideToMove)
	default:
		return NoSide
	}
}

// BestHintIndices 只有在 ScopedActivateHintsAndNotify 期间才有内容。
func (g *GameState) BestHintIndices() []int {
	if !g.hintsActive {
		return nil
	}
	return g.discovery.BestHintIndices()
}

// LegalMoves 当前可以提交的走法：连吃中只有已摸子的吃法，有吃必吃。
func (g *GameState) LegalMoves() []Move {
	if g.IsOver() || g.pos.SideToMove == NoSide {
		return nil
	}
	switch {
	case g.hasTouched && g.discovery.IsAnyTouchedPieceCaptureAvailable():
		return g.discovery.TouchedPieceCaptures()
	case g.discovery.IsAnyCaptureAvailable():
		return g.discovery.AvailableCaptures()
	default:
		return g.discovery.AvailableMoves()
	}
}

// ---- 状态变更 ----

// ToggleTurnPlayer 开局时交给先手方，之后红黑交替。
// 每次轮换都会重建走法缓存，并检查新行棋方是否无子可动。
func (g *GameState) ToggleTurnPlayer() {
	if g.IsOver() {
		return
	}
	next := Opposite(g.pos.SideToMove)
	if g.pos.SideToMove == NoSide {
		next = g.firstTurn
	}
	g.pos.setSideToMove(next)
	g.log.Infow("turn changed", "turn", next)
	g.notify(Event{Kind: EventTurnChanged, Side: next})

	g.hasTouched = false
	g.touched = EmptyPiece
	g.refreshDiscovery()

	if !g.discovery.IsAnyMoveOrCaptureAvailable() {
		g.setWinCondition(NoAvailableMovesLoss)
	}
}

// MovePiece 校验并执行一步走子或一跳吃子。被拒绝时棋盘不变，返回原因。
func (g *GameState) MovePiece(m Move) error {
	if g.IsOver() {
		return ErrGameOver
	}
	turn := g.pos.SideToMove
	if turn == NoSide {
		return ErrGameNotStarted
	}
	if err := g.validateMove(m); err != nil {
		g.log.Warnw("move rejected", "turn", turn, "move", m, "error", err)
		g.notify(Event{Kind: EventGameplayError, Side: turn, Move: m, Err: err})
		return err
	}

	pc := g.pos.Board.Squares[m.From]
	g.pos.setSquare(m.From, EmptyPiece)
	g.pos.setSquare(m.To, pc)
	g.log.Infow("piece moved", "turn", turn, "move", m, "piece", pc)
	g.notify(Event{Kind: EventPieceMoved, Side: turn, Move: m, Piece: pc})

	captured := false
	if Distance(m.From, m.To) == 2 {
		mid := Midpoint(m.From, m.To)
		victim := g.pos.Board.Squares[mid]
		g.pos.setSquare(mid, EmptyPiece)
		g.players[turn].CapturePiece(victim)
		g.touched = pc
		g.hasTouched = true
		captured = true
		g.log.Infow("piece captured", "turn", turn, "move", m, "captured", victim)
		g.notify(Event{Kind: EventPieceCaptured, Side: turn, Move: m, Piece: victim})
		g.refreshDiscovery()
	}

	// 缓存在升变前重建，连吃判断仍按吃子时的棋子取值
	if pc.Type == PiecePawn && RowOf(m.To) == PromotionRow(pc.Side) {
		king := pc.Promoted()
		g.pos.setSquare(m.To, king)
		g.log.Infow("piece promoted", "turn", turn, "square", m.To)
		g.notify(Event{Kind: EventPiecePromoted, Side: turn, Move: m, Piece: king})
	}

	if g.checkWinConditions() {
		return nil
	}

	if captured && g.furtherCapturesAvailable() {
		g.log.Infow("additional capture required", "turn", turn, "square", m.To)
		g.notify(Event{Kind: EventAdditionalCaptureRequired, Side: turn, Move: m})
		return nil
	}

	g.ToggleTurnPlayer()
	return nil
}

// ScopedActivateHintsAndNotify 临时打开提示，通知显示层，然后关闭。
func (g *GameState) ScopedActivateHintsAndNotify() {
	g.hintsActive = true
	defer func() { g.hintsActive = false }()
	g.notify(Event{Kind: EventHintRequested, Side: g.pos.SideToMove, Indices: g.BestHintIndices()})
}

func (g *GameState) validateMove(m Move) error {
	d := g.discovery
	if d.IsAnyCaptureAvailable() {
		if g.hasTouched && !d.HasCaptureForTouchedPiece(m) {
			return ErrMustContinueCapture
		}
		if !d.HasCapture(m) {
			return ErrCaptureRequired
		}
		return nil
	}
	if !d.HasMove(m) {
		return ErrMoveUnavailable
	}
	return nil
}

func (g *GameState) furtherCapturesAvailable() bool {
	if g.hasTouched {
		return g.discovery.IsAnyTouchedPieceCaptureAvailable()
	}
	return g.discovery.IsAnyCaptureAvailable()
}

// checkWinConditions 先看对方是否被吃光，再看是否三次重复局面。
func (g *GameState) checkWinConditions() bool {
	turn := g.pos.SideToMove
	if g.PiecesCount(Opposite(turn)) == 0 {
		g.setWinCondition(AllEnemyPiecesCapturedWin)
		return true
	}

	key := repetitionKey{turn: turn, hash: g.pos.Hash}
	g.repetitions[key]++
	if g.repetitions[key] >= g.repetitionLimit {
		g.setWinCondition(GameStateViolationDraw)
		return true
	}
	return false
}

func (g *GameState) setWinCondition(r WinConditionReason) {
	g.winReason = r
	winner := g.Winner()
	g.log.Infow("win condition met", "reason", r, "winner", winner, "fen", g.pos.Encode())
	g.notify(Event{Kind: EventWinConditionMet, Side: winner, Reason: r})
}

func (g *GameState) refreshDiscovery() {
	g.discovery.Reset()
	turn := g.pos.SideToMove
	for sq := 0; sq < NumSquares; sq++ {
		pc := g.pos.Board.Squares[sq]
		if !pc.IsEmpty() && pc.Side == turn {
			g.discovery.DiscoverMovesForSourceIndex(sq)
		}
	}
}

func (g *GameState) notify(e Event) {
	if g.sink == nil {
		return
	}
	g.sink.Notify(e)
}
