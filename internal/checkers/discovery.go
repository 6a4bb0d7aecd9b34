package checkers

import (
	"sort"

	"go.uber.org/zap"
)

// BoardSource 搜索只读棋盘，以及“已摸子”判断（按值比较）。
type BoardSource interface {
	PieceAt(sq int) Piece
	IsTouchedPiece(sq int) bool
	HasPlayerTouchedPiece() bool
}

// evalContext 搜索栈上的一个节点。captured / chain 每个节点各自持有一份拷贝。
type evalContext struct {
	source   int
	dir      Direction
	captured []int
	chain    []Move
	piece    Piece
}

type moveSet map[Move]struct{}

// MoveDiscovery 每回合（以及回合内每次吃子后）重建的走法缓存。
type MoveDiscovery struct {
	src BoardSource
	log *zap.SugaredLogger

	moves           moveSet
	captures        moveSet
	touchedCaptures moveSet
	hints           []MoveHint
}

func NewMoveDiscovery(src BoardSource, log *zap.SugaredLogger) *MoveDiscovery {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	d := &MoveDiscovery{src: src, log: log}
	d.Reset()
	return d
}

func (d *MoveDiscovery) Reset() {
	d.moves = make(moveSet)
	d.captures = make(moveSet)
	d.touchedCaptures = make(moveSet)
	d.hints = d.hints[:0]
}

// DiscoverMovesForSourceIndex 对 sq 上的棋子做深度优先搜索，
// 登记普通走子、跳吃链的第一跳，以及该子最长的吃子链提示。
func (d *MoveDiscovery) DiscoverMovesForSourceIndex(sq int) {
	if !ValidIndex(sq) {
		return
	}
	pc := d.src.PieceAt(sq)
	dirs := DirectionsFor(pc)
	if len(dirs) == 0 {
		return
	}
	touched := d.src.IsTouchedPiece(sq)

	stack := make([]evalContext, 0, 8)
	for i := len(dirs) - 1; i >= 0; i-- {
		stack = append(stack, evalContext{source: sq, dir: dirs[i], piece: pc})
	}

	var longest []Move
	for len(stack) > 0 {
		ctx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(ctx.chain) == 0 {
			if dest := Step(ctx.source, ctx.dir, 1); d.isVacant(dest) {
				mv := Move{From: sq, To: dest}
				d.moves[mv] = struct{}{}
				d.hints = append(d.hints, MoveHint{Score: 0, Chain: []Move{mv}})
				continue
			}
		}

		jump, ok := d.jumpFrom(ctx.source, ctx.dir, ctx.piece, ctx.captured)
		if !ok {
			continue
		}
		chain := appendMove(ctx.chain, jump)
		captured := appendIndex(ctx.captured, Midpoint(jump.From, jump.To))

		next := d.lookahead(jump.To, ctx.piece, captured, chain)
		if len(next) > 0 {
			stack = append(stack, next...)
			continue
		}

		// 链到头了：玩家能选的只有第一跳
		origin := chain[0]
		d.captures[origin] = struct{}{}
		if touched {
			d.touchedCaptures[origin] = struct{}{}
		}
		d.log.Debugw("capture chain",
			"source", sq,
			"chain", chain,
			"touched", touched,
		)
		if len(chain) > len(longest) {
			longest = chain
		}
	}

	if len(longest) > 0 {
		d.hints = append(d.hints, MoveHint{Score: len(longest), Chain: longest})
	}
	sort.SliceStable(d.hints, func(i, j int) bool {
		return d.hints[i].Score > d.hints[j].Score
	})
}

// lookahead 从落点出发找下一跳，已经吃过的格子不再考虑。
func (d *MoveDiscovery) lookahead(landing int, pc Piece, captured []int, chain []Move) []evalContext {
	dirs := DirectionsFor(pc)
	var out []evalContext
	for i := len(dirs) - 1; i >= 0; i-- {
		if _, ok := d.jumpFrom(landing, dirs[i], pc, captured); !ok {
			continue
		}
		out = append(out, evalContext{
			source:   landing,
			dir:      dirs[i],
			captured: appendIndex(captured),
			chain:    appendMove(chain),
			piece:    pc,
		})
	}
	return out
}

func (d *MoveDiscovery) jumpFrom(from int, dir Direction, pc Piece, captured []int) (Move, bool) {
	mid := Step(from, dir, 1)
	dest := Step(from, dir, 2)
	if mid == InvalidIndex || !d.isVacant(dest) {
		return Move{}, false
	}
	victim := d.src.PieceAt(mid)
	if victim.IsEmpty() || victim.Side != Opposite(pc.Side) {
		return Move{}, false
	}
	for _, c := range captured {
		if c == mid {
			return Move{}, false
		}
	}
	return Move{From: from, To: dest}, true
}

// isVacant 搜索不改棋盘，起点上仍是走子本身。
func (d *MoveDiscovery) isVacant(sq int) bool {
	return IsDarkSquare(sq) && d.src.PieceAt(sq).IsEmpty()
}

func (d *MoveDiscovery) HasMove(m Move) bool {
	_, ok := d.moves[m]
	return ok
}

func (d *MoveDiscovery) HasCapture(m Move) bool {
	_, ok := d.captures[m]
	return ok
}

func (d *MoveDiscovery) HasCaptureForTouchedPiece(m Move) bool {
	_, ok := d.touchedCaptures[m]
	return ok
}

func (d *MoveDiscovery) IsAnyMoveAvailable() bool    { return len(d.moves) > 0 }
func (d *MoveDiscovery) IsAnyCaptureAvailable() bool { return len(d.captures) > 0 }

func (d *MoveDiscovery) IsAnyTouchedPieceCaptureAvailable() bool {
	return len(d.touchedCaptures) > 0
}

func (d *MoveDiscovery) IsAnyMoveOrCaptureAvailable() bool {
	return d.IsAnyMoveAvailable() || d.IsAnyCaptureAvailable()
}

func (d *MoveDiscovery) AvailableMoves() []Move    { return d.moves.sorted() }
func (d *MoveDiscovery) AvailableCaptures() []Move { return d.captures.sorted() }
func (d *MoveDiscovery) TouchedPieceCaptures() []Move {
	return d.touchedCaptures.sorted()
}

func (s moveSet) sorted() []Move {
	out := make([]Move, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

func appendMove(chain []Move, more ...Move) []Move {
	out := make([]Move, 0, len(chain)+len(more))
	out = append(out, chain...)
	return append(out, more...)
}

func appendIndex(idx []int, more ...int) []int {
	out := make([]int, 0, len(idx)+len(more))
	out = append(out, idx...)
	return append(out, more...)
}
