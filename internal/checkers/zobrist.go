package checkers

import "sync"

const zobristPieceTypes = 3 // PieceType 范围 [1..2]，0 保留空位不用

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceTypes][NumSquares]uint64
	zobristSide   [2]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
			}
		}
		zobristSide[0] = next()
		zobristSide[1] = next()
	})
}

func sideIndex(s Side) int {
	switch s {
	case Red:
		return 0
	case Black:
		return 1
	default:
		return -1
	}
}

func pieceHashKey(pc Piece, sq int) uint64 {
	if pc.IsEmpty() || !ValidIndex(sq) {
		return 0
	}
	si := sideIndex(pc.Side)
	if si < 0 {
		return 0
	}
	pt := int(pc.Type)
	if pt <= 0 || pt >= zobristPieceTypes {
		return 0
	}
	return zobristPieces[si][pt][sq]
}

func sideHashKey(s Side) uint64 {
	si := sideIndex(s)
	if si < 0 {
		return 0
	}
	return zobristSide[si]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希（含行棋方）。
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc.IsEmpty() {
			continue
		}
		h ^= pieceHashKey(pc, sq)
	}
	return h ^ sideHashKey(p.SideToMove)
}

// setSquare 改格子并增量更新哈希。
func (p *Position) setSquare(sq int, pc Piece) {
	if !ValidIndex(sq) {
		return
	}
	initZobrist()
	p.Hash ^= pieceHashKey(p.Board.Squares[sq], sq)
	p.Board.Squares[sq] = pc
	p.Hash ^= pieceHashKey(pc, sq)
}

func (p *Position) setSideToMove(s Side) {
	initZobrist()
	p.Hash ^= sideHashKey(p.SideToMove)
	p.SideToMove = s
	p.Hash ^= sideHashKey(s)
}
