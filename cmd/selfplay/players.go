package main

import (
	"math/rand"

	"checkers/internal/checkers"
)

// Player 从当前合法走法里挑一步。不做搜索。
type Player interface {
	Name() string
	Choose(st *checkers.GameState, hint []int) checkers.Move
}

type randomPlayer struct {
	rng *rand.Rand
}

func (p *randomPlayer) Name() string { return "random" }

func (p *randomPlayer) Choose(st *checkers.GameState, _ []int) checkers.Move {
	moves := st.LegalMoves()
	return moves[p.rng.Intn(len(moves))]
}

// hintPlayer 走提示链的第一步，提示不可用时退回随机。
type hintPlayer struct {
	fallback randomPlayer
}

func (p *hintPlayer) Name() string { return "hint" }

func (p *hintPlayer) Choose(st *checkers.GameState, hint []int) checkers.Move {
	if len(hint) >= 2 {
		mv := checkers.Move{From: hint[0], To: hint[1]}
		for _, legal := range st.LegalMoves() {
			if legal == mv {
				return mv
			}
		}
	}
	return p.fallback.Choose(st, nil)
}

func newPlayer(kind string, seed int64) Player {
	rng := rand.New(rand.NewSource(seed))
	if kind == "hint" {
		return &hintPlayer{fallback: randomPlayer{rng: rng}}
	}
	return &randomPlayer{rng: rng}
}
