package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"checkers/internal/checkers"
)

type ID int

const (
	ChessLikeID        ID = 1
	CheckersNotationID ID = 2
)

var (
	ErrInvalidPosition = errors.New("invalid board position")
	ErrUnknownView     = errors.New("unknown view style")
)

// Strategy 把棋盘画成文本，并把玩家输入的格子名换成下标。
// 核心只认下标，记谱法全部在这里。
type Strategy interface {
	ID() ID
	Name() string
	Render(b checkers.Board, hints []int) string
	PositionToIndex(pos string) (int, error)
	IndexToPosition(sq int) string
	MoveSyntax() string
}

// Registry 按编号顺序保存可选的视图。
type Registry struct {
	strategies []Strategy
}

func NewRegistry(color bool) *Registry {
	p := newPalette(color)
	return &Registry{strategies: []Strategy{
		&ChessLike{palette: p},
		&CheckersNotation{palette: p},
	}}
}

func (r *Registry) Get(id ID) (Strategy, error) {
	for _, s := range r.strategies {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownView, id)
}

func (r *Registry) List() []Strategy {
	out := make([]Strategy, len(r.strategies))
	copy(out, r.strategies)
	return out
}

// Options 形如 "1 = chess-like, 2 = checkers notation"，用于帮助文本。
func (r *Registry) Options() string {
	parts := make([]string, 0, len(r.strategies))
	for _, s := range r.strategies {
		parts = append(parts, fmt.Sprintf("%d = %s", s.ID(), s.Name()))
	}
	return strings.Join(parts, ", ")
}

// ParseID 接受编号或名字。
func ParseID(s string) (ID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chess", "chess-like", "chesslike":
		return ChessLikeID, nil
	case "notation", "checkers", "checkers-notation":
		return CheckersNotationID, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return ID(n), nil
}

func containsIndex(idx []int, sq int) bool {
	for _, v := range idx {
		if v == sq {
			return true
		}
	}
	return false
}
