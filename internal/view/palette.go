package view

import (
	"github.com/charmbracelet/lipgloss"

	"checkers/internal/checkers"
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4040")).Bold(true)
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0FF")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#007ACC"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// palette color=false 时输出纯 ASCII（日志、测试、不支持颜色的终端）。
type palette struct {
	enabled bool
}

func newPalette(color bool) palette { return palette{enabled: color} }

func (p palette) piece(pc checkers.Piece) string {
	g := string(checkers.PieceGlyph(pc))
	if pc.IsEmpty() {
		g = " "
	}
	if !p.enabled {
		return g
	}
	switch pc.Side {
	case checkers.Red:
		return redStyle.Render(g)
	case checkers.Black:
		return blackStyle.Render(g)
	default:
		return g
	}
}

// cell 普通格子用 [x]，提示格子用 {x}（有颜色时改用背景色）。
func (p palette) cell(inner string, hinted bool) string {
	if !hinted {
		return "[" + inner + "]"
	}
	if !p.enabled {
		return "{" + inner + "}"
	}
	return hintStyle.Render("[" + inner + "]")
}

func (p palette) label(s string) string {
	if !p.enabled {
		return s
	}
	return labelStyle.Render(s)
}
