package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"checkers/internal/checkers"
	"checkers/internal/view"
)

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
)

// boardSource Display 只读当前对局和当前视图。
type boardSource interface {
	State() *checkers.GameState
	View() view.Strategy
}

// Display 把 GameState 的事件渲染到终端。
type Display struct {
	out   io.Writer
	text  Text
	color bool
	src   boardSource
}

func NewDisplay(out io.Writer, text Text, color bool, src boardSource) *Display {
	return &Display{out: out, text: text, color: color, src: src}
}

func (d *Display) Notify(e checkers.Event) {
	v := d.src.View()
	switch e.Kind {
	case checkers.EventTurnChanged:
		d.board(nil)
		d.info(fill(d.text.Turn, "side", e.Side.String()))
	case checkers.EventPieceCaptured:
		mid := checkers.Midpoint(e.Move.From, e.Move.To)
		d.info(fill(d.text.Captured,
			"side", e.Side.String(),
			"piece", strings.ToLower(e.Piece.Type.String()),
			"square", v.IndexToPosition(mid)))
	case checkers.EventPiecePromoted:
		d.info(fill(d.text.Promoted, "side", e.Side.String(), "square", v.IndexToPosition(e.Move.To)))
	case checkers.EventAdditionalCaptureRequired:
		d.board(nil)
		d.info(fill(d.text.AdditionalCapture, "side", e.Side.String(), "square", v.IndexToPosition(e.Move.To)))
	case checkers.EventWinConditionMet:
		// 无子可动时棋盘刚在换手时画过
		if e.Reason != checkers.NoAvailableMovesLoss {
			d.board(nil)
		}
		d.win(e)
	case checkers.EventGameplayError:
		d.Error(e.Err)
	case checkers.EventHintRequested:
		if len(e.Indices) == 0 {
			d.info(d.text.NoHint)
			return
		}
		d.board(e.Indices)
		path := make([]string, 0, len(e.Indices))
		for _, sq := range e.Indices {
			path = append(path, v.IndexToPosition(sq))
		}
		d.info(fill(d.text.Hint, "path", strings.Join(path, " -> ")))
	}
}

func (d *Display) win(e checkers.Event) {
	var msg string
	switch e.Reason {
	case checkers.AllEnemyPiecesCapturedWin:
		msg = fill(d.text.Win.AllCaptured, "side", e.Side.String())
	case checkers.NoAvailableMovesLoss:
		msg = fill(d.text.Win.NoMoves, "side", e.Side.String(), "loser", checkers.Opposite(e.Side).String())
	case checkers.GameStateViolationDraw:
		msg = d.text.Win.Draw
	default:
		return
	}
	d.println(d.style(winStyle, msg))
}

// Error 规则错误和输入错误都走这里。
func (d *Display) Error(err error) {
	var msg string
	switch {
	case errors.Is(err, checkers.ErrCaptureRequired):
		msg = d.text.Errors.CaptureRequired
	case errors.Is(err, checkers.ErrMustContinueCapture):
		msg = d.text.Errors.MustContinue
	case errors.Is(err, checkers.ErrMoveUnavailable):
		msg = d.text.Errors.MoveUnavailable
	case errors.Is(err, checkers.ErrGameNotStarted):
		msg = d.text.Errors.NotStarted
	case errors.Is(err, checkers.ErrGameOver):
		msg = d.text.Win.Over
	default:
		msg = err.Error()
	}
	d.println(d.style(errorStyle, msg))
}

func (d *Display) Welcome() { d.println(d.text.Welcome) }

func (d *Display) Help(views string) {
	d.println(fill(d.text.Help, "views", views, "syntax", d.src.View().MoveSyntax()))
}

func (d *Display) Prompt() {
	st := d.src.State()
	if st == nil {
		return
	}
	fmt.Fprint(d.out, fill(d.text.Prompt, "side", st.Turn().String()))
}

func (d *Display) ViewChanged() {
	d.info(fill(d.text.ViewChanged, "view", d.src.View().Name()))
	d.board(nil)
}

func (d *Display) NewGame(id string) { d.info(fill(d.text.NewGame, "id", id)) }
func (d *Display) Goodbye()          { d.println(d.text.Goodbye) }

func (d *Display) board(hints []int) {
	st := d.src.State()
	if st == nil {
		return
	}
	fmt.Fprintln(d.out)
	fmt.Fprint(d.out, d.src.View().Render(st.Board(), hints))
	fmt.Fprintf(d.out, "Red: %d  Black: %d\n", st.PiecesCount(checkers.Red), st.PiecesCount(checkers.Black))
}

func (d *Display) info(msg string) { d.println(d.style(infoStyle, msg)) }

func (d *Display) style(s lipgloss.Style, msg string) string {
	if !d.color {
		return msg
	}
	return s.Render(msg)
}

func (d *Display) println(msg string) {
	fmt.Fprintln(d.out, strings.TrimRight(msg, "\n"))
}
