package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"checkers/internal/checkers"
	"checkers/internal/session"
	"checkers/internal/view"
)

type Config struct {
	View            view.ID
	Color           bool
	StartPosition   *checkers.Position
	RepetitionLimit int
}

// Game 终端对局：读命令、驱动 GameState、由 Display 输出。
type Game struct {
	cfg      Config
	log      *zap.SugaredLogger
	sessions *session.Manager
	current  *session.Session

	views   *view.Registry
	view    view.Strategy
	display *Display

	in   *bufio.Scanner
	quit bool
}

func NewGame(cfg Config, sessions *session.Manager, in io.Reader, out io.Writer, log *zap.SugaredLogger) (*Game, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	text, err := LoadText()
	if err != nil {
		return nil, err
	}
	views := view.NewRegistry(cfg.Color)
	v, err := views.Get(cfg.View)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:      cfg,
		log:      log,
		sessions: sessions,
		views:    views,
		view:     v,
		in:       bufio.NewScanner(in),
	}
	g.display = NewDisplay(out, text, cfg.Color, g)
	return g, nil
}

func (g *Game) State() *checkers.GameState {
	if g.current == nil {
		return nil
	}
	return g.current.State
}

func (g *Game) View() view.Strategy { return g.view }

// SessionID 当前对局的 id，还没开局时为空。
func (g *Game) SessionID() string {
	if g.current == nil {
		return ""
	}
	return g.current.ID
}

// Run 读到 q、EOF 或 ctx 取消为止。对局结束后仍然可以 n 重新开局。
func (g *Game) Run(ctx context.Context) error {
	g.display.Welcome()
	if err := g.startSession(); err != nil {
		return err
	}

	for !g.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.display.Prompt()
		if !g.in.Scan() {
			if err := g.in.Err(); err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			break
		}
		line := g.in.Text()

		cmd, err := ParseCommand(line)
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err != nil {
			g.log.Warnw("bad input", "line", line, "error", err)
			g.inputError(err, line)
			continue
		}
		if err := cmd.Execute(g); err != nil {
			g.log.Warnw("command failed", "line", line, "error", err)
			g.inputError(err, line)
		}
	}

	g.display.Goodbye()
	return nil
}

func (g *Game) startSession() error {
	if g.current != nil {
		g.sessions.Remove(g.current.ID)
	}
	g.current = g.sessions.NewGame(checkers.Options{
		Position:        g.cfg.StartPosition,
		Sink:            g.display,
		Logger:          g.log,
		RepetitionLimit: g.cfg.RepetitionLimit,
	})
	g.log.Infow("game started", "game_id", g.current.ID)
	g.display.NewGame(g.current.ID)
	g.current.State.ToggleTurnPlayer()
	return nil
}

func (g *Game) inputError(err error, line string) {
	t := g.display.text.Errors
	switch {
	case errors.Is(err, ErrUnknownCommand):
		g.display.println(fill(t.UnknownCommand, "input", fmt.Sprintf("%q", line)))
	case errors.Is(err, ErrBadSyntax):
		g.display.println(fill(t.BadSyntax, "input", fmt.Sprintf("%q", line)))
	case errors.Is(err, view.ErrInvalidPosition):
		g.display.println(fill(t.BadPosition, "input", fmt.Sprintf("%q", line), "view", g.view.Name()))
	case errors.Is(err, view.ErrUnknownView):
		g.display.println(fill(t.UnknownView, "input", fmt.Sprintf("%q", line), "views", g.views.Options()))
	default:
		g.display.Error(err)
	}
}
