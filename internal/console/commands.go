package console

import (
	"errors"
	"fmt"
	"strings"

	"checkers/internal/checkers"
	"checkers/internal/view"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadSyntax      = errors.New("bad command syntax")
)

// Command 一行输入解析出来的动作。
type Command interface {
	Execute(g *Game) error
}

type (
	helpCommand      struct{}
	hintCommand      struct{}
	newGameCommand   struct{}
	quitCommand      struct{}
	viewStyleCommand struct{ option string }
	moveCommand      struct{ from, to string }
)

// ParseCommand 第一个词决定命令：h / s <n> / m <src> <dst> / t / n / q。
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	arity := map[string]int{"h": 0, "t": 0, "n": 0, "q": 0, "s": 1, "m": 2}
	want, ok := arity[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	if len(args) != want {
		return nil, fmt.Errorf("%w: %q", ErrBadSyntax, line)
	}

	switch name {
	case "h":
		return helpCommand{}, nil
	case "t":
		return hintCommand{}, nil
	case "n":
		return newGameCommand{}, nil
	case "q":
		return quitCommand{}, nil
	case "s":
		return viewStyleCommand{option: args[0]}, nil
	default:
		return moveCommand{from: args[0], to: args[1]}, nil
	}
}

func (helpCommand) Execute(g *Game) error {
	g.display.Help(g.views.Options())
	return nil
}

func (hintCommand) Execute(g *Game) error {
	g.State().ScopedActivateHintsAndNotify()
	return nil
}

func (newGameCommand) Execute(g *Game) error {
	return g.startSession()
}

func (quitCommand) Execute(g *Game) error {
	g.quit = true
	return nil
}

func (c viewStyleCommand) Execute(g *Game) error {
	id, err := view.ParseID(c.option)
	if err != nil {
		return err
	}
	s, err := g.views.Get(id)
	if err != nil {
		return err
	}
	g.view = s
	g.log.Infow("view style changed", "view", s.Name())
	g.display.ViewChanged()
	return nil
}

func (c moveCommand) Execute(g *Game) error {
	from, err := g.view.PositionToIndex(c.from)
	if err != nil {
		return err
	}
	to, err := g.view.PositionToIndex(c.to)
	if err != nil {
		return err
	}

	err = g.State().MovePiece(checkers.Move{From: from, To: to})
	if err == nil {
		return g.sessions.Touch(g.current.ID)
	}
	// 规则错误已经通过 EventGameplayError 显示过
	if errors.Is(err, checkers.ErrGameOver) || errors.Is(err, checkers.ErrGameNotStarted) {
		return err
	}
	return nil
}
