package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"checkers/internal/bootstrap"
	"checkers/internal/checkers"
	"checkers/internal/session"
)

type result struct {
	Reason checkers.WinConditionReason
	Winner string // 玩家名，和棋或超步数为空
	Plies  int
}

type tally struct {
	mu      sync.Mutex
	wins    map[string]int
	reasons map[string]int
	plies   int
}

func (t *tally) add(r result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if r.Winner != "" {
		t.wins[r.Winner]++
	}
	reason := r.Reason.String()
	if r.Reason == checkers.WinNone {
		reason = "MaxPlies"
	}
	t.reasons[reason]++
	t.plies += r.Plies
}

func main() {
	app := &cli.App{
		Name:  "selfplay",
		Usage: "play unattended games between simple move pickers",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "games", Value: 10, Usage: "number of games to play"},
			&cli.IntFlag{Name: "parallel", Value: 4, Usage: "games played at the same time"},
			&cli.IntFlag{Name: "max-plies", Value: 400, Usage: "stop a game after this many moves"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "random seed"},
			&cli.StringFlag{Name: "first", Value: "hint", Usage: "player one: hint or random"},
			&cli.StringFlag{Name: "second", Value: "random", Usage: "player two: hint or random"},
			&cli.StringFlag{Name: "log-level", Value: "warn"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	logger, err := bootstrap.NewLogger(c.String("log-level"), "")
	if err != nil {
		return err
	}
	defer logger.Sync()

	sessions := session.NewManager()
	t := &tally{wins: map[string]int{}, reasons: map[string]int{}}

	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(c.Int("parallel"))
	for i := 0; i < c.Int("games"); i++ {
		i := i
		g.Go(func() error {
			seed := c.Int64("seed") + int64(i)
			one := newPlayer(c.String("first"), seed)
			two := newPlayer(c.String("second"), seed+1000)
			// 轮流执红
			red, black := one, two
			if i%2 == 1 {
				red, black = two, one
			}
			r, err := playGame(ctx, sessions, logger, red, black, c.Int("max-plies"))
			if err != nil {
				return err
			}
			fmt.Printf("game %d: red=%s black=%s reason=%s winner=%q plies=%d\n",
				i+1, red.Name(), black.Name(), r.Reason, r.Winner, r.Plies)
			t.add(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println("=== Summary ===")
	for name, n := range t.wins {
		fmt.Printf("%s wins: %d\n", name, n)
	}
	for reason, n := range t.reasons {
		fmt.Printf("%s: %d\n", reason, n)
	}
	if games := c.Int("games"); games > 0 {
		fmt.Printf("average plies: %.1f\n", float64(t.plies)/float64(games))
	}
	return nil
}

func playGame(ctx context.Context, sessions *session.Manager, logger *zap.SugaredLogger, red, black Player, maxPlies int) (result, error) {
	var hint []int
	sink := checkers.EventSinkFunc(func(e checkers.Event) {
		if e.Kind == checkers.EventHintRequested {
			hint = e.Indices
		}
	})
	s := sessions.NewGame(checkers.Options{Sink: sink, Logger: logger})
	defer sessions.Remove(s.ID)

	st := s.State
	st.ToggleTurnPlayer()
	plies := 0
	for ; plies < maxPlies && !st.IsOver(); plies++ {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		p := red
		if st.Turn() == checkers.Black {
			p = black
		}
		hint = nil
		st.ScopedActivateHintsAndNotify()
		mv := p.Choose(st, hint)
		if err := st.MovePiece(mv); err != nil {
			return result{}, fmt.Errorf("game %s ply %d: %s played %v: %w", s.ID, plies, p.Name(), mv, err)
		}
		_ = sessions.Touch(s.ID)
	}

	r := result{Reason: st.WinCondition(), Plies: plies}
	switch st.Winner() {
	case checkers.Red:
		r.Winner = red.Name()
	case checkers.Black:
		r.Winner = black.Name()
	}
	pos := st.Position()
	logger.Infow("selfplay game finished", "game_id", s.ID, "reason", r.Reason, "plies", plies, "fen", pos.Encode())
	return r, nil
}
