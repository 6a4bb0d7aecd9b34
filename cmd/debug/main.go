package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"checkers/internal/checkers"
	"checkers/internal/view"
)

func main() {
	app := &cli.App{
		Name:      "debug",
		Usage:     "print a position with its legal moves and hints",
		ArgsUsage: "[position]",
		Action: func(c *cli.Context) error {
			pos := checkers.NewInitialPosition()
			if c.Args().Present() {
				p, err := checkers.DecodePosition(c.Args().First())
				if err != nil {
					return err
				}
				pos = p
			}
			fmt.Println("FEN:", pos.Encode())

			st := checkers.NewGameState(checkers.Options{Position: pos})
			st.ToggleTurnPlayer()
			d := st.Discovery()

			v, _ := view.NewRegistry(false).Get(view.ChessLikeID)
			fmt.Print(v.Render(st.Board(), nil))
			fmt.Println("Side to move:", st.Turn())
			fmt.Println("Moves:", len(d.AvailableMoves()), "Captures:", len(d.AvailableCaptures()))
			for _, h := range d.Hints() {
				fmt.Printf("  score=%d chain=%v\n", h.Score, h.Chain)
			}
			if st.IsOver() {
				fmt.Println("Game over:", st.WinCondition())
			}
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
