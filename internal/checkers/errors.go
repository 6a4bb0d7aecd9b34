package checkers

import "errors"

var (
	ErrGameNotStarted      = errors.New("game has not started")
	ErrGameOver            = errors.New("game is over")
	ErrMustContinueCapture = errors.New("you must continue capturing with the same piece")
	ErrCaptureRequired     = errors.New("a capture is available, you must take it")
	ErrMoveUnavailable     = errors.New("this is not a valid move, choose a different one")
)
