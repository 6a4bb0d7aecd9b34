package checkers

type EventKind int8

const (
	EventTurnChanged EventKind = iota
	EventPieceMoved
	EventPieceCaptured
	EventPiecePromoted
	EventAdditionalCaptureRequired
	EventWinConditionMet
	EventGameplayError
	EventHintRequested
)

func (k EventKind) String() string {
	switch k {
	case EventTurnChanged:
		return "TurnChanged"
	case EventPieceMoved:
		return "PieceMoved"
	case EventPieceCaptured:
		return "PieceCaptured"
	case EventPiecePromoted:
		return "PiecePromoted"
	case EventAdditionalCaptureRequired:
		return "AdditionalCaptureRequired"
	case EventWinConditionMet:
		return "WinConditionMet"
	case EventGameplayError:
		return "GameplayError"
	case EventHintRequested:
		return "HintRequested"
	default:
		return "Unknown"
	}
}

// Event 状态变化后同步发出。按 Kind 只填相关字段：
//   - TurnChanged: Side
//   - PieceMoved / PieceCaptured / PiecePromoted: Move, Piece（被吃的子 / 升王后的子）
//   - AdditionalCaptureRequired: Side, Move（刚完成的那一跳）
//   - WinConditionMet: Reason, Side（胜者，和棋为 NoSide）
//   - GameplayError: Move, Err
//   - HintRequested: Indices
type Event struct {
	Kind    EventKind
	Side    Side
	Move    Move
	Piece   Piece
	Reason  WinConditionReason
	Err     error
	Indices []int
}

// EventSink 回调里只允许读 GameState，不能再调用 MovePiece / ToggleTurnPlayer。
type EventSink interface {
	Notify(e Event)
}

type EventSinkFunc func(e Event)

func (f EventSinkFunc) Notify(e Event) { f(e) }
