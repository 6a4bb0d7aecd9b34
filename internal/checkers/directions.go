package checkers

// Direction 对角方向，"上" 表示行号减小。
type Direction struct {
	DRow int
	DCol int
}

var (
	DirNone   = Direction{}
	UpLeft    = Direction{DRow: -1, DCol: -1}
	UpRight   = Direction{DRow: -1, DCol: 1}
	DownLeft  = Direction{DRow: 1, DCol: -1}
	DownRight = Direction{DRow: 1, DCol: 1}
)

var (
	redPawnDirections   = []Direction{UpLeft, UpRight}
	blackPawnDirections = []Direction{DownLeft, DownRight}
	kingDirections      = []Direction{UpLeft, UpRight, DownLeft, DownRight}
)

// DirectionsFor 红兵只能向上，黑兵只能向下，王四个方向都可以。
// 返回的切片不能被修改。
func DirectionsFor(p Piece) []Direction {
	switch {
	case p.Type == PieceKing:
		return kingDirections
	case p.Type == PiecePawn && p.Side == Red:
		return redPawnDirections
	case p.Type == PiecePawn && p.Side == Black:
		return blackPawnDirections
	default:
		return nil
	}
}

// Step 沿 dir 走 n 步，出界返回 InvalidIndex。
func Step(sq int, dir Direction, n int) int {
	if !ValidIndex(sq) {
		return InvalidIndex
	}
	return IndexOf(RowOf(sq)+dir.DRow*n, ColOf(sq)+dir.DCol*n)
}

// DirectionOf 两格不在同一条对角线上时返回 DirNone。
func DirectionOf(from, to int) Direction {
	if Distance(from, to) == 0 {
		return DirNone
	}
	return Direction{
		DRow: normalize(RowOf(to) - RowOf(from)),
		DCol: normalize(ColOf(to) - ColOf(from)),
	}
}

// Distance 对角线上的步数；不在同一对角线（或越界）为 0。
func Distance(from, to int) int {
	if !ValidIndex(from) || !ValidIndex(to) {
		return 0
	}
	dr := abs(RowOf(to) - RowOf(from))
	dc := abs(ColOf(to) - ColOf(from))
	if dr != dc {
		return 0
	}
	return dr
}

// Midpoint 跳吃时被吃子所在的格子。
func Midpoint(from, to int) int {
	if Distance(from, to) != 2 {
		return InvalidIndex
	}
	return IndexOf((RowOf(from)+RowOf(to))/2, (ColOf(from)+ColOf(to))/2)
}

func normalize(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
