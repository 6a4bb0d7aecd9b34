package checkers

// MoveHint 提示：Score = 链长，普通走子为 0。
type MoveHint struct {
	Score int
	Chain []Move
}

// Indices 展开为 [起点, 第一跳落点, 第二跳落点, ...]。
func (h MoveHint) Indices() []int {
	if len(h.Chain) == 0 {
		return nil
	}
	out := make([]int, 0, len(h.Chain)+1)
	out = append(out, h.Chain[0].From)
	for _, m := range h.Chain {
		out = append(out, m.To)
	}
	return out
}

// Hints 已按分数从高到低排序（同分保持发现顺序）。
func (d *MoveDiscovery) Hints() []MoveHint {
	out := make([]MoveHint, len(d.hints))
	copy(out, d.hints)
	return out
}

// BestHintIndices 连吃进行中时只看已摸子的链，否则取排名第一的提示。
func (d *MoveDiscovery) BestHintIndices() []int {
	locked := d.src.HasPlayerTouchedPiece()
	for _, h := range d.hints {
		if len(h.Chain) == 0 {
			continue
		}
		if locked && !d.src.IsTouchedPiece(h.Chain[0].From) {
			continue
		}
		return h.Indices()
	}
	return nil
}
