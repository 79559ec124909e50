package engine

// runStart returns the lowest index of the movable suffix of pile: face-up
// cards descending by exactly one rank per step, single suit unless relaxed.
// An empty pile or a face-down top yields len(pile).
func runStart(pile []PileCard, relaxed bool) int {
	i := len(pile) - 1
	if i < 0 || !pile[i].FaceUp {
		return len(pile)
	}
	for i > 0 {
		below := pile[i-1]
		cur := pile[i]
		if !below.FaceUp || below.Card.Rank != cur.Card.Rank+1 {
			break
		}
		if !relaxed && below.Card.Suit != cur.Card.Suit {
			break
		}
		i--
	}
	return i
}

func (g *Game) checkMove(src, cardIndex, dst int) error {
	if src < 0 || src >= NumColumns || dst < 0 || dst >= NumColumns {
		return ErrIndexOutOfRange
	}
	if src == dst {
		return ErrSameColumn
	}
	pile := g.Columns[src]
	if len(pile) == 0 {
		return ErrEmptySource
	}
	if cardIndex < 0 || cardIndex >= len(pile) {
		return ErrIndexOutOfRange
	}
	if !pile[cardIndex].FaceUp {
		return ErrNotFaceUp
	}
	if cardIndex < runStart(pile, g.Relaxed) {
		return ErrNotARun
	}
	if dstPile := g.Columns[dst]; len(dstPile) > 0 {
		if dstPile[len(dstPile)-1].Card.Rank != pile[cardIndex].Card.Rank+1 {
			return ErrRankMismatch
		}
	}
	return nil
}

// IsLegalMove reports whether MoveSequence would accept the move. It never
// mutates the game; the frontend uses it for drag highlighting.
func (g *Game) IsLegalMove(src, cardIndex, dst int) bool {
	return g.checkMove(src, cardIndex, dst) == nil
}

func (g *Game) checkStockDeal() error {
	if len(g.Stock) == 0 {
		return ErrEmptyStock
	}
	if !g.Relaxed {
		for _, pile := range g.Columns {
			if len(pile) == 0 {
				return ErrEmptyColumnExists
			}
		}
	}
	return nil
}
