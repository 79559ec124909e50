package engine

// MoveSequence moves the suffix of column src starting at cardIndex onto
// column dst. Placement only requires the destination top to be one rank
// higher; an empty destination accepts any run. All checks run before any
// mutation, so a rejected move leaves the game untouched.
func (g *Game) MoveSequence(src, cardIndex, dst int) error {
	if err := g.checkMove(src, cardIndex, dst); err != nil {
		return err
	}
	g.Columns[dst] = append(g.Columns[dst], g.Columns[src][cardIndex:]...)
	g.Columns[src] = g.Columns[src][:cardIndex]
	g.flipTop(src)
	g.completeRun(dst)
	return nil
}

// DealFromStock deals one face-up card from the stock onto each column in
// column order 0..9.
func (g *Game) DealFromStock() error {
	if err := g.checkStockDeal(); err != nil {
		return err
	}
	for col := 0; col < NumColumns; col++ {
		g.Columns[col] = append(g.Columns[col], PileCard{Card: g.Stock[col], FaceUp: true})
	}
	g.Stock = append([]Card(nil), g.Stock[StockDealSize:]...)
	for col := 0; col < NumColumns; col++ {
		g.completeRun(col)
	}
	return nil
}

func (g *Game) flipTop(col int) {
	pile := g.Columns[col]
	if n := len(pile); n > 0 && !pile[n-1].FaceUp {
		pile[n-1].FaceUp = true
	}
}

// completeRun moves a finished King-to-Ace single-suit run from the top of
// column col onto a foundation. Completion stays strict in relaxed mode.
func (g *Game) completeRun(col int) {
	pile := g.Columns[col]
	if len(pile) < RunLength {
		return
	}
	start := len(pile) - RunLength
	suit := pile[start].Card.Suit
	for i := 0; i < RunLength; i++ {
		pc := pile[start+i]
		if !pc.FaceUp || pc.Card.Suit != suit || pc.Card.Rank != RankK-Rank(i) {
			return
		}
	}
	run := make([]Card, 0, RunLength)
	for _, pc := range pile[start:] {
		run = append(run, pc.Card)
	}
	g.Foundations = append(g.Foundations, run)
	g.Columns[col] = pile[:start]
	g.flipTop(col)
	if len(g.Foundations) == NumFoundations {
		g.Won = true
	}
}
