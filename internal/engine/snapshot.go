package engine

// CardView is the only card identity the core hands to renderers.
type CardView struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// Snapshot is a read-only copy of the state a frontend needs to draw:
// per-column cards with their face-up flags, the stock size, the suit of
// every completed run, and the win flag. Mutating a Snapshot never touches
// the Game it came from.
type Snapshot struct {
	Columns     [NumColumns][]CardView
	StockSize   int
	Foundations []Suit
	SuitCount   int
	Seed        uint64
	Relaxed     bool
	Won         bool
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		StockSize: len(g.Stock),
		SuitCount: g.SuitCount,
		Seed:      g.Seed,
		Relaxed:   g.Relaxed,
		Won:       g.Won,
	}
	for col, pile := range g.Columns {
		views := make([]CardView, 0, len(pile))
		for _, pc := range pile {
			views = append(views, CardView{Suit: pc.Card.Suit, Rank: pc.Card.Rank, FaceUp: pc.FaceUp})
		}
		s.Columns[col] = views
	}
	for _, run := range g.Foundations {
		s.Foundations = append(s.Foundations, run[0].Suit)
	}
	return s
}
