package engine

import "math/rand"

func suitsFor(suitCount int) []Suit {
	switch suitCount {
	case 1:
		return []Suit{SuitSpades}
	case 2:
		return []Suit{SuitSpades, SuitHearts}
	case 4:
		return []Suit{SuitSpades, SuitHearts, SuitClubs, SuitDiamonds}
	default:
		return nil
	}
}

// BuildPool returns the 104-card Spider pool for the given suit count:
// eight copies of every rank in total, spread evenly over the chosen suits.
func BuildPool(suitCount int) ([]Card, error) {
	suits := suitsFor(suitCount)
	if suits == nil {
		return nil, ErrInvalidConfig
	}
	copies := 8 / len(suits)
	pool := make([]Card, 0, PoolSize)
	for i := 0; i < copies; i++ {
		for _, s := range suits {
			for r := RankA; r <= RankK; r++ {
				pool = append(pool, Card{Suit: s, Rank: r})
			}
		}
	}
	if len(pool) != PoolSize {
		return nil, ErrInvalidConfig
	}
	return pool, nil
}

// Shuffle returns a seeded Fisher-Yates permutation of pool. The generator
// is math/rand's NewSource, which the Go 1 compatibility promise keeps
// stable, so a seed replays the same permutation on every platform.
func Shuffle(pool []Card, seed uint64) []Card {
	shuffled := make([]Card, len(pool))
	copy(shuffled, pool)
	rng := rand.New(rand.NewSource(int64(seed)))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// NewGame builds, shuffles and deals a fresh Spider game. Columns 0-3 take
// six cards and columns 4-9 five, tops face up; the remaining 50 cards
// become the stock in shuffle order, next card to deal first.
func NewGame(suitCount int, seed uint64, relaxed bool) (*Game, error) {
	pool, err := BuildPool(suitCount)
	if err != nil {
		return nil, err
	}
	deck := Shuffle(pool, seed)

	g := &Game{
		SuitCount: suitCount,
		Seed:      seed,
		Relaxed:   relaxed,
	}
	idx := 0
	for col := 0; col < NumColumns; col++ {
		n := 5
		if col < 4 {
			n = 6
		}
		pile := make([]PileCard, 0, n)
		for i := 0; i < n; i++ {
			pile = append(pile, PileCard{Card: deck[idx], FaceUp: i == n-1})
			idx++
		}
		g.Columns[col] = pile
	}
	g.Stock = append([]Card(nil), deck[idx:]...)
	return g, nil
}
