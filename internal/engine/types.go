package engine

import "fmt"

type Suit int

type Rank int

const (
	SuitSpades Suit = iota
	SuitHearts
	SuitClubs
	SuitDiamonds
)

const (
	RankA Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
)

const (
	// PoolSize is the fixed Spider pool: eight single-suit decks worth of cards.
	PoolSize = 104
	// NumColumns is the number of tableau columns.
	NumColumns = 10
	// NumFoundations is the number of completed runs needed to win.
	NumFoundations = 8
	// RunLength is the length of a completed King-to-Ace run.
	RunLength = 13
	// StockDealSize is the number of cards dealt per stock deal, one per column.
	StockDealSize = 10
)

func (s Suit) String() string {
	switch s {
	case SuitSpades:
		return "S"
	case SuitHearts:
		return "H"
	case SuitClubs:
		return "C"
	case SuitDiamonds:
		return "D"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case RankA:
		return "A"
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	default:
		if r >= Rank2 && r <= Rank10 {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

// PileCard is a card placed in a tableau column. Face-down cards are dealt
// hidden and only revealed when everything above them leaves the column.
type PileCard struct {
	Card   Card
	FaceUp bool
}

// Game is the complete state of one Spider deal. Columns, Stock and
// Foundations together always hold the full 104-card pool; duplicate
// (rank, suit) values are distinct cards identified by their position.
type Game struct {
	SuitCount   int
	Seed        uint64
	Relaxed     bool
	Columns     [NumColumns][]PileCard
	Stock       []Card
	Foundations [][]Card
	Won         bool
}
