package server

import "spider/internal/engine"

type GameView struct {
	Columns     [][]CardDTO `json:"columns"`
	StockSize   int         `json:"stockSize"`
	Foundations []string    `json:"foundations"`
	SuitCount   int         `json:"suitCount"`
	Seed        string      `json:"seed"`
	Relaxed     bool        `json:"relaxed"`
	Won         bool        `json:"won"`
}

// BuildGameView renders a snapshot for the frontend. Face-down cards are
// redacted here, not client-side, so a peeking client learns nothing.
func BuildGameView(snap engine.Snapshot) *GameView {
	columns := make([][]CardDTO, 0, engine.NumColumns)
	for _, pile := range snap.Columns {
		col := make([]CardDTO, 0, len(pile))
		for _, v := range pile {
			col = append(col, cardToDTO(v))
		}
		columns = append(columns, col)
	}
	foundations := make([]string, 0, len(snap.Foundations))
	for _, s := range snap.Foundations {
		foundations = append(foundations, s.String())
	}
	return &GameView{
		Columns:     columns,
		StockSize:   snap.StockSize,
		Foundations: foundations,
		SuitCount:   snap.SuitCount,
		Seed:        formatSeed(snap.Seed),
		Relaxed:     snap.Relaxed,
		Won:         snap.Won,
	}
}
