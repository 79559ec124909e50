package server

import "spider/internal/engine"

type MovedPayload struct {
	Src   int `json:"src"`
	Dst   int `json:"dst"`
	Count int `json:"count"`
}

type FlipPayload struct {
	Col int `json:"col"`
}

type DealPayload struct {
	StockSize int `json:"stockSize"`
}

type RunPayload struct {
	Suit string `json:"suit"`
}

func buildMoveEvents(prev, next engine.Snapshot, move MoveDTO) []Event {
	events := []Event{{
		Type: "moved",
		Data: MovedPayload{
			Src:   move.Src,
			Dst:   move.Dst,
			Count: len(prev.Columns[move.Src]) - move.Index,
		},
	}}
	return append(events, diffEvents(prev, next)...)
}

func buildDealEvents(prev, next engine.Snapshot) []Event {
	events := []Event{{
		Type: "stock_dealt",
		Data: DealPayload{StockSize: next.StockSize},
	}}
	return append(events, diffEvents(prev, next)...)
}

// diffEvents reports card flips, completed runs and the win transition by
// comparing the snapshots before and after an intent. Cards keep their
// position below any removed suffix, so a positional face-up comparison
// finds exactly the flips.
func diffEvents(prev, next engine.Snapshot) []Event {
	events := []Event{}
	for col := range next.Columns {
		p, n := prev.Columns[col], next.Columns[col]
		limit := len(n)
		if len(p) < limit {
			limit = len(p)
		}
		for i := 0; i < limit; i++ {
			if !p[i].FaceUp && n[i].FaceUp {
				events = append(events, Event{Type: "card_flipped", Data: FlipPayload{Col: col}})
			}
		}
	}
	for i := len(prev.Foundations); i < len(next.Foundations); i++ {
		events = append(events, Event{
			Type: "run_completed",
			Data: RunPayload{Suit: next.Foundations[i].String()},
		})
	}
	if !prev.Won && next.Won {
		events = append(events, Event{Type: "game_won"})
	}
	return events
}
