package server

import (
	"encoding/json"
	"strings"
	"testing"

	"spider/internal/engine"
)

func TestBuildGameViewRedactsFaceDownCards(t *testing.T) {
	g, err := engine.NewGame(2, 11, false)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	view := BuildGameView(g.Snapshot())

	for col, pile := range view.Columns {
		for i, card := range pile {
			top := i == len(pile)-1
			if top {
				if !card.FaceUp || card.Rank == "" || card.Suit == "" {
					t.Fatalf("column %d top not rendered face up: %+v", col, card)
				}
				continue
			}
			if card.FaceUp || card.Rank != "" || card.Suit != "" {
				t.Fatalf("column %d card %d leaks identity: %+v", col, i, card)
			}
		}
	}
	if view.StockSize != 50 {
		t.Fatalf("stock size: got %d", view.StockSize)
	}
	if view.Seed != "11" {
		t.Fatalf("seed rendering: got %q", view.Seed)
	}
}

func TestParseSeedRoundTrip(t *testing.T) {
	seed, err := parseSeed("18446744073709551615")
	if err != nil {
		t.Fatalf("parseSeed: %v", err)
	}
	if formatSeed(seed) != "18446744073709551615" {
		t.Fatalf("seed round trip: got %q", formatSeed(seed))
	}
	if _, err := parseSeed("-1"); err == nil {
		t.Fatalf("expected error for negative seed")
	}
	if _, err := parseSeed("abc"); err == nil {
		t.Fatalf("expected error for non-numeric seed")
	}
}

func TestBuildMoveEventsReportsCompletionAndWin(t *testing.T) {
	var g engine.Game
	g.SuitCount = 1
	for i := 0; i < engine.NumFoundations-1; i++ {
		run := make([]engine.Card, 0, engine.RunLength)
		for r := engine.RankK; r >= engine.RankA; r-- {
			run = append(run, engine.Card{Suit: engine.SuitSpades, Rank: r})
		}
		g.Foundations = append(g.Foundations, run)
	}
	pile := []engine.PileCard{}
	for r := engine.RankK; r >= engine.Rank2; r-- {
		pile = append(pile, engine.PileCard{Card: engine.Card{Suit: engine.SuitSpades, Rank: r}, FaceUp: true})
	}
	g.Columns[0] = pile
	g.Columns[1] = []engine.PileCard{{Card: engine.Card{Suit: engine.SuitSpades, Rank: engine.RankA}, FaceUp: true}}

	prev := g.Snapshot()
	move := MoveDTO{Src: 1, Index: 0, Dst: 0}
	if err := g.MoveSequence(move.Src, move.Index, move.Dst); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	events := buildMoveEvents(prev, g.Snapshot(), move)

	types := map[string]bool{}
	for _, e := range events {
		types[e.Type] = true
	}
	for _, want := range []string{"moved", "run_completed", "game_won"} {
		if !types[want] {
			t.Fatalf("missing %q event in %v", want, events)
		}
	}
}

func TestBuildMoveEventsReportsExposedCardFlip(t *testing.T) {
	var g engine.Game
	g.SuitCount = 1
	g.Columns[0] = []engine.PileCard{
		{Card: engine.Card{Suit: engine.SuitSpades, Rank: engine.RankK}},
		{Card: engine.Card{Suit: engine.SuitSpades, Rank: engine.Rank5}, FaceUp: true},
	}
	g.Columns[1] = []engine.PileCard{{Card: engine.Card{Suit: engine.SuitSpades, Rank: engine.Rank6}, FaceUp: true}}

	prev := g.Snapshot()
	move := MoveDTO{Src: 0, Index: 1, Dst: 1}
	if err := g.MoveSequence(move.Src, move.Index, move.Dst); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	events := buildMoveEvents(prev, g.Snapshot(), move)

	found := false
	for _, e := range events {
		if e.Type != "card_flipped" {
			continue
		}
		found = true
		payload, ok := e.Data.(FlipPayload)
		if !ok || payload.Col != 0 {
			t.Fatalf("card_flipped payload: %v", e.Data)
		}
	}
	if !found {
		t.Fatalf("missing card_flipped event in %v", events)
	}
}

func TestMovedPayloadKeepsColumnZero(t *testing.T) {
	data, err := json.Marshal(MovedPayload{Src: 0, Dst: 3, Count: 2})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"src":0`, `"dst":3`, `"count":2`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("payload %s missing %s", data, want)
		}
	}
}

func TestBuildDealEventsStockSize(t *testing.T) {
	g, err := engine.NewGame(1, 5, false)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	prev := g.Snapshot()
	if err := g.DealFromStock(); err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	events := buildDealEvents(prev, g.Snapshot())
	if len(events) == 0 || events[0].Type != "stock_dealt" {
		t.Fatalf("expected stock_dealt first, got %v", events)
	}
	payload, ok := events[0].Data.(DealPayload)
	if !ok || payload.StockSize != 40 {
		t.Fatalf("stock_dealt payload: %v", events[0].Data)
	}
}
