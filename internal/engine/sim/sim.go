package sim

import (
	"fmt"
	"math/rand"

	"spider/internal/engine"
)

type moveRecord struct {
	Step  int
	Src   int
	Index int
	Dst   int
	Deal  bool
}

type config struct {
	suits   int
	relaxed bool
}

var configs = []config{
	{1, false}, {2, false}, {4, false},
	{1, true}, {2, true}, {4, true},
}

// RunRandomPlayouts deals fresh games cycling over every suit count and rule
// mode, plays random legal moves and stock deals, and checks the state
// invariants after every accepted step.
func RunRandomPlayouts(seed int64, games int, maxStepsPerGame int) error {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < games; i++ {
		cfg := configs[i%len(configs)]
		g, err := engine.NewGame(cfg.suits, uint64(rng.Int63()), cfg.relaxed)
		if err != nil {
			return fmt.Errorf("seed=%d game=%d deal failed: %w", seed, i, err)
		}
		if err := checkInvariants(g); err != nil {
			return failure(seed, i, 0, nil, err.Error())
		}
		if err := playRandom(g, rng, maxStepsPerGame, seed, i); err != nil {
			return err
		}
	}
	return nil
}

func playRandom(g *engine.Game, rng *rand.Rand, maxSteps int, seed int64, game int) error {
	records := []moveRecord{}
	for step := 0; step < maxSteps; step++ {
		if g.Won {
			return nil
		}
		moves := legalMoves(g)
		// Deal from the stock roughly once per dozen steps, or when stuck.
		deal := len(moves) == 0 || rng.Intn(12) == 0
		if deal {
			err := g.DealFromStock()
			switch err {
			case nil:
				records = append(records, moveRecord{Step: step, Deal: true})
			case engine.ErrEmptyStock, engine.ErrEmptyColumnExists:
				if len(moves) == 0 {
					return nil
				}
			default:
				return failure(seed, game, step, records, fmt.Sprintf("deal error: %v", err))
			}
		}
		if !deal && len(moves) > 0 {
			m := moves[rng.Intn(len(moves))]
			m.Step = step
			if err := g.MoveSequence(m.Src, m.Index, m.Dst); err != nil {
				return failure(seed, game, step, records, fmt.Sprintf("legal move rejected: %v", err))
			}
			records = append(records, m)
		}
		if err := checkInvariants(g); err != nil {
			return failure(seed, game, step, records, err.Error())
		}
	}
	return nil
}

func legalMoves(g *engine.Game) []moveRecord {
	out := []moveRecord{}
	for src := 0; src < engine.NumColumns; src++ {
		for idx := range g.Columns[src] {
			for dst := 0; dst < engine.NumColumns; dst++ {
				if g.IsLegalMove(src, idx, dst) {
					out = append(out, moveRecord{Src: src, Index: idx, Dst: dst})
				}
			}
		}
	}
	return out
}

func checkInvariants(g *engine.Game) error {
	total, counts := countCards(g)
	if total != engine.PoolSize {
		return fmt.Errorf("card count mismatch: %d", total)
	}
	perValue := 8 / g.SuitCount
	for card, n := range counts {
		if n != perValue {
			return fmt.Errorf("card %v appears %d times, want %d", card, n, perValue)
		}
	}
	if len(g.Stock)%engine.StockDealSize != 0 || len(g.Stock) > 50 {
		return fmt.Errorf("invalid stock size: %d", len(g.Stock))
	}
	for col, pile := range g.Columns {
		if n := len(pile); n > 0 && !pile[n-1].FaceUp {
			return fmt.Errorf("column %d top is face down", col)
		}
	}
	for _, run := range g.Foundations {
		if len(run) != engine.RunLength {
			return fmt.Errorf("foundation run length %d", len(run))
		}
		for i, c := range run {
			if c.Suit != run[0].Suit || c.Rank != engine.RankK-engine.Rank(i) {
				return fmt.Errorf("malformed foundation run at %d: %v", i, c)
			}
		}
	}
	if len(g.Foundations) > engine.NumFoundations {
		return fmt.Errorf("too many foundations: %d", len(g.Foundations))
	}
	if g.Won != (len(g.Foundations) == engine.NumFoundations) {
		return fmt.Errorf("won flag inconsistent with %d foundations", len(g.Foundations))
	}
	return nil
}

func countCards(g *engine.Game) (int, map[engine.Card]int) {
	counts := map[engine.Card]int{}
	total := 0
	add := func(c engine.Card) {
		total++
		counts[c]++
	}
	for _, pile := range g.Columns {
		for _, pc := range pile {
			add(pc.Card)
		}
	}
	for _, c := range g.Stock {
		add(c)
	}
	for _, run := range g.Foundations {
		for _, c := range run {
			add(c)
		}
	}
	return total, counts
}

func failure(seed int64, game int, step int, records []moveRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		if r.Deal {
			log += fmt.Sprintf("[s%d] deal\n", r.Step)
		} else {
			log += fmt.Sprintf("[s%d] move %d:%d -> %d\n", r.Step, r.Src, r.Index, r.Dst)
		}
	}
	return fmt.Errorf("seed=%d game=%d step=%d reason=%s\nlast moves:\n%s",
		seed, game, step, reason, log)
}
