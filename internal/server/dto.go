package server

import (
	"errors"
	"strconv"

	"spider/internal/engine"
)

// CardDTO hides the identity of face-down cards: rank and suit are only
// present when the card is face up.
type CardDTO struct {
	Rank   string `json:"rank,omitempty"`
	Suit   string `json:"suit,omitempty"`
	FaceUp bool   `json:"faceUp"`
}

// MoveDTO identifies the suffix of a source column and its destination.
type MoveDTO struct {
	Src   int `json:"src"`
	Index int `json:"index"`
	Dst   int `json:"dst"`
}

// NewGameDTO carries the parameters of a fresh deal. Seed is a decimal
// unsigned 64-bit integer; an empty seed lets the server pick one.
type NewGameDTO struct {
	SuitCount int    `json:"suitCount"`
	Seed      string `json:"seed,omitempty"`
	Relaxed   bool   `json:"relaxed,omitempty"`
}

func cardToDTO(v engine.CardView) CardDTO {
	if !v.FaceUp {
		return CardDTO{}
	}
	return CardDTO{Rank: v.Rank.String(), Suit: v.Suit.String(), FaceUp: true}
}

func parseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.New("seed must be a decimal unsigned 64-bit integer")
	}
	return seed, nil
}

func formatSeed(seed uint64) string {
	return strconv.FormatUint(seed, 10)
}
