package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/french-deck/domain/deck"
)

func main() {
	seed := flag.String("seed", "", "hex seed for a reproducible random pick")
	flag.Parse()

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("F", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("rench ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("D", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("eck", pterm.FgDarkGray.ToStyle()),
	).Render()

	opts, err := deckOptions(*seed)
	if err != nil {
		logger.Error("invalid seed", "seed", *seed, "error", err.Error())
		os.Exit(2)
	}
	if err := demoFrenchDeck(deck.New(opts...), logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func deckOptions(seed string) ([]deck.Option, error) {
	if seed == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(seed)
	if err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	return []deck.Option{deck.WithRandomStream(deck.SeededStream(b))}, nil
}
