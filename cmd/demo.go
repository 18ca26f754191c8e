package main

import (
	"iter"
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/french-deck/domain/deck"
)

// demoFrenchDeck walks through the container behaviours of the deck,
// printing each result.
func demoFrenchDeck(d *deck.FrenchDeck, logger *slog.Logger) error {
	pterm.DefaultSection.Println("Sequence")
	pterm.Info.Printfln("Length: %d", d.Len())
	first, err := d.At(0)
	if err != nil {
		return err
	}
	last, err := d.At(-1)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Accessing item: %s %s", first.Colored(), last.Colored())

	if _, err := d.At(d.Len()); err != nil {
		logger.Warn("accessing past the end fails", "index", d.Len(), "error", err.Error())
	}

	for _, s := range []string{":3", "12::13"} {
		expr, err := deck.ParseSlice(s)
		if err != nil {
			return err
		}
		cards, err := d.Slice(expr)
		if err != nil {
			return err
		}
		pterm.Info.Printfln("Slicing [%s]: %s", expr, cardsLine(cards))
	}

	pterm.DefaultSection.Println("Iteration")
	stop, err := d.At(3)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Forward until %s: %s", stop.Colored(), cardsLine(takeUntil(d.All(), stop)))
	stop, err = d.At(-4)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Reverse until %s: %s", stop.Colored(), cardsLine(takeUntil(d.Backward(), stop)))

	pterm.DefaultSection.Println("Random")
	pick := d.Choice()
	pterm.Info.Printfln("Random pick a card: %s", pick.Colored())

	pterm.DefaultSection.Println("Sorted by rank, spades high")
	sorted := d.SortedBy(deck.SpadesHigh)
	var top [7]deck.Card
	copy(top[:], sorted[len(sorted)-len(top):])
	desc, err := deck.Describe(top)
	if err != nil {
		return err
	}
	pterm.DefaultBox.WithTitle(pterm.LightYellow("|TOP SEVEN|")).WithTitleTopCenter().
		WithHorizontalPadding(4).Println(cardsLine(top[:]) + "\n" + desc)

	return pterm.DefaultTable.WithHasHeader().WithData(rankingTable(sorted)).Render()
}

// takeUntil collects cards from seq up to and including stop.
func takeUntil(seq iter.Seq2[int, deck.Card], stop deck.Card) []deck.Card {
	var out []deck.Card
	for _, c := range seq {
		out = append(out, c)
		if c == stop {
			break
		}
	}
	return out
}
