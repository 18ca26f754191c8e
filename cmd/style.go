package main

import (
	"strconv"
	"strings"

	"github.com/luca-patrignani/french-deck/domain/deck"
)

func cardsLine(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Colored()
	}
	return strings.Join(parts, " - ")
}

// rankingTable lays out cards one per row with their ranking key, header first.
func rankingTable(cards []deck.Card) [][]string {
	rows := [][]string{{"Key", "Card", "Name"}}
	for _, c := range cards {
		rows = append(rows, []string{strconv.Itoa(deck.SpadesHigh(c)), c.Colored(), c.Name()})
	}
	return rows
}
