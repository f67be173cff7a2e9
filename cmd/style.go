package main

import (
	"HighStakes/services/game"
	"HighStakes/services/poker"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// cardLabel colors a card by suit.
func cardLabel(c poker.Card) string {
	switch c.Suit {
	case "♥", "♦":
		return pterm.LightRed(c.String())
	default:
		return pterm.White(c.String())
	}
}

// printHand formats the hand, selected cards highlighted.
func printHand(s *game.Session) string {
	var parts []string
	for i, hc := range s.Hand.Cards {
		label := fmt.Sprintf("%d:%s", i+1, cardLabel(hc.Card))
		if hc.Selected {
			label = pterm.BgGreen.Sprint(" " + label + " ")
		}
		parts = append(parts, label)
	}
	if len(parts) == 0 {
		return pterm.Gray("(empty)")
	}
	return strings.Join(parts, "  ") +
		pterm.Sprintfln("\n\nSelected: %d/%d   Sort: %s", s.Hand.SelectedCount(), poker.MaxSelected, s.Hand.Sort)
}

func printJokers(jokers poker.Jokers) string {
	var b strings.Builder
	for _, j := range jokers {
		b.WriteString(pterm.Sprintfln("%s (%s)\n  %s", pterm.LightCyan(j.Name), j.Rarity, j.Text))
	}
	return b.String()
}

// printCalculation shows how a result was scored, step by step.
func printCalculation(r poker.ScoringResult) string {
	if r.Category == poker.NoCards {
		return pterm.Gray("Select cards to see the calculation")
	}
	scoring := make([]string, len(r.ScoringCards))
	for i, c := range r.ScoringCards {
		scoring[i] = cardLabel(c)
	}
	return pterm.Sprintfln("%s\nScoring: %s\nBase: %d x %.1f\nJokers: +%d, x%.2f\nTotal: %s",
		pterm.LightYellow(string(r.Category)),
		strings.Join(scoring, " "),
		r.BaseSum, r.BaseMultiplier,
		r.AdditiveBonus, r.FinalMultiplier,
		pterm.LightGreen(r.TotalScore))
}

func printRun(s *game.Session) string {
	return pterm.Sprintfln("Score: %s\nHands played: %d\nDiscards: %d\nDeck: %d/%d\n%s, %s stake",
		pterm.LightGreen(s.TotalScore), s.HandsPlayed, s.Discards,
		s.Deck.Len(), poker.FullDeckLen, s.Meta.DeckName, s.Meta.Stake.Name)
}

// getTurnPanel creates a panel for the last play or discard.
func getTurnPanel(action string, turn game.Turn) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	cards := make([]string, len(turn.Cards))
	for i, c := range turn.Cards {
		cards[i] = cardLabel(c)
	}
	text := pterm.Sprintfln("%s %s", action, strings.Join(cards, " "))
	if turn.Result != nil {
		text += pterm.Sprintfln("%s for %s points", turn.Result.Category, pterm.LightGreen(turn.Result.TotalScore))
	}
	if !turn.Refill.Full {
		text += pterm.LightRed(fmt.Sprintf("Deck ran short: drew %d of %d", len(turn.Refill.Drawn), turn.Refill.Requested))
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|LAST TURN|")).WithTitleTopCenter().Sprint(text)}
}

// printState renders the whole table.
func printState(s *game.Session, additionalPanel ...pterm.Panel) {
	box := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	hand := pterm.Panel{Data: box.WithTitle("|HAND|").WithTitleTopLeft().Sprint(printHand(s))}
	calc := pterm.Panel{Data: box.WithTitle("|CALCULATION|").WithTitleTopLeft().Sprint(printCalculation(s.Preview()))}
	jokers := pterm.Panel{Data: box.WithTitle("|JOKERS|").WithTitleTopLeft().Sprint(printJokers(s.Jokers))}
	run := pterm.Panel{Data: box.WithTitle("|RUN|").WithTitleTopLeft().Sprint(printRun(s))}

	dashboard := []pterm.Panel{calc}
	dashboard = append(dashboard, additionalPanel...)

	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{hand},
		dashboard,
		{jokers, run},
	}).Render()
}

// printDeck renders the deck overview: counts and draw chances.
func printDeck(stats poker.DeckStats) {
	pterm.DefaultSection.Println("Deck")
	pterm.Info.Printfln("%d of %d cards left", stats.Remaining, stats.Total)

	suits := pterm.TableData{{"Suit", "Left", "Chance"}}
	for _, suit := range poker.Suits {
		suits = append(suits, []string{suit, fmt.Sprint(stats.SuitCounts[suit]),
			fmt.Sprintf("%.1f%%", stats.SuitProbabilities[suit]*100)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(suits).Render()

	ranks := pterm.TableData{{"Rank", "Left", "Chance"}}
	for _, rank := range poker.Ranks {
		ranks = append(ranks, []string{rank, fmt.Sprint(stats.RankCounts[rank]),
			fmt.Sprintf("%.1f%%", stats.RankProbabilities[rank]*100)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(ranks).Render()
}
