package main

import (
	"HighStakes/services/game"
	"HighStakes/services/poker"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const (
	actionSelect  = "Select cards"
	actionPlay    = "Play hand"
	actionDiscard = "Discard"
	actionRank    = "Sort by rank"
	actionSuit    = "Sort by suit"
	actionDeck    = "Deck overview"
	actionHint    = "Hint"
	actionNewRun  = "New run"
	actionQuit    = "Quit"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "shuffle seed (0 uses the clock)")
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("High ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("Stakes", pterm.FgRed.ToStyle()),
	).Srender()
	if err != nil {
		logger.Error(err.Error())
	}
	pterm.Print(title)
	pterm.Info.Printfln("Seed: %d", seed)

	s := game.NewSession(rand.New(rand.NewSource(seed)))
	var last []pterm.Panel

	for {
		pterm.Println()
		printState(s, last...)

		if s.Finished() {
			pterm.Success.Printfln("Deck cleared with %d points in %d hands!", s.TotalScore, s.HandsPlayed)
			if again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Start a new run?").WithDefaultValue(true).Show(); !again {
				break
			}
			s.Restart()
			last = nil
			continue
		}

		action, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Select your next action").
			WithOptions([]string{actionSelect, actionPlay, actionDiscard, actionRank, actionSuit,
				actionDeck, actionHint, actionNewRun, actionQuit}).
			Show()

		switch action {
		case actionSelect:
			if err := chooseCards(s); err != nil {
				pterm.Error.Println(err.Error())
			}
		case actionPlay:
			turn, err := s.Play()
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			last = []pterm.Panel{getTurnPanel("Played", turn)}
		case actionDiscard:
			turn, err := s.Discard()
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			last = []pterm.Panel{getTurnPanel("Discarded", turn)}
		case actionRank:
			_ = s.Sort(poker.SortByRank)
		case actionSuit:
			_ = s.Sort(poker.SortBySuit)
		case actionDeck:
			printDeck(s.DeckStats())
		case actionHint:
			showHint(s)
		case actionNewRun:
			if confirm, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Throw this run away?").Show(); confirm {
				s.Restart()
				last = nil
			}
		case actionQuit:
			pterm.Println("Thank you for playing...")
			return
		}
	}
	pterm.Println("Thank you for playing...")
}

// chooseCards replaces the selection with the cards picked in a multiselect.
// Picking more than MaxSelected keeps the first ones and reports the limit.
func chooseCards(s *game.Session) error {
	options := make([]string, s.Hand.Len())
	index := make(map[string]int, len(options))
	var current []string
	for i, hc := range s.Hand.Cards {
		options[i] = fmt.Sprintf("%2d. %s", i+1, hc.String())
		index[options[i]] = i
		if hc.Selected {
			current = append(current, options[i])
		}
	}

	picked, err := pterm.DefaultInteractiveMultiselect.
		WithDefaultText(fmt.Sprintf("Pick up to %d cards", poker.MaxSelected)).
		WithOptions(options).
		WithDefaultOptions(current).
		WithMaxHeight(poker.HandSize).
		Show()
	if err != nil {
		return err
	}

	s.Hand.ClearSelection()
	for _, opt := range picked {
		if err := s.Select(index[opt], true); err != nil {
			if errors.Is(err, poker.ErrSelectionLimitExceeded) {
				return fmt.Errorf("only %d cards can be selected, %s was left out", poker.MaxSelected, opt)
			}
			return err
		}
	}
	return nil
}

func showHint(s *game.Session) {
	hint := s.Hint()
	if len(hint.Indices) == 0 {
		pterm.Warning.Println("Nothing to play")
		return
	}
	cards := ""
	for _, i := range hint.Indices {
		cards += cardLabel(s.Hand.Cards[i].Card) + " "
	}
	pterm.Info.Printfln("Best play: %s(%s, %d points)", cards, hint.Result.Category, hint.Result.TotalScore)
	if apply, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Select these cards?").WithDefaultValue(true).Show(); apply {
		s.Hand.ClearSelection()
		for _, i := range hint.Indices {
			_ = s.Select(i, true)
		}
	}
}
