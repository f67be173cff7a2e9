package poker

import "errors"

var (
	// A 6th card was selected while 5 already were. Nothing changed.
	ErrSelectionLimitExceeded = errors.New("selection limit exceeded")
	// Play or discard with no selected cards. Nothing changed.
	ErrEmptySelection = errors.New("no cards selected")
	ErrCardNotInHand  = errors.New("card not in hand")
	ErrInvalidCard    = errors.New("invalid card")
	// More cards than a hand can hold.
	ErrTooManyCards = errors.New("too many cards")
)
