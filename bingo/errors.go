package bingo

import (
	"errors"
	"fmt"
)

var (
	// ErrNoWinner is returned when the draws run out before the
	// requested win happens.
	ErrNoWinner = errors.New("bingo: draws exhausted without a winner")
	// ErrNoBoards is returned when a game has no boards to play.
	ErrNoBoards = errors.New("bingo: no boards")
	// ErrDrawsConsumed is returned when a game is played a second time.
	ErrDrawsConsumed = errors.New("bingo: draws already consumed")
)

// ParseKind says what part of the input a ParseError came from.
type ParseKind int

const (
	BadNumber  ParseKind = iota // token is not a non-negative integer
	BadCount                    // board does not hold exactly 25 numbers
	EmptyInput                  // no draw block
)

func (k ParseKind) String() string {
	switch k {
	case BadNumber:
		return "bad number"
	case BadCount:
		return "bad cell count"
	case EmptyInput:
		return "empty input"
	}
	return fmt.Sprintf("ParseKind(%d)", int(k))
}

// ParseError describes malformed draw or board text.
type ParseError struct {
	Kind  ParseKind
	Token string // offending token, if any
	Count int    // number of cells found, for BadCount
	Err   error  // underlying error, if any
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case BadNumber:
		if e.Err != nil {
			return fmt.Sprintf("bingo: bad number %q: %v", e.Token, e.Err)
		}
		return fmt.Sprintf("bingo: bad number %q", e.Token)
	case BadCount:
		return fmt.Sprintf("bingo: board has %d numbers, want %d", e.Count, Cells)
	}
	return "bingo: " + e.Kind.String()
}

func (e *ParseError) Unwrap() error { return e.Err }
