// Package layout composes the three statusline regions into one line
// Layout Layer: precedence, overlength trimming, spacing and border
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/young1lin/zstatus/internal/statusline/style"
)

// Side identifies one of the three regions
type Side int

const (
	Left Side = iota
	Center
	Right
)

// String returns the precedence letter of the side
func (s Side) String() string {
	switch s {
	case Left:
		return "l"
	case Center:
		return "c"
	case Right:
		return "r"
	default:
		return "?"
	}
}

var (
	ErrInvalidPrecedence     = errors.New("invalid precedence")
	ErrInvalidBorderPosition = errors.New("invalid border position")
)

// Precedence orders the sides from highest to lowest priority
type Precedence [3]Side

// DefaultPrecedence keeps left, then center, then right
var DefaultPrecedence = Precedence{Left, Center, Right}

// ParsePrecedence parses a permutation of "l", "c" and "r", e.g. "crl".
// An empty string yields the default.
func ParsePrecedence(s string) (Precedence, error) {
	if s == "" {
		return DefaultPrecedence, nil
	}
	if len(s) != 3 {
		return Precedence{}, fmt.Errorf("%w %q: want a permutation of l, c, r", ErrInvalidPrecedence, s)
	}

	var p Precedence
	var seen [3]bool
	for i, ch := range strings.ToLower(s) {
		var side Side
		switch ch {
		case 'l':
			side = Left
		case 'c':
			side = Center
		case 'r':
			side = Right
		default:
			return Precedence{}, fmt.Errorf("%w %q: unexpected %q", ErrInvalidPrecedence, s, ch)
		}
		if seen[side] {
			return Precedence{}, fmt.Errorf("%w %q: %q repeated", ErrInvalidPrecedence, s, ch)
		}
		seen[side] = true
		p[i] = side
	}
	return p, nil
}

// String returns the precedence in its configuration form
func (p Precedence) String() string {
	return p[0].String() + p[1].String() + p[2].String()
}

// BorderPosition places the border line
type BorderPosition int

const (
	BorderTop BorderPosition = iota
	BorderBottom
)

// ParseBorderPosition parses "top" or "bottom". Empty yields top.
func ParseBorderPosition(s string) (BorderPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return BorderTop, nil
	case "bottom":
		return BorderBottom, nil
	default:
		return BorderTop, fmt.Errorf("%w %q: want top or bottom", ErrInvalidBorderPosition, s)
	}
}

// Border describes the optional border line
type Border struct {
	Enabled  bool
	Char     string
	Style    style.Style
	Position BorderPosition
}

// Config holds layout options
type Config struct {
	Precedence       Precedence
	HideOnOverlength bool
	SpacerStyle      style.Style
	Border           Border
}

// Regions holds rendered region strings indexed by Side
type Regions [3]string

// Result is the outcome of one layout pass
type Result struct {
	// Regions after overlength trimming
	Regions Regions
	// SpacerLeft sits after left; SpacerRight sits after center.
	// Without a center only SpacerLeft is used.
	SpacerLeft  int
	SpacerRight int
	// Line is the final output, including the border line if enabled
	Line string
}
