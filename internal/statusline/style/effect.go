package style

import "github.com/charmbracelet/x/ansi"

// Effect is a set of independent text attributes
type Effect uint16

const (
	EffectBold Effect = 1 << iota
	EffectDim
	EffectItalic
	EffectUnderline
	EffectDoubleUnderline
	EffectCurlyUnderline
	EffectDottedUnderline
	EffectDashedUnderline
	EffectBlink
	EffectReverse
	EffectHidden
	EffectStrikethrough
)

// effectNames is the accepted keyword vocabulary
var effectNames = map[string]Effect{
	"bold":              EffectBold,
	"dim":               EffectDim,
	"dimmed":            EffectDim,
	"italic":            EffectItalic,
	"underline":         EffectUnderline,
	"underscore":        EffectUnderline,
	"double_underscore": EffectDoubleUnderline,
	"curly_underscore":  EffectCurlyUnderline,
	"dotted_underscore": EffectDottedUnderline,
	"dashed_underscore": EffectDashedUnderline,
	"blink":             EffectBlink,
	"reverse":           EffectReverse,
	"hidden":            EffectHidden,
	"strikethrough":     EffectStrikethrough,
}

// effectCodes is the SGR emission order
var effectCodes = []struct {
	effect Effect
	apply  func(ansi.Style) ansi.Style
}{
	{EffectBold, ansi.Style.Bold},
	{EffectDim, ansi.Style.Faint},
	{EffectItalic, ansi.Style.Italic},
	{EffectUnderline, ansi.Style.Underline},
	{EffectDoubleUnderline, ansi.Style.DoubleUnderline},
	{EffectCurlyUnderline, ansi.Style.CurlyUnderline},
	{EffectDottedUnderline, ansi.Style.DottedUnderline},
	{EffectDashedUnderline, ansi.Style.DashedUnderline},
	{EffectBlink, ansi.Style.SlowBlink},
	{EffectReverse, ansi.Style.Reverse},
	{EffectHidden, ansi.Style.Conceal},
	{EffectStrikethrough, ansi.Style.Strikethrough},
}

// ParseEffect returns the effect for an exact keyword, or false
func ParseEffect(token string) (Effect, bool) {
	e, ok := effectNames[token]
	return e, ok
}

// Has returns true if every bit of other is set
func (e Effect) Has(other Effect) bool {
	return e&other == other
}
