package layout

import (
	"strings"

	"github.com/young1lin/zstatus/internal/statusline/render"
)

// Trim blanks regions that collide with higher-precedence regions.
// Pairs are checked lowest vs middle, middle vs highest, then lowest vs
// highest; the lower-precedence member of an overlapping pair is blanked.
// The highest-precedence region is never blanked.
func Trim(regions Regions, width int, prec Precedence) Regions {
	var widths [3]int
	for i, r := range regions {
		widths[i] = render.Measure(r)
	}

	high, mid, low := prec[0], prec[1], prec[2]
	pairs := [][2]Side{{low, mid}, {mid, high}, {low, high}}
	for _, pr := range pairs {
		loser, partner := pr[0], pr[1]
		if overlaps(loser, partner, widths, width) {
			regions[loser] = ""
			widths[loser] = 0
		}
	}
	return regions
}

// overlaps reports whether two non-empty regions can not both fit
func overlaps(a, b Side, widths [3]int, width int) bool {
	if widths[a] == 0 || widths[b] == 0 {
		return false
	}
	if a > b {
		a, b = b, a
	}

	lw, cw, rw := widths[Left], widths[Center], widths[Right]
	half := width / 2
	switch {
	case a == Left && b == Right:
		return lw+rw > width
	case a == Left && b == Center:
		return lw+cw/2 > half
	default:
		return half+(cw-cw/2)+rw > width
	}
}

// Compose lays out the regions across width columns
func Compose(regions Regions, width int, cfg Config) Result {
	if width < 0 {
		width = 0
	}
	if cfg.HideOnOverlength {
		regions = Trim(regions, width, cfg.Precedence)
	}

	lw := render.Measure(regions[Left])
	cw := render.Measure(regions[Center])
	rw := render.Measure(regions[Right])

	res := Result{Regions: regions}
	if regions[Center] != "" {
		res.SpacerLeft = render.Sub(width/2-cw/2, lw)
		res.SpacerRight = render.Sub(width, lw+res.SpacerLeft+cw+rw)
	} else {
		res.SpacerLeft = render.Sub(width, lw+rw)
	}

	var b strings.Builder
	b.WriteString(regions[Left])
	b.WriteString(cfg.SpacerStyle.Apply(render.Spaces(res.SpacerLeft)))
	if regions[Center] != "" {
		b.WriteString(regions[Center])
		b.WriteString(cfg.SpacerStyle.Apply(render.Spaces(res.SpacerRight)))
	}
	b.WriteString(regions[Right])
	line := b.String()

	if cfg.Border.Enabled {
		border := cfg.Border.Style.Apply(render.Fill(cfg.Border.Char, width))
		if cfg.Border.Position == BorderBottom {
			line = line + "\n" + border
		} else {
			line = border + "\n" + line
		}
	}
	res.Line = line
	return res
}
