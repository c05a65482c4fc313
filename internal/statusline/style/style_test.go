package style

import (
	"testing"
)

func TestParseColor(t *testing.T) {
	palette := Palette{
		"base":  "#1e1e2e",
		"red":   "1",
		"chain": "$base",
		"bad":   "nope",
	}

	tests := []struct {
		name  string
		token string
		want  Color
	}{
		{name: "hex", token: "#ff0000", want: RGB(255, 0, 0)},
		{name: "hex uppercase", token: "#00FF00", want: RGB(0, 255, 0)},
		{name: "hex too short", token: "#fff", want: Color{}},
		{name: "hex too long", token: "#ff00000", want: Color{}},
		{name: "hex not hex", token: "#gg0000", want: Color{}},
		{name: "named", token: "red", want: Named(1)},
		{name: "bright named", token: "bright_white", want: Named(15)},
		{name: "indexed", token: "208", want: Indexed(208)},
		{name: "indexed zero", token: "0", want: Indexed(0)},
		{name: "indexed out of range", token: "256", want: Color{}},
		{name: "negative", token: "-1", want: Color{}},
		{name: "alias", token: "$base", want: Color{Kind: ColorRGB, R: 0x1e, G: 0x1e, B: 0x2e, Alias: "base"}},
		{name: "alias to index", token: "$red", want: Color{Kind: ColorIndexed, Index: 1, Alias: "red"}},
		{name: "alias chain not followed", token: "$chain", want: Color{}},
		{name: "alias to garbage", token: "$bad", want: Color{}},
		{name: "missing alias", token: "$missing", want: Color{}},
		{name: "empty", token: "", want: Color{}},
		{name: "garbage", token: "notacolor", want: Color{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseColor(tt.token, palette)
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestRenderColorRoundTrip(t *testing.T) {
	palette := Palette{"accent": "#89b4fa", "warm": "208"}

	var colors []Color
	for i := 0; i < 16; i++ {
		colors = append(colors, Named(uint8(i)))
	}
	for i := 0; i < 256; i += 17 {
		colors = append(colors, Indexed(uint8(i)))
	}
	colors = append(colors,
		RGB(0, 0, 0),
		RGB(255, 255, 255),
		RGB(0x12, 0xab, 0xef),
		ParseColor("$accent", palette),
		ParseColor("$warm", palette),
	)

	for _, c := range colors {
		rendered := RenderColor(c)
		if got := ParseColor(rendered, palette); got != c {
			t.Errorf("round trip %q: got %+v, want %+v", rendered, got, c)
		}
	}
}

func TestParseEffect(t *testing.T) {
	if e, ok := ParseEffect("bold"); !ok || e != EffectBold {
		t.Errorf("ParseEffect(bold) = %v, %v", e, ok)
	}
	if e, ok := ParseEffect("dimmed"); !ok || e != EffectDim {
		t.Errorf("ParseEffect(dimmed) = %v, %v", e, ok)
	}
	if _, ok := ParseEffect("Bold"); ok {
		t.Error("ParseEffect should be case sensitive")
	}
	if _, ok := ParseEffect("sparkle"); ok {
		t.Error("unknown effect should not parse")
	}
}

func TestParseAttributes(t *testing.T) {
	s := ParseAttributes("fg=#ff0000,bg=#00ff00,bold,italic", nil)

	if s.Foreground != RGB(255, 0, 0) {
		t.Errorf("Foreground = %+v", s.Foreground)
	}
	if s.Background != RGB(0, 255, 0) {
		t.Errorf("Background = %+v", s.Background)
	}
	if !s.Effects.Has(EffectBold | EffectItalic) {
		t.Errorf("Effects = %b, want bold+italic", s.Effects)
	}
	if s.Effects.Has(EffectBlink) {
		t.Error("blink should not be set")
	}
}

func TestParseAttributesDegrades(t *testing.T) {
	s := ParseAttributes("fg=#zzzzzz, bg=12 ,sparkle,,us=blue,=", nil)

	if s.Foreground.IsSet() {
		t.Errorf("malformed fg should be unset, got %+v", s.Foreground)
	}
	if s.Background != Indexed(12) {
		t.Errorf("Background = %+v, want Indexed(12)", s.Background)
	}
	if s.Underline != Named(4) {
		t.Errorf("Underline = %+v, want blue", s.Underline)
	}
	if s.Effects != 0 {
		t.Errorf("Effects = %b, want none", s.Effects)
	}
}

func TestStylePrefix(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{name: "empty", style: Style{}, want: ""},
		{name: "named fg", style: Style{Foreground: Named(1)}, want: "\x1b[31m"},
		{name: "bright bg", style: Style{Background: Named(9)}, want: "\x1b[101m"},
		{name: "indexed fg", style: Style{Foreground: Indexed(208)}, want: "\x1b[38;5;208m"},
		{name: "rgb bg", style: Style{Background: RGB(1, 2, 3)}, want: "\x1b[48;2;1;2;3m"},
		{name: "underline color", style: Style{Underline: RGB(9, 8, 7)}, want: "\x1b[58;2;9;8;7m"},
		{name: "effects", style: Style{Effects: EffectBold | EffectStrikethrough}, want: "\x1b[1;9m"},
		{name: "curly", style: Style{Effects: EffectCurlyUnderline}, want: "\x1b[4:3m"},
		{name: "named underline color", style: Style{Underline: Named(3)}, want: "\x1b[58;5;3m"},
		{name: "indexed underline color", style: Style{Underline: Indexed(99)}, want: "\x1b[58;5;99m"},
		{name: "rgb fg full range", style: Style{Foreground: RGB(255, 0, 128)}, want: "\x1b[38;2;255;0;128m"},
		{name: "dim blink hidden", style: Style{Effects: EffectDim | EffectBlink | EffectHidden}, want: "\x1b[2;5;8m"},
		{name: "fg then effects", style: Style{Foreground: Named(12), Effects: EffectItalic | EffectReverse}, want: "\x1b[94;3;7m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.Prefix(); got != tt.want {
				t.Errorf("Prefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleApply(t *testing.T) {
	s := Style{Foreground: Named(2), Effects: EffectBold}
	want := "\x1b[0m\x1b[32;1mok\x1b[0m"
	if got := s.Apply("ok"); got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
	if got := s.Apply(""); got != "" {
		t.Errorf("Apply(\"\") = %q, want empty", got)
	}
}
