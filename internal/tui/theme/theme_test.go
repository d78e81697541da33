package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "#abc", want: "#aabbcc", ok: true},
		{in: "#ABC", want: "#aabbcc", ok: true},
		{in: "#1A2b3C", want: "#1a2b3c", ok: true},
		{in: " #fff ", want: "#ffffff", ok: true},
		{in: "abc"},
		{in: "#abcd"},
		{in: "#ggg"},
		{in: "#12345"},
		{in: ""},
		{in: "red"},
		{in: "#abc;background:red"},
	}
	for _, tt := range tests {
		got, ok := NormalizeHexColor(tt.in)
		assert.Equal(t, tt.ok, ok, "NormalizeHexColor(%q)", tt.in)
		assert.Equal(t, tt.want, got, "NormalizeHexColor(%q)", tt.in)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		dark     bool
		wantDark bool
	}{
		{name: "explicit light on dark terminal", theme: Light, dark: true, wantDark: false},
		{name: "explicit dark on light terminal", theme: Dark, dark: false, wantDark: true},
		{name: "auto follows dark background", theme: Auto, dark: true, wantDark: true},
		{name: "auto follows light background", theme: Auto, dark: false, wantDark: false},
		{name: "unknown behaves like auto", theme: "sepia", dark: false, wantDark: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.theme, "", tt.dark)
			assert.Equal(t, tt.wantDark, got.IsDark)
		})
	}
}

func TestResolveAccent(t *testing.T) {
	assert.Equal(t, "#00aaff", Resolve(Dark, "#0af", true).Primary)
	assert.Equal(t, NewCatppuccinMocha().Primary, Resolve(Dark, "blue", true).Primary)
	assert.Equal(t, NewCatppuccinLatte().Primary, Resolve(Light, "", true).Primary)
}

func TestGlamourStyle(t *testing.T) {
	assert.Equal(t, Dark, NewCatppuccinMocha().GlamourStyle())
	assert.Equal(t, Light, NewCatppuccinLatte().GlamourStyle())
}

func TestCurrent(t *testing.T) {
	prev := Current()
	t.Cleanup(func() { SetCurrent(prev) })

	latte := NewCatppuccinLatte()
	SetCurrent(latte)
	assert.Same(t, latte, Current())

	SetCurrent(nil)
	assert.Same(t, latte, Current())
}

func TestStylesAreBuiltOnce(t *testing.T) {
	th := NewCatppuccinMocha()
	assert.Same(t, th.S(), th.S())
}

func TestColorHelpers(t *testing.T) {
	r, g, b := ParseHexColor("#102030")
	assert.Equal(t, []uint8{0x10, 0x20, 0x30}, []uint8{r, g, b})

	r, g, b = ParseHexColor("#fff")
	assert.Equal(t, []uint8{0xff, 0xff, 0xff}, []uint8{r, g, b})

	r, g, b = ParseHexColor("nope")
	assert.Equal(t, []uint8{0, 0, 0}, []uint8{r, g, b})

	assert.Equal(t, "#000000", InterpolateColor("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 1))
	assert.Equal(t, "#7f7f7f", InterpolateColor("#000000", "#ffffff", 0.5))
}

func TestApplyGradientKeepsText(t *testing.T) {
	out := ApplyGradient("ab c\n\nxyz", "#000000", "#ffffff")
	assert.Equal(t, "ab c\n\nxyz", ansi.Strip(out))
	assert.Equal(t, 3, strings.Count(out, "\n")+1)
}
