package termview

import (
	"sort"
	"strings"

	"pkt.systems/mdview/internal/palette"
)

// Style is a terminal style expressed as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles the terminal host paints with.
type Styles struct {
	Text          Style
	Heading       [6]Style
	Emphasis      Style
	Strong        Style
	Strikethrough Style
	CodeInline    Style
	CodeBlock     Style
	Quote         Style
	ListMarker    Style
	LinkText      Style
	LinkURL       Style
	ThematicBreak Style
	TableHeader   Style
}

// Theme provides named styles for painting a render tree.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:          style(p.Text),
		Heading:       [6]Style{style(palette.Bold, p.H1), style(palette.Bold, p.H2), style(palette.Bold, p.H3), style(palette.Bold, p.H4), style(palette.Bold, p.H5), style(palette.Bold, p.H6)},
		Emphasis:      style(palette.Italic, p.Emphasis),
		Strong:        style(palette.Bold, p.Strong),
		Strikethrough: style(palette.Strike, p.Text),
		CodeInline:    style(p.CodeInline),
		CodeBlock:     style(p.CodeBlock),
		Quote:         style(p.Quote),
		ListMarker:    style(p.ListMarker),
		LinkText:      style(palette.Underline, p.LinkText),
		LinkURL:       style(palette.Faint, p.LinkURL),
		ThematicBreak: style(p.ThematicBreak),
		TableHeader:   style(palette.Bold, p.TableHeader),
	}
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"dracula":        theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":           theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"github-dark":    theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	t, ok := builtinThemes[normalized]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
