// Package palette holds ANSI attribute prefixes and the color palettes the
// termview themes are built from.
package palette

import "strconv"

// SGR attribute prefixes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Strike    = "\x1b[9m"
)

// Fg256 returns the foreground prefix for a 256-color index.
func Fg256(n uint8) string {
	return "\x1b[38;5;" + strconv.Itoa(int(n)) + "m"
}

// Palette names one ANSI prefix per semantic slot.
type Palette struct {
	Text           string
	H1             string
	H2             string
	H3             string
	H4             string
	H5             string
	H6             string
	Emphasis       string
	Strong         string
	CodeInline     string
	CodeBlock      string
	Quote          string
	ListMarker     string
	LinkText       string
	LinkURL        string
	ThematicBreak  string
	TableHeader    string
}

// PaletteDefault leaves body text uncolored and keeps accents subdued so it
// works on light and dark backgrounds.
var PaletteDefault = Palette{
	H1:            Fg256(81),
	H2:            Fg256(75),
	H3:            Fg256(69),
	H4:            Fg256(63),
	H5:            Fg256(57),
	H6:            Fg256(51),
	CodeInline:    Fg256(179),
	CodeBlock:     Fg256(179),
	Quote:         Fg256(245),
	ListMarker:    Fg256(75),
	LinkText:      Fg256(75),
	LinkURL:       Fg256(245),
	ThematicBreak: Fg256(240),
	TableHeader:   Fg256(75),
}

var PaletteGruvbox = Palette{
	Text:          Fg256(223),
	H1:            Fg256(214),
	H2:            Fg256(208),
	H3:            Fg256(172),
	H4:            Fg256(142),
	H5:            Fg256(108),
	H6:            Fg256(109),
	Emphasis:      Fg256(142),
	Strong:        Fg256(208),
	CodeInline:    Fg256(142),
	CodeBlock:     Fg256(142),
	Quote:         Fg256(245),
	ListMarker:    Fg256(208),
	LinkText:      Fg256(109),
	LinkURL:       Fg256(245),
	ThematicBreak: Fg256(241),
	TableHeader:   Fg256(214),
}

var PaletteDracula = Palette{
	Text:          Fg256(253),
	H1:            Fg256(141),
	H2:            Fg256(117),
	H3:            Fg256(84),
	H4:            Fg256(212),
	H5:            Fg256(228),
	H6:            Fg256(215),
	Emphasis:      Fg256(228),
	Strong:        Fg256(212),
	CodeInline:    Fg256(84),
	CodeBlock:     Fg256(84),
	Quote:         Fg256(61),
	ListMarker:    Fg256(141),
	LinkText:      Fg256(117),
	LinkURL:       Fg256(61),
	ThematicBreak: Fg256(61),
	TableHeader:   Fg256(141),
}

var PaletteNord = Palette{
	Text:          Fg256(254),
	H1:            Fg256(110),
	H2:            Fg256(109),
	H3:            Fg256(111),
	H4:            Fg256(150),
	H5:            Fg256(222),
	H6:            Fg256(174),
	Emphasis:      Fg256(150),
	Strong:        Fg256(110),
	CodeInline:    Fg256(150),
	CodeBlock:     Fg256(150),
	Quote:         Fg256(243),
	ListMarker:    Fg256(110),
	LinkText:      Fg256(111),
	LinkURL:       Fg256(243),
	ThematicBreak: Fg256(240),
	TableHeader:   Fg256(110),
}

var PaletteGithubDark = Palette{
	Text:          Fg256(252),
	H1:            Fg256(39),
	H2:            Fg256(39),
	H3:            Fg256(75),
	H4:            Fg256(111),
	H5:            Fg256(147),
	H6:            Fg256(183),
	Emphasis:      Fg256(183),
	Strong:        Fg256(75),
	CodeInline:    Fg256(208),
	CodeBlock:     Fg256(252),
	Quote:         Fg256(244),
	ListMarker:    Fg256(39),
	LinkText:      Fg256(75),
	LinkURL:       Fg256(244),
	ThematicBreak: Fg256(239),
	TableHeader:   Fg256(39),
}

var PaletteSolarizedDark = Palette{
	Text:          Fg256(247),
	H1:            Fg256(136),
	H2:            Fg256(166),
	H3:            Fg256(33),
	H4:            Fg256(37),
	H5:            Fg256(64),
	H6:            Fg256(125),
	Emphasis:      Fg256(64),
	Strong:        Fg256(166),
	CodeInline:    Fg256(37),
	CodeBlock:     Fg256(37),
	Quote:         Fg256(240),
	ListMarker:    Fg256(33),
	LinkText:      Fg256(33),
	LinkURL:       Fg256(240),
	ThematicBreak: Fg256(240),
	TableHeader:   Fg256(136),
}
