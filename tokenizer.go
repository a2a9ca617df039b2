package mdview

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	xast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Tokenizer turns Markdown source into the flat token stream the AST
// builder consumes. Implementations must emit balanced nesting; the builder
// trusts the stream and does not re-validate tag matching.
type Tokenizer interface {
	Tokenize(source []byte) ([]Token, error)
}

// NewGoldmarkTokenizer returns the default tokenizer, backed by goldmark
// with GFM extensions. Plugin options are applied in order after the base
// configuration.
func NewGoldmarkTokenizer(plugins ...goldmark.Option) Tokenizer {
	opts := append([]goldmark.Option{goldmark.WithExtensions(extension.GFM)}, plugins...)
	return &goldmarkTokenizer{md: goldmark.New(opts...)}
}

type goldmarkTokenizer struct {
	md goldmark.Markdown
}

func (g *goldmarkTokenizer) Tokenize(source []byte) ([]Token, error) {
	doc := g.md.Parser().Parse(text.NewReader(source))
	f := &flattener{source: source}
	if err := ast.Walk(doc, f.walk); err != nil {
		return nil, err
	}
	return f.tokens, nil
}

// flattener converts goldmark's nested AST into the flat open/close/self
// stream of the token schema.
type flattener struct {
	source    []byte
	tokens    []Token
	tbodyOpen bool
}

func (f *flattener) emit(tok Token) {
	f.tokens = append(f.tokens, tok)
}

func (f *flattener) open(typ, tag string) {
	f.emit(Token{Type: typ + "_open", Tag: tag, Nesting: NestingOpen})
}

func (f *flattener) close(typ, tag string) {
	f.emit(Token{Type: typ + "_close", Tag: tag, Nesting: NestingClose})
}

func (f *flattener) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Document:
		return ast.WalkContinue, nil

	case *ast.Heading:
		tag := "h" + strconv.Itoa(node.Level)
		if entering {
			f.emit(Token{Type: "heading_open", Tag: tag, Nesting: NestingOpen, Markup: strings.Repeat("#", node.Level)})
		} else {
			f.emit(Token{Type: "heading_close", Tag: tag, Nesting: NestingClose})
		}

	case *ast.Paragraph:
		if entering {
			f.open("paragraph", "p")
		} else {
			f.close("paragraph", "p")
		}

	case *ast.TextBlock:
		// Tight list items wrap their inline content in a TextBlock;
		// the content attaches to the list item directly.
		return ast.WalkContinue, nil

	case *ast.Text:
		if !entering {
			return ast.WalkContinue, nil
		}
		if content := string(node.Segment.Value(f.source)); content != "" {
			f.emit(Token{Type: "text", Nesting: NestingSelf, Content: content})
		}
		if node.HardLineBreak() {
			f.emit(Token{Type: "hardbreak", Tag: "br", Nesting: NestingSelf})
		} else if node.SoftLineBreak() {
			f.emit(Token{Type: "softbreak", Nesting: NestingSelf})
		}

	case *ast.String:
		if entering && len(node.Value) > 0 {
			f.emit(Token{Type: "text", Nesting: NestingSelf, Content: string(node.Value)})
		}

	case *ast.Emphasis:
		typ, markup := "em", "*"
		if node.Level >= 2 {
			typ, markup = "strong", "**"
		}
		if entering {
			f.emit(Token{Type: typ + "_open", Tag: typ, Nesting: NestingOpen, Markup: markup})
		} else {
			f.emit(Token{Type: typ + "_close", Tag: typ, Nesting: NestingClose, Markup: markup})
		}

	case *xast.Strikethrough:
		if entering {
			f.emit(Token{Type: "s_open", Tag: "s", Nesting: NestingOpen, Markup: "~~"})
		} else {
			f.emit(Token{Type: "s_close", Tag: "s", Nesting: NestingClose, Markup: "~~"})
		}

	case *ast.CodeSpan:
		if entering {
			f.emit(Token{Type: "code_inline", Tag: "code", Nesting: NestingSelf, Content: nodeText(node, f.source), Markup: "`"})
		}
		return ast.WalkSkipChildren, nil

	case *ast.FencedCodeBlock:
		if entering {
			tok := Token{Type: "fence", Tag: "code", Nesting: NestingSelf, Content: linesValue(node, f.source), Markup: "```"}
			if lang := node.Language(f.source); len(lang) > 0 {
				tok.Attrs = map[string]string{"info": string(lang)}
			}
			f.emit(tok)
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			f.emit(Token{Type: "code_block", Tag: "code", Nesting: NestingSelf, Content: linesValue(node, f.source)})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Blockquote:
		if entering {
			f.open("blockquote", "blockquote")
		} else {
			f.close("blockquote", "blockquote")
		}

	case *ast.List:
		typ, tag := "bullet_list", "ul"
		var attrs map[string]string
		if node.IsOrdered() {
			typ, tag = "ordered_list", "ol"
			if node.Start != 1 && node.Start != 0 {
				attrs = map[string]string{"start": strconv.Itoa(node.Start)}
			}
		}
		if entering {
			f.emit(Token{Type: typ + "_open", Tag: tag, Nesting: NestingOpen, Attrs: attrs, Markup: string(node.Marker)})
		} else {
			f.emit(Token{Type: typ + "_close", Tag: tag, Nesting: NestingClose})
		}

	case *ast.ListItem:
		if entering {
			f.open("list_item", "li")
		} else {
			f.close("list_item", "li")
		}

	case *ast.Link:
		if entering {
			attrs := map[string]string{"href": string(node.Destination)}
			if len(node.Title) > 0 {
				attrs["title"] = string(node.Title)
			}
			f.emit(Token{Type: "link_open", Tag: "a", Nesting: NestingOpen, Attrs: attrs})
		} else {
			f.close("link", "a")
		}

	case *ast.AutoLink:
		if entering {
			href := string(node.URL(f.source))
			label := string(node.Label(f.source))
			if node.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(href, "mailto:") {
				href = "mailto:" + href
			}
			f.emit(Token{Type: "link_open", Tag: "a", Nesting: NestingOpen, Attrs: map[string]string{"href": href}})
			f.emit(Token{Type: "text", Nesting: NestingSelf, Content: label})
			f.emit(Token{Type: "link_close", Tag: "a", Nesting: NestingClose})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Image:
		if entering {
			attrs := map[string]string{"src": string(node.Destination)}
			if alt := nodeText(node, f.source); alt != "" {
				attrs["alt"] = alt
			}
			if len(node.Title) > 0 {
				attrs["title"] = string(node.Title)
			}
			f.emit(Token{Type: "image", Tag: "img", Nesting: NestingSelf, Attrs: attrs})
		}
		return ast.WalkSkipChildren, nil

	case *ast.ThematicBreak:
		if entering {
			f.emit(Token{Type: "hr", Tag: "hr", Nesting: NestingSelf, Markup: "---"})
		}

	case *ast.HTMLBlock:
		if entering {
			f.emit(Token{Type: "html_block", Nesting: NestingSelf, Content: linesValue(node, f.source)})
		}
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML:
		if entering {
			f.emit(Token{Type: "html_inline", Nesting: NestingSelf, Content: segmentsValue(node.Segments, f.source)})
		}
		return ast.WalkSkipChildren, nil

	case *xast.Table:
		if entering {
			f.open("table", "table")
		} else {
			if f.tbodyOpen {
				f.close("tbody", "tbody")
				f.tbodyOpen = false
			}
			f.close("table", "table")
		}

	case *xast.TableHeader:
		if entering {
			f.open("thead", "thead")
			f.open("tr", "tr")
		} else {
			f.close("tr", "tr")
			f.close("thead", "thead")
			if node.NextSibling() != nil {
				f.open("tbody", "tbody")
				f.tbodyOpen = true
			}
		}

	case *xast.TableRow:
		if entering {
			if !f.tbodyOpen {
				f.open("tbody", "tbody")
				f.tbodyOpen = true
			}
			f.open("tr", "tr")
		} else {
			f.close("tr", "tr")
		}

	case *xast.TableCell:
		typ, tag := "td", "td"
		if _, inHeader := node.Parent().(*xast.TableHeader); inHeader {
			typ, tag = "th", "th"
		}
		if entering {
			f.open(typ, tag)
		} else {
			f.close(typ, tag)
		}

	case *xast.TaskCheckBox:
		if entering {
			content := "[ ] "
			if node.IsChecked {
				content = "[x] "
			}
			f.emit(Token{Type: "checkbox", Nesting: NestingSelf, Content: content})
		}
	}

	return ast.WalkContinue, nil
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(nodeText(c, source))
		}
	}
	return b.String()
}

func linesValue(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

func segmentsValue(segs *text.Segments, source []byte) string {
	var b strings.Builder
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}
