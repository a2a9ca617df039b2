// Package termview paints an mdview render tree as ANSI styled text.
//
// It is one host for the view-descriptor output contract: view nodes become
// indented line blocks, text nodes become styled runs, image nodes become
// bracketed references. Wrapping happens per block at the configured width.
package termview

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"pkt.systems/mdview"
	"pkt.systems/mdview/internal/palette"
)

// Option configures the terminal renderer.
type Option func(*config)

type config struct {
	osc8 bool
}

// WithOSC8 enables or disables OSC 8 hyperlinks.
func WithOSC8(enabled bool) Option {
	return func(c *config) { c.osc8 = enabled }
}

// Renderer paints render trees at a fixed width with a theme.
type Renderer struct {
	styles Styles
	width  int
	osc8   bool
}

// New creates a terminal renderer. Width below 20 is clamped to 20.
func New(theme Theme, width int, opts ...Option) *Renderer {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	if width < 20 {
		width = 20
	}
	return &Renderer{styles: theme.Styles(), width: width, osc8: cfg.osc8}
}

// Render paints the forest and returns the ANSI text.
func (r *Renderer) Render(nodes []*mdview.RenderNode) string {
	blocks := r.renderBlocks(nodes, r.width)
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// RenderTo paints the forest to w.
func (r *Renderer) RenderTo(w io.Writer, nodes []*mdview.RenderNode) error {
	_, err := io.WriteString(w, r.Render(nodes))
	return err
}

func (r *Renderer) renderBlocks(nodes []*mdview.RenderNode, width int) []string {
	var blocks []string
	for _, n := range nodes {
		blocks = append(blocks, r.renderBlock(n, width)...)
	}
	return blocks
}

func (r *Renderer) renderBlock(n *mdview.RenderNode, width int) []string {
	if n == nil {
		return nil
	}
	switch n.Type {
	case mdview.TypeBody:
		return r.renderBlocks(n.Children, width)
	case mdview.TypeHeading1, mdview.TypeHeading2, mdview.TypeHeading3,
		mdview.TypeHeading4, mdview.TypeHeading5, mdview.TypeHeading6:
		level := int(n.Type[len(n.Type)-1] - '0')
		base := r.styles.Heading[level-1].Prefix
		return []string{wordwrap.String(r.inline(n.Children, base), width)}
	case mdview.TypeFence, mdview.TypeCodeBlock:
		return []string{styleLines(n.Text, r.styles.CodeBlock)}
	case mdview.TypeBlockquote:
		inner := r.renderBlocks(n.Children, width-2)
		quoted := make([]string, 0, len(inner))
		prefix := r.styles.Quote.Prefix + "│" + palette.Reset + " "
		for _, block := range inner {
			quoted = append(quoted, prefixLines(block, prefix, prefix))
		}
		return []string{strings.Join(quoted, "\n"+prefix+"\n")}
	case mdview.TypeBulletList, mdview.TypeOrderedList:
		items := make([]string, 0, len(n.Children))
		for _, item := range n.Children {
			items = append(items, r.renderListItem(item, width))
		}
		return []string{strings.Join(items, "\n")}
	case mdview.TypeHr:
		w := width
		if w > r.width {
			w = r.width
		}
		return []string{r.styles.ThematicBreak.Prefix + strings.Repeat("─", w) + palette.Reset}
	case mdview.TypeTable:
		return []string{r.renderTable(n, width)}
	case mdview.TypeImage:
		return []string{r.imageLine(n)}
	}

	switch n.Kind {
	case mdview.KindText:
		return []string{wordwrap.String(r.inline([]*mdview.RenderNode{n}, r.styles.Text.Prefix), width)}
	case mdview.KindImage:
		return []string{r.imageLine(n)}
	default:
		return r.renderBlocks(n.Children, width)
	}
}

// renderListItem paints the marker then the item content with a hanging
// indent of the marker's display width.
func (r *Renderer) renderListItem(item *mdview.RenderNode, width int) string {
	marker := "• "
	children := item.Children
	if len(children) > 0 && children[0].Kind == mdview.KindText && strings.HasSuffix(children[0].Key, "_marker") {
		marker = children[0].Text
		children = children[1:]
	}

	var inlineRun []*mdview.RenderNode
	var blockKids []*mdview.RenderNode
	for _, c := range children {
		if isInline(c) {
			inlineRun = append(inlineRun, c)
		} else {
			blockKids = append(blockKids, c)
		}
	}

	markerWidth := runewidth.StringWidth(marker)
	indent := strings.Repeat(" ", markerWidth)
	styledMarker := r.styles.ListMarker.Prefix + marker + palette.Reset

	lines := make([]string, 0, 1+len(blockKids))
	if len(inlineRun) > 0 {
		body := wordwrap.String(r.inline(inlineRun, r.styles.Text.Prefix), width-markerWidth)
		lines = append(lines, prefixLines(body, styledMarker, indent))
	} else {
		lines = append(lines, styledMarker)
	}
	for _, block := range r.renderBlocks(blockKids, width-markerWidth) {
		lines = append(lines, prefixLines(block, indent, indent))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderTable(table *mdview.RenderNode, width int) string {
	type row struct {
		cells  []string
		header bool
	}
	var rows []row
	var collect func(n *mdview.RenderNode)
	collect = func(n *mdview.RenderNode) {
		if n.Type == mdview.TypeTableRow {
			rw := row{}
			for _, cell := range n.Children {
				rw.cells = append(rw.cells, strings.TrimSpace(cell.PlainText()))
				if cell.Type == mdview.TypeTableHeader {
					rw.header = true
				}
			}
			rows = append(rows, rw)
			return
		}
		for _, c := range n.Children {
			collect(c)
		}
	}
	collect(table)
	if len(rows) == 0 {
		return ""
	}

	var widths []int
	for _, rw := range rows {
		for i, cell := range rw.cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	sep := r.styles.ThematicBreak.Prefix + "│" + palette.Reset
	var b strings.Builder
	for ri, rw := range rows {
		if ri > 0 {
			b.WriteByte('\n')
		}
		for i, cell := range rw.cells {
			if i > 0 {
				b.WriteString(" " + sep + " ")
			}
			padded := runewidth.FillRight(cell, widths[i])
			if rw.header {
				b.WriteString(r.styles.TableHeader.Prefix + padded + palette.Reset)
			} else {
				b.WriteString(r.styles.Text.Prefix + padded + palette.Reset)
			}
		}
		if rw.header && ri == 0 {
			b.WriteByte('\n')
			for i, w := range widths {
				if i > 0 {
					b.WriteString(r.styles.ThematicBreak.Prefix + "─┼─" + palette.Reset)
				}
				b.WriteString(r.styles.ThematicBreak.Prefix + strings.Repeat("─", w) + palette.Reset)
			}
		}
	}
	return b.String()
}

func (r *Renderer) imageLine(n *mdview.RenderNode) string {
	alt := n.Alt
	if alt == "" {
		alt = "image"
	}
	label := r.styles.LinkText.Prefix + "[" + alt + "]" + palette.Reset
	if r.osc8 {
		return hyperlink(n.Source, label)
	}
	return label + " " + r.styles.LinkURL.Prefix + "(" + n.Source + ")" + palette.Reset
}

// inline flattens text-kind nodes into one styled string. Style prefixes
// accumulate down the tree so nested emphasis keeps ancestor attributes.
func (r *Renderer) inline(nodes []*mdview.RenderNode, base string) string {
	var b strings.Builder
	for _, n := range nodes {
		r.inlineInto(&b, n, base)
	}
	return b.String()
}

func (r *Renderer) inlineInto(b *strings.Builder, n *mdview.RenderNode, base string) {
	if n == nil {
		return
	}
	if n.Kind == mdview.KindImage {
		b.WriteString(r.imageLine(n))
		return
	}
	if n.Type == mdview.TypeLink {
		r.linkInto(b, n, base)
		return
	}
	cur := base + r.inlinePrefix(n)
	if n.Text != "" {
		if cur != "" {
			b.WriteString(cur)
		}
		b.WriteString(n.Text)
		if cur != "" {
			b.WriteString(palette.Reset)
		}
	}
	for _, c := range n.Children {
		r.inlineInto(b, c, cur)
	}
}

func (r *Renderer) linkInto(b *strings.Builder, n *mdview.RenderNode, base string) {
	text := r.inline(n.Children, base+r.styles.LinkText.Prefix)
	if r.osc8 && n.Href != "" {
		b.WriteString(hyperlink(n.Href, text))
		return
	}
	b.WriteString(text)
	if n.Href != "" && n.Href != n.PlainText() {
		b.WriteString(" " + r.styles.LinkURL.Prefix + "(" + n.Href + ")" + palette.Reset)
	}
}

func (r *Renderer) inlinePrefix(n *mdview.RenderNode) string {
	switch n.Type {
	case mdview.TypeEmphasis:
		return r.styles.Emphasis.Prefix
	case mdview.TypeStrong:
		return r.styles.Strong.Prefix
	case mdview.TypeStrike:
		return r.styles.Strikethrough.Prefix
	case mdview.TypeCodeInline, mdview.TypeCheckbox:
		return r.styles.CodeInline.Prefix
	default:
		return ""
	}
}

func isInline(n *mdview.RenderNode) bool {
	switch n.Type {
	case mdview.TypeBulletList, mdview.TypeOrderedList, mdview.TypeBlockquote,
		mdview.TypeFence, mdview.TypeCodeBlock, mdview.TypeTable, mdview.TypeHr,
		mdview.TypeParagraph:
		return false
	}
	return n.Kind != mdview.KindView
}

func styleLines(content string, s Style) string {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = s.Prefix + line + palette.Reset
	}
	return strings.Join(lines, "\n")
}

// prefixLines puts first before the first line and cont before the rest.
func prefixLines(block, first, cont string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = first + line
		} else {
			lines[i] = cont + line
		}
	}
	return strings.Join(lines, "\n")
}
