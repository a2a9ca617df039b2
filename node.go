package mdview

import "strings"

// NodeKind selects which host primitive a RenderNode maps to.
type NodeKind uint8

const (
	// KindView is a non-text container primitive.
	KindView NodeKind = iota
	// KindText is a text primitive; it may nest other text nodes.
	KindText
	// KindImage is an image primitive.
	KindImage
)

// RenderNode is the opaque render output handed to the host framework.
// Key is stable across re-renders of the same logical content.
type RenderNode struct {
	Key      string
	Type     string
	Kind     NodeKind
	Style    StyleObject
	Text     string
	Source   string
	Href     string
	Alt      string
	Title    string
	OnPress  func()
	Children []*RenderNode
}

// NewView returns a container node.
func NewView(key, typ string, style StyleObject, children []*RenderNode) *RenderNode {
	return &RenderNode{Key: key, Type: typ, Kind: KindView, Style: style, Children: children}
}

// NewText returns a text node. Text children nest inside it.
func NewText(key, typ string, style StyleObject, text string, children []*RenderNode) *RenderNode {
	return &RenderNode{Key: key, Type: typ, Kind: KindText, Style: style, Text: text, Children: children}
}

// PlainText flattens the node's text content depth-first, ignoring styling.
func (n *RenderNode) PlainText() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.appendPlain(&b)
	return b.String()
}

func (n *RenderNode) appendPlain(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, c := range n.Children {
		c.appendPlain(b)
	}
}
