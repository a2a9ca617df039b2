package mdview

import (
	"strings"

	"pkt.systems/mdview/internal/identity"
)

// ASTNode is one node of the tree reconstructed from the flat token stream.
// Key is stable for the same logical node across re-renders of identical
// input so hosts can diff incrementally.
type ASTNode struct {
	Key        string
	Type       string
	Content    string
	TokenIndex int
	Attributes map[string]string
	Children   []*ASTNode
}

// BuildAST folds a flat open/close/self token stream into a forest.
//
// Open tokens push onto an explicit stack, close tokens pop whatever is open
// regardless of tag (the tokenizer is trusted to emit balanced nesting), and
// self-contained tokens attach as leaves. Nodes still open at end of stream
// are closed implicitly. Tokens carrying Children are spliced into the walk
// in place, so inline container tokens flatten into the tree.
func BuildAST(tokens []Token) []*ASTNode {
	b := astBuilder{}
	b.consume(tokens)
	return b.roots
}

type astBuilder struct {
	roots []*ASTNode
	stack []*ASTNode
	index int
}

func (b *astBuilder) consume(tokens []Token) {
	for i := range tokens {
		tok := &tokens[i]
		switch tok.Nesting {
		case NestingOpen:
			b.push(b.newNode(tok))
		case NestingClose:
			b.pop()
		default:
			if len(tok.Children) > 0 {
				b.consume(tok.Children)
				continue
			}
			b.attach(b.newNode(tok))
		}
		b.index++
	}
}

func (b *astBuilder) newNode(tok *Token) *ASTNode {
	node := &ASTNode{
		Key:        nodeKey(tok),
		Type:       nodeType(tok),
		Content:    tok.Content,
		TokenIndex: b.index,
	}
	if len(tok.Attrs) > 0 {
		attrs := make(map[string]string, len(tok.Attrs))
		for k, v := range tok.Attrs {
			attrs[k] = v
		}
		node.Attributes = attrs
	}
	return node
}

func (b *astBuilder) push(node *ASTNode) {
	b.attach(node)
	b.stack = append(b.stack, node)
}

func (b *astBuilder) pop() {
	if len(b.stack) == 0 {
		return
	}
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *astBuilder) attach(node *ASTNode) {
	if len(b.stack) == 0 {
		b.roots = append(b.roots, node)
		return
	}
	top := b.stack[len(b.stack)-1]
	top.Children = append(top.Children, node)
}

// nodeKey prefers a natural key carried by the token and otherwise draws a
// fresh one from the identity counter.
func nodeKey(tok *Token) string {
	if k, ok := tok.Attrs["key"]; ok && k != "" {
		return k
	}
	return identity.Next()
}

// nodeType maps a token to the node-type vocabulary of the rule table.
// Headings collapse tag and type into one key (h2 open -> heading2); for
// everything else the _open suffix is dropped.
func nodeType(tok *Token) string {
	typ := strings.TrimSuffix(tok.Type, "_open")
	if typ == "heading" && len(tok.Tag) == 2 && tok.Tag[0] == 'h' {
		return "heading" + tok.Tag[1:]
	}
	return typ
}
